package scoring

import "fmt"

// Summary is the end-of-game message.
type Summary struct {
	GameID    string
	PairCount int
	Stars     int
	Time      Clock
	Moves     int
	NewBest   bool
	Top       []HistoryEntry
}

func (s Summary) Heading() string {
	if s.NewBest {
		return "Congratulations!"
	}
	return "Bravo!"
}

func (s Summary) Message() string {
	newBest := ""
	if s.NewBest {
		newBest = " You achieved a new best!"
	}
	return fmt.Sprintf("A %d-star accomplishment with a time of %s!%s", s.Stars, s.Time, newBest)
}
