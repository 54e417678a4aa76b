package scoring

import (
	"fmt"
)

const (
	secPerMin = 60
	minPerHr  = 60

	threeStarRate = 1.75
	twoStarRate   = 2.50

	// MaxStars is the rating of a fresh game.
	MaxStars = 3
)

// Difficulty returns the degree of difficulty for a board: one step per
// started block of ten pairs.
func Difficulty(pairCount int) int {
	return (pairCount + 9) / 10
}

// Stars rates a game from its move count. Fewer moves per pair, scaled by
// difficulty, earn more stars.
func Stars(moves, pairCount int) int {
	if pairCount <= 0 {
		return MaxStars
	}
	rate := (float64(moves) / float64(pairCount)) / float64(Difficulty(pairCount))

	switch {
	case rate <= threeStarRate:
		return 3
	case rate <= twoStarRate:
		return 2
	default:
		return 1
	}
}

// Clock is an elapsed time split into hours, minutes and seconds.
type Clock struct {
	Hours   int
	Minutes int
	Seconds int
}

// ClockFromSeconds builds a normalized clock.
func ClockFromSeconds(total int) Clock {
	if total < 0 {
		total = 0
	}
	return Clock{
		Hours:   total / (secPerMin * minPerHr),
		Minutes: (total / secPerMin) % minPerHr,
		Seconds: total % secPerMin,
	}
}

// Tick adds one second, carrying into minutes and hours.
func (c *Clock) Tick() {
	c.Seconds++
	if c.Seconds >= secPerMin {
		c.Seconds = 0
		c.Minutes++
		if c.Minutes >= minPerHr {
			c.Minutes = 0
			c.Hours++
		}
	}
}

func (c Clock) TotalSeconds() int {
	return c.Hours*minPerHr*secPerMin + c.Minutes*secPerMin + c.Seconds
}

// String renders the clock as HH:MM:SS.
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", c.Hours, c.Minutes, c.Seconds)
}

// GameStats holds the live statistics of one game.
type GameStats struct {
	Moves   int
	Stars   int
	Matches int
	Time    Clock
}

// NewGameStats returns the statistics of a game that has not started.
func NewGameStats() GameStats {
	return GameStats{Stars: MaxStars}
}

// RecordTurn counts a completed turn and refreshes the rating.
func (s *GameStats) RecordTurn(pairCount int) {
	s.Moves++
	s.Stars = Stars(s.Moves, pairCount)
}
