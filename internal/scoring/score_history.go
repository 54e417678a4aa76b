package scoring

import (
	"sort"
	"time"
)

// BestRecord holds the best result per dimension for one board size.
// Each field is tracked independently, so Moves and Time may come from
// different games.
type BestRecord struct {
	Moves       int
	Stars       int
	Time        Clock
	GamesPlayed int
}

// NoRecord returns the worst-possible record a board size starts with.
func NoRecord() BestRecord {
	return BestRecord{
		Moves: 1000,
		Stars: 0,
		Time:  Clock{Hours: 1000, Minutes: 1000, Seconds: 1000},
	}
}

// HasRecord reports whether any game of this size has finished.
func (r BestRecord) HasRecord() bool {
	return r.GamesPlayed > 0
}

// Panel is the best-record view shown next to the live statistics.
type Panel struct {
	HasRecord bool
	Moves     int
	Stars     int
	Time      Clock
}

// HistoryEntry records one finished game.
type HistoryEntry struct {
	GameID     string
	PairCount  int
	Moves      int
	Stars      int
	Time       Clock
	FinishedAt time.Time
	NewBest    bool
}

// TopEntries returns up to n entries ordered best first: fewer moves, then
// shorter time, then earlier finish.
func TopEntries(entries []HistoryEntry, n int) []HistoryEntry {
	// Make a copy to avoid modifying the original slice.
	entriesCopy := make([]HistoryEntry, len(entries))
	copy(entriesCopy, entries)

	sort.SliceStable(entriesCopy, func(i, j int) bool {
		a, b := entriesCopy[i], entriesCopy[j]
		if a.Moves != b.Moves {
			return a.Moves < b.Moves
		}
		if a.Time.TotalSeconds() != b.Time.TotalSeconds() {
			return a.Time.TotalSeconds() < b.Time.TotalSeconds()
		}
		return a.FinishedAt.Before(b.FinishedAt)
	})

	if len(entriesCopy) < n {
		return entriesCopy
	}
	return entriesCopy[:n]
}
