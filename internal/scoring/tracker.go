package scoring

import (
	"fmt"
	"time"
)

// Tracker keeps the best record for every board size played.
type Tracker struct {
	storage RecordStorage
}

// NewTracker creates a tracker backed by the given storage.
func NewTracker(storage RecordStorage) *Tracker {
	return &Tracker{storage: storage}
}

// Update folds a finished game into the record for its board size and
// reports whether any dimension improved. The first game of a size is
// always an improvement. Time is compared by total seconds.
func (t *Tracker) Update(gameID string, pairCount int, stats GameStats, finishedAt time.Time) (bool, error) {
	best, err := t.storage.LoadRecord(pairCount)
	if err != nil {
		return false, fmt.Errorf("could not load best record: %w", err)
	}

	updated := false
	if best.GamesPlayed == 0 {
		best.Moves = stats.Moves
		best.Stars = stats.Stars
		best.Time = stats.Time
		updated = true
	} else {
		if stats.Moves < best.Moves {
			best.Moves = stats.Moves
			updated = true
		}
		if stats.Stars > best.Stars {
			best.Stars = stats.Stars
			updated = true
		}
		if stats.Time.TotalSeconds() < best.Time.TotalSeconds() {
			best.Time = stats.Time
			updated = true
		}
	}
	best.GamesPlayed++

	if err := t.storage.SaveRecord(pairCount, best); err != nil {
		return updated, fmt.Errorf("could not save best record: %w", err)
	}

	entry := HistoryEntry{
		GameID:     gameID,
		PairCount:  pairCount,
		Moves:      stats.Moves,
		Stars:      stats.Stars,
		Time:       stats.Time,
		FinishedAt: finishedAt,
		NewBest:    updated,
	}
	if err := t.storage.AppendEntry(entry); err != nil {
		return updated, fmt.Errorf("could not save game history: %w", err)
	}

	return updated, nil
}

// Record returns the raw record for a board size.
func (t *Tracker) Record(pairCount int) (BestRecord, error) {
	rec, err := t.storage.LoadRecord(pairCount)
	if err != nil {
		return BestRecord{}, fmt.Errorf("could not load best record: %w", err)
	}
	return rec, nil
}

// Display returns the best-record panel for a board size.
// HasRecord is false until a game of that size has finished.
func (t *Tracker) Display(pairCount int) (Panel, error) {
	rec, err := t.Record(pairCount)
	if err != nil {
		return Panel{}, err
	}
	if !rec.HasRecord() {
		return Panel{}, nil
	}
	return Panel{
		HasRecord: true,
		Moves:     rec.Moves,
		Stars:     rec.Stars,
		Time:      rec.Time,
	}, nil
}

// Top returns the n best finished games for a board size.
func (t *Tracker) Top(pairCount, n int) ([]HistoryEntry, error) {
	entries, err := t.storage.LoadEntries(pairCount)
	if err != nil {
		return nil, fmt.Errorf("could not load game history: %w", err)
	}
	return TopEntries(entries, n), nil
}
