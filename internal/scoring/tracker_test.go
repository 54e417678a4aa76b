package scoring

import (
	"errors"
	"testing"
	"time"
)

// MockRecordStorage is a mock implementation of the RecordStorage interface
// that can simulate errors from the storage layer.
type MockRecordStorage struct {
	*MemoryStorage
	err error
}

func (m *MockRecordStorage) LoadRecord(pairCount int) (BestRecord, error) {
	if m.err != nil {
		return BestRecord{}, m.err
	}
	return m.MemoryStorage.LoadRecord(pairCount)
}

func (m *MockRecordStorage) SaveRecord(pairCount int, rec BestRecord) error {
	if m.err != nil {
		return m.err
	}
	return m.MemoryStorage.SaveRecord(pairCount, rec)
}

var finished = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

func stats(moves, stars, seconds int) GameStats {
	return GameStats{Moves: moves, Stars: stars, Time: ClockFromSeconds(seconds)}
}

func TestTracker_FirstGameAdoptsStats(t *testing.T) {
	tracker := NewTracker(NewMemoryStorage())

	panel, err := tracker.Display(4)
	if err != nil {
		t.Fatalf("Display returned error: %v", err)
	}
	if panel.HasRecord {
		t.Fatal("expected no record before any game")
	}

	updated, err := tracker.Update("g1", 4, stats(4, 3, 20), finished)
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if !updated {
		t.Error("first game should always be a new best")
	}

	rec, _ := tracker.Record(4)
	want := BestRecord{Moves: 4, Stars: 3, Time: Clock{Seconds: 20}, GamesPlayed: 1}
	if rec != want {
		t.Errorf("expected %+v, got %+v", want, rec)
	}

	panel, _ = tracker.Display(4)
	if !panel.HasRecord || panel.Moves != 4 || panel.Stars != 3 || panel.Time.TotalSeconds() != 20 {
		t.Errorf("unexpected panel: %+v", panel)
	}
}

func TestTracker_FirstGameWorseThanSentinelStillAdopted(t *testing.T) {
	tracker := NewTracker(NewMemoryStorage())

	// 2000 moves is worse than the 1000-move sentinel.
	updated, _ := tracker.Update("g1", 4, stats(2000, 1, 10), finished)
	if !updated {
		t.Error("first game should be adopted regardless of sentinel values")
	}
	rec, _ := tracker.Record(4)
	if rec.Moves != 2000 {
		t.Errorf("expected moves 2000, got %d", rec.Moves)
	}
}

func TestTracker_FieldsImproveIndependently(t *testing.T) {
	tracker := NewTracker(NewMemoryStorage())
	tracker.Update("g1", 6, stats(10, 2, 60), finished)

	// Fewer moves, worse time: only moves improve.
	updated, _ := tracker.Update("g2", 6, stats(8, 2, 90), finished)
	if !updated {
		t.Error("fewer moves should be an improvement")
	}
	rec, _ := tracker.Record(6)
	if rec.Moves != 8 || rec.Time.TotalSeconds() != 60 || rec.Stars != 2 {
		t.Errorf("unexpected record after g2: %+v", rec)
	}

	// Nothing better.
	updated, _ = tracker.Update("g3", 6, stats(12, 1, 120), finished)
	if updated {
		t.Error("a worse game should not be a new best")
	}

	// Better stars and time only.
	updated, _ = tracker.Update("g4", 6, stats(9, 3, 45), finished)
	if !updated {
		t.Error("better stars and time should be an improvement")
	}
	rec, _ = tracker.Record(6)
	want := BestRecord{Moves: 8, Stars: 3, Time: Clock{Seconds: 45}, GamesPlayed: 4}
	if rec != want {
		t.Errorf("expected %+v, got %+v", want, rec)
	}
}

func TestTracker_MonotonicOverManyGames(t *testing.T) {
	tracker := NewTracker(NewMemoryStorage())
	games := []GameStats{
		stats(12, 2, 100), stats(15, 1, 80), stats(9, 3, 120),
		stats(20, 1, 300), stats(9, 3, 70), stats(11, 2, 65),
	}

	prev := NoRecord()
	for i, g := range games {
		tracker.Update("g", 5, g, finished)
		rec, _ := tracker.Record(5)

		if rec.GamesPlayed != i+1 {
			t.Errorf("game %d: expected GamesPlayed %d, got %d", i, i+1, rec.GamesPlayed)
		}
		if i > 0 {
			if rec.Moves > prev.Moves || rec.Stars < prev.Stars || rec.Time.TotalSeconds() > prev.Time.TotalSeconds() {
				t.Errorf("game %d: record got worse: %+v -> %+v", i, prev, rec)
			}
		}
		prev = rec
	}
}

func TestTracker_TimeComparedByTotalSeconds(t *testing.T) {
	tracker := NewTracker(NewMemoryStorage())

	// 0h59m59s recorded first; 1h0m1s has a smaller seconds component
	// but is the longer time.
	tracker.Update("g1", 4, GameStats{Moves: 10, Stars: 1, Time: Clock{Minutes: 59, Seconds: 59}}, finished)
	updated, _ := tracker.Update("g2", 4, GameStats{Moves: 10, Stars: 1, Time: Clock{Hours: 1, Seconds: 1}}, finished)
	if updated {
		t.Error("1h0m1s must not beat 0h59m59s")
	}
	rec, _ := tracker.Record(4)
	if rec.Time != (Clock{Minutes: 59, Seconds: 59}) {
		t.Errorf("expected best time 00:59:59, got %s", rec.Time)
	}
}

func TestTracker_SizesAreIndependent(t *testing.T) {
	tracker := NewTracker(NewMemoryStorage())
	tracker.Update("g1", 4, stats(4, 3, 10), finished)

	panel, _ := tracker.Display(5)
	if panel.HasRecord {
		t.Error("size 5 should have no record")
	}
}

func TestTracker_Top(t *testing.T) {
	tracker := NewTracker(NewMemoryStorage())
	tracker.Update("slow", 4, stats(9, 2, 60), finished)
	tracker.Update("fast", 4, stats(5, 3, 30), finished.Add(time.Minute))
	tracker.Update("other", 8, stats(3, 3, 5), finished)

	top, err := tracker.Top(4, 5)
	if err != nil {
		t.Fatalf("Top returned error: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(top))
	}
	if top[0].GameID != "fast" || !top[0].NewBest {
		t.Errorf("expected fast new-best game first, got %+v", top[0])
	}
}

func TestTracker_StorageError(t *testing.T) {
	boom := errors.New("boom")
	tracker := NewTracker(&MockRecordStorage{MemoryStorage: NewMemoryStorage(), err: boom})

	if _, err := tracker.Update("g1", 4, stats(4, 3, 10), finished); !errors.Is(err, boom) {
		t.Errorf("expected wrapped storage error, got %v", err)
	}
	if _, err := tracker.Display(4); !errors.Is(err, boom) {
		t.Errorf("expected wrapped storage error from Display, got %v", err)
	}
}
