package game

import (
	"go-match/internal/deck"
	"go-match/internal/schedule"
	"go-match/internal/state"
	"testing"
	"time"
)

func testCards(layout ...int) []deck.CardSpec {
	faces := deck.DefaultFaces()
	cards := make([]deck.CardSpec, len(layout))
	for i, pair := range layout {
		cards[i] = deck.CardSpec{Face: faces[pair], PairNumber: pair, Slot: i}
	}
	return cards
}

func newTestGame(layout ...int) (*Game, *schedule.Virtual) {
	v := schedule.NewVirtual()
	g := NewGame("test", testCards(layout...), v, state.Options{})
	g.Init()
	return g, v
}

func TestGame_TimerStartsOnFirstOpen(t *testing.T) {
	g, v := newTestGame(0, 1, 0, 1)

	v.Advance(5 * time.Second)
	if g.TimerRunning() {
		t.Error("Timer should not run before the first card is opened")
	}
	if g.State.Stats.Time.TotalSeconds() != 0 {
		t.Errorf("Clock should not advance before the first open, got %s", g.State.Stats.Time)
	}

	accepted, finished := g.HandleOpen(0)
	if !accepted || finished {
		t.Fatalf("Expected accepted, unfinished open; got %v %v", accepted, finished)
	}
	if !g.TimerRunning() {
		t.Fatal("Timer should run after the first open")
	}

	v.Advance(3 * time.Second)
	if g.State.Stats.Time.TotalSeconds() != 3 {
		t.Errorf("Expected 3 elapsed seconds, got %s", g.State.Stats.Time)
	}
}

func TestGame_IgnoredOpenDoesNotStartTimer(t *testing.T) {
	g, _ := newTestGame(0, 1, 0, 1)

	accepted, _ := g.HandleOpen(99)
	if accepted {
		t.Error("Out-of-range slot should be ignored")
	}
	if g.TimerRunning() {
		t.Error("Ignored activation should not start the timer")
	}
}

func TestGame_TimerCarries(t *testing.T) {
	g, v := newTestGame(0, 1, 0, 1)
	g.HandleOpen(0)

	v.Advance(125 * time.Second)
	c := g.State.Stats.Time
	if c.Hours != 0 || c.Minutes != 2 || c.Seconds != 5 {
		t.Errorf("After 125 ticks expected 00:02:05, got %s", c)
	}
}

func TestGame_TimerStopsAtCompletion(t *testing.T) {
	g, v := newTestGame(0, 1, 0, 1)

	g.HandleOpen(0)
	g.HandleOpen(2)
	v.Advance(2 * time.Second)
	g.HandleOpen(1)
	_, finished := g.HandleOpen(3)

	if !finished {
		t.Fatal("Last pair should finish the game")
	}
	if g.TimerRunning() {
		t.Error("Timer should stop when the game finishes")
	}

	elapsed := g.State.Stats.Time
	v.Advance(time.Minute)
	if g.State.Stats.Time != elapsed {
		t.Errorf("No tick may land after completion: %s -> %s", elapsed, g.State.Stats.Time)
	}

	// Further activations neither restart the timer nor count.
	accepted, _ := g.HandleOpen(0)
	if accepted || g.TimerRunning() {
		t.Error("Finished game should ignore activations")
	}
}

func TestGame_RetireStopsTimer(t *testing.T) {
	g, v := newTestGame(0, 1, 0, 1)
	g.HandleOpen(0)
	v.Advance(2 * time.Second)

	g.Retire()
	v.Advance(10 * time.Second)

	if g.State.Stats.Time.TotalSeconds() != 2 {
		t.Errorf("Retired game should keep its clock at 2s, got %s", g.State.Stats.Time)
	}
	if g.TimerRunning() {
		t.Error("Retired game timer should not run")
	}
	if v.Pending() != 0 {
		t.Errorf("Expected no pending actions, got %d", v.Pending())
	}
}

func TestGame_SingleTickTimer(t *testing.T) {
	g, v := newTestGame(0, 1, 0, 1)
	g.HandleOpen(0)
	g.HandleOpen(1)
	g.HandleOpen(2)

	// However many turns start, only one tick is ever pending.
	ticks := 0
	for i := 0; i < 5; i++ {
		before := g.State.Stats.Time.TotalSeconds()
		v.Advance(time.Second)
		ticks += g.State.Stats.Time.TotalSeconds() - before
	}
	if ticks != 5 {
		t.Errorf("Expected exactly 5 ticks in 5 seconds, got %d", ticks)
	}
}
