package game

import (
	"go-match/internal/deck"
	"go-match/internal/schedule"
	"go-match/internal/state"
	"time"
)

const tickInterval = time.Second

type timerPhase int

const (
	timerIdle timerPhase = iota
	timerRunning
	timerStopped
)

// Game encapsulates one board and its clock, independent of the UI.
type Game struct {
	ID    string
	State *state.State

	scheduler schedule.Scheduler
	timer     schedule.Timer
	phase     timerPhase
}

// NewGame initializes a new game instance.
func NewGame(id string, cards []deck.CardSpec, scheduler schedule.Scheduler, opts state.Options) *Game {
	return &Game{
		ID:        id,
		State:     state.NewState(cards, scheduler, opts),
		scheduler: scheduler,
	}
}

// Init initializes the game state.
func (g *Game) Init() {
	g.State.Init()
}

// HandleOpen processes a card activation. It reports whether the activation
// was accepted and whether it finished the game. The clock starts with the
// first accepted card and stops, before anything else happens, once the last
// pair is found.
func (g *Game) HandleOpen(slot int) (accepted, finished bool) {
	if !g.State.OpenCard(slot) {
		return false, false
	}
	g.startTimer()

	if g.State.Complete {
		g.stopTimer()
		return true, true
	}
	return true, false
}

// HandleTick advances the clock by one second.
func (g *Game) HandleTick() {
	if g.phase != timerRunning || g.State.Complete || g.State.Retired() {
		return
	}
	g.State.Stats.Time.Tick()
	g.timer = g.scheduler.After(tickInterval, g.HandleTick)
}

func (g *Game) TimerRunning() bool {
	return g.phase == timerRunning
}

// Retire stops the clock and disarms everything still scheduled for this game.
func (g *Game) Retire() {
	g.stopTimer()
	g.State.Retire()
}

func (g *Game) startTimer() {
	if g.phase != timerIdle {
		return
	}
	g.phase = timerRunning
	g.timer = g.scheduler.After(tickInterval, g.HandleTick)
}

func (g *Game) stopTimer() {
	if g.timer != nil {
		g.timer.Stop()
		g.timer = nil
	}
	g.phase = timerStopped
}
