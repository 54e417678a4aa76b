package state

import (
	"context"
	"go-match/internal/deck"
	"go-match/internal/schedule"
	"go-match/internal/scoring"
	"time"

	"github.com/looplab/fsm"
)

const (
	DefaultRevealDelay  = 500 * time.Millisecond
	DefaultSpinDuration = 4 * time.Second
)

type Options struct {
	RevealDelay  time.Duration // how long a resolved pair stays face-up
	SpinDuration time.Duration // how long the final reveal spins
}

// Card is the visual state of one slot.
type Card struct {
	Spec        deck.CardSpec
	FaceVisible bool
	Spinning    bool
	Removed     bool
	Matched     bool
}

type State struct {
	Cards     []Card
	Open      []int // slots opened this turn, at most two
	Stats     scoring.GameStats
	PairCount int
	FSM       *fsm.FSM
	Complete  bool
	Options   Options

	scheduler schedule.Scheduler
	turn      [2]int
	retired   bool
}

func NewState(cards []deck.CardSpec, scheduler schedule.Scheduler, opts Options) *State {
	if opts.RevealDelay <= 0 {
		opts.RevealDelay = DefaultRevealDelay
	}
	if opts.SpinDuration <= 0 {
		opts.SpinDuration = DefaultSpinDuration
	}

	s := &State{
		Cards:     make([]Card, len(cards)),
		Open:      make([]int, 0, 2),
		Stats:     scoring.NewGameStats(),
		PairCount: len(cards) / 2,
		Options:   opts,
		scheduler: scheduler,
	}
	for i, c := range cards {
		s.Cards[i] = Card{Spec: c}
	}

	s.FSM = fsm.NewFSM(
		"start",
		getStateTransitions(),
		getStateCallbacks(s),
	)

	return s
}

func getStateTransitions() []fsm.EventDesc {
	return fsm.Events{
		{Name: "initGame", Src: []string{"start"}, Dst: "idle"},

		// Turn
		{Name: "open", Src: []string{"idle"}, Dst: "oneOpen"},
		{Name: "open", Src: []string{"oneOpen"}, Dst: "resolving"},

		// Evaluation
		{Name: "match", Src: []string{"resolving"}, Dst: "gotMatch"},
		{Name: "mismatch", Src: []string{"resolving"}, Dst: "noMatch"},
		{Name: "matched", Src: []string{"gotMatch"}, Dst: "updateScore"},
		{Name: "notMatched", Src: []string{"noMatch"}, Dst: "updateScore"},

		// End of turn
		{Name: "scoreCalculated", Src: []string{"updateScore"}, Dst: "idle"},
		{Name: "gameEnd", Src: []string{"updateScore"}, Dst: "endState"},
	}
}

func getStateCallbacks(s *State) map[string]fsm.Callback {
	return fsm.Callbacks{
		"before_open": func(ctx context.Context, e *fsm.Event) {
			slot := -1
			if len(e.Args) > 0 {
				slot, _ = e.Args[0].(int)
			}
			if !s.CanOpen(slot) {
				e.Cancel()
				return
			}
			s.Cards[slot].FaceVisible = true
			s.Open = append(s.Open, slot)
			s.assertTurn()
		},
		"enter_resolving": func(ctx context.Context, e *fsm.Event) {
			s.turn = [2]int{s.Open[0], s.Open[1]}
			if s.IsPair(s.turn[0], s.turn[1]) {
				e.FSM.Event(ctx, "match")
				return
			}
			e.FSM.Event(ctx, "mismatch")
		},
		"enter_gotMatch": func(ctx context.Context, e *fsm.Event) {
			a, b := s.turn[0], s.turn[1]
			s.Cards[a].Matched = true
			s.Cards[b].Matched = true
			s.Stats.Matches++

			// The last pair stays on the board for the final reveal.
			if s.Stats.Matches < s.PairCount {
				s.later(func() { s.removeCards(a, b) })
			}
			e.FSM.Event(ctx, "matched")
		},
		"enter_noMatch": func(ctx context.Context, e *fsm.Event) {
			a, b := s.turn[0], s.turn[1]
			s.later(func() { s.hideFaces(a, b) })
			e.FSM.Event(ctx, "notMatched")
		},
		"enter_updateScore": func(ctx context.Context, e *fsm.Event) {
			if s.turn[0] != s.turn[1] {
				s.Stats.RecordTurn(s.PairCount)
			}
			s.Open = s.Open[:0]

			if s.Stats.Matches == s.PairCount {
				e.FSM.Event(ctx, "gameEnd")
				return
			}
			e.FSM.Event(ctx, "scoreCalculated")
		},
		"enter_endState": func(ctx context.Context, e *fsm.Event) {
			s.Complete = true
		},
	}
}

// Init moves the machine to idle.
func (s *State) Init() {
	_ = s.FSM.Event(context.Background(), "initGame")
}

// OpenCard feeds a card activation into the machine and reports whether it
// was accepted. Rejected activations leave the state untouched.
func (s *State) OpenCard(slot int) bool {
	if s.Complete || s.retired || !s.FSM.Can("open") {
		return false
	}
	return s.FSM.Event(context.Background(), "open", slot) == nil
}

// RevealAll turns every card face-up and spinning, then stops the spin after
// the configured duration.
func (s *State) RevealAll() {
	for i := range s.Cards {
		s.Cards[i].FaceVisible = true
		s.Cards[i].Removed = false
		s.Cards[i].Spinning = true
	}
	s.after(s.Options.SpinDuration, s.stopSpin)
}

// Retire disarms every deferred action still pending for this board.
func (s *State) Retire() {
	s.retired = true
}

func (s *State) Retired() bool {
	return s.retired
}

func (s *State) later(action func()) {
	s.after(s.Options.RevealDelay, action)
}

func (s *State) after(d time.Duration, action func()) {
	s.scheduler.After(d, func() {
		if s.retired {
			return
		}
		action()
	})
}
