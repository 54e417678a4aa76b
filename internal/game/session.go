package game

import (
	"fmt"
	"go-match/internal/deck"
	"go-match/internal/schedule"
	"go-match/internal/scoring"
	"go-match/internal/state"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const defaultTopEntries = 5

type Options struct {
	MinPairs   int
	MaxPairs   int
	Faces      []deck.Face
	Colors     []deck.Color
	Seed       uint64 // 0 picks a random seed
	State      state.Options
	TopEntries int              // finished games listed in the summary
	Now        func() time.Time // clock for history timestamps
}

// LiveStats is the statistics line of the current game.
type LiveStats struct {
	PairCount int
	Moves     int
	Stars     int
	Matches   int
	Time      scoring.Clock
}

// Session owns every game played in one process: the current board, the
// best records, the scheduler and the end-of-game summary.
type Session struct {
	Options     Options
	CurrentGame *Game
	PairCount   int

	tracker   *scoring.Tracker
	scheduler schedule.Scheduler
	rng       *rand.Rand
	log       zerolog.Logger
	summary   *scoring.Summary
}

func NewSession(opts Options, tracker *scoring.Tracker, scheduler schedule.Scheduler, logger zerolog.Logger) (*Session, error) {
	if len(opts.Faces) == 0 {
		opts.Faces = deck.DefaultFaces()
	}
	if len(opts.Colors) == 0 {
		opts.Colors = deck.DefaultColors()
	}
	if opts.MinPairs < 1 {
		return nil, &deck.ConfigurationError{Field: "minimum pair count", Value: opts.MinPairs, Min: 1, Max: opts.MaxPairs}
	}
	upper := min(opts.MaxPairs, len(opts.Faces))
	if opts.MinPairs > upper {
		return nil, &deck.ConfigurationError{Field: "minimum pair count", Value: opts.MinPairs, Min: 1, Max: upper}
	}
	if opts.TopEntries <= 0 {
		opts.TopEntries = defaultTopEntries
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	seed := opts.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	return &Session{
		Options:   opts,
		tracker:   tracker,
		scheduler: scheduler,
		rng:       deck.NewRand(seed),
		log:       logger,
	}, nil
}

// NewGame starts a board with pairCount pairs. An invalid size returns a
// *deck.ConfigurationError and leaves the current game as it was.
func (s *Session) NewGame(pairCount int) error {
	if err := deck.ValidatePairCount(pairCount, s.Options.MinPairs, s.Options.MaxPairs, len(s.Options.Faces)); err != nil {
		s.log.Warn().Err(err).Int("pairs", pairCount).Msg("board size rejected")
		return err
	}

	cards, err := deck.SelectCards(pairCount, s.Options.Faces, s.Options.Colors, s.rng)
	if err != nil {
		return fmt.Errorf("could not deal cards: %w", err)
	}

	if s.CurrentGame != nil {
		s.CurrentGame.Retire()
	}
	s.summary = nil

	g := NewGame(uuid.NewString(), cards, s.scheduler, s.Options.State)
	g.Init()

	s.CurrentGame = g
	s.PairCount = pairCount

	s.log.Info().Str("game", g.ID).Int("pairs", pairCount).Msg("game started")
	return nil
}

// OpenCard forwards a card activation to the current game and reports
// whether it was accepted. The activation that finds the last pair also
// records the result and publishes the summary.
func (s *Session) OpenCard(slot int) bool {
	g := s.CurrentGame
	if g == nil {
		return false
	}

	accepted, finished := g.HandleOpen(slot)
	if finished {
		s.finish(g)
	}
	return accepted
}

func (s *Session) finish(g *Game) {
	stats := g.State.Stats

	updated, err := s.tracker.Update(g.ID, s.PairCount, stats, s.Options.Now())
	if err != nil {
		s.log.Error().Err(err).Str("game", g.ID).Msg("could not update best record")
	}

	g.State.RevealAll()

	top, err := s.tracker.Top(s.PairCount, s.Options.TopEntries)
	if err != nil {
		s.log.Error().Err(err).Str("game", g.ID).Msg("could not load game history")
	}

	s.summary = &scoring.Summary{
		GameID:    g.ID,
		PairCount: s.PairCount,
		Stars:     stats.Stars,
		Time:      stats.Time,
		Moves:     stats.Moves,
		NewBest:   updated,
		Top:       top,
	}

	s.log.Info().
		Str("game", g.ID).
		Int("pairs", s.PairCount).
		Int("moves", stats.Moves).
		Int("stars", stats.Stars).
		Str("time", stats.Time.String()).
		Bool("new_best", updated).
		Msg("game finished")
}

// DismissSummary closes the end-of-game summary.
func (s *Session) DismissSummary() {
	s.summary = nil
}

// Summary returns the end-of-game summary while it is open.
func (s *Session) Summary() (scoring.Summary, bool) {
	if s.summary == nil {
		return scoring.Summary{}, false
	}
	return *s.summary, true
}

// Cards returns the visual state of every slot.
func (s *Session) Cards() []state.Card {
	if s.CurrentGame == nil {
		return nil
	}
	return s.CurrentGame.State.Cards
}

func (s *Session) LiveStats() LiveStats {
	if s.CurrentGame == nil {
		return LiveStats{Stars: scoring.MaxStars}
	}
	st := s.CurrentGame.State.Stats
	return LiveStats{
		PairCount: s.PairCount,
		Moves:     st.Moves,
		Stars:     st.Stars,
		Matches:   st.Matches,
		Time:      st.Time,
	}
}

// BestPanel returns the best record for the current board size.
func (s *Session) BestPanel() scoring.Panel {
	if s.CurrentGame == nil {
		return scoring.Panel{}
	}
	panel, err := s.tracker.Display(s.PairCount)
	if err != nil {
		s.log.Error().Err(err).Int("pairs", s.PairCount).Msg("could not load best record")
		return scoring.Panel{}
	}
	return panel
}

// IsFinished reports whether the current game is complete.
func (s *Session) IsFinished() bool {
	return s.CurrentGame != nil && s.CurrentGame.State.Complete
}
