package searcher

import (
	"errors"
	"isolation/game"
	"time"
)

// ErrSearchTimeout aborts a search once the clock drops below the threshold.
// It is returned unchanged through every recursive call and only recovered by FindMove.
var ErrSearchTimeout = errors.New("search time exhausted")

// Clock reports the time remaining for the current move.
type Clock func() time.Duration

// Searcher finds a move for the active player of a state before the clock runs out
type Searcher interface {
	FindMove(state game.State, clock Clock) game.Move
}

const (
	DefaultDepth     = 3
	DefaultThreshold = 15 * time.Millisecond
)

type Option func(s *settings)

type settings struct {
	depth     int
	maxDepth  int
	threshold time.Duration
	evaluate  game.Evaluate
	metrics   func() MetricsCollector
}

func defaultSettings() settings {
	return settings{
		depth:     DefaultDepth,
		threshold: DefaultThreshold,
		evaluate:  game.CustomScore,
		metrics:   NewNoMetricsCollector,
	}
}

// WithDepth sets the ply limit of fixed-depth search
func WithDepth(depth int) Option {
	return func(s *settings) {
		if depth > 0 {
			s.depth = depth
		}
	}
}

// WithMaxDepth caps iterative deepening, 0 leaves it unbounded
func WithMaxDepth(depth int) Option {
	return func(s *settings) {
		if depth >= 0 {
			s.maxDepth = depth
		}
	}
}

// WithTimeout sets the remaining time below which a search gives up
func WithTimeout(threshold time.Duration) Option {
	return func(s *settings) {
		if threshold >= 0 {
			s.threshold = threshold
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(s *settings) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(s *settings) {
		s.metrics = NewMetricsCollector
	}
}

func applyOptions(options []Option) settings {
	s := defaultSettings()
	for _, option := range options {
		option(&s)
	}
	return s
}

// firstLegalMove is the fallback when no search result is available
func firstLegalMove(state game.State) game.Move {
	moves := state.LegalMoves(state.ActivePlayer())
	if len(moves) == 0 {
		return game.NoMove
	}
	return moves[0]
}
