package searcher

import (
	"isolation/game"
	"math"

	"github.com/rs/zerolog/log"
)

// AlphaBeta runs iterative deepening over depth-limited alpha-beta search.
type AlphaBeta struct {
	settings settings
	last     SearchMetric
}

func NewAlphaBeta(options ...Option) *AlphaBeta {
	return &AlphaBeta{settings: applyOptions(options)}
}

// FindMove deepens one ply at a time with a full window and keeps the move
// of the deepest iteration that finished before the clock ran out.
func (a *AlphaBeta) FindMove(state game.State, clock Clock) game.Move {
	metrics := a.settings.metrics()
	r := newRun(a.settings, clock, metrics)
	defer func() { a.last = metrics.Complete() }()

	best := game.NoMove
	completed := 0
	for depth := 1; a.settings.maxDepth == 0 || depth <= a.settings.maxDepth; depth++ {
		log.Trace().Int("plies", depth).Msg("deepening-iteratively")

		r.truncated = false
		move, value, err := r.alphaBeta(state, depth, math.Inf(-1), math.Inf(1))
		if err != nil {
			metrics.TimeOut()
			log.Debug().Int("completed", completed).Msgf("alpha-beta timed out at depth %d", depth)
			break
		}
		best, completed = move, depth
		metrics.CompleteIteration(depth, move, value)

		if _, decided := state.Utility(state.ActivePlayer()); decided {
			break
		}
		// A proven result or a fully explored tree cannot change with depth
		if math.IsInf(value, 0) || !r.truncated {
			break
		}
	}

	if completed == 0 {
		return firstLegalMove(state)
	}
	return best
}

// Search runs a single alpha-beta search to the given depth and window.
func (a *AlphaBeta) Search(state game.State, depth int, alpha, beta float64, clock Clock) (game.Move, error) {
	r := newRun(a.settings, clock, NewNoMetricsCollector())
	move, _, err := r.alphaBeta(state, depth, alpha, beta)
	if err != nil {
		return game.NoMove, err
	}
	return move, nil
}

// Metrics of the last FindMove call, empty unless created WithMetrics
func (a *AlphaBeta) Metrics() SearchMetric {
	return a.last
}

// alphaBeta returns the best root move and its value. Only a strictly better
// value replaces the current best, so the first of equally good moves is kept.
func (r *run) alphaBeta(state game.State, depth int, alpha, beta float64) (game.Move, float64, error) {
	if err := r.poll(); err != nil {
		return game.NoMove, math.Inf(-1), err
	}

	moves := state.LegalMoves(state.ActivePlayer())
	if len(moves) == 0 {
		return game.NoMove, math.Inf(-1), nil
	}

	bestMove, bestValue := moves[0], math.Inf(-1)
	for i, move := range moves {
		value, err := r.alphaBetaMin(state.ForecastMove(move), depth-1, alpha, beta)
		if err != nil {
			return game.NoMove, math.Inf(-1), err
		}
		if i == 0 || value > bestValue {
			bestMove, bestValue = move, value
		}
		alpha = math.Max(alpha, value)
	}
	return bestMove, bestValue, nil
}

func (r *run) alphaBetaMax(state game.State, depth int, alpha, beta float64) (float64, error) {
	if err := r.poll(); err != nil {
		return 0, err
	}

	player := state.ActivePlayer()
	if state.IsLoser(player) || r.leaf(depth) {
		return r.score(state, player), nil
	}

	for _, move := range state.LegalMoves(player) {
		value, err := r.alphaBetaMin(state.ForecastMove(move), depth-1, alpha, beta)
		if err != nil {
			return 0, err
		}
		if value >= beta {
			r.metrics.AddCutoff()
			return value, nil
		}
		alpha = math.Max(alpha, value)
	}
	return alpha, nil
}

func (r *run) alphaBetaMin(state game.State, depth int, alpha, beta float64) (float64, error) {
	if err := r.poll(); err != nil {
		return 0, err
	}

	player := state.ActivePlayer()
	if state.IsLoser(player) || r.leaf(depth) {
		return r.score(state, state.InactivePlayer()), nil
	}

	for _, move := range state.LegalMoves(player) {
		value, err := r.alphaBetaMax(state.ForecastMove(move), depth-1, alpha, beta)
		if err != nil {
			return 0, err
		}
		if value <= alpha {
			r.metrics.AddCutoff()
			return value, nil
		}
		beta = math.Min(beta, value)
	}
	return beta, nil
}
