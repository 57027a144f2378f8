package searcher

import (
	"isolation/game"
	"math"

	"github.com/rs/zerolog/log"
)

// Minimax searches the game tree to a fixed depth.
type Minimax struct {
	settings settings
	last     SearchMetric
}

func NewMinimax(options ...Option) *Minimax {
	return &Minimax{settings: applyOptions(options)}
}

// FindMove runs a fixed-depth search. On timeout it falls back to the best
// root move evaluated so far, or the first legal move if there is none.
func (m *Minimax) FindMove(state game.State, clock Clock) game.Move {
	metrics := m.settings.metrics()
	r := newRun(m.settings, clock, metrics)

	move, value, err := r.minimax(state, m.settings.depth)
	if err != nil {
		metrics.TimeOut()
		log.Debug().Int("depth", m.settings.depth).Msgf("minimax timed out, best recorded move %s", move)
		if move == game.NoMove {
			move = firstLegalMove(state)
		}
	} else {
		metrics.CompleteIteration(m.settings.depth, move, value)
	}

	m.last = metrics.Complete()
	return move
}

// Search returns the best move for the active player by backward induction
// over depth plies, or NoMove if the active player has no legal move.
func (m *Minimax) Search(state game.State, depth int, clock Clock) (game.Move, error) {
	r := newRun(m.settings, clock, NewNoMetricsCollector())
	move, _, err := r.minimax(state, depth)
	if err != nil {
		return game.NoMove, err
	}
	return move, nil
}

// Metrics of the last FindMove call, empty unless created WithMetrics
func (m *Minimax) Metrics() SearchMetric {
	return m.last
}

// minimax returns the best root move and its value. Equally good moves
// overwrite earlier ones. On timeout the move is the best of the root moves
// fully evaluated before the clock ran out.
func (r *run) minimax(state game.State, depth int) (game.Move, float64, error) {
	if err := r.poll(); err != nil {
		return game.NoMove, math.Inf(-1), err
	}

	player := state.ActivePlayer()
	if state.IsLoser(player) {
		return game.NoMove, math.Inf(-1), nil
	}

	bestMove, bestValue := game.NoMove, math.Inf(-1)
	for _, move := range state.LegalMoves(player) {
		value, err := r.minValue(state.ForecastMove(move), depth-1)
		if err != nil {
			return bestMove, bestValue, err
		}
		if value >= bestValue {
			bestMove, bestValue = move, value
		}
	}
	return bestMove, bestValue, nil
}

// maxValue scores from the perspective of the active player at the root
func (r *run) maxValue(state game.State, depth int) (float64, error) {
	if err := r.poll(); err != nil {
		return 0, err
	}

	player := state.ActivePlayer()
	if state.IsLoser(player) {
		return math.Inf(-1), nil
	}
	if r.leaf(depth) {
		return r.score(state, player), nil
	}

	value := math.Inf(-1)
	for _, move := range state.LegalMoves(player) {
		v, err := r.minValue(state.ForecastMove(move), depth-1)
		if err != nil {
			return 0, err
		}
		value = math.Max(value, v)
	}
	return value, nil
}

// minValue is evaluated where the opponent of the root player moves
func (r *run) minValue(state game.State, depth int) (float64, error) {
	if err := r.poll(); err != nil {
		return 0, err
	}

	if state.IsLoser(state.ActivePlayer()) {
		return math.Inf(1), nil
	}
	if r.leaf(depth) {
		return r.score(state, state.InactivePlayer()), nil
	}

	value := math.Inf(1)
	for _, move := range state.LegalMoves(state.ActivePlayer()) {
		v, err := r.maxValue(state.ForecastMove(move), depth-1)
		if err != nil {
			return 0, err
		}
		value = math.Min(value, v)
	}
	return value, nil
}
