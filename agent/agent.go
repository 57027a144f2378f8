package agent

import (
	"fmt"
	"isolation/config"
	"isolation/game"
	"isolation/searcher"
	"math"
	"time"

	"golang.org/x/exp/rand"
)

// Agent picks a move for the active player, NoMove when there is none
type Agent interface {
	FindMove(state game.State, clock searcher.Clock) game.Move
}

// New builds the agent described by a player config
func New(p config.Player) (Agent, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	score := p.Score
	if score == "" {
		score = "custom"
	}
	evaluate, err := game.EvaluationFn(score)
	if err != nil {
		return nil, fmt.Errorf("player %s: %w", p.Name, err)
	}

	options := []searcher.Option{
		searcher.WithEvaluationFn(evaluate),
		searcher.WithDepth(p.Depth),
		searcher.WithMaxDepth(p.MaxDepth),
		searcher.WithMetrics(),
	}
	if p.Threshold > 0 {
		options = append(options, searcher.WithTimeout(p.Threshold))
	}

	switch p.Kind {
	case config.Minimax:
		return searcher.NewMinimax(options...), nil
	case config.AlphaBeta:
		return searcher.NewAlphaBeta(options...), nil
	case config.Greedy:
		return NewGreedy(evaluate), nil
	default:
		seed := p.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		return NewRandom(seed), nil
	}
}

// Random plays a uniformly random legal move
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) FindMove(state game.State, _ searcher.Clock) game.Move {
	moves := state.LegalMoves(state.ActivePlayer())
	if len(moves) == 0 {
		return game.NoMove
	}
	return moves[r.rng.Intn(len(moves))]
}

// Greedy plays the move with the best immediate evaluation
type Greedy struct {
	evaluate game.Evaluate
}

func NewGreedy(evaluate game.Evaluate) *Greedy {
	return &Greedy{evaluate: evaluate}
}

func (g *Greedy) FindMove(state game.State, _ searcher.Clock) game.Move {
	player := state.ActivePlayer()
	best, bestScore := game.NoMove, math.Inf(-1)
	for _, move := range state.LegalMoves(player) {
		score := g.evaluate(state.ForecastMove(move), player)
		if best == game.NoMove || score > bestScore {
			best, bestScore = move, score
		}
	}
	return best
}
