package engine

import (
	"fmt"
	"isolation/agent"
	"isolation/config"
	"isolation/game"
	"isolation/searcher"
	"time"

	"github.com/rs/zerolog/log"
)

type Reason string

const (
	NoMoves     Reason = "no legal moves"
	Timeout     Reason = "timeout"
	IllegalMove Reason = "illegal move"
)

type TurnMetric struct {
	Step     int
	Player   string
	Move     game.Move
	Duration time.Duration
	Search   searcher.SearchMetric // Zero for agents that do not search
}

type Result struct {
	Winner string
	Loser  string
	Reason Reason
	Moves  []game.Move
	Turns  []TurnMetric
}

type metricsReporter interface {
	Metrics() searcher.SearchMetric
}

type Engine struct {
	Board     *game.Board
	Agents    map[string]agent.Agent
	TimeLimit time.Duration
}

func LocalEngine(board *game.Board, agents map[string]agent.Agent, timeLimit time.Duration) *Engine {
	for _, player := range board.Players() {
		if agents[player] == nil {
			panic(fmt.Sprintf("no agent for player %s", player))
		}
	}
	if timeLimit <= 0 {
		panic("time limit must be positive")
	}
	return &Engine{
		Board:     board,
		Agents:    agents,
		TimeLimit: timeLimit,
	}
}

// FromConfig sets up a fresh board with the configured agents
func FromConfig(cfg config.Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	agents := make(map[string]agent.Agent, len(cfg.Players))
	for _, p := range cfg.Players {
		a, err := agent.New(p)
		if err != nil {
			return nil, fmt.Errorf("failed to create agent: %w", err)
		}
		agents[p.Name] = a
	}
	board := game.NewBoard(cfg.Players[0].Name, cfg.Players[1].Name, cfg.Board.Width, cfg.Board.Height)
	return LocalEngine(board, agents, cfg.TimeLimit), nil
}

// Run plays until the player to move is stuck, overruns its clock or plays an illegal move.
func (e *Engine) Run() Result {
	log.Info().Msgf("player %s is starting on a %dx%d board", e.Board.ActivePlayer(), e.Board.Width(), e.Board.Height())

	result := Result{}
	for step := 1; ; step++ {
		player := e.Board.ActivePlayer()
		if e.Board.IsLoser(player) {
			result.Reason = NoMoves
			break
		}

		// Agents only ever see a copy of the board
		clock := Countdown(e.TimeLimit)
		start := time.Now()
		move := e.Agents[player].FindMove(e.Board.Copy(), clock)
		turn := TurnMetric{
			Step:     step,
			Player:   player,
			Move:     move,
			Duration: time.Since(start),
		}
		if reporter, ok := e.Agents[player].(metricsReporter); ok {
			turn.Search = reporter.Metrics()
		}
		result.Turns = append(result.Turns, turn)

		log.Debug().
			Int("step", step).
			Int("depth", turn.Search.Depth()).
			Int64("nodes", turn.Search.Nodes).
			Dur("duration", turn.Duration).
			Msgf("player %s chose move %s", player, move)

		if clock() < 0 {
			log.Warn().Msgf("player %s exceeded the time limit of %s", player, e.TimeLimit)
			result.Reason = Timeout
			break
		}
		if err := e.Board.ApplyMove(move); err != nil {
			log.Warn().Err(err).Msgf("player %s forfeits", player)
			result.Reason = IllegalMove
			break
		}
		result.Moves = append(result.Moves, move)
	}

	result.Loser = e.Board.ActivePlayer()
	result.Winner = e.Board.Opponent(result.Loser)
	log.Info().Msgf("game over after %d moves, winner: %s (%s)", len(result.Moves), result.Winner, result.Reason)
	return result
}
