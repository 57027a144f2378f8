package experiments

import (
	"fmt"
	"isolation/config"
	"isolation/engine"
	"isolation/experiments/metrics"
	"isolation/game"
	"time"

	"github.com/rs/zerolog/log"
)

type Summary struct {
	Games int
	Wins  map[string]int
	// Dir holds the written records, empty when nothing was stored
	Dir string
}

// RunMatch plays a number of games between the two configured players,
// alternating who moves first. Records are stored under outDir unless it is empty.
func RunMatch(cfg config.Config, games int, outDir string) (Summary, error) {
	if games <= 0 {
		return Summary{}, fmt.Errorf("%w: need at least one game, got %d", config.ErrInvalidConfig, games)
	}
	if err := cfg.Validate(); err != nil {
		return Summary{}, err
	}

	summary := Summary{Games: games, Wins: map[string]int{}}
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting match of %d games between %s and %s...", games, cfg.Players[0].Name, cfg.Players[1].Name)

	for i := 0; i < games; i++ {
		// Even games are started by the first configured player
		first, second := cfg.Players[0].Name, cfg.Players[1].Name
		if i%2 == 1 {
			first, second = second, first
		}

		e, err := engine.FromConfig(cfg)
		if err != nil {
			return Summary{}, err
		}
		e.Board = game.NewBoard(first, second, cfg.Board.Width, cfg.Board.Height)

		start := time.Now()
		result := e.Run()
		summary.Wins[result.Winner]++

		gameRecords = append(gameRecords, metrics.GameRecord{
			ID:          i + 1,
			FirstPlayer: first,
			Winner:      result.Winner,
			Loser:       result.Loser,
			Reason:      string(result.Reason),
			Moves:       len(result.Moves),
			Duration:    time.Since(start),
		})
		for _, turn := range result.Turns {
			moveRecords = append(moveRecords, metrics.MoveRecord{
				Game:     i + 1,
				Step:     turn.Step,
				Player:   turn.Player,
				Move:     turn.Move.String(),
				Duration: turn.Duration,
				Depth:    turn.Search.Depth(),
				Nodes:    turn.Search.Nodes,
				Cutoffs:  turn.Search.Cutoffs,
				TimedOut: turn.Search.TimedOut,
			})
		}

		log.Info().Msgf("completed game %d of %d with winner: %s", i+1, games, result.Winner)
	}

	log.Info().Msgf("completed match: %v", summary.Wins)

	if outDir == "" {
		return summary, nil
	}
	writer, err := metrics.NewWriter(outDir)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to create match writer: %w", err)
	}
	if err := writer.WritePlayers(cfg.Players); err != nil {
		return Summary{}, fmt.Errorf("failed to store players: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return Summary{}, fmt.Errorf("failed to store game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return Summary{}, fmt.Errorf("failed to store move records: %w", err)
	}
	summary.Dir = writer.Dir()
	log.Info().Msgf("stored match records in %s", summary.Dir)

	return summary, nil
}
