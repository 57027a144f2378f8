package cmd

import (
	"fmt"
	"isolation/engine"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

// isolation play
func Play() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play one local game between the configured agents",
		Long: heredoc.Doc(`play runs a single game between the two configured players,
			giving each one the configured time limit per move. A player
			that overruns its clock or answers with an illegal move
			forfeits the game.

			The winner and the full move list are printed once the game
			is over. Use --debug to log every move with its search depth.`),
		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			e, err := engine.FromConfig(cfg)
			if err != nil {
				return err
			}

			result := e.Run()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "winner: %s\n", result.Winner)
			fmt.Fprintf(out, "loser: %s (%s)\n", result.Loser, result.Reason)
			fmt.Fprintf(out, "moves: %v\n", result.Moves)
			return nil
		},
	}
}
