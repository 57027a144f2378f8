package cmd

import (
	"fmt"
	"isolation/experiments"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

// isolation match
func Match() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Play a series of games between the configured agents",
		Long: heredoc.Doc(`match plays several games between the two configured players,
			alternating which of them moves first, and prints the number
			of wins per player.

			With --out the game and move records are stored as CSV files
			in a timestamped folder below the given directory.`),
		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			games, _ := cmd.Flags().GetInt("games")
			outDir, _ := cmd.Flags().GetString("out")

			summary, err := experiments.RunMatch(cfg, games, outDir)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, p := range cfg.Players {
				fmt.Fprintf(out, "%s: %d/%d\n", p.Name, summary.Wins[p.Name], summary.Games)
			}
			if summary.Dir != "" {
				fmt.Fprintf(out, "records: %s\n", summary.Dir)
			}
			return nil
		},
	}

	cmd.Flags().IntP("games", "n", 10, "Number of games to play")
	cmd.Flags().StringP("out", "o", "", "Directory to store CSV records in")
	return cmd
}
