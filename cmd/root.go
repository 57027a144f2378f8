package cmd

import (
	"isolation/config"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "isolation",
		Short: "Play and serve Isolation agents",
		Long: heredoc.Doc(`isolation runs game-tree search agents for Isolation, a two
			player game where each player moves like a knight and every
			visited cell stays blocked. The player left without a legal
			move loses.

			Agents are described in a YAML config file. Without one the
			defaults pit iterative deepening alpha-beta against a fixed
			depth minimax agent on a 7x7 board.`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
			if cmd.Flag("debug").Changed {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
			if cmd.Flag("trace").Changed {
				zerolog.SetGlobalLevel(zerolog.TraceLevel)
			}
		},
	}

	// global flags
	root.PersistentFlags().BoolP("debug", "d", false, "Show Debug Information")
	root.PersistentFlags().BoolP("trace", "t", false, "Show Trace Information")
	root.PersistentFlags().StringP("config", "c", "", "Path to a YAML config file")

	root.AddCommand(Play())
	root.AddCommand(Serve())
	root.AddCommand(Match())

	return root
}

// Execute runs the CLI with a console logger on stderr
func Execute() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := Root().Execute(); err != nil {
		log.Fatal().Err(err).Msg("isolation failed")
	}
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}
