package cmd

import (
	"fmt"
	"isolation/agent"
	"isolation/server"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

// isolation serve
func Serve() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve an agent over HTTP",
		Long: heredoc.Doc(`serve exposes one configured agent on POST /findmove. The
			request body holds the board and an optional per-move time
			limit in milliseconds:

			  {"board": {...}, "timeLimitMs": 150}

			The reply is the chosen move as a [row, col] pair, with
			[-1, -1] when the active player has no legal move.`),
		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.Flag("addr").Changed {
				cfg.Server.Addr, _ = cmd.Flags().GetString("addr")
			}

			a, err := agent.New(cfg.Players[cfg.Server.Player])
			if err != nil {
				return fmt.Errorf("failed to create agent: %w", err)
			}
			return server.New(a, cfg.TimeLimit).ListenAndServe(cfg.Server.Addr)
		},
	}

	cmd.Flags().StringP("addr", "a", "", "Address to listen on, overrides the config")
	return cmd
}
