package experiments

import (
	"encoding/csv"
	"isolation/config"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func matchConfig() config.Config {
	cfg := config.Default()
	cfg.Board = config.Board{Width: 4, Height: 4}
	cfg.TimeLimit = time.Second
	cfg.Players = []config.Player{
		{Name: "random", Kind: config.Random, Seed: 7},
		{Name: "greedy", Kind: config.Greedy, Score: "improved"},
	}
	return cfg
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestRunMatch(t *testing.T) {
	t.Run("counting every game", func(t *testing.T) {
		summary, err := RunMatch(matchConfig(), 4, "")

		require.NoError(t, err)
		require.Equal(t, 4, summary.Games)
		require.Equal(t, 4, summary.Wins["random"]+summary.Wins["greedy"])
		require.Empty(t, summary.Dir)
	})

	t.Run("storing records", func(t *testing.T) {
		summary, err := RunMatch(matchConfig(), 2, t.TempDir())
		require.NoError(t, err)

		players := readCSV(t, filepath.Join(summary.Dir, "players.csv"))
		require.Len(t, players, 3)
		require.Equal(t, "name", players[0][0])

		games := readCSV(t, filepath.Join(summary.Dir, "game_records.csv"))
		require.Len(t, games, 3)
		require.Equal(t, "random", games[1][1], "First game is started by the first player")
		require.Equal(t, "greedy", games[2][1], "Starting player alternates")

		moves := readCSV(t, filepath.Join(summary.Dir, "move_records.csv"))
		require.Greater(t, len(moves), 1)
		require.Equal(t, []string{"game", "step", "player", "move", "duration", "depth", "nodes", "cutoffs", "timed_out"}, moves[0])
	})

	t.Run("rejecting an empty match", func(t *testing.T) {
		_, err := RunMatch(matchConfig(), 0, "")

		require.ErrorIs(t, err, config.ErrInvalidConfig)
	})
}
