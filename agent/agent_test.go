package agent

import (
	"isolation/config"
	"isolation/game"
	"isolation/searcher"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func plenty() time.Duration { return time.Hour }

func cornersBoard(t *testing.T) *game.Board {
	b := game.NewBoard("player1", "player2", 5, 5)
	require.NoError(t, b.ApplyMove(game.Move{Row: 0, Col: 0}))
	require.NoError(t, b.ApplyMove(game.Move{Row: 4, Col: 4}))
	return b
}

func TestNew(t *testing.T) {
	t.Run("building each kind", func(t *testing.T) {
		kinds := map[string]any{
			config.Minimax:   &searcher.Minimax{},
			config.AlphaBeta: &searcher.AlphaBeta{},
			config.Random:    &Random{},
			config.Greedy:    &Greedy{},
		}
		for kind, expected := range kinds {
			a, err := New(config.Player{Name: "player1", Kind: kind, Score: "improved"})

			require.NoError(t, err)
			require.IsType(t, expected, a, "Kind %s", kind)
		}
	})

	t.Run("defaulting the score", func(t *testing.T) {
		_, err := New(config.Player{Name: "player1", Kind: config.AlphaBeta})

		require.NoError(t, err)
	})

	t.Run("rejecting an unknown score", func(t *testing.T) {
		_, err := New(config.Player{Name: "player1", Kind: config.Minimax, Score: "magic"})

		require.ErrorIs(t, err, game.ErrUnknownScore)
	})

	t.Run("rejecting an unknown kind", func(t *testing.T) {
		_, err := New(config.Player{Name: "player1", Kind: "oracle"})

		require.ErrorIs(t, err, config.ErrInvalidConfig)
	})
}

func TestRandom(t *testing.T) {
	t.Run("playing legal moves reproducibly", func(t *testing.T) {
		b := cornersBoard(t)

		first := NewRandom(42).FindMove(b, plenty)
		second := NewRandom(42).FindMove(b, plenty)

		require.Contains(t, b.LegalMoves("player1"), first)
		require.Equal(t, first, second, "Same seed should give the same move")
	})

	t.Run("returning no move when stuck", func(t *testing.T) {
		b := game.NewBoard("player1", "player2", 3, 3)
		require.NoError(t, b.ApplyMove(game.Move{Row: 1, Col: 1}))
		require.NoError(t, b.ApplyMove(game.Move{Row: 0, Col: 0}))

		require.Equal(t, game.NoMove, NewRandom(1).FindMove(b, plenty))
	})
}

func TestGreedy(t *testing.T) {
	t.Run("maximizing the immediate score", func(t *testing.T) {
		b := cornersBoard(t)
		g := NewGreedy(game.OpenMoveScore)

		move := g.FindMove(b, plenty)

		best := 0.0
		for _, m := range b.LegalMoves("player1") {
			if score := game.OpenMoveScore(b.ForecastMove(m), "player1"); score > best {
				best = score
			}
		}
		require.Equal(t, best, game.OpenMoveScore(b.ForecastMove(move), "player1"))
	})
}
