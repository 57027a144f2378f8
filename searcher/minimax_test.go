package searcher

import (
	"isolation/game"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func board(t *testing.T, width, height int, moves ...game.Move) *game.Board {
	b := game.NewBoard("player1", "player2", width, height)
	for _, move := range moves {
		require.NoError(t, b.ApplyMove(move))
	}
	return b
}

// stuckBoard leaves player1 in the centre of a 3x3 board without moves
func stuckBoard(t *testing.T) *game.Board {
	return board(t, 3, 3, game.Move{Row: 1, Col: 1}, game.Move{Row: 0, Col: 0})
}

// forcedBoard gives player1 exactly one legal move, to (2, 0)
func forcedBoard(t *testing.T) *game.Board {
	return board(t, 3, 3,
		game.Move{Row: 0, Col: 0}, game.Move{Row: 2, Col: 2},
		game.Move{Row: 1, Col: 2}, game.Move{Row: 1, Col: 0})
}

func TestMinimaxSearch(t *testing.T) {
	t.Run("returning no move when the active player is stuck", func(t *testing.T) {
		m := NewMinimax(WithDepth(3))

		move, err := m.Search(stuckBoard(t), 3, plenty)

		require.NoError(t, err)
		require.Equal(t, game.NoMove, move)
	})

	t.Run("choosing a legal move on an open 3x3 board", func(t *testing.T) {
		b := board(t, 3, 3, game.Move{Row: 0, Col: 0}, game.Move{Row: 2, Col: 2})
		m := NewMinimax(WithDepth(2))

		move, err := m.Search(b, 2, plenty)

		require.NoError(t, err)
		require.Contains(t, b.LegalMoves("player1"), move, "Move should be legal for the active player")
	})

	t.Run("playing the only legal move", func(t *testing.T) {
		for _, evaluate := range []game.Evaluate{game.NullScore, game.CustomScore, game.CenterScore} {
			for depth := 1; depth <= 4; depth++ {
				m := NewMinimax(WithEvaluationFn(evaluate))

				move, err := m.Search(forcedBoard(t), depth, plenty)

				require.NoError(t, err)
				require.Equal(t, game.Move{Row: 2, Col: 0}, move, "depth %d", depth)
			}
		}
	})

	t.Run("backing up values from the leaves", func(t *testing.T) {
		root := tree(node(
			node(leaf(3), leaf(12), leaf(8)),
			node(leaf(2), leaf(4), leaf(6)),
			node(leaf(14), leaf(5), leaf(2)),
		))
		r := newRun(applyOptions([]Option{WithEvaluationFn(mockScore)}), plenty, NewNoMetricsCollector())

		move, value, err := r.minimax(root, 2)

		require.NoError(t, err)
		require.Equal(t, root.moves[0], move)
		require.Equal(t, 3.0, value)
	})

	t.Run("keeping the last of equally good moves", func(t *testing.T) {
		root := tree(node(leaf(5), leaf(5), leaf(1)))
		m := NewMinimax(WithEvaluationFn(mockScore))

		move, err := m.Search(root, 1, plenty)

		require.NoError(t, err)
		require.Equal(t, root.moves[1], move)
	})

	t.Run("preferring to outlast the opponent", func(t *testing.T) {
		// The second child leaves the opponent without a move
		root := tree(node(node(leaf(0)), node()))
		m := NewMinimax(WithEvaluationFn(mockScore))

		move, err := m.Search(root, 2, plenty)

		require.NoError(t, err)
		require.Equal(t, root.moves[1], move)
	})

	t.Run("timing out", func(t *testing.T) {
		m := NewMinimax()

		move, err := m.Search(board(t, 3, 3), 2, exhausted)

		require.ErrorIs(t, err, ErrSearchTimeout)
		require.Equal(t, game.NoMove, move)
	})

	t.Run("timing out deep inside the tree", func(t *testing.T) {
		m := NewMinimax()

		_, err := m.Search(board(t, 4, 4), 3, pollLimit(20))

		require.ErrorIs(t, err, ErrSearchTimeout, "Timeout should propagate through every frame")
	})

	t.Run("repeating the same result", func(t *testing.T) {
		b := board(t, 4, 4, game.Move{Row: 0, Col: 0}, game.Move{Row: 3, Col: 3})
		m := NewMinimax()

		first, err := m.Search(b, 3, plenty)
		require.NoError(t, err)
		second, err := m.Search(b, 3, plenty)
		require.NoError(t, err)

		require.Equal(t, first, second)
	})
}

func TestMinimaxFindMove(t *testing.T) {
	t.Run("searching to the configured depth", func(t *testing.T) {
		b := board(t, 4, 4, game.Move{Row: 0, Col: 0}, game.Move{Row: 3, Col: 3})
		m := NewMinimax(WithDepth(3), WithMetrics())

		move := m.FindMove(b, plenty)

		expected, err := m.Search(b, 3, plenty)
		require.NoError(t, err)
		require.Equal(t, expected, move)
		require.Equal(t, 3, m.Metrics().Depth())
		require.False(t, m.Metrics().TimedOut)
		require.Positive(t, m.Metrics().Nodes)
	})

	t.Run("falling back to the best root move evaluated before the timeout", func(t *testing.T) {
		root := tree(node(leaf(1), leaf(7), leaf(9)))
		m := NewMinimax(WithDepth(1), WithEvaluationFn(mockScore), WithMetrics())

		// Root and two children fit in the budget
		move := m.FindMove(root, pollLimit(3))

		require.Equal(t, root.moves[1], move)
		require.True(t, m.Metrics().TimedOut)
	})

	t.Run("falling back to a legal move when the clock is already exhausted", func(t *testing.T) {
		b := board(t, 3, 3)
		m := NewMinimax()

		move := m.FindMove(b, exhausted)

		require.Contains(t, b.LegalMoves("player1"), move)
	})

	t.Run("returning no move from a lost position", func(t *testing.T) {
		m := NewMinimax()

		require.Equal(t, game.NoMove, m.FindMove(stuckBoard(t), plenty))
		require.Equal(t, game.NoMove, m.FindMove(stuckBoard(t), exhausted))
	})
}

func TestMinimaxValues(t *testing.T) {
	t.Run("scoring a lost root", func(t *testing.T) {
		r := newRun(defaultSettings(), plenty, NewNoMetricsCollector())

		_, value, err := r.minimax(stuckBoard(t), 2)

		require.NoError(t, err)
		require.Equal(t, math.Inf(-1), value)
	})
}
