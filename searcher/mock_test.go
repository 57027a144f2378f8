package searcher

import (
	"isolation/game"
	"math"
	"time"
)

// mockState is a hand built game tree. Values are from the root player's perspective.
type mockState struct {
	active   string
	inactive string
	moves    []game.Move
	children []*mockState
	value    float64
}

func (m *mockState) ActivePlayer() string   { return m.active }
func (m *mockState) InactivePlayer() string { return m.inactive }

func (m *mockState) Opponent(player string) string {
	if player == m.active {
		return m.inactive
	}
	return m.active
}

func (m *mockState) LegalMoves(player string) []game.Move {
	if player != m.active {
		return nil
	}
	return m.moves
}

func (m *mockState) ForecastMove(move game.Move) game.State {
	for i, legal := range m.moves {
		if legal == move {
			return m.children[i]
		}
	}
	panic("move not in tree")
}

func (m *mockState) IsLoser(player string) bool {
	return player == m.active && len(m.moves) == 0
}

func (m *mockState) IsWinner(player string) bool {
	return player == m.inactive && len(m.moves) == 0
}

func (m *mockState) Utility(player string) (float64, bool) {
	if len(m.moves) > 0 {
		return 0, false
	}
	if player == m.active {
		return math.Inf(-1), true
	}
	return math.Inf(1), true
}

func mockScore(s game.State, player string) float64 {
	m := s.(*mockState)
	if m.IsLoser(player) {
		return math.Inf(-1)
	}
	if m.IsWinner(player) {
		return math.Inf(1)
	}
	if player == "max" {
		return m.value
	}
	return -m.value
}

// node builds an inner node, leaf a node whose subtree lies beyond the depth
// limit and lost a node where the player to move is stuck
func node(children ...*mockState) *mockState {
	n := &mockState{children: children}
	for i := range children {
		n.moves = append(n.moves, game.Move{Row: len(children), Col: i})
	}
	return n
}

func leaf(value float64) *mockState {
	n := node(lost())
	n.value = value
	return n
}

func lost() *mockState {
	return &mockState{}
}

// tree assigns alternating turns starting with "max" at the root
func tree(root *mockState) *mockState {
	var assign func(n *mockState, active, inactive string)
	assign = func(n *mockState, active, inactive string) {
		n.active, n.inactive = active, inactive
		for _, child := range n.children {
			assign(child, inactive, active)
		}
	}
	assign(root, "max", "min")
	return root
}

func plenty() time.Duration { return time.Hour }

func exhausted() time.Duration { return 0 }

// pollLimit returns a clock that runs out after n checks
func pollLimit(n int) Clock {
	polls := 0
	return func() time.Duration {
		polls++
		if polls > n {
			return 0
		}
		return time.Hour
	}
}
