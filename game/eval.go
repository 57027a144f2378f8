package game

import (
	"errors"
	"fmt"
	"math"
)

var ErrUnknownScore = errors.New("unknown evaluation function")

// Cells within reach of a king step or a two cell orthogonal step
var neighbourhood = []Move{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
	{-2, 0}, {2, 0}, {0, -2}, {0, 2},
}

var evaluations = map[string]Evaluate{
	"null":     NullScore,
	"open":     OpenMoveScore,
	"improved": ImprovedScore,
	"center":   CenterScore,
	"custom":   CustomScore,
	"custom2":  CustomScore2,
	"custom3":  CustomScore3,
}

// EvaluationFn looks up an evaluation function by its configuration name.
func EvaluationFn(name string) (Evaluate, error) {
	evaluate, ok := evaluations[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScore, name)
	}
	return evaluate, nil
}

// outcome returns the decided value of s for player, if any
func outcome(s State, player string) (float64, bool) {
	if s.IsWinner(player) {
		return math.Inf(1), true
	}
	if s.IsLoser(player) {
		return math.Inf(-1), true
	}
	return 0, false
}

func asBoard(s State) *Board {
	b, ok := s.(*Board)
	if !ok {
		panic("unexpected state type")
	}
	return b
}

// NullScore only distinguishes won and lost positions
func NullScore(s State, player string) float64 {
	if score, ok := outcome(s, player); ok {
		return score
	}
	return 0
}

// OpenMoveScore counts the player's legal moves
func OpenMoveScore(s State, player string) float64 {
	if score, ok := outcome(s, player); ok {
		return score
	}
	return float64(len(s.LegalMoves(player)))
}

// ImprovedScore is the difference between the player's and the opponent's mobility
func ImprovedScore(s State, player string) float64 {
	if score, ok := outcome(s, player); ok {
		return score
	}
	own := len(s.LegalMoves(player))
	opponent := len(s.LegalMoves(s.Opponent(player)))
	return float64(own - opponent)
}

// CenterScore is the squared distance of the player from the centre of the board
func CenterScore(s State, player string) float64 {
	if score, ok := outcome(s, player); ok {
		return score
	}
	b := asBoard(s)
	loc := b.Location(player)
	if loc == NoMove {
		return 0
	}
	w, h := float64(b.Width())/2, float64(b.Height())/2
	y, x := float64(loc.Row), float64(loc.Col)
	return (h-y)*(h-y) + (w-x)*(w-x)
}

// CustomScore weighs the opponent's mobility eight times the player's own,
// which makes the agent chase the opponent into corners
func CustomScore(s State, player string) float64 {
	if score, ok := outcome(s, player); ok {
		return score
	}
	own := len(s.LegalMoves(player))
	opponent := len(s.LegalMoves(s.Opponent(player)))
	return float64(own - opponent*8)
}

// CustomScore2 adds the open cells around the player to its mobility
func CustomScore2(s State, player string) float64 {
	if score, ok := outcome(s, player); ok {
		return score
	}
	b := asBoard(s)
	own := len(b.LegalMoves(player))
	return float64(own + openNeighbours(b, player))
}

// CustomScore3 balances own mobility, open surroundings and opponent mobility
func CustomScore3(s State, player string) float64 {
	if score, ok := outcome(s, player); ok {
		return score
	}
	b := asBoard(s)
	own := float64(len(b.LegalMoves(player)))
	opponent := float64(len(b.LegalMoves(b.Opponent(player))))
	open := float64(openNeighbours(b, player))
	return own/2 + open/3 - opponent/2
}

func openNeighbours(b *Board, player string) int {
	loc := b.Location(player)
	if loc == NoMove {
		return 0
	}
	count := 0
	for _, d := range neighbourhood {
		if b.IsBlank(loc.offset(d.Row, d.Col)) {
			count++
		}
	}
	return count
}
