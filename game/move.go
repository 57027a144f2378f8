package game

import (
	"encoding/json"
	"fmt"
)

// Move is a board coordinate a player moves to.
type Move struct {
	Row int
	Col int
}

// NoMove is returned when the active player has no legal move.
var NoMove = Move{Row: -1, Col: -1}

func (m Move) String() string {
	return fmt.Sprintf("(%d, %d)", m.Row, m.Col)
}

func (m Move) offset(dr, dc int) Move {
	return Move{Row: m.Row + dr, Col: m.Col + dc}
}

// Moves are encoded as [row, col] pairs
func (m Move) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{m.Row, m.Col})
}

func (m *Move) UnmarshalJSON(data []byte) error {
	var pair []int
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("invalid move %s: %w", data, err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("invalid move %s: want [row, col]", data)
	}
	m.Row, m.Col = pair[0], pair[1]
	return nil
}
