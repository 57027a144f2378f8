package game

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrInvalidBoard = errors.New("invalid board")

type boardJSON struct {
	Width     int             `json:"width"`
	Height    int             `json:"height"`
	Players   [2]string       `json:"players"`
	Blocked   []Move          `json:"blocked"`
	Locations map[string]Move `json:"locations,omitempty"`
	Active    string          `json:"active"`
	MoveCount int             `json:"moveCount"`
}

func (b *Board) MarshalJSON() ([]byte, error) {
	out := boardJSON{
		Width:     b.width,
		Height:    b.height,
		Players:   b.players,
		Blocked:   []Move{},
		Locations: map[string]Move{},
		Active:    b.ActivePlayer(),
		MoveCount: b.moveCount,
	}
	for i, blocked := range b.blocked {
		if blocked {
			out.Blocked = append(out.Blocked, Move{Row: i / b.width, Col: i % b.width})
		}
	}
	for i, loc := range b.locations {
		if loc != NoMove {
			out.Locations[b.players[i]] = loc
		}
	}
	return json.Marshal(out)
}

func (b *Board) UnmarshalJSON(data []byte) error {
	var in boardJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	if in.Width <= 0 || in.Height <= 0 || in.Width > MaxSize || in.Height > MaxSize {
		return fmt.Errorf("%w: size %dx%d, each side must be within 1 and %d", ErrInvalidBoard, in.Width, in.Height, MaxSize)
	}
	if in.Players[0] == "" || in.Players[1] == "" || in.Players[0] == in.Players[1] {
		return fmt.Errorf("%w: players %q", ErrInvalidBoard, in.Players)
	}

	decoded := NewBoard(in.Players[0], in.Players[1], in.Width, in.Height)
	switch in.Active {
	case in.Players[0]:
		decoded.active = 0
	case in.Players[1]:
		decoded.active = 1
	default:
		return fmt.Errorf("%w: unknown active player %q", ErrInvalidBoard, in.Active)
	}

	for _, cell := range in.Blocked {
		if !decoded.inBounds(cell) {
			return fmt.Errorf("%w: blocked cell %s out of bounds", ErrInvalidBoard, cell)
		}
		decoded.blocked[cell.Row*decoded.width+cell.Col] = true
	}
	for player, loc := range in.Locations {
		if player != in.Players[0] && player != in.Players[1] {
			return fmt.Errorf("%w: location for unknown player %q", ErrInvalidBoard, player)
		}
		if !decoded.inBounds(loc) {
			return fmt.Errorf("%w: %s located out of bounds at %s", ErrInvalidBoard, player, loc)
		}
		if loc == decoded.locations[1-decoded.index(player)] {
			return fmt.Errorf("%w: players share the cell %s", ErrInvalidBoard, loc)
		}
		// An occupied cell is always blocked
		decoded.blocked[loc.Row*decoded.width+loc.Col] = true
		decoded.locations[decoded.index(player)] = loc
	}

	// Every move blocks exactly one cell
	blocked := 0
	for _, cell := range decoded.blocked {
		if cell {
			blocked++
		}
	}
	if in.MoveCount != blocked {
		return fmt.Errorf("%w: move count %d with %d blocked cells", ErrInvalidBoard, in.MoveCount, blocked)
	}
	decoded.moveCount = in.MoveCount

	*b = *decoded
	return nil
}
