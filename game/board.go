package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math"
)

type StateHash uint64

// MaxSize bounds both board dimensions
const MaxSize = 64

// Knight moves, in the order legal moves are generated
var directions = []Move{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
	{1, -2}, {1, 2}, {2, -1}, {2, 1},
}

// Board is an Isolation position: two players on a width x height grid.
// Any cell a player has occupied is blocked for the rest of the game.
type Board struct {
	width     int
	height    int
	players   [2]string
	blocked   []bool // Indexed by row*width + col
	locations [2]Move
	active    int // Index into players of the player to move
	moveCount int
}

// NewBoard returns an empty board where player1 moves first.
func NewBoard(player1, player2 string, width, height int) *Board {
	if player1 == player2 {
		panic("players must have distinct names")
	}
	if width <= 0 || height <= 0 || width > MaxSize || height > MaxSize {
		panic(fmt.Sprintf("invalid board size %dx%d", width, height))
	}
	return &Board{
		width:     width,
		height:    height,
		players:   [2]string{player1, player2},
		blocked:   make([]bool, width*height),
		locations: [2]Move{NoMove, NoMove},
	}
}

// Copy returns a deep copy of the board.
func (b *Board) Copy() *Board {
	blocked := make([]bool, len(b.blocked))
	copy(blocked, b.blocked)
	return &Board{
		width:     b.width,
		height:    b.height,
		players:   b.players,
		blocked:   blocked,
		locations: b.locations,
		active:    b.active,
		moveCount: b.moveCount,
	}
}

func (b *Board) Width() int     { return b.width }
func (b *Board) Height() int    { return b.height }
func (b *Board) MoveCount() int { return b.moveCount }

func (b *Board) Players() [2]string { return b.players }

func (b *Board) ActivePlayer() string {
	return b.players[b.active]
}

func (b *Board) InactivePlayer() string {
	return b.players[1-b.active]
}

func (b *Board) Opponent(player string) string {
	return b.players[1-b.index(player)]
}

// Location returns where the player stands, NoMove if it has not been placed yet.
func (b *Board) Location(player string) Move {
	return b.locations[b.index(player)]
}

func (b *Board) index(player string) int {
	switch player {
	case b.players[0]:
		return 0
	case b.players[1]:
		return 1
	}
	panic(fmt.Sprintf("unknown player %q", player))
}

func (b *Board) inBounds(m Move) bool {
	return m.Row >= 0 && m.Row < b.height && m.Col >= 0 && m.Col < b.width
}

// IsBlank reports whether the cell is on the board and has never been occupied.
func (b *Board) IsBlank(m Move) bool {
	return b.inBounds(m) && !b.blocked[m.Row*b.width+m.Col]
}

// BlankSpaces lists the open cells in row-major order.
func (b *Board) BlankSpaces() []Move {
	blanks := make([]Move, 0, len(b.blocked))
	for row := 0; row < b.height; row++ {
		for col := 0; col < b.width; col++ {
			if !b.blocked[row*b.width+col] {
				blanks = append(blanks, Move{Row: row, Col: col})
			}
		}
	}
	return blanks
}

// LegalMoves returns every cell the player could move to on its turn. An
// unplaced player may go to any blank cell.
func (b *Board) LegalMoves(player string) []Move {
	from := b.Location(player)
	if from == NoMove {
		return b.BlankSpaces()
	}
	moves := make([]Move, 0, len(directions))
	for _, d := range directions {
		to := from.offset(d.Row, d.Col)
		if b.IsBlank(to) {
			moves = append(moves, to)
		}
	}
	return moves
}

func (b *Board) isLegal(player string, m Move) bool {
	if !b.IsBlank(m) {
		return false
	}
	from := b.Location(player)
	if from == NoMove {
		return true
	}
	for _, d := range directions {
		if from.offset(d.Row, d.Col) == m {
			return true
		}
	}
	return false
}

// ApplyMove moves the active player in place and passes the turn.
func (b *Board) ApplyMove(m Move) error {
	if !b.isLegal(b.ActivePlayer(), m) {
		return fmt.Errorf("%w: %s cannot move to %s", ErrIllegalMove, b.ActivePlayer(), m)
	}
	b.blocked[m.Row*b.width+m.Col] = true
	b.locations[b.active] = m
	b.active = 1 - b.active
	b.moveCount++
	return nil
}

// ForecastMove returns the position after the active player plays m. The
// receiver is left untouched. Forecasting an illegal move is a programming error.
func (b *Board) ForecastMove(m Move) State {
	next := b.Copy()
	if err := next.ApplyMove(m); err != nil {
		panic(err)
	}
	return next
}

func (b *Board) hasMoves() bool {
	return len(b.LegalMoves(b.ActivePlayer())) > 0
}

func (b *Board) IsLoser(player string) bool {
	return player == b.ActivePlayer() && !b.hasMoves()
}

func (b *Board) IsWinner(player string) bool {
	return player == b.InactivePlayer() && !b.hasMoves()
}

func (b *Board) Utility(player string) (float64, bool) {
	if b.hasMoves() {
		return 0, false
	}
	if player == b.ActivePlayer() {
		return math.Inf(-1), true
	}
	return math.Inf(1), true
}

// Hash identifies the position (cells, locations and turn).
func (b *Board) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(b.width))
	binary.Write(hasher, binary.LittleEndian, int64(b.height))
	binary.Write(hasher, binary.LittleEndian, int64(b.active))

	for _, loc := range b.locations {
		binary.Write(hasher, binary.LittleEndian, int64(loc.Row))
		binary.Write(hasher, binary.LittleEndian, int64(loc.Col))
	}

	for _, blocked := range b.blocked {
		binary.Write(hasher, binary.LittleEndian, blocked)
	}

	return StateHash(hasher.Sum64())
}
