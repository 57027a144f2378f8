package game

import "errors"

var ErrIllegalMove = errors.New("illegal move")

// State should be immutable - ForecastMove always returns a new copy
type State interface {
	ActivePlayer() string
	InactivePlayer() string
	Opponent(player string) string
	LegalMoves(player string) []Move
	ForecastMove(Move) State
	IsLoser(player string) bool
	IsWinner(player string) bool
	// Utility reports +Inf/-Inf for a decided game from the player's perspective,
	// and false while the active player still has a legal move
	Utility(player string) (float64, bool)
}

// Evaluates the game state from the given player's perspective. Must return
// +Inf exactly when the player has won, -Inf exactly when the player has lost
// and a finite value otherwise.
type Evaluate func(state State, player string) float64
