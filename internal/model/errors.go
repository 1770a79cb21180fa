package model

import "errors"

var (
	ErrInvalidFormat = errors.New("invalid format")

	ErrOutOfBounds = errors.New("move invalid: out of bounds")
	ErrNoPiece     = errors.New("move invalid: no piece at from square")
	ErrNotYourTurn = errors.New("move invalid: not your turn")
	ErrOwnPiece    = errors.New("move invalid: destination holds own piece")
	ErrIllegalMove = errors.New("move invalid: piece cannot move that way")

	ErrGameOver     = errors.New("game is over")
	ErrGameFull     = errors.New("game is full")
	ErrNotInGame    = errors.New("player not in game")
	ErrGameNotFound = errors.New("game not found")
)

// IsRejection reports whether err is an ordinary illegal-move rejection from
// Board.Play.
func IsRejection(err error) bool {
	return errors.Is(err, ErrOutOfBounds) ||
		errors.Is(err, ErrNoPiece) ||
		errors.Is(err, ErrNotYourTurn) ||
		errors.Is(err, ErrOwnPiece) ||
		errors.Is(err, ErrIllegalMove)
}
