package engine

import (
	"errors"
	"fmt"
)

// Domain errors for replay operations.
var (
	// ErrEmptySquare indicates a move whose origin square holds no piece.
	ErrEmptySquare = errors.New("engine: no piece on origin square")

	// ErrBadMove indicates a move that is not in coordinate notation.
	ErrBadMove = errors.New("engine: malformed move")

	// ErrUnknownPlayer indicates a game naming a player missing from the roster.
	ErrUnknownPlayer = errors.New("engine: unknown player")

	// ErrNoGames indicates an empty library.
	ErrNoGames = errors.New("engine: library has no games")

	// ErrInvalidLibrary indicates a library that failed validation.
	ErrInvalidLibrary = errors.New("engine: invalid library")
)

// MoveError wraps an error with the position in the game where it occurred.
type MoveError struct {
	Game    string
	Ply     int
	Move    string
	Wrapped error
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("%s: ply %d (%s): %v", e.Game, e.Ply+1, e.Move, e.Wrapped)
}

func (e *MoveError) Unwrap() error {
	return e.Wrapped
}
