// Package errors provides sentinel errors and helpers for the chess engine.
// It defines the common failure conditions surfaced by the engine and
// supports error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidSquare indicates square notation or coordinates outside the board.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrNoPendingPromotion indicates a promotion was resolved when none was pending.
	ErrNoPendingPromotion = errors.New("no pending promotion")

	// ErrNoHistory indicates an undo was requested with no prior move to revert.
	ErrNoHistory = errors.New("no move to undo")
)

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
