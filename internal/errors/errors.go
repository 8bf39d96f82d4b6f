// Package errors provides sentinel errors and error types for chess-go.
// It defines the move rejection reasons reported back to the command loop and
// structured error types that preserve context while allowing error
// inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for move execution.
// Use these with errors.Is() to check for specific rejection reasons.
var (
	// ErrMalformedInput indicates move text or coordinates that fail shape validation.
	ErrMalformedInput = errors.New("malformed move")

	// ErrNoPieceAtSource indicates the source square is empty.
	ErrNoPieceAtSource = errors.New("no piece at source square")

	// ErrWrongOwner indicates the piece at the source belongs to the other side.
	ErrWrongOwner = errors.New("piece belongs to the other side")

	// ErrIllegalDestination indicates the destination is not a candidate for the piece.
	ErrIllegalDestination = errors.New("illegal destination")

	// ErrSelfCheck indicates a king move into check.
	ErrSelfCheck = errors.New("king cannot move into check")

	// ErrLeavesKingInCheck indicates a non-king move that leaves the mover's king in check.
	ErrLeavesKingInCheck = errors.New("move leaves king in check")
)

// Sentinel errors for the surrounding game layer.
var (
	// ErrNoMoves indicates a side has no candidate move at all.
	ErrNoMoves = errors.New("no moves available")

	// ErrNotPromotable indicates a promotion request for a square that is not eligible.
	ErrNotPromotable = errors.New("square is not eligible for promotion")

	// ErrInvalidSnapshot indicates a saved game that cannot be restored.
	ErrInvalidSnapshot = errors.New("invalid game snapshot")

	// ErrInvalidName indicates a save name outside [A-Za-z0-9_].
	ErrInvalidName = errors.New("invalid save name")

	// ErrGameNotFound indicates a save name with no stored game.
	ErrGameNotFound = errors.New("saved game not found")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps a move rejection with the side and move text that caused
// it. It implements the error interface and supports unwrapping via
// errors.Is() and errors.As().
type MoveError struct {
	Err   error  // The underlying rejection reason
	Side  string // "White" or "Black" (empty if unknown)
	Move  string // Move text, e.g. "e2e4" (empty if unknown)
	Piece string // Name of the moving piece (empty if none)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Side != "" {
		parts = append(parts, e.Side)
	}
	if e.Piece != "" {
		parts = append(parts, e.Piece)
	}
	if e.Move != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.Move))
	}

	context := strings.Join(parts, ", ")

	switch {
	case e.Err != nil && context != "":
		return fmt.Sprintf("%s: %v", context, e.Err)
	case e.Err != nil:
		return e.Err.Error()
	case context != "":
		return context
	}
	return "move error"
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

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
