// Package errors provides sentinel errors and error types for the chess engine.
// Every rule violation is local and recoverable: callers inspect the failure with
// errors.Is() and errors.As() and re-prompt, the match state is left untouched.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
var (
	// ErrPosition indicates a square outside the board.
	ErrPosition = errors.New("position does not exist")

	// ErrBoardDimensions indicates a board built with a non-positive size.
	ErrBoardDimensions = errors.New("board needs at least one row and one column")

	// ErrSquareOccupied indicates a placement onto a square that already holds a piece.
	ErrSquareOccupied = errors.New("there is already a piece on that square")

	// ErrInvalidCoordinate indicates a human coordinate outside a1..h8.
	ErrInvalidCoordinate = errors.New("invalid coordinate, valid values are from a1 to h8")

	// ErrIllegalOrigin indicates a move started from a square the side to move can't use.
	ErrIllegalOrigin = errors.New("illegal origin")

	// ErrIllegalTarget indicates a destination the moving piece can't reach.
	ErrIllegalTarget = errors.New("illegal target")

	// ErrSelfCheck indicates a move that would leave the mover's own king attacked.
	ErrSelfCheck = errors.New("you can't put yourself in check")

	// ErrPromotion indicates a bad promotion request.
	ErrPromotion = errors.New("invalid promotion")

	// ErrMatchOver indicates a command issued after checkmate or stalemate.
	ErrMatchOver = errors.New("match is over")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrQuit indicates the player asked to leave the program.
	ErrQuit = errors.New("quit")
)

// BoardError wraps a structural board failure with the offending coordinate.
type BoardError struct {
	Err    error
	Row    int
	Column int
}

func (e *BoardError) Error() string {
	return fmt.Sprintf("position (%d, %d): %v", e.Row, e.Column, e.Err)
}

// Unwrap returns the underlying error.
func (e *BoardError) Unwrap() error {
	return e.Err
}

// MoveError wraps a rule violation with the context of the attempted move.
type MoveError struct {
	Err    error  // The underlying sentinel
	Turn   int    // Turn number when the violation happened (0 if unknown)
	Square string // Square involved, in chess coordinates (if applicable)
	Reason string // Human readable detail
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string
	if e.Turn > 0 {
		parts = append(parts, fmt.Sprintf("turn %d", e.Turn))
	}
	if e.Square != "" {
		parts = append(parts, fmt.Sprintf("square %s", e.Square))
	}

	msg := ""
	if e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Reason != "" {
		if msg != "" {
			msg += ": "
		}
		msg += e.Reason
	}

	if len(parts) == 0 {
		return msg
	}
	return fmt.Sprintf("%s: %s", strings.Join(parts, ", "), msg)
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As().
func (e *MoveError) Unwrap() error {
	return e.Err
}

// IsRuleViolation reports whether err is a chess rule violation the player can
// correct by choosing another move, as opposed to an engine fault.
func IsRuleViolation(err error) bool {
	for _, sentinel := range []error{
		ErrInvalidCoordinate,
		ErrIllegalOrigin,
		ErrIllegalTarget,
		ErrSelfCheck,
		ErrPromotion,
		ErrMatchOver,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is reports whether any error in err's chain matches target. It mirrors the
// standard library so callers importing this package need no second import.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}
