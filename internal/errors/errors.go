// Package errors provides sentinel errors and error types for the chess rules engine.
// Sentinels are checked with errors.Is(); the context types wrap them and can be
// recovered with errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
var (
	// ErrInvalidSquare indicates a coordinate outside the board.
	ErrInvalidSquare = errors.New("square off the board")

	// ErrSameSquare indicates a move whose origin and destination coincide.
	ErrSameSquare = errors.New("origin and destination are the same square")

	// ErrNoPiece indicates a move from an empty square.
	ErrNoPiece = errors.New("no piece on origin square")

	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidNotation indicates move text that could not be parsed.
	ErrInvalidNotation = errors.New("invalid move notation")

	// ErrKingCount indicates a position without exactly one king per side.
	ErrKingCount = errors.New("each side must have exactly one king")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps a rejected move with its context. It supports
// errors.Is() and errors.As() through Unwrap.
type MoveError struct {
	Err   error  // The underlying error
	Ply   int    // 1-based ply the move was attempted at (0 if unknown)
	Move  string // The move in long algebraic form, e.g. "e2e4"
	Input string // The raw text the move was read from (if any)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.Move != "" {
		parts = append(parts, fmt.Sprintf("move %s", e.Move))
	}
	if e.Input != "" && e.Input != e.Move {
		parts = append(parts, fmt.Sprintf("input %q", e.Input))
	}

	context := strings.Join(parts, ", ")
	switch {
	case e.Err == nil:
		return context
	case context == "":
		return e.Err.Error()
	default:
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
}

// Unwrap returns the underlying error.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ParseError represents a notation or FEN parsing error with position context.
type ParseError struct {
	Err      error  // The underlying error
	Input    string // The full text being parsed
	Column   int    // Column number (1-based, 0 if unknown)
	Expected string // What was expected
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Column > 0 {
		parts = append(parts, fmt.Sprintf("column %d", e.Column))
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %q", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %q", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
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

// Wrapf adds formatted context to an error.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
