// Package errors provides sentinel errors and error types for the chessman
// packages. It defines the common failure conditions and a structured error
// type that preserves context while allowing error inspection with
// errors.Is() and errors.As().
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

	// ErrInvalidSquare indicates an out-of-range or malformed square.
	ErrInvalidSquare = errors.New("invalid square")
)

// ParseError wraps a decode error with its source location. The batch
// checker uses it to report which file and line a bad position came from.
// It implements the error interface and supports unwrapping via
// errors.Is() and errors.As().
type ParseError struct {
	Err  error  // The underlying error
	File string // Source file name ("stdin" when reading standard input)
	Line int    // Line number in the source (1-based, 0 if not applicable)
}

// Error returns a formatted error message in the conventional
// file:line: message form, omitting location parts that are unset.
func (e *ParseError) Error() string {
	loc := e.File
	if loc != "" && e.Line > 0 {
		loc = fmt.Sprintf("%s:%d", loc, e.Line)
	}

	if e.Err == nil {
		if loc != "" {
			return loc + ": parse error"
		}
		return "parse error"
	}

	if loc != "" {
		return fmt.Sprintf("%s: %v", loc, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the ParseError wrapper.
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

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
