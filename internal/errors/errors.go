// Package errors provides sentinel errors and error types for octad-go.
// It defines the failure conditions of the board model and the OFEN codec,
// and structured error types that preserve context while allowing error
// inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for every rejection the board model and codec can produce.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidSquareIndex indicates a square index outside 0..15.
	ErrInvalidSquareIndex = errors.New("invalid square index")

	// ErrUnknownSquareName indicates a square name outside a1..d4.
	ErrUnknownSquareName = errors.New("unknown square name")

	// ErrNoKing indicates an empty king position bitboard.
	ErrNoKing = errors.New("no king on board")

	// ErrMultipleKings indicates a king position bitboard with more than one bit set.
	ErrMultipleKings = errors.New("multiple kings on board")

	// ErrInvalidOFENChar indicates a layout character outside the OFEN grammar.
	ErrInvalidOFENChar = errors.New("invalid OFEN character")

	// ErrMalformedLayout indicates a layout with the wrong rank count or rank width.
	ErrMalformedLayout = errors.New("malformed OFEN layout")

	// ErrMalformedRecord indicates an OFEN record without exactly six fields.
	ErrMalformedRecord = errors.New("malformed OFEN record")

	// ErrNonNumericField indicates a clock field that is not a non-negative integer.
	ErrNonNumericField = errors.New("non-numeric field")

	// ErrInvalidCastling indicates a castling field outside the NCFncf subset.
	ErrInvalidCastling = errors.New("invalid castling token")

	// ErrUnrecognizedToken indicates a raw square token outside K, N, P, k, n, p and '.'.
	ErrUnrecognizedToken = errors.New("unrecognized square token")

	// ErrInvalidActiveColour indicates an active colour field other than w or b.
	ErrInvalidActiveColour = errors.New("invalid active colour")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// RecordError wraps errors with input context: the record number and the
// source it was read from. It implements the error interface and supports
// unwrapping via errors.Is() and errors.As().
type RecordError struct {
	Err       error  // The underlying error
	RecordNum int    // 1-based record number in the input
	Record    string // The record text that caused the error (if applicable)
	File      string // Source file name (if known)
	Line      int    // Line number in source file (if known)
}

// Error returns a formatted error message including all available context.
func (e *RecordError) Error() string {
	var parts []string

	if e.File != "" {
		if e.Line > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", e.File, e.Line))
		} else {
			parts = append(parts, e.File)
		}
	}

	parts = append(parts, fmt.Sprintf("record %d", e.RecordNum))

	if e.Record != "" {
		parts = append(parts, fmt.Sprintf("%q", e.Record))
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the RecordError wrapper.
func (e *RecordError) Unwrap() error {
	return e.Err
}

// ParseError represents an OFEN parsing error located within a record.
type ParseError struct {
	Err      error  // The underlying error
	Field    string // Record field being parsed (layout, castling, ...)
	Offset   int    // 0-based byte offset within the field, -1 if not applicable
	Expected string // What was expected
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Field != "" {
		loc := e.Field
		if e.Offset >= 0 {
			loc += fmt.Sprintf("[%d]", e.Offset)
		}
		parts = append(parts, loc)
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

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
