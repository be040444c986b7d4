package parser

import (
	"errors"
	"fmt"
)

// Sentinel errors - parse failures
var (
	// ErrEmptyInput is returned when zero tokens are supplied to the builder.
	ErrEmptyInput = errors.New("cannot parse empty token list")
	// ErrMismatchedDelimiter indicates a close delimiter without a matching
	// open, or an open delimiter that is never closed.
	ErrMismatchedDelimiter = errors.New("mismatched delimiter")
	// ErrMalformedExpression indicates the builder terminated with zero or
	// more than one root candidate on the operand stack.
	ErrMalformedExpression = errors.New("malformed expression")
)

// ParseError carries the failure cause together with the source position and
// offending symbol when they are determinable. Position is -1 when unknown.
type ParseError struct {
	Err      error
	Message  string
	Position int
	Symbol   string
}

func (e *ParseError) Error() string {
	if e.Position >= 0 {
		return fmt.Sprintf("parse error at position %d: %s (symbol: %q)", e.Position, e.Message, e.Symbol)
	}

	return "parse error: " + e.Message
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func newParseError(cause error, message string, position int, symbol string) *ParseError {
	return &ParseError{
		Err:      cause,
		Message:  message,
		Position: position,
		Symbol:   symbol,
	}
}
