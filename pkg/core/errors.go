package core

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrReadOnly = errors.New("repository is in read-only mode")
	ErrParse    = errors.New("malformed record")
	ErrIO       = errors.New("storage i/o failure")

	// ErrIDExhausted is returned when no id above the highest one is left.
	ErrIDExhausted = errors.New("no ids left")
)

// ParseError reports a data line that cannot be turned into a Thought.
// It matches ErrParse with errors.Is.
type ParseError struct {
	Line   int
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("line %d: %s: %v", e.Line, e.Reason, e.Err)
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrParse.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}
