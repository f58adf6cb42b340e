package sample

import (
	"fmt"
)

// ParseError reports a record whose level column is not a non-negative
// integer.
type ParseError struct {
	Line  int    // 1-based position in the input, 0 when parsed on its own
	Field string // always "level" today
	Value string // the raw column text
	Err   error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: invalid %s %q: %v", e.Line, e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Err)
}

// Unwrap allows errors.Is and errors.As to reach the conversion error
func (e *ParseError) Unwrap() error {
	return e.Err
}
