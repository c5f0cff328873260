// Package parsererror defines the error taxonomy shared by the conversion pipeline.
package parsererror

import "fmt"

// ParseError represents a cell value that does not match the pattern
// expected by its column parser. The raw value is kept so the source export
// can be corrected.
type ParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s=%q: %v", e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// DecodeError represents CSV text that cannot be tokenized consistently,
// such as an unterminated quoted field or a row whose column count differs
// from the header.
type DecodeError struct {
	Line int
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("csv decode failed at line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("csv decode failed: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ValidationError represents a structural problem with the input as a whole:
// an empty CSV, a zero balance, or records without account information.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}
