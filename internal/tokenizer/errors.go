package tokenizer

import (
	"errors"
	"fmt"
)

// ErrUnknownSyntax signals a broken internal invariant while building the tree.
var ErrUnknownSyntax = errors.New("unknown syntax error")

// SyntaxError reports malformed structure: a missing name, a duplicate field,
// mismatched array elements or a container opened out of place.
type SyntaxError struct {
	Line int
	Col  int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error detected near line %d column %d", e.Line+1, e.Col)
}

// Position returns the 0-based line and column of the offending token.
func (e *SyntaxError) Position() (int, int) { return e.Line, e.Col }

// NullNotSupportedError reports a null value. Null carries no type to infer.
type NullNotSupportedError struct {
	Line int
	Col  int
}

func (e *NullNotSupportedError) Error() string {
	return fmt.Sprintf("null values are not supported. Near line %d column %d", e.Line+1, e.Col)
}

// Position returns the 0-based line and column of the null literal.
func (e *NullNotSupportedError) Position() (int, int) { return e.Line, e.Col }

// EmptyArrayNotSupportedError reports an array without elements.
type EmptyArrayNotSupportedError struct {
	Line int
	Col  int
}

func (e *EmptyArrayNotSupportedError) Error() string {
	return fmt.Sprintf("empty arrays are not supported. Near line %d column %d", e.Line+1, e.Col)
}

// Position returns the 0-based line and column of the closing bracket.
func (e *EmptyArrayNotSupportedError) Position() (int, int) { return e.Line, e.Col }
