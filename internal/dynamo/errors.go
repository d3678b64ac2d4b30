package dynamo

import (
	"errors"
	"fmt"
)

var (
	// ErrUsage is returned when the command line does not name exactly one
	// input file.
	ErrUsage = errors.New("only one argument allowed")

	// ErrMissingColumn indicates a required column is absent from the header.
	ErrMissingColumn = errors.New("dynamo: missing column")

	// ErrNoHeader indicates the input had no header row at all.
	ErrNoHeader = errors.New("dynamo: no header row")

	ErrFrameRange = errors.New("dynamo: frame index out of range")
)

// ParseError reports a cell that could not be read as a number.
type ParseError struct {
	Line    int
	Column  string
	Value   string
	Wrapped error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d, column %q: cannot parse %q: %v", e.Line, e.Column, e.Value, e.Wrapped)
}

func (e *ParseError) Unwrap() error {
	return e.Wrapped
}
