package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingColumn indicates a required header is absent.
	ErrMissingColumn = errors.New("missing required column")
	// ErrEmpty indicates the file has a header but no data rows.
	ErrEmpty = errors.New("dataset has no rows")
	// ErrUnsupportedFormat indicates a file extension the loader cannot read.
	ErrUnsupportedFormat = errors.New("unsupported dataset format")
	// ErrNonFinite indicates a NaN or infinite numeric cell.
	ErrNonFinite = errors.New("value is not finite")
)

// ParseError reports a cell that could not be converted.
type ParseError struct {
	Line   int // 1-based, header is line 1
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d column %s: parse %q: %v", e.Line, e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
