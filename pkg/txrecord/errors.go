package txrecord

import (
	"errors"
	"fmt"
)

// Sentinel errors for malformed records
var (
	ErrMissingBegin        = errors.New("expected begin marker")
	ErrUnterminatedSection = errors.New("reached EOF before end marker")
	ErrInvalidTransaction  = errors.New("invalid transaction")
)

// ParseError reports where in a record parsing failed
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Text == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: %v (line: %q)", e.Line, e.Err, e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
