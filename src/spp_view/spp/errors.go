package spp

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrFileNotFound       = errors.New("file not found")
	ErrMalformedHeader    = errors.New("malformed header")
	ErrMalformedVector    = errors.New("malformed vector")
	ErrTruncatedInput     = errors.New("truncated input")
	ErrElementOutOfRange  = errors.New("element out of range")
	ErrNonIntegerToken    = errors.New("non-integer token")
)

// ParseError reports a format violation found while parsing an instance.
// Line is the 1-based physical line number in the source. For truncated
// input it is the last line read, 0 for an empty source.
type ParseError struct {
	Source string
	Line   int
	Kind   error
	Msg    string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %v: %s", e.Source, e.Line, e.Kind, e.Msg)
	}
	return fmt.Sprintf("%s: %v: %s", e.Source, e.Kind, e.Msg)
}

func (e *ParseError) Unwrap() error {
	return e.Kind
}
