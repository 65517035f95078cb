package board

import (
	"errors"
	"fmt"
)

type AssertionError struct {
	message string
}

// [AssertionError] implements [error]
func (e AssertionError) Error() string {
	return "assertion failed: " + e.message
}

type ErrorKind int

const (
	MissingBorder ErrorKind = iota
	InconsistentLength
	MalformedLine
)

var (
	ErrMissingBorder      = errors.New("missing top or bottom border")
	ErrInconsistentLength = errors.New("inconsistent line length")
	ErrMalformedLine      = errors.New("malformed line")
)

// ValidationError reports the first grammar violation found in a raw board.
// Line is the zero-based index of the offending line and is only meaningful
// for [MalformedLine].
type ValidationError struct {
	Kind ErrorKind
	Line int
}

func (e *ValidationError) Error() string {
	if e.Kind == MalformedLine {
		return fmt.Sprintf("%s %d", ErrMalformedLine, e.Line)
	}
	return e.Unwrap().Error()
}

func (e *ValidationError) Unwrap() error {
	switch e.Kind {
	case MissingBorder:
		return ErrMissingBorder
	case InconsistentLength:
		return ErrInconsistentLength
	default:
		return ErrMalformedLine
	}
}

func malformed(i int) error {
	return &ValidationError{Kind: MalformedLine, Line: i}
}
