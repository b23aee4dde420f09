package star

import (
	"errors"
	"fmt"
)

var (
	// ErrBlockNotFound is returned when a Document has no block with the
	// requested id.
	ErrBlockNotFound = errors.New("star: block not found")

	// ErrTypeMismatch matches every *TypeMismatchError via errors.Is.
	ErrTypeMismatch = errors.New("star: block type mismatch")

	// ErrUnimplemented is returned when encoding is asked to write only a
	// subset of blocks. Nothing is written in that case.
	ErrUnimplemented = errors.New("star: selective block output is not implemented")
)

// A TypeMismatchError is returned when an operation needs one kind of block
// and finds the other.
type TypeMismatchError struct {
	Block string
	Want  BlockKind
	Got   BlockKind
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("star: block %q is a %s block, want %s", e.Block, e.Got, e.Want)
}

// Is reports whether target is ErrTypeMismatch.
func (e *TypeMismatchError) Is(target error) bool { return target == ErrTypeMismatch }

// SkippedLine describes an input line the parser dropped.
type SkippedLine struct {
	Line   int
	Column int // column of the first token
	Text   string
	Reason string
}

func (s SkippedLine) String() string {
	return fmt.Sprintf("star: line %d:%d skipped (%s): %q", s.Line, s.Column, s.Reason, s.Text)
}
