package token

import "strings"

// Type is the classification of a line, decided by its first token.
type Type string

// Token represents a whitespace-delimited word of a STAR line.
type Token struct {
	Literal string
	Line    int
	Column  int
}

const (
	// EMPTY marks a line with no tokens (blank or comment only).
	EMPTY Type = "EMPTY"

	BLOCK  Type = "BLOCK"  // data_particles
	LOOP   Type = "LOOP"   // loop_
	COLUMN Type = "COLUMN" // _rlnImageName
	WORD   Type = "WORD"   // anything else: a field name or a row value
)

const (
	BlockMarker = "data_"
	LoopMarker  = "loop_"
	ColumnSigil = "_"
)

// Classify returns the line type for the given leading token literal.
// Block markers take precedence over loop markers, which take precedence
// over column names.
func Classify(lit string) Type {
	switch {
	case lit == "":
		return EMPTY
	case strings.Contains(lit, BlockMarker):
		return BLOCK
	case strings.Contains(lit, LoopMarker):
		return LOOP
	case strings.HasPrefix(lit, ColumnSigil):
		return COLUMN
	default:
		return WORD
	}
}
