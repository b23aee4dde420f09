package star

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ValueKind identifies which variant a Value holds.
type ValueKind uint8

const (
	TextKind ValueKind = iota
	NumberKind
)

// String returns the kind name.
func (k ValueKind) String() string {
	switch k {
	case TextKind:
		return "text"
	case NumberKind:
		return "number"
	default:
		return "unknown"
	}
}

// Value is a single STAR field value or table cell: either a Number or a
// Text. The zero Value is the empty Text.
type Value struct {
	kind ValueKind
	num  float64
	text string
}

// Number returns a numeric Value.
func Number(f float64) Value {
	return Value{kind: NumberKind, num: f}
}

// Text returns a textual Value.
func Text(s string) Value {
	return Value{kind: TextKind, text: s}
}

// ParseValue coerces a token: Number if it is a floating-point literal,
// Text otherwise.
func ParseValue(tok string) Value {
	if f, ok := parseNumber(tok); ok {
		return Number(f)
	}
	return Text(tok)
}

func parseNumber(s string) (float64, bool) {
	// Hex floats and digit separators are not decimal literals.
	if s == "" || strings.ContainsAny(s, "_xX") {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// Out-of-range literals still denote a number (±Inf).
		if errors.Is(err, strconv.ErrRange) {
			return f, true
		}
		return 0, false
	}
	return f, true
}

// Kind reports which variant v holds.
func (v Value) Kind() ValueKind { return v.kind }

// IsNumber reports whether v is a Number.
func (v Value) IsNumber() bool { return v.kind == NumberKind }

// Float returns the numeric payload and whether v is a Number.
func (v Value) Float() (float64, bool) {
	return v.num, v.kind == NumberKind
}

// Str returns the textual payload and whether v is a Text.
func (v Value) Str() (string, bool) {
	return v.text, v.kind == TextKind
}

// String renders v the way the writer emits it: the shortest positional
// decimal that round-trips for Numbers (exponent form only from 1e21 up),
// the verbatim text for Texts.
func (v Value) String() string {
	if v.kind == NumberKind {
		return formatNumber(v.num)
	}
	return v.text
}

// Equal reports whether v and o hold the same variant and payload. NaN
// Numbers are equal to each other.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	if v.kind == NumberKind {
		return v.num == o.num || math.IsNaN(v.num) && math.IsNaN(o.num)
	}
	return v.text == o.text
}

// Key returns a comparable identity for v, suitable as a map key. Two
// Values have the same Key exactly when they are Equal.
func (v Value) Key() string {
	if v.kind == NumberKind {
		if v.num == 0 {
			return "n:0" // -0 and 0
		}
		return "n:" + formatNumber(v.num)
	}
	return "t:" + v.text
}

func formatNumber(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	}
	if math.Abs(f) < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
