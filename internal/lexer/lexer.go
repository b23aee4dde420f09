package lexer

import (
	"bytes"
	"strings"
	"unicode"

	"github.com/KimNorgaard/go-star/internal/token"
)

// Line is one source line broken into tokens.
type Line struct {
	Number int    // 1-based line number
	Text   string // raw text without the line terminator
	Tokens []token.Token
	Type   token.Type
}

// Lexer walks an in-memory STAR source one line at a time.
type Lexer struct {
	input []byte
	pos   int
	line  int
}

// New creates and returns a new Lexer.
func New(input []byte) *Lexer {
	return &Lexer{input: input}
}

// NextLine returns the next line of input. The boolean is false once the
// input is exhausted.
func (l *Lexer) NextLine() (Line, bool) {
	if l.pos >= len(l.input) {
		return Line{}, false
	}

	rest := l.input[l.pos:]
	end := bytes.IndexByte(rest, '\n')
	var raw []byte
	if end < 0 {
		raw = rest
		l.pos = len(l.input)
	} else {
		raw = rest[:end]
		l.pos += end + 1
	}
	raw = bytes.TrimSuffix(raw, []byte("\r"))
	l.line++

	text := string(raw)
	toks := Tokenize(text, l.line)
	typ := token.EMPTY
	if len(toks) > 0 {
		typ = token.Classify(toks[0].Literal)
	}
	return Line{Number: l.line, Text: text, Tokens: toks, Type: typ}, true
}

// Tokenize strips everything from the first '#' and splits the remainder on
// runs of whitespace. Columns are 1-based rune offsets.
func Tokenize(text string, line int) []token.Token {
	if i := strings.IndexByte(text, '#'); i >= 0 {
		text = text[:i]
	}

	var toks []token.Token
	start, startCol := -1, 0
	col := 0
	for i, r := range text {
		col++
		if unicode.IsSpace(r) {
			if start >= 0 {
				toks = append(toks, token.Token{Literal: text[start:i], Line: line, Column: startCol})
				start = -1
			}
			continue
		}
		if start < 0 {
			start, startCol = i, col
		}
	}
	if start >= 0 {
		toks = append(toks, token.Token{Literal: text[start:], Line: line, Column: startCol})
	}
	return toks
}
