package star

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/KimNorgaard/go-star/internal/lexer"
	"github.com/KimNorgaard/go-star/internal/token"
)

// parseMode is the position of the parser relative to loops.
type parseMode uint8

const (
	seekBlock  parseMode = iota // outside any loop
	loopHeader                  // collecting column names
	loopRows                    // collecting data rows
)

// parseState is everything the parser carries from one line to the next.
type parseState struct {
	mode    parseMode
	block   string
	inBlock bool
	columns int // columns declared by the active loop
}

// mutation is the effect of one line on the document being built.
type mutation interface {
	apply(b *builder, line lexer.Line)
}

type setField struct {
	block, name string
	value       Value
}

type startLoop struct{ block string }

type addColumn struct{ block, name string }

type addRow struct {
	block string
	row   []Value
}

type skipLine struct{ reason string }

// step is the parser's transition function. It never touches the document;
// the returned mutation, if any, describes what the line contributes.
func step(st parseState, line lexer.Line) (parseState, mutation) {
	toks := line.Tokens
	switch line.Type {
	case token.EMPTY:
		return st, nil

	case token.BLOCK:
		return parseState{mode: seekBlock, block: toks[0].Literal, inBlock: true}, nil

	case token.LOOP:
		if !st.inBlock {
			return st, skipLine{reason: "loop outside a data block"}
		}
		return parseState{mode: loopHeader, block: st.block, inBlock: true}, startLoop{block: st.block}
	}

	if st.mode == seekBlock {
		if !st.inBlock {
			return st, skipLine{reason: "field outside a data block"}
		}
		if len(toks) < 2 {
			return st, skipLine{reason: "field without a value"}
		}
		return st, setField{block: st.block, name: toks[0].Literal, value: ParseValue(toks[1].Literal)}
	}

	if line.Type == token.COLUMN {
		if st.mode == loopRows {
			return st, skipLine{reason: "column after data rows"}
		}
		st.columns++
		return st, addColumn{block: st.block, name: toks[0].Literal}
	}

	st.mode = loopRows
	if len(toks) != st.columns {
		return st, skipLine{reason: fmt.Sprintf("row has %d values, loop has %d columns", len(toks), st.columns)}
	}
	row := make([]Value, len(toks))
	for i, t := range toks {
		row[i] = ParseValue(t.Literal)
	}
	return st, addRow{block: st.block, row: row}
}

// builder accumulates blocks until the end of input.
type builder struct {
	ids     []string
	seen    map[string]bool
	scalars map[string]*ScalarBlock
	tables  map[string]*TableBlock
	skipped []SkippedLine
	onSkip  SkipHandler
}

func newBuilder(onSkip SkipHandler) *builder {
	return &builder{
		seen:    make(map[string]bool),
		scalars: make(map[string]*ScalarBlock),
		tables:  make(map[string]*TableBlock),
		onSkip:  onSkip,
	}
}

func (b *builder) touch(id string) {
	if !b.seen[id] {
		b.seen[id] = true
		b.ids = append(b.ids, id)
	}
}

func (m setField) apply(b *builder, _ lexer.Line) {
	b.touch(m.block)
	s, ok := b.scalars[m.block]
	if !ok {
		s = NewScalarBlock()
		b.scalars[m.block] = s
	}
	s.Set(m.name, m.value)
}

func (m startLoop) apply(b *builder, _ lexer.Line) {
	b.touch(m.block)
	b.tables[m.block] = &TableBlock{}
}

func (m addColumn) apply(b *builder, _ lexer.Line) {
	t := b.tables[m.block]
	t.columns = append(t.columns, m.name)
}

func (m addRow) apply(b *builder, _ lexer.Line) {
	t := b.tables[m.block]
	t.rows = append(t.rows, m.row)
}

func (m skipLine) apply(b *builder, line lexer.Line) {
	first := line.Tokens[0]
	s := SkippedLine{Line: first.Line, Column: first.Column, Text: line.Text, Reason: m.reason}
	b.skipped = append(b.skipped, s)
	if b.onSkip != nil {
		b.onSkip(s)
	}
}

// document materializes the accumulated blocks. A table replaces scalar
// content collected under the same id.
func (b *builder) document() *Document {
	doc := NewDocument()
	for _, id := range b.ids {
		if t, ok := b.tables[id]; ok {
			doc.Set(id, t)
			continue
		}
		doc.Set(id, b.scalars[id])
	}
	return doc
}

// SkipHandler is called for every line the parser drops.
type SkipHandler func(SkippedLine)

// LogSkipped is a SkipHandler that reports dropped lines through the
// standard log package.
var LogSkipped SkipHandler = func(s SkippedLine) {
	log.Println(s.String())
}

// ParseOption configures a Parser.
type ParseOption func(*Parser)

// OnSkip installs a handler called for each dropped line, in input order.
func OnSkip(fn SkipHandler) ParseOption {
	return func(p *Parser) {
		p.onSkip = fn
	}
}

// Parser turns STAR source text into a Document.
type Parser struct {
	l       *lexer.Lexer
	onSkip  SkipHandler
	skipped []SkippedLine
}

// NewParser creates a Parser over the complete source text.
func NewParser(input []byte, opts ...ParseOption) *Parser {
	p := &Parser{l: lexer.New(input)}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse consumes the input and returns the document. Malformed lines never
// fail the parse; they are dropped and reported by Skipped.
func (p *Parser) Parse() *Document {
	b := newBuilder(p.onSkip)
	var st parseState
	for {
		line, ok := p.l.NextLine()
		if !ok {
			break
		}
		var m mutation
		st, m = step(st, line)
		if m != nil {
			m.apply(b, line)
		}
	}
	p.skipped = append(p.skipped, b.skipped...)
	return b.document()
}

// Skipped returns the lines dropped by Parse.
func (p *Parser) Skipped() []SkippedLine {
	return p.skipped
}

// Parse parses a complete STAR source.
func Parse(data []byte, opts ...ParseOption) *Document {
	return NewParser(data, opts...).Parse()
}

// Read reads r to the end and parses it. On a read error no document is
// returned.
func Read(r io.Reader, opts ...ParseOption) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("star: %w", err)
	}
	return Parse(data, opts...), nil
}

// ReadFile reads and parses the named file.
func ReadFile(name string, opts ...ParseOption) (*Document, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("star: %w", err)
	}
	return Parse(data, opts...), nil
}
