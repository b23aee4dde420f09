package star

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// BlockKind identifies which variant a Block is.
type BlockKind uint8

const (
	ScalarKind BlockKind = iota
	TableKind
)

// String returns the kind name.
func (k BlockKind) String() string {
	switch k {
	case ScalarKind:
		return "scalar"
	case TableKind:
		return "table"
	default:
		return "unknown"
	}
}

// Block is a named section of a Document. It is implemented only by
// *ScalarBlock and *TableBlock.
type Block interface {
	Kind() BlockKind
	// Clone returns a deep copy of the block.
	Clone() Block

	block()
}

// ScalarBlock is an ordered set of field/value pairs.
type ScalarBlock struct {
	names  []string
	values map[string]Value
}

// NewScalarBlock returns an empty ScalarBlock.
func NewScalarBlock() *ScalarBlock {
	return &ScalarBlock{values: make(map[string]Value)}
}

func (*ScalarBlock) block() {}

// Kind returns ScalarKind.
func (*ScalarBlock) Kind() BlockKind { return ScalarKind }

// Clone returns a deep copy of the block.
func (b *ScalarBlock) Clone() Block {
	return &ScalarBlock{names: slices.Clone(b.names), values: maps.Clone(b.values)}
}

// Set stores v under name. A new name is appended to the field order; an
// existing one keeps its position.
func (b *ScalarBlock) Set(name string, v Value) {
	if b.values == nil {
		b.values = make(map[string]Value)
	}
	if _, ok := b.values[name]; !ok {
		b.names = append(b.names, name)
	}
	b.values[name] = v
}

// Get returns the value stored under name.
func (b *ScalarBlock) Get(name string) (Value, bool) {
	v, ok := b.values[name]
	return v, ok
}

// Len returns the number of fields.
func (b *ScalarBlock) Len() int { return len(b.names) }

// Names returns the field names in insertion order.
func (b *ScalarBlock) Names() []string { return slices.Clone(b.names) }

// All iterates over the fields in insertion order.
func (b *ScalarBlock) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, name := range b.names {
			if !yield(name, b.values[name]) {
				return
			}
		}
	}
}

// TableBlock is a loop: ordered column names and rows of values. Every row
// has exactly one value per column. Columns are frozen once a row exists.
type TableBlock struct {
	columns []string
	rows    [][]Value
}

// NewTableBlock returns a table with the given columns and rows. It fails if
// any row's length differs from the column count.
func NewTableBlock(columns []string, rows [][]Value) (*TableBlock, error) {
	t := &TableBlock{columns: slices.Clone(columns)}
	if err := t.SetRows(rows); err != nil {
		return nil, err
	}
	return t, nil
}

func (*TableBlock) block() {}

// Kind returns TableKind.
func (*TableBlock) Kind() BlockKind { return TableKind }

// Clone returns a deep copy of the block.
func (t *TableBlock) Clone() Block {
	return &TableBlock{columns: slices.Clone(t.columns), rows: cloneRows(t.rows)}
}

// Columns returns the column names in order.
func (t *TableBlock) Columns() []string { return slices.Clone(t.columns) }

// ColumnIndex returns the position of the named column, or -1.
func (t *TableBlock) ColumnIndex(name string) int {
	return slices.Index(t.columns, name)
}

// AppendColumn adds a column. It fails once the table holds any row.
func (t *TableBlock) AppendColumn(name string) error {
	if len(t.rows) > 0 {
		return fmt.Errorf("star: cannot add column %q to a table with %d rows", name, len(t.rows))
	}
	t.columns = append(t.columns, name)
	return nil
}

// AppendRow adds a row. Its length must match the column count.
func (t *TableBlock) AppendRow(row []Value) error {
	if len(row) != len(t.columns) {
		return fmt.Errorf("star: row has %d values, table has %d columns", len(row), len(t.columns))
	}
	t.rows = append(t.rows, slices.Clone(row))
	return nil
}

// SetRows replaces every row of the table. The table is left unchanged if
// any row has the wrong length.
func (t *TableBlock) SetRows(rows [][]Value) error {
	for i, row := range rows {
		if len(row) != len(t.columns) {
			return fmt.Errorf("star: row %d has %d values, table has %d columns", i, len(row), len(t.columns))
		}
	}
	t.rows = cloneRows(rows)
	return nil
}

// NumRows returns the number of rows.
func (t *TableBlock) NumRows() int { return len(t.rows) }

// Row returns a copy of the i-th row.
func (t *TableBlock) Row(i int) []Value { return slices.Clone(t.rows[i]) }

// Rows returns a copy of all rows.
func (t *TableBlock) Rows() [][]Value { return cloneRows(t.rows) }

// Column returns a copy of the values of the named column.
func (t *TableBlock) Column(name string) ([]Value, bool) {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil, false
	}
	out := make([]Value, len(t.rows))
	for i, row := range t.rows {
		out[i] = row[idx]
	}
	return out, true
}

func cloneRows(rows [][]Value) [][]Value {
	if rows == nil {
		return nil
	}
	out := make([][]Value, len(rows))
	for i, row := range rows {
		out[i] = slices.Clone(row)
	}
	return out
}

// Document is an ordered collection of uniquely named blocks. Iteration
// follows the order in which blocks were first added.
type Document struct {
	ids    []string
	blocks map[string]Block
}

// NewDocument returns an empty Document.
func NewDocument() *Document {
	return &Document{blocks: make(map[string]Block)}
}

// Set stores b under id. A new id is appended; an existing id keeps its
// position and its previous block is replaced. Set panics if b is nil.
func (d *Document) Set(id string, b Block) {
	if isNilBlock(b) {
		panic(fmt.Sprintf("star: nil block for %q", id))
	}
	if d.blocks == nil {
		d.blocks = make(map[string]Block)
	}
	if _, ok := d.blocks[id]; !ok {
		d.ids = append(d.ids, id)
	}
	d.blocks[id] = b
}

func isNilBlock(b Block) bool {
	switch b := b.(type) {
	case *ScalarBlock:
		return b == nil
	case *TableBlock:
		return b == nil
	}
	return b == nil
}

// Block returns the block stored under id.
func (d *Document) Block(id string) (Block, bool) {
	b, ok := d.blocks[id]
	return b, ok
}

// Scalar returns the scalar block stored under id.
func (d *Document) Scalar(id string) (*ScalarBlock, error) {
	b, ok := d.blocks[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrBlockNotFound, id)
	}
	s, ok := b.(*ScalarBlock)
	if !ok {
		return nil, &TypeMismatchError{Block: id, Want: ScalarKind, Got: b.Kind()}
	}
	return s, nil
}

// Table returns the table block stored under id.
func (d *Document) Table(id string) (*TableBlock, error) {
	b, ok := d.blocks[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrBlockNotFound, id)
	}
	t, ok := b.(*TableBlock)
	if !ok {
		return nil, &TypeMismatchError{Block: id, Want: TableKind, Got: b.Kind()}
	}
	return t, nil
}

// Len returns the number of blocks.
func (d *Document) Len() int { return len(d.ids) }

// IDs returns the block ids in document order.
func (d *Document) IDs() []string { return slices.Clone(d.ids) }

// All iterates over the blocks in document order.
func (d *Document) All() iter.Seq2[string, Block] {
	return func(yield func(string, Block) bool) {
		for _, id := range d.ids {
			if !yield(id, d.blocks[id]) {
				return
			}
		}
	}
}

// Clone returns a deep copy of the document sharing no state with d.
func (d *Document) Clone() *Document {
	c := &Document{
		ids:    slices.Clone(d.ids),
		blocks: make(map[string]Block, len(d.blocks)),
	}
	for id, b := range d.blocks {
		c.blocks[id] = b.Clone()
	}
	return c
}
