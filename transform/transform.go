// Package transform implements row-level operations on the tables of a
// STAR document: random sampling, fixed-size chunking and half splitting.
//
// Every operation addresses a table block by id. Addressing a scalar block
// fails with a *star.TypeMismatchError and leaves the document untouched.
package transform

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"slices"
	"strings"

	"github.com/KimNorgaard/go-star"
)

var (
	ErrInvalidFraction    = errors.New("transform: removal fraction must be in [0, 1)")
	ErrInvalidChunkLength = errors.New("transform: chunk length must be positive")
	ErrUnknownColumn      = errors.New("transform: unknown column")
)

// Sample removes a random removalFraction of the rows of the table id, in
// place. floor(rows*(1-removalFraction)) distinct rows are kept; they stay
// in their original relative order.
func Sample(doc *star.Document, id string, removalFraction float64, opts ...Option) error {
	if math.IsNaN(removalFraction) || removalFraction < 0 || removalFraction >= 1 {
		return fmt.Errorf("%w: got %v", ErrInvalidFraction, removalFraction)
	}
	cfg, err := newConfig(opts)
	if err != nil {
		return err
	}
	t, err := doc.Table(id)
	if err != nil {
		return err
	}

	rows := t.Rows()
	keep := int(math.Floor(float64(len(rows)) * (1 - removalFraction)))
	picked := cfg.rng.Perm(len(rows))[:keep]
	slices.Sort(picked)

	kept := make([][]star.Value, keep)
	for i, idx := range picked {
		kept[i] = rows[idx]
	}
	return t.SetRows(kept)
}

// Chunk cuts the rows of table id into consecutive runs of length rows and
// returns one copy of doc per run, with the table holding only that run.
// A trailing run shorter than length is dropped.
func Chunk(doc *star.Document, id string, length int) ([]*star.Document, error) {
	if length <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidChunkLength, length)
	}
	t, err := doc.Table(id)
	if err != nil {
		return nil, err
	}

	rows := t.Rows()
	var out []*star.Document
	for start := 0; start+length <= len(rows); start += length {
		c := doc.Clone()
		ct, err := c.Table(id)
		if err != nil {
			return nil, err
		}
		if err := ct.SetRows(rows[start : start+length]); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// ExportChunks writes the documents produced by Chunk next to src, named
// <stem>_<n>.star with n counting from 0. It returns the written paths.
func ExportChunks(doc *star.Document, id string, length int, src string, opts ...Option) ([]string, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	chunks, err := Chunk(doc, id, length)
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(chunks))
	for i, c := range chunks {
		p := derivedPath(src, fmt.Sprintf("_%d", i))
		if err := star.WriteFile(p, c, cfg.writeOpts...); err != nil {
			return paths, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}

// Halves is the result of HalfSplit.
type Halves struct {
	A     *star.Document // rows tagged 1
	B     *star.Document // rows tagged 2
	Total *star.Document // rows of A followed by rows of B
}

// HalfSplit divides the rows of table id by the values of field. The
// distinct values, in order of first appearance, are dealt alternately to
// half A (even positions) and half B (odd positions); with randomize set
// the list is shuffled first. Each row follows its value and is tagged in
// the subset column with 1 (A) or 2 (B), which is added if missing.
func HalfSplit(doc *star.Document, id, field string, randomize bool, opts ...Option) (*Halves, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	return halfSplit(cfg, doc, id, field, randomize)
}

func halfSplit(cfg *config, doc *star.Document, id, field string, randomize bool) (*Halves, error) {
	t, err := doc.Table(id)
	if err != nil {
		return nil, err
	}
	values, ok := t.Column(field)
	if !ok {
		return nil, fmt.Errorf("%w: %q in block %q", ErrUnknownColumn, field, id)
	}

	distinct := distinctKeys(values)
	if randomize {
		cfg.rng.Shuffle(len(distinct), func(i, j int) {
			distinct[i], distinct[j] = distinct[j], distinct[i]
		})
	}
	inA := make(map[string]bool, len(distinct))
	for i, k := range distinct {
		inA[k] = i%2 == 0
	}

	cols := t.Columns()
	marker := slices.Index(cols, cfg.subsetColumn)
	if marker < 0 {
		cols = append(cols, cfg.subsetColumn)
	}
	tag := func(row []star.Value, subset float64) []star.Value {
		if marker < 0 {
			return append(row, star.Number(subset))
		}
		row[marker] = star.Number(subset)
		return row
	}

	var rowsA, rowsB [][]star.Value
	for i, row := range t.Rows() {
		if inA[values[i].Key()] {
			rowsA = append(rowsA, tag(row, 1))
		} else {
			rowsB = append(rowsB, tag(row, 2))
		}
	}

	build := func(rows [][]star.Value) (*star.Document, error) {
		nt, err := star.NewTableBlock(cols, rows)
		if err != nil {
			return nil, err
		}
		c := doc.Clone()
		c.Set(id, nt)
		return c, nil
	}

	var h Halves
	if h.A, err = build(rowsA); err != nil {
		return nil, err
	}
	if h.B, err = build(rowsB); err != nil {
		return nil, err
	}
	if h.Total, err = build(slices.Concat(rowsA, rowsB)); err != nil {
		return nil, err
	}
	return &h, nil
}

// ExportHalves runs HalfSplit and writes its documents next to src as
// <stem>_half1.star, <stem>_half2.star and <stem>_total.star. It returns
// the written paths in that order.
func ExportHalves(doc *star.Document, id, field string, randomize bool, src string, opts ...Option) ([]string, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	h, err := halfSplit(cfg, doc, id, field, randomize)
	if err != nil {
		return nil, err
	}

	outputs := []struct {
		suffix string
		doc    *star.Document
	}{
		{"_half1", h.A},
		{"_half2", h.B},
		{"_total", h.Total},
	}
	paths := make([]string, 0, len(outputs))
	for _, o := range outputs {
		p := derivedPath(src, o.suffix)
		if err := star.WriteFile(p, o.doc, cfg.writeOpts...); err != nil {
			return paths, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}

// distinctKeys returns the keys of values in order of first appearance.
func distinctKeys(values []star.Value) []string {
	seen := make(map[string]bool)
	var keys []string
	for _, v := range values {
		k := v.Key()
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	return keys
}

func derivedPath(src, suffix string) string {
	dir, base := filepath.Split(src)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, stem+suffix+".star")
}
