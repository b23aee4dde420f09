package star

import (
	"io"
	"strings"
)

const (
	defaultSeparator  = 5
	defaultProvenance = "# This file was written by go-star"
	loopKeyword       = "loop_"
)

// formatter writes a Document in STAR syntax.
type formatter struct {
	w          io.Writer
	sep        string
	provenance string
}

func newFormatter(w io.Writer, opts *options) *formatter {
	width := defaultSeparator
	if opts.separator != nil {
		width = *opts.separator
	}
	provenance := defaultProvenance
	if opts.provenance != nil {
		provenance = *opts.provenance
	}
	return &formatter{w: w, sep: strings.Repeat(" ", width), provenance: provenance}
}

func (f *formatter) write(s string) error {
	_, err := io.WriteString(f.w, s)
	return err
}

func (f *formatter) format(doc *Document) error {
	if err := f.write(f.provenance + "\n\n"); err != nil {
		return err
	}
	for id, b := range doc.All() {
		if err := f.write(id + "\n\n"); err != nil {
			return err
		}
		if err := f.writeBlock(b); err != nil {
			return err
		}
		if err := f.write("\n\n"); err != nil {
			return err
		}
	}
	return nil
}

func (f *formatter) writeBlock(b Block) error {
	switch b := b.(type) {
	case *ScalarBlock:
		for name, v := range b.All() {
			if err := f.write(name + f.sep + v.String() + "\n"); err != nil {
				return err
			}
		}
		return nil
	case *TableBlock:
		if err := f.write(loopKeyword + "\n"); err != nil {
			return err
		}
		for _, col := range b.columns {
			if err := f.write(col + "\n"); err != nil {
				return err
			}
		}
		var sb strings.Builder
		for _, row := range b.rows {
			sb.Reset()
			for i, v := range row {
				if i > 0 {
					sb.WriteString(f.sep)
				}
				sb.WriteString(v.String())
			}
			sb.WriteByte('\n')
			if err := f.write(sb.String()); err != nil {
				return err
			}
		}
		return nil
	default:
		return nil
	}
}
