package star

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
)

// Encoder writes Documents to an output stream.
type Encoder struct {
	w    io.Writer
	opts []Option
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	return &Encoder{w: w, opts: opts}
}

// Encode writes doc to the stream. Option errors and ErrUnimplemented are
// reported before anything is written.
func (e *Encoder) Encode(doc *Document) error {
	o, err := resolveOptions(e.opts)
	if err != nil {
		return err
	}

	f := newFormatter(e.w, &o)
	if err := f.format(doc); err != nil {
		return fmt.Errorf("star: %w", err)
	}
	return nil
}

// Marshal returns the STAR encoding of doc.
func Marshal(doc *Document, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := NewEncoder(&buf, opts...).Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile writes doc to the named file, creating or truncating it. A
// failed write can leave a partially written file behind.
func WriteFile(name string, doc *Document, opts ...Option) (err error) {
	// A rejected call must not create the file.
	if _, err := resolveOptions(opts); err != nil {
		return err
	}

	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("star: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("star: %w", cerr)
		}
	}()

	w := bufio.NewWriter(f)
	if err := NewEncoder(w, opts...).Encode(doc); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("star: %w", err)
	}
	return nil
}

func resolveOptions(opts []Option) (options, error) {
	o := options{}
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return options{}, err
		}
	}
	if len(o.blocks) > 0 {
		return options{}, ErrUnimplemented
	}
	return o, nil
}
