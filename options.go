package star

import (
	"fmt"
	"strings"
)

// Option configures how a Document is written.
type Option func(*options) error

type options struct {
	separator  *int
	provenance *string
	blocks     []string
}

// Separator sets the number of spaces placed between a field name and its
// value and between the values of a row.
//
// The count n must be a positive integer.
func Separator(n int) Option {
	return func(o *options) error {
		if n <= 0 {
			return fmt.Errorf("star: separator width must be a positive integer")
		}
		o.separator = &n
		return nil
	}
}

// Provenance replaces the comment line written at the top of every file.
// The line must start with '#' and must not contain a line break.
func Provenance(line string) Option {
	return func(o *options) error {
		if !strings.HasPrefix(line, "#") {
			return fmt.Errorf("star: provenance line must start with '#'")
		}
		if strings.ContainsAny(line, "\r\n") {
			return fmt.Errorf("star: provenance must be a single line")
		}
		o.provenance = &line
		return nil
	}
}

// SelectBlocks asks for only the named blocks to be written. Selective
// output is not available: encoding with this option returns
// ErrUnimplemented without writing anything.
func SelectBlocks(ids ...string) Option {
	return func(o *options) error {
		o.blocks = append(o.blocks, ids...)
		return nil
	}
}
