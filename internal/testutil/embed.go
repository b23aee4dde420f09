package testutil

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
)

// TestdataFS holds the embedded test data files.
//
//go:embed testdata
var TestdataFS embed.FS

// ReadTestData reads and returns the content of an embedded test file.
func ReadTestData(name string) ([]byte, error) {
	path := fmt.Sprintf("testdata/%s", name)
	data, err := fs.ReadFile(TestdataFS, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read test data file '%s': %w", name, err)
	}
	return data, nil
}

// Table returns STAR source for a single loop block named id with the
// given columns and rows generated by cell(row, column).
func Table(id string, columns []string, rows int, cell func(r, c int) string) []byte {
	var b strings.Builder
	b.WriteString(id + "\n\nloop_\n")
	for _, col := range columns {
		b.WriteString(col + "\n")
	}
	for r := 0; r < rows; r++ {
		for c := range columns {
			if c > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(cell(r, c))
		}
		b.WriteByte('\n')
	}
	return []byte(b.String())
}
