package star_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/KimNorgaard/go-star"
	"github.com/stretchr/testify/require"
)

const mixedSource = `data_general
_rlnImageSize 64
_rlnMaskName mask.mrc
data_particles
loop_
_rlnCoordinateX
_rlnImageName
1.5 a.mrcs
2 b.mrcs
`

func TestMarshal(t *testing.T) {
	doc := star.Parse([]byte(mixedSource))

	out, err := star.Marshal(doc)
	require.NoError(t, err)

	expected := "# This file was written by go-star\n\n" +
		"data_general\n\n" +
		"_rlnImageSize     64\n" +
		"_rlnMaskName     mask.mrc\n" +
		"\n\n" +
		"data_particles\n\n" +
		"loop_\n" +
		"_rlnCoordinateX\n" +
		"_rlnImageName\n" +
		"1.5     a.mrcs\n" +
		"2     b.mrcs\n" +
		"\n\n"
	require.Equal(t, expected, string(out))
}

func TestMarshalEmptyDocument(t *testing.T) {
	out, err := star.Marshal(star.NewDocument())
	require.NoError(t, err)
	require.Equal(t, "# This file was written by go-star\n\n", string(out))
}

func TestMarshalOptions(t *testing.T) {
	doc := star.Parse([]byte("data_x\n_a 1\ndata_t\nloop_\n_b\n_c\n1 2\n"))

	t.Run("Separator", func(t *testing.T) {
		out, err := star.Marshal(doc, star.Separator(1))
		require.NoError(t, err)
		require.Contains(t, string(out), "\n_a 1\n")
		require.Contains(t, string(out), "\n1 2\n")
	})

	t.Run("Invalid separator", func(t *testing.T) {
		_, err := star.Marshal(doc, star.Separator(0))
		require.Error(t, err)
		require.Contains(t, err.Error(), "separator width must be a positive integer")
	})

	t.Run("Provenance", func(t *testing.T) {
		out, err := star.Marshal(doc, star.Provenance("# written by a test"))
		require.NoError(t, err)
		require.True(t, bytes.HasPrefix(out, []byte("# written by a test\n\ndata_x\n")))
	})

	t.Run("Invalid provenance", func(t *testing.T) {
		_, err := star.Marshal(doc, star.Provenance("no hash"))
		require.Error(t, err)
		_, err = star.Marshal(doc, star.Provenance("# two\n# lines"))
		require.Error(t, err)
	})
}

func TestSelectBlocksIsUnimplemented(t *testing.T) {
	doc := star.Parse([]byte(mixedSource))

	var buf bytes.Buffer
	err := star.NewEncoder(&buf, star.SelectBlocks("data_general")).Encode(doc)
	require.ErrorIs(t, err, star.ErrUnimplemented)
	require.Zero(t, buf.Len(), "nothing may be written")

	path := filepath.Join(t.TempDir(), "out.star")
	err = star.WriteFile(path, doc, star.SelectBlocks("data_general"))
	require.ErrorIs(t, err, star.ErrUnimplemented)
	_, statErr := os.Stat(path)
	require.ErrorIs(t, statErr, os.ErrNotExist)
}

func TestWriteFile(t *testing.T) {
	doc := star.Parse([]byte(mixedSource))
	path := filepath.Join(t.TempDir(), "out.star")
	require.NoError(t, star.WriteFile(path, doc))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	expected, err := star.Marshal(doc)
	require.NoError(t, err)
	require.Equal(t, string(expected), string(data))
}

func TestWriteFileUnwritable(t *testing.T) {
	doc := star.Parse([]byte(mixedSource))
	err := star.WriteFile(filepath.Join(t.TempDir(), "missing", "out.star"), doc)
	require.Error(t, err)
	require.ErrorIs(t, err, os.ErrNotExist)
}

var errDiskFull = errors.New("disk full")

type limitedWriter struct{ n int }

func (w *limitedWriter) Write(p []byte) (int, error) {
	if len(p) > w.n {
		n := w.n
		w.n = 0
		return n, errDiskFull
	}
	w.n -= len(p)
	return len(p), nil
}

func TestEncodeWriteError(t *testing.T) {
	doc := star.Parse([]byte(mixedSource))
	err := star.NewEncoder(&limitedWriter{n: 50}).Encode(doc)
	require.ErrorIs(t, err, errDiskFull)
}
