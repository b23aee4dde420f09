package lexer_test

import (
	"testing"

	"github.com/KimNorgaard/go-star/internal/lexer"
	"github.com/KimNorgaard/go-star/internal/token"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"empty", "", nil},
		{"whitespace only", " \t  ", nil},
		{"comment only", "# a comment", nil},
		{"field", "_rlnMaskName   mask.mrc", []string{"_rlnMaskName", "mask.mrc"}},
		{"inline comment", "_foo 1.5 # trailing", []string{"_foo", "1.5"}},
		{"comment glued to token", "_foo 1.5#x", []string{"_foo", "1.5"}},
		{"tabs and runs", "\t1\t\t2   3 ", []string{"1", "2", "3"}},
		{"marker", "data_optics", []string{"data_optics"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := lexer.Tokenize(tt.input, 1)
			if tt.expected == nil {
				require.Empty(t, toks)
				return
			}
			require.Equal(t, tt.expected, literals(toks))
		})
	}
}

func TestTokenizePositions(t *testing.T) {
	toks := lexer.Tokenize("  ab\tcd", 7)
	require.Equal(t, []token.Token{
		{Literal: "ab", Line: 7, Column: 3},
		{Literal: "cd", Line: 7, Column: 6},
	}, toks)
}

func TestNextLine(t *testing.T) {
	input := "# header\r\ndata_x\n\nloop_\n_a #1\n1 2\n3 4"
	expected := []struct {
		number int
		typ    token.Type
		lits   []string
	}{
		{1, token.EMPTY, nil},
		{2, token.BLOCK, []string{"data_x"}},
		{3, token.EMPTY, nil},
		{4, token.LOOP, []string{"loop_"}},
		{5, token.COLUMN, []string{"_a"}},
		{6, token.WORD, []string{"1", "2"}},
		{7, token.WORD, []string{"3", "4"}},
	}

	l := lexer.New([]byte(input))
	for _, e := range expected {
		line, ok := l.NextLine()
		require.True(t, ok)
		require.Equal(t, e.number, line.Number)
		require.Equal(t, e.typ, line.Type)
		if e.lits == nil {
			require.Empty(t, line.Tokens)
		} else {
			require.Equal(t, e.lits, literals(line.Tokens))
		}
	}
	_, ok := l.NextLine()
	require.False(t, ok)
}

func TestNextLineTrailingNewline(t *testing.T) {
	l := lexer.New([]byte("a b\n"))
	line, ok := l.NextLine()
	require.True(t, ok)
	require.Equal(t, "a b", line.Text)
	_, ok = l.NextLine()
	require.False(t, ok)
}

func literals(toks []token.Token) []string {
	out := make([]string, len(toks))
	for i, t := range toks {
		out[i] = t.Literal
	}
	return out
}
