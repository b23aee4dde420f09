package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		input    string
		expected Type
	}{
		{"", EMPTY},
		{"data_", BLOCK},
		{"data_particles", BLOCK},
		{"xdata_optics", BLOCK},
		{"loop_", LOOP},
		{"myloop_", LOOP},
		{"_rlnImageName", COLUMN},
		{"_data_x", BLOCK},
		{"_loop_x", LOOP},
		{"1.5", WORD},
		{"mask.mrc", WORD},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			require.Equal(t, tt.expected, Classify(tt.input))
		})
	}
}
