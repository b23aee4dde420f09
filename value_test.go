package star_test

import (
	"math"
	"testing"

	"github.com/KimNorgaard/go-star"
	"github.com/stretchr/testify/require"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		number   bool
		expected float64
	}{
		{"3.14", true, 3.14},
		{"1", true, 1},
		{"-2.5e-3", true, -2.5e-3},
		{"+7", true, 7},
		{".5", true, 0.5},
		{"300.000000", true, 300},
		{"abc", false, 0},
		{"mask.mrc", false, 0},
		{"000001@Extract/job007/mic1.mrcs", false, 0},
		{"0x10", false, 0},
		{"1_000", false, 0},
		{"1.5.2", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v := star.ParseValue(tt.input)
			if !tt.number {
				require.Equal(t, star.TextKind, v.Kind())
				s, ok := v.Str()
				require.True(t, ok)
				require.Equal(t, tt.input, s)
				return
			}
			require.Equal(t, star.NumberKind, v.Kind())
			f, ok := v.Float()
			require.True(t, ok)
			require.Equal(t, tt.expected, f)
		})
	}
}

func TestParseValueSpecialNumbers(t *testing.T) {
	f, ok := star.ParseValue("1e400").Float()
	require.True(t, ok)
	require.True(t, math.IsInf(f, 1))

	f, ok = star.ParseValue("-inf").Float()
	require.True(t, ok)
	require.True(t, math.IsInf(f, -1))

	f, ok = star.ParseValue("nan").Float()
	require.True(t, ok)
	require.True(t, math.IsNaN(f))
}

func TestValueString(t *testing.T) {
	tests := []struct {
		value    star.Value
		expected string
	}{
		{star.Number(1.5), "1.5"},
		{star.Number(300), "300"},
		{star.Number(-0.25), "-0.25"},
		{star.Number(1e21), "1e+21"},
		{star.Number(1234567890), "1234567890"},
		{star.Number(1000000), "1000000"},
		{star.Number(-2.5e6), "-2500000"},
		{star.Number(1e-5), "0.00001"},
		{star.Number(math.Inf(1)), "inf"},
		{star.Number(math.NaN()), "nan"},
		{star.Text("mask.mrc"), "mask.mrc"},
		{star.Text("1.5"), "1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.value.String())
		})
	}
}

func TestValueEqualAndKey(t *testing.T) {
	require.True(t, star.Number(1).Equal(star.ParseValue("1.000")))
	require.False(t, star.Number(1).Equal(star.Text("1")))
	require.True(t, star.Number(math.NaN()).Equal(star.Number(math.NaN())))
	require.True(t, star.Number(0).Equal(star.Number(math.Copysign(0, -1))))

	require.Equal(t, star.Number(2).Key(), star.ParseValue("2.0").Key())
	require.NotEqual(t, star.Number(2).Key(), star.Text("2").Key())
	require.Equal(t, star.Number(0).Key(), star.Number(math.Copysign(0, -1)).Key())
}

func TestValueZero(t *testing.T) {
	var v star.Value
	require.Equal(t, star.TextKind, v.Kind())
	require.False(t, v.IsNumber())
	require.Equal(t, "", v.String())
	require.Equal(t, "text", v.Kind().String())
	require.Equal(t, "number", star.Number(1).Kind().String())
}
