package field

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValueToColor(t *testing.T) {
	testCases := []struct {
		name     string
		value    float64
		maxVal   int
		expected Rgb
	}{
		{"zero is blue", 0, 32, Rgb{0, 0, 32}},
		{"first cell sample", 0.1875, 32, Rgb{18, 0, 14}},
		{"below one third", 0.3333, 32, Rgb{32, 0, 0}},
		{"one third is red", 1.0 / 3, 32, Rgb{32, 0, 0}},
		{"half", 0.5, 32, Rgb{16, 16, 0}},
		{"below two thirds", 2.0/3 - 1e-9, 32, Rgb{0, 32, 0}},
		{"two thirds is green", 2.0 / 3, 32, Rgb{0, 32, 0}},
		{"last of sixteen", 15.0 / 16, 32, Rgb{0, 6, 26}},
		{"half rounds to even", 0.5, 255, Rgb{127, 128, 0}},
		{"negative clamps", -1, 32, Rgb{0, 0, 32}},
		{"one clamps", 1, 32, Rgb{0, 0, 32}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, ValueToColor(tc.value, tc.maxVal))
		})
	}
}

func TestValueToColorMatchesSixteenSteps(t *testing.T) {
	expected := []Rgb{
		{0, 0, 32}, {6, 0, 26}, {12, 0, 20}, {18, 0, 14},
		{24, 0, 8}, {30, 0, 2}, {28, 4, 0}, {22, 10, 0},
		{16, 16, 0}, {10, 22, 0}, {4, 28, 0}, {0, 30, 2},
		{0, 24, 8}, {0, 18, 14}, {0, 12, 20}, {0, 6, 26},
	}
	for i, c := range expected {
		require.Equalf(t, c, ValueToColor(float64(i)/16, 32), "step %d", i)
	}
}

func TestValueToColorInvariants(t *testing.T) {
	for _, maxVal := range []int{1, 7, 32, 255} {
		for i := 0; i < 1000; i++ {
			v := float64(i) / 1000
			c := ValueToColor(v, maxVal)
			require.LessOrEqualf(t, int(c.R), maxVal, "v=%v", v)
			require.LessOrEqualf(t, int(c.G), maxVal, "v=%v", v)
			require.LessOrEqualf(t, int(c.B), maxVal, "v=%v", v)
			require.Equalf(t, maxVal, int(c.R)+int(c.G)+int(c.B), "v=%v", v)
			require.Equalf(t, c, ValueToColor(v, maxVal), "v=%v not deterministic", v)
		}
	}
}

func TestValueToColorContinuity(t *testing.T) {
	const eps = 1e-6
	testCases := []struct {
		name     string
		boundary float64
	}{
		{"red", 1.0 / 3},
		{"green", 2.0 / 3},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			below := ValueToColor(tc.boundary-eps, 32)
			above := ValueToColor(tc.boundary+eps, 32)
			require.InDelta(t, float64(below.R), float64(above.R), 1)
			require.InDelta(t, float64(below.G), float64(above.G), 1)
			require.InDelta(t, float64(below.B), float64(above.B), 1)
		})
	}
}

func TestRound(t *testing.T) {
	require.Equal(t, 3, Round(16.0/6))
	require.Equal(t, 0, Round(0.5))
	require.Equal(t, 2, Round(1.5))
	require.Equal(t, 2, Round(2.5))
}
