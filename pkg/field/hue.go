package field

import (
	"fmt"
	"math"
)

// Rgb is a single color of the field. Each channel is within [0, MaxVal]
// of the generating Config.
type Rgb struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String implements fmt.Stringer using the C initializer form.
func (c Rgb) String() string {
	return fmt.Sprintf("{%d,%d,%d}", c.R, c.G, c.B)
}

const (
	oneThird = 1.0 / 3
	twoThird = 2.0 / 3
)

// Round rounds half to even. Used for both the hue ramp and the index of
// the pinned first sample.
func Round(v float64) int {
	return int(math.RoundToEven(v))
}

// ValueToColor maps v in [0, 1) onto the hue ramp with channels in
// [0, maxVal]. Values out of range are clamped. The channels always sum to
// maxVal.
func ValueToColor(v float64, maxVal int) Rgb {
	v = clampUnit(v)
	m := float64(maxVal)
	switch {
	case v < oneThird:
		r := Round(v * 3 * m)
		return Rgb{R: uint8(r), G: 0, B: uint8(maxVal - r)}
	case v < twoThird:
		g := Round((v*3 - 1) * m)
		return Rgb{R: uint8(maxVal - g), G: uint8(g), B: 0}
	default:
		b := Round((v*3 - 2) * m)
		return Rgb{R: 0, G: uint8(maxVal - b), B: uint8(b)}
	}
}

func clampUnit(v float64) float64 {
	switch {
	case math.IsNaN(v) || v < 0:
		return 0
	case v >= 1:
		return math.Nextafter(1, 0)
	}
	return v
}
