// Package sampler computes the colors the LED driver shows at arbitrary
// points of space, interpolated from a generated field.
package sampler

import (
	"math"

	"github.com/robotalks/ledfield/pkg/field"
)

// DefaultRes is the number of points between two neighboring field cells.
const DefaultRes = 128

// Sampler interpolates colors over a field. The field repeats in both
// directions.
type Sampler struct {
	Field *field.Field
	Res   int
}

// New creates a Sampler. A non-positive res selects DefaultRes.
func New(f *field.Field, res int) *Sampler {
	if res <= 0 {
		res = DefaultRes
	}
	return &Sampler{Field: f, Res: res}
}

// Bounds returns the size of one period of the sampled space.
func (s *Sampler) Bounds() (w, h int) {
	return s.Field.Width * s.Res, s.Field.Height * s.Res
}

// Layer blends the four field cells surrounding (x, y), weighting each by
// its closeness to the point.
func (s *Sampler) Layer(x, y int) field.Rgb {
	x, y = s.wrap(x, y)
	res, f := s.Res, s.Field
	xl, yl := x%res, y%res
	tlx, tly := (x/res)%f.Width, (y/res)%f.Height
	brx, bry := (tlx+1)%f.Width, (tly+1)%f.Height

	colors := [4]field.Rgb{
		f.At(tlx, tly),
		f.At(brx, tly),
		f.At(tlx, bry),
		f.At(brx, bry),
	}
	weights := [4]float64{
		s.weight(distance(xl, yl)),
		s.weight(distance(res-xl, yl)),
		s.weight(distance(xl, res-yl)),
		s.weight(distance(res-xl, res-yl)),
	}
	return field.Rgb{
		R: approximate(colors, weights, func(c field.Rgb) uint8 { return c.R }),
		G: approximate(colors, weights, func(c field.Rgb) uint8 { return c.G }),
		B: approximate(colors, weights, func(c field.Rgb) uint8 { return c.B }),
	}
}

// Color is the base layer at 1/8 scale with two finer variation layers
// added on top.
func (s *Sampler) Color(x, y int) field.Rgb {
	c := s.Layer(x/8, y/8)
	c = s.vary(c, x/4, y/4, 1, 1)
	c = s.vary(c, x/2, y/2, 8, 3)
	return c
}

// LowRes returns Color reduced to the 5-bit resolution of the software PWM.
func (s *Sampler) LowRes(x, y int) field.Rgb {
	c := s.Color(x, y)
	return field.Rgb{R: c.R >> 3, G: c.G >> 3, B: c.B >> 3}
}

func (s *Sampler) vary(base field.Rgb, x, y, scale int, shift uint) field.Rgb {
	v := s.Layer(x*scale, y*scale)
	return field.Rgb{
		R: addClamped(base.R, v.R>>shift),
		G: addClamped(base.G, v.G>>shift),
		B: addClamped(base.B, v.B>>shift),
	}
}

func (s *Sampler) wrap(x, y int) (int, int) {
	w, h := s.Bounds()
	if x %= w; x < 0 {
		x += w
	}
	if y %= h; y < 0 {
		y += h
	}
	return x, y
}

// weight is 1 for points a full cell away and grows linearly closer in.
func (s *Sampler) weight(d float64) float64 {
	if d >= float64(s.Res-1) {
		return 1
	}
	return float64(s.Res) - d
}

func distance(x, y int) float64 {
	return math.Sqrt(float64(x*x + y*y))
}

func approximate(colors [4]field.Rgb, weights [4]float64, channel func(field.Rgb) uint8) uint8 {
	var sum, total float64
	for i, c := range colors {
		sum += float64(channel(c)) * weights[i]
		total += weights[i]
	}
	return uint8(sum / total)
}

func addClamped(a, b uint8) uint8 {
	if sum := int(a) + int(b); sum < 255 {
		return uint8(sum)
	}
	return 255
}
