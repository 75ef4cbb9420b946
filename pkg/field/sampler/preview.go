package sampler

import (
	"image"
	"image/color"
	"image/png"
	"io"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
	"golang.org/x/image/bmp"

	"github.com/robotalks/ledfield/pkg/field"
)

// Normalize converts a field color with channel ceiling maxVal into a
// colorful.Color. Channels above maxVal saturate.
func Normalize(c field.Rgb, maxVal int) colorful.Color {
	m := float64(maxVal)
	return colorful.Color{
		R: float64(c.R) / m,
		G: float64(c.G) / m,
		B: float64(c.B) / m,
	}.Clamped()
}

// Hex formats a field color as #rrggbb scaled to the full 8-bit range.
func Hex(c field.Rgb, maxVal int) string {
	return Normalize(c, maxVal).Hex()
}

// Hue returns the hue in degrees of a field color.
func Hue(c field.Rgb, maxVal int) float64 {
	h, _, _ := Normalize(c, maxVal).Hsv()
	return h
}

// Preview renders what the driver would show over two periods of the
// sampled space in each direction.
type Preview struct {
	Sampler *Sampler
}

// NewPreview creates a Preview.
func NewPreview(s *Sampler) *Preview {
	return &Preview{Sampler: s}
}

// ColorModel implements image.Image.
func (p *Preview) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements image.Image.
func (p *Preview) Bounds() image.Rectangle {
	w, h := p.Sampler.Bounds()
	return image.Rect(0, 0, w*2, h*2)
}

// At implements image.Image.
func (p *Preview) At(x, y int) color.Color {
	return Normalize(p.Sampler.Color(x, y), p.Sampler.Field.MaxVal)
}

// Render rasterizes the preview.
func (p *Preview) Render() *image.RGBA {
	b := p.Bounds()
	img := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.Set(x, y, p.At(x, y))
		}
	}
	return img
}

// WriteBMP encodes the preview as a 24-bit bitmap.
func (p *Preview) WriteBMP(w io.Writer) error {
	return errors.Wrap(bmp.Encode(w, p.Render()), "encode bmp")
}

// WritePNG encodes the preview as PNG.
func (p *Preview) WritePNG(w io.Writer) error {
	return errors.Wrap(png.Encode(w, p.Render()), "encode png")
}
