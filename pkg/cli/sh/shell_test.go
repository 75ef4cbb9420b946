package sh

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/ledfield/pkg/field"
)

func newTestShell(t *testing.T, seed int64) *Shell {
	s := &Shell{Config: field.NewConfig()}
	require.NoError(t, s.Generate(seed))
	return s
}

func TestGenerateIsSeeded(t *testing.T) {
	a, b := newTestShell(t, 42), newTestShell(t, 42)
	require.Equal(t, int64(42), a.Seed)
	require.Equal(t, a.Field.Cells, b.Field.Cells)
}

func TestGenerateInvalidConfig(t *testing.T) {
	s := &Shell{Config: &field.Config{Width: 0, Height: 4, MaxVal: 32, BalanceTolerance: 3}}
	require.Error(t, s.Generate(1))
	require.Nil(t, s.Field)
}

func TestCells(t *testing.T) {
	s := newTestShell(t, 7)
	cells := s.Cells()
	require.Len(t, cells, 16)
	require.Equal(t, 0, cells[0].X)
	require.Equal(t, 1, cells[1].Y)
	for _, c := range cells {
		require.Equal(t, s.Field.At(c.X, c.Y), c.Color)
		require.Len(t, c.Hex, 7)
		require.Contains(t, FormatCell(c), c.Hex)
	}
}

func TestFormatSums(t *testing.T) {
	require.Equal(t, "R=170 G=170 B=172 spread=2",
		FormatSums(field.ChannelSums{R: 170, G: 170, B: 172}))
}

func TestSample(t *testing.T) {
	s := newTestShell(t, 3)
	smp := s.Sample(0, 0, 0)
	require.Equal(t, field.Rgb{R: smp.Color.R >> 3, G: smp.Color.G >> 3, B: smp.Color.B >> 3}, smp.LowRes)
}

func TestPreview(t *testing.T) {
	s := newTestShell(t, 5)
	dir := t.TempDir()

	bmpPath := filepath.Join(dir, "field.bmp")
	require.NoError(t, s.Preview(bmpPath, 4))
	data, err := os.ReadFile(bmpPath)
	require.NoError(t, err)
	require.Equal(t, "BM", string(data[:2]))

	pngPath := filepath.Join(dir, "field.PNG")
	require.NoError(t, s.Preview(pngPath, 4))
	f, err := os.Open(pngPath)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	require.Equal(t, 32, img.Bounds().Dx())
}

func TestPreviewBadPath(t *testing.T) {
	s := newTestShell(t, 5)
	require.Error(t, s.Preview(filepath.Join(t.TempDir(), "missing", "x.bmp"), 4))
}

func TestParseInts(t *testing.T) {
	vals, err := parseInts([]string{"1", "-2", "30"}, "x", "y")
	require.NoError(t, err)
	require.Equal(t, []int{1, -2, 30}, vals)

	_, err = parseInts([]string{"1", "y"}, "x", "y")
	require.Error(t, err)
	require.Contains(t, err.Error(), `invalid y "y"`)
}
