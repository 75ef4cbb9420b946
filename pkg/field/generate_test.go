package field

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGeneratePartition(t *testing.T) {
	testCases := []struct {
		name string
		w, h int
	}{
		{"single", 1, 1},
		{"square", 4, 4},
		{"wide", 7, 2},
		{"tall", 3, 9},
		{"large", 16, 16},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			conf := Config{Width: tc.w, Height: tc.h, MaxVal: 32, BalanceTolerance: 3}
			f, err := Generate(conf, rand.New(rand.NewSource(42)))
			require.NoError(t, err)
			require.Len(t, f.Cells, tc.w)
			n := tc.w * tc.h
			var used []float64
			for x := 0; x < tc.w; x++ {
				require.Len(t, f.Cells[x], tc.h)
				for y := 0; y < tc.h; y++ {
					used = append(used, f.Samples[x][y])
					require.Equal(t, ValueToColor(f.Samples[x][y], 32), f.At(x, y))
				}
			}
			sort.Float64s(used)
			for i, v := range used {
				require.Equalf(t, float64(i)/float64(n), v, "sample %d", i)
			}
		})
	}
}

func TestGenerateFirstCell(t *testing.T) {
	conf := Config{Width: 4, Height: 4, MaxVal: 32, BalanceTolerance: 3}
	for seed := int64(0); seed < 100; seed++ {
		f, err := Generate(conf, rand.New(rand.NewSource(seed)))
		require.NoError(t, err)
		require.Equal(t, 0.1875, f.Samples[0][0])
		require.Equal(t, Rgb{R: 18, G: 0, B: 14}, f.At(0, 0))
	}
}

func TestGenerateBalance(t *testing.T) {
	conf := Config{Width: 4, Height: 4, MaxVal: 32, BalanceTolerance: DefaultBalanceTolerance}
	for seed := int64(0); seed < 1000; seed++ {
		f, err := Generate(conf, rand.New(rand.NewSource(seed)))
		require.NoError(t, err)
		require.NoErrorf(t, CheckBalance(f, conf.BalanceTolerance), "seed %d", seed)
	}
}

func TestGenerateDeterministicWithSeed(t *testing.T) {
	conf := Config{Width: 5, Height: 3, MaxVal: 32, BalanceTolerance: 3}
	a, err := Generate(conf, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	b, err := Generate(conf, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	require.Equal(t, a.Cells, b.Cells)
}

func TestGenerateNilRand(t *testing.T) {
	f, err := Generate(*NewConfig(), nil)
	require.NoError(t, err)
	require.Equal(t, Rgb{R: 18, G: 0, B: 14}, f.At(0, 0))
}

func TestGenerateInvalidConfig(t *testing.T) {
	testCases := []struct {
		name string
		conf Config
	}{
		{"zero width", Config{Width: 0, Height: 4, MaxVal: 32, BalanceTolerance: 3}},
		{"negative height", Config{Width: 4, Height: -1, MaxVal: 32, BalanceTolerance: 3}},
		{"zero max", Config{Width: 4, Height: 4, MaxVal: 0, BalanceTolerance: 3}},
		{"max too large", Config{Width: 4, Height: 4, MaxVal: 256, BalanceTolerance: 3}},
		{"no tolerance", Config{Width: 4, Height: 4, MaxVal: 32}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Generate(tc.conf, nil)
			require.Error(t, err)
		})
	}
}

func TestAllocatorOrder(t *testing.T) {
	alloc := NewAllocator(2, 3, rand.New(rand.NewSource(1)))
	var cells [][2]int
	for {
		x, y, _, ok := alloc.Next()
		if !ok {
			break
		}
		cells = append(cells, [2]int{x, y})
	}
	require.Equal(t, [][2]int{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}}, cells)
	require.Equal(t, 0, alloc.Remaining())
	_, _, _, ok := alloc.Next()
	require.False(t, ok)
}
