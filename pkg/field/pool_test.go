package field

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPool(t *testing.T) {
	p := NewPool(4)
	require.Equal(t, 4, p.Len())
	require.Equal(t, 4, p.Cap())
	require.Equal(t, 0.25, p.Peek(1))

	require.Equal(t, 0.25, p.Take(1))
	require.Equal(t, 3, p.Len())
	// the last value moved into the freed slot
	require.Equal(t, 0.75, p.Peek(1))

	require.Equal(t, 0.0, p.Take(0))
	require.Equal(t, []float64{0, 0.25}, p.Taken())

	require.Equal(t, 0.75, p.Take(1))
	require.Equal(t, 0.5, p.Take(0))
	require.Equal(t, 0, p.Len())

	taken := p.Taken()
	sort.Float64s(taken)
	require.Equal(t, []float64{0, 0.25, 0.5, 0.75}, taken)
}

func TestPoolOutOfRange(t *testing.T) {
	p := NewPool(2)
	p.Take(0)
	require.Panics(t, func() { p.Peek(1) })
	require.Panics(t, func() { p.Take(-1) })
}
