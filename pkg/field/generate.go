package field

import (
	"math/rand"
	"time"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// Field is a generated grid of colors indexed [x][y].
type Field struct {
	Width  int
	Height int
	MaxVal int
	Cells  [][]Rgb
	// Samples keeps the sample value each cell was derived from.
	Samples [][]float64
}

// At returns the color at (x, y).
func (f *Field) At(x, y int) Rgb {
	return f.Cells[x][y]
}

// Allocator walks the field in row-major order (x outer, y inner) and hands
// out one sample value per cell until the pool is exhausted.
type Allocator struct {
	pool  *Pool
	rng   *rand.Rand
	first int
	w, h  int
	x, y  int
}

// NewAllocator creates an Allocator for a field of w*h cells. A nil rng is
// seeded from the current time.
func NewAllocator(w, h int, rng *rand.Rand) *Allocator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	pool := NewPool(w * h)
	return &Allocator{
		pool:  pool,
		rng:   rng,
		first: Round(float64(pool.Len()) / 6),
		w:     w,
		h:     h,
	}
}

// Remaining returns the number of values not yet handed out.
func (a *Allocator) Remaining() int {
	return a.pool.Len()
}

// Next returns the next cell and its sample value. ok is false when every
// cell has been visited.
func (a *Allocator) Next() (x, y int, v float64, ok bool) {
	if a.x >= a.w {
		return 0, 0, 0, false
	}
	x, y = a.x, a.y
	var index int
	if x == 0 && y == 0 {
		index = a.first
	} else if n := a.pool.Len(); n > 0 {
		index = a.rng.Intn(n)
	}
	if a.pool.Len() == 0 {
		return 0, 0, 0, false
	}
	v = a.pool.Take(index)
	if a.y++; a.y >= a.h {
		a.y = 0
		a.x++
	}
	return x, y, v, true
}

// Generate creates a field using rng for placement. A nil rng is seeded from
// the current time.
func Generate(conf Config, rng *rand.Rand) (*Field, error) {
	if err := conf.Validate(); err != nil {
		return nil, errors.Wrap(err, "generate field")
	}
	f := &Field{
		Width:   conf.Width,
		Height:  conf.Height,
		MaxVal:  conf.MaxVal,
		Cells:   make([][]Rgb, conf.Width),
		Samples: make([][]float64, conf.Width),
	}
	for x := range f.Cells {
		f.Cells[x] = make([]Rgb, conf.Height)
		f.Samples[x] = make([]float64, conf.Height)
	}
	alloc := NewAllocator(conf.Width, conf.Height, rng)
	for {
		x, y, v, ok := alloc.Next()
		if !ok {
			break
		}
		f.Samples[x][y] = v
		f.Cells[x][y] = ValueToColor(v, conf.MaxVal)
		glog.V(4).Infof("cell[%d][%d] = %v (sample %v)", x, y, f.Cells[x][y], v)
	}
	if n := alloc.Remaining(); n != 0 {
		return nil, errors.Errorf("generate field: %d samples left unused", n)
	}
	return f, nil
}
