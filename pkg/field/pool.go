package field

// Pool holds the evenly spaced sample values not yet placed on the field.
// Values live in a fixed arena; the first Len() slots are still available
// and a taken value is swapped behind them.
type Pool struct {
	values    []float64
	remaining int
}

// NewPool creates a pool of n values i/n for i in [0, n).
func NewPool(n int) *Pool {
	p := &Pool{values: make([]float64, n), remaining: n}
	for i := range p.values {
		p.values[i] = float64(i) / float64(n)
	}
	return p
}

// Len returns the number of values still available.
func (p *Pool) Len() int {
	return p.remaining
}

// Cap returns the number of values the pool was created with.
func (p *Pool) Cap() int {
	return len(p.values)
}

// Peek returns the available value at index i.
func (p *Pool) Peek(i int) float64 {
	if i < 0 || i >= p.remaining {
		panic("field: pool index out of range")
	}
	return p.values[i]
}

// Take removes the available value at index i and returns it.
func (p *Pool) Take(i int) float64 {
	v := p.Peek(i)
	last := p.remaining - 1
	p.values[i], p.values[last] = p.values[last], p.values[i]
	p.remaining = last
	return v
}

// Taken returns the values removed so far, most recent first.
func (p *Pool) Taken() []float64 {
	taken := make([]float64, 0, len(p.values)-p.remaining)
	for i := p.remaining; i < len(p.values); i++ {
		taken = append(taken, p.values[i])
	}
	return taken
}
