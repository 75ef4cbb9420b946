package field

import "fmt"

// ChannelSums are the per-channel totals over a field.
type ChannelSums struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// Spread returns max - min of the three sums.
func (s ChannelSums) Spread() int {
	lo, hi := s.R, s.R
	for _, v := range []int{s.G, s.B} {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return hi - lo
}

// Sums totals each channel over every cell of f.
func Sums(f *Field) (s ChannelSums) {
	for _, col := range f.Cells {
		for _, c := range col {
			s.R += int(c.R)
			s.G += int(c.G)
			s.B += int(c.B)
		}
	}
	return
}

// BalanceError reports a field whose channel sums diverge.
type BalanceError struct {
	Sums      ChannelSums
	Tolerance int
}

// Error implements error.
func (e *BalanceError) Error() string {
	return fmt.Sprintf("colors not evenly distributed: R=%d, G=%d, B=%d", e.Sums.R, e.Sums.G, e.Sums.B)
}

// CheckBalance fails if the spread of the channel sums reaches tolerance.
func CheckBalance(f *Field, tolerance int) error {
	s := Sums(f)
	if s.Spread() >= tolerance {
		return &BalanceError{Sums: s, Tolerance: tolerance}
	}
	return nil
}
