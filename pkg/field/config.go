package field

import (
	"flag"
	"fmt"
)

// DefaultBalanceTolerance is the smallest spread between channel sums that
// is considered unbalanced. It was picked empirically.
const DefaultBalanceTolerance = 3

// Config defines the shape of a generated field.
type Config struct {
	Width  int
	Height int
	// MaxVal is the channel ceiling, at most 255.
	MaxVal int
	// BalanceTolerance is used by CheckBalance.
	BalanceTolerance int
}

var defaultConfig = Config{
	Width:            4,
	Height:           4,
	MaxVal:           32,
	BalanceTolerance: DefaultBalanceTolerance,
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.IntVar(&defaultConfig.Width, "width", defaultConfig.Width, "Field width.")
	flag.IntVar(&defaultConfig.Height, "height", defaultConfig.Height, "Field height.")
	flag.IntVar(&defaultConfig.MaxVal, "max", defaultConfig.MaxVal, "Channel ceiling (1-255).")
	flag.IntVar(&defaultConfig.BalanceTolerance, "tolerance", defaultConfig.BalanceTolerance, "Maximum allowed spread (exclusive) between channel sums.")
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a config with defaults.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// Cells returns the number of cells in the field.
func (c *Config) Cells() int {
	return c.Width * c.Height
}

// Validate checks the config can generate a field.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid field size %dx%d", c.Width, c.Height)
	}
	if c.MaxVal <= 0 || c.MaxVal > 255 {
		return fmt.Errorf("invalid channel ceiling %d", c.MaxVal)
	}
	if c.BalanceTolerance <= 0 {
		return fmt.Errorf("invalid balance tolerance %d", c.BalanceTolerance)
	}
	return nil
}
