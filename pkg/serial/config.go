package serial

import (
	"flag"
	"io"
	"os"
	"time"
)

// Config selects the port and line settings.
type Config struct {
	Port    string
	Options Options
}

var defaultConfig = Config{
	Port: "/dev/ttyUSB1",
	Options: Options{
		BaudRate:    9600,
		DataBits:    8,
		StopBits:    OneStopBit,
		Parity:      NoParity,
		ReadTimeout: 60 * time.Second,
	},
}

func init() {
	if val := os.Getenv("LEDFIELD_SERIAL_PORT"); val != "" {
		defaultConfig.Port = val
	}
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.Port, "port", defaultConfig.Port, "Serial port device.")
	flag.IntVar(&defaultConfig.Options.BaudRate, "baud", defaultConfig.Options.BaudRate, "Baud rate.")
	flag.DurationVar(&defaultConfig.Options.ReadTimeout, "timeout", defaultConfig.Options.ReadTimeout, "Give up after nothing is received for this long.")
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

// Open opens the configured port.
func (c *Config) Open() (io.ReadWriteCloser, error) {
	return Open(c.Port, c.Options)
}
