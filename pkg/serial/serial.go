// Package serial opens serial ports for byte level diagnostics.
package serial

import (
	"io"
	"time"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	ser "go.bug.st/serial"
)

// Parity describes a serial port parity setting.
type Parity int

// Parity settings.
const (
	NoParity Parity = iota
	OddParity
	EvenParity
	MarkParity
	SpaceParity
)

// StopBits describes a serial port stop bits setting.
type StopBits int

// Stop bits settings.
const (
	OneStopBit StopBits = iota
	OnePointFiveStopBits
	TwoStopBits
)

// Options configures an opened port.
type Options struct {
	BaudRate int
	DataBits int
	StopBits StopBits
	Parity   Parity
	// ReadTimeout bounds each Read. When it expires Read returns (0, nil).
	// Zero blocks forever.
	ReadTimeout time.Duration
}

// Open attempts to open a serial device on the given path. It's a variable
// so tests can replace it.
var Open = func(devicePath string, options Options) (io.ReadWriteCloser, error) {
	mode := &ser.Mode{
		BaudRate: options.BaudRate,
		DataBits: options.DataBits,
		Parity:   ser.Parity(options.Parity),
		StopBits: ser.StopBits(options.StopBits),
	}
	port, err := ser.Open(devicePath, mode)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", devicePath)
	}
	if options.ReadTimeout > 0 {
		if err = port.SetReadTimeout(options.ReadTimeout); err != nil {
			port.Close()
			return nil, errors.Wrapf(err, "set read timeout on %s", devicePath)
		}
	}
	glog.V(2).Infof("opened %s: %d baud, %d data bits, read timeout %v",
		devicePath, options.BaudRate, options.DataBits, options.ReadTimeout)
	return port, nil
}

// Ports lists the serial ports present on the system.
func Ports() ([]string, error) {
	ports, err := ser.GetPortsList()
	return ports, errors.Wrap(err, "list serial ports")
}
