// Package monitor reports the timing of single bytes arriving on a serial
// line.
package monitor

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	"github.com/golang/glog"
	pkgerrors "github.com/pkg/errors"

	fx "github.com/robotalks/ledfield/pkg/framework"
)

// Defaults match the firmware debugging setup.
const (
	DefaultGapThreshold = 100 * time.Millisecond
	DefaultTimeout      = 60 * time.Second
)

// ErrNoSource indicates the monitor has nothing to read from.
var ErrNoSource = errors.New("no byte source")

// Event describes a received byte.
type Event struct {
	Value byte
	Time  time.Time
	// Delta is the time since the previous byte, zero for the first one.
	Delta time.Duration
	First bool
	// Gap is set when Delta exceeds the gap threshold.
	Gap bool
}

// Reporter receives what the monitor observes.
type Reporter interface {
	Byte(Event) error
	Silence(timeout time.Duration) error
}

// Monitor reads one byte at a time from Source.
//
// Source must bound each Read by itself: a read returning no data and no
// error, or an error satisfying os.IsTimeout, ends the monitor normally.
// Any other error is returned from Run.
type Monitor struct {
	Source       io.Reader
	Clock        fx.TimeSource
	GapThreshold time.Duration
	// Timeout is the silence reported when Source times out.
	Timeout  time.Duration
	Reporter Reporter

	last time.Time
	seen bool
}

// New creates a Monitor with default settings.
func New(src io.Reader, reporter Reporter) *Monitor {
	return &Monitor{
		Source:       src,
		Clock:        fx.SystemTime,
		GapThreshold: DefaultGapThreshold,
		Timeout:      DefaultTimeout,
		Reporter:     reporter,
	}
}

// Run implements framework.Runnable. It returns nil when the source goes
// silent, and ctx.Err() if ctx is done between two reads.
func (m *Monitor) Run(ctx context.Context) error {
	if m.Source == nil {
		return ErrNoSource
	}
	buf := make([]byte, 1)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		n, err := m.Source.Read(buf)
		if n > 0 {
			if rerr := m.received(buf[0]); rerr != nil {
				return rerr
			}
		}
		switch {
		case err != nil && os.IsTimeout(err), err == nil && n == 0:
			glog.V(2).Infof("silent for %v", m.Timeout)
			return pkgerrors.Wrap(m.reporter().Silence(m.Timeout), "report silence")
		case err != nil:
			return pkgerrors.Wrap(err, "read byte")
		}
	}
}

func (m *Monitor) received(b byte) error {
	now := m.clock().Time()
	evt := Event{Value: b, Time: now, First: !m.seen}
	if m.seen {
		evt.Delta = now.Sub(m.last)
		evt.Gap = evt.Delta > m.GapThreshold
	}
	m.last, m.seen = now, true
	if glog.V(3) {
		glog.Infof("byte %d delta %v", b, evt.Delta)
	}
	return pkgerrors.Wrap(m.reporter().Byte(evt), "report byte")
}

func (m *Monitor) clock() fx.TimeSource {
	if m.Clock == nil {
		return fx.SystemTime
	}
	return m.Clock
}

func (m *Monitor) reporter() Reporter {
	if m.Reporter == nil {
		return discard{}
	}
	return m.Reporter
}

type discard struct{}

func (discard) Byte(Event) error            { return nil }
func (discard) Silence(time.Duration) error { return nil }
