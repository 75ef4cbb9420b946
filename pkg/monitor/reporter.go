package monitor

import (
	"fmt"
	"io"
	"time"

	fx "github.com/robotalks/ledfield/pkg/framework"
)

// TextReporter prints one line per byte.
type TextReporter struct {
	W io.Writer
	// GapsOnly suppresses bytes which are neither the first one nor follow
	// a gap.
	GapsOnly bool
}

// NewTextReporter creates a TextReporter.
func NewTextReporter(w io.Writer, gapsOnly bool) *TextReporter {
	return &TextReporter{W: w, GapsOnly: gapsOnly}
}

// Byte implements Reporter.
func (r *TextReporter) Byte(evt Event) (err error) {
	switch {
	case evt.Gap:
		_, err = fmt.Fprintf(r.W, "Byte: %d - Delta %v\n", evt.Value, evt.Delta.Seconds())
	case evt.First || !r.GapsOnly:
		_, err = fmt.Fprintf(r.W, "Byte: %d\n", evt.Value)
	}
	return
}

// Silence implements Reporter.
func (r *TextReporter) Silence(timeout time.Duration) error {
	_, err := fmt.Fprintf(r.W, "Nothing received for %v seconds, exiting.\n", timeout.Seconds())
	return err
}

// MultiReporter reports to all reporters in order.
type MultiReporter []Reporter

// Byte implements Reporter.
func (m MultiReporter) Byte(evt Event) error {
	var errs fx.AggregatedError
	for _, r := range m {
		errs.Add(r.Byte(evt))
	}
	return errs.Aggregate()
}

// Silence implements Reporter.
func (m MultiReporter) Silence(timeout time.Duration) error {
	var errs fx.AggregatedError
	for _, r := range m {
		errs.Add(r.Silence(timeout))
	}
	return errs.Aggregate()
}
