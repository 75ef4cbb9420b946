package framework

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type testCloser struct {
	closed  int
	closeCh chan struct{}
}

func newTestCloser() *testCloser {
	return &testCloser{closeCh: make(chan struct{})}
}

func (c *testCloser) Close() error {
	c.closed++
	if c.closed == 1 {
		close(c.closeCh)
	}
	return nil
}

func TestRunner(t *testing.T) {
	errA, errB := errors.New("a"), errors.New("b")
	testCases := []struct {
		name     string
		runners  []Runnable
		expected func(*testing.T, error)
	}{
		{
			"all succeed",
			[]Runnable{
				RunFunc(func(context.Context) error { return nil }),
				NamedRun("named", RunFunc(func(context.Context) error { return nil })),
			},
			func(t *testing.T, err error) { require.NoError(t, err) },
		},
		{
			"canceled is ignored",
			[]Runnable{
				RunFunc(func(context.Context) error { return context.Canceled }),
			},
			func(t *testing.T, err error) { require.NoError(t, err) },
		},
		{
			"single error",
			[]Runnable{
				RunFunc(func(context.Context) error { return errA }),
				RunFunc(func(context.Context) error { return nil }),
			},
			func(t *testing.T, err error) { require.Equal(t, errA, err) },
		},
		{
			"multiple errors",
			[]Runnable{
				RunFunc(func(context.Context) error { return errA }),
				RunFunc(func(context.Context) error { return errB }),
			},
			func(t *testing.T, err error) {
				agg, ok := err.(*AggregatedError)
				require.True(t, ok)
				require.ElementsMatch(t, []error{errA, errB}, agg.Errors)
				require.Contains(t, err.Error(), "multiple errors:")
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.expected(t, NewRunner().Run(tc.runners...))
		})
	}
}

func TestRunWithContextCloserOnReturn(t *testing.T) {
	c := newTestCloser()
	err := RunWithContextCloser(context.Background(), c, func() error {
		return errors.New("timeout")
	})
	require.EqualError(t, err, "timeout")
	require.Equal(t, 1, c.closed)
}

func TestRunWithContextCloserOnCancel(t *testing.T) {
	c := newTestCloser()
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()
	err := RunWithContextCloser(ctx, c, func() error {
		// blocks like a read until the device is closed
		<-c.closeCh
		return errors.New("file closed")
	})
	require.Equal(t, context.Canceled, err)
	require.Equal(t, 1, c.closed)
}

func TestTimeFunc(t *testing.T) {
	now := time.Unix(100, 0)
	require.Equal(t, now, TimeFunc(func() time.Time { return now }).Time())
	require.False(t, SystemTime.Time().IsZero())
}
