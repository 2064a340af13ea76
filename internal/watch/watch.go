// Package watch implements the polling loop behind `peperone tail`.
package watch

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/psantana5/peperone/internal/elapsed"
	"github.com/psantana5/peperone/internal/timer"
	"github.com/rs/zerolog"
)

// DefaultInterval is the polling interval used when none is configured
const DefaultInterval = time.Second

// ErrRemoved is returned when the watched timer disappears while tailing
var ErrRemoved = errors.Wrap(timer.ErrNotFound, "timer was removed")

// Loop re-reads a timer on every tick and prints its elapsed time
type Loop struct {
	Store    timer.Reader
	Clock    timer.Clock
	Interval time.Duration
	Out      io.Writer
	Logger   zerolog.Logger

	// Count stops the loop after that many lines. Zero means no limit.
	Count int
}

// Run prints the elapsed time of name once per interval until ctx is
// cancelled, Count lines have been printed, or the timer is removed.
// A timer that does not exist on the first read returns its NotFound error;
// one that vanishes later returns ErrRemoved.
func (l *Loop) Run(ctx context.Context, name string) error {
	clock := l.Clock
	if clock == nil {
		clock = timer.RealClock()
	}
	interval := l.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	t, err := l.Store.Read(name)
	if err != nil {
		return err
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	printed := 0
	for {
		line := elapsed.Since(t.CreatedAt, clock.Now())
		if _, err := fmt.Fprintln(l.Out, line); err != nil {
			return errors.Wrap(err, "failed to write elapsed time")
		}
		printed++
		if l.Count > 0 && printed >= l.Count {
			return nil
		}

		select {
		case <-ctx.Done():
			l.Logger.Debug().Str("timer", name).Msg("tail cancelled")
			return nil
		case <-ticker.C:
		}

		t, err = l.Store.Read(name)
		if err != nil {
			if errors.Is(err, timer.ErrNotFound) {
				l.Logger.Debug().Str("timer", name).Msg("timer removed while tailing")
				return ErrRemoved
			}
			return err
		}
	}
}
