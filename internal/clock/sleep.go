// Package clock provides time helpers shared by the indexer services.
package clock

import (
	"context"
	"time"

	"github.com/benbjohnson/clock"
)

// Clock is the time source used by services, swappable for clock.NewMock in tests.
type Clock = clock.Clock

// New returns the wall clock.
func New() Clock {
	return clock.New()
}

// Sleep waits for d as measured by c or returns early if the context is canceled.
func Sleep(ctx context.Context, c Clock, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := c.Timer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
