package dispatch

import (
	"context"
	"time"
)

// Clock abstracts time for the dispatch loop so tests can fake the
// multi-minute waits the loop performs between sends.
type Clock interface {
	Now() time.Time
	// Sleep blocks for d or until the context is canceled, returning
	// the context error in the latter case.
	Sleep(ctx context.Context, d time.Duration) error
}

type realClock struct{}

// NewClock returns the wall clock.
func NewClock() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now()
}

func (realClock) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
