package tracker

import (
	"context"
	"time"
)

// Clock reads the wall clock.
type Clock interface {
	Now() time.Time
}

// SystemClock is the real wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// Drive forwards ticks to t while it is active and reports each new
// elapsed value to observe. It returns when ctx is done or ticks is closed.
func Drive(ctx context.Context, ticks <-chan time.Time, t *Tracker, observe func(int64)) {
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-ticks:
			if !ok {
				return
			}
			elapsed, ok := t.tick()
			if ok && observe != nil {
				observe(elapsed)
			}
		}
	}
}
