package instant

import (
	"context"
	"time"
)

// SleepUntil blocks until clock reports an instant that is not before
// target, or until ctx is done. It returns the last instant read from
// clock, and ctx.Err() if it gave up early. If ctx has a deadline that
// comes before the next wake, SleepUntil fails fast with
// context.DeadlineExceeded instead of sleeping.
//
// SleepUntil sleeps for target.Sub(now) and then re-reads the clock,
// repeating while the clock is still short of target. When both instants
// carry monotonic readings, wall clock adjustments do not cause an
// early or late wake.
func SleepUntil(ctx context.Context, clock Clock, target Instant) (Instant, error) {
	return SleepUntilFunc(ctx, clock, target, nil)
}

// SleepUntilFunc is like [SleepUntil], and calls onSleep with each
// duration it is about to sleep for. onSleep may be nil.
func SleepUntilFunc(ctx context.Context, clock Clock, target Instant, onSleep func(time.Duration)) (Instant, error) {
	now, ok := sleepUntilWithCancellation(clock, target, onSleep, ctx.Deadline, ctx.Done, time.After)
	if !ok {
		if err := ctx.Err(); err != nil {
			return now, err
		}
		return now, context.DeadlineExceeded
	}
	return now, nil
}

// sleepUntilWithCancellation is a more testable version of SleepUntil that
// accepts deadline, done and after functions instead of a context and the
// real timer.
func sleepUntilWithCancellation(
	clock Clock,
	target Instant,
	onSleep func(time.Duration),
	deadline func() (time.Time, bool),
	done func() <-chan struct{},
	after func(time.Duration) <-chan time.Time,
) (Instant, bool) {
	now := clock.Now()
	for now.Before(target) {
		wait := target.Sub(now)

		// If target can't be reached before the deadline, fail fast.
		// The deadline is a wall time, so compare it against the wall
		// reading of now.
		if deadline, ok := deadline(); ok {
			if deadline.Sub(now.Time()) < wait {
				return now, false
			}
		}

		if onSleep != nil {
			onSleep(wait)
		}

		select {
		case <-done():
			return now, false
		case <-after(wait):
			now = clock.Now()
		}
	}
	return now, true
}
