package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/clipperhouse/instant"
)

// ErrWokeEarly means an iteration returned from sleeping before its
// target. It can only happen if instant arithmetic is broken.
var ErrWokeEarly = errors.New("woke before target")

type sleepFunc func(ctx context.Context, clock instant.Clock, target instant.Instant, onSleep func(time.Duration)) (instant.Instant, error)

type loop struct {
	clock      instant.Clock
	interval   time.Duration
	iterations int // 0 means forever
	logger     *slog.Logger
	sleep      sleepFunc
}

func newLoop(clock instant.Clock, interval time.Duration, iterations int, logger *slog.Logger) *loop {
	return &loop{
		clock:      clock,
		interval:   interval,
		iterations: iterations,
		logger:     logger,
		sleep:      instant.SleepUntilFunc,
	}
}

// run performs wake cycles until the iteration count is reached, ctx is
// done, or a cycle fails.
func (l *loop) run(ctx context.Context) error {
	for i := 0; l.iterations == 0 || i < l.iterations; i++ {
		if err := l.cycle(ctx, i); err != nil {
			return err
		}
	}
	return nil
}

// cycle sleeps until interval past the current instant, then checks that
// the wake instant is not before the target.
func (l *loop) cycle(ctx context.Context, iteration int) error {
	start := l.clock.Now()
	target := start.Add(l.interval)

	now, err := l.sleep(ctx, l.clock, target, func(d time.Duration) {
		l.logger.Debug("sleeping", slog.Int("iteration", iteration), slog.Duration("duration", d))
	})
	if err != nil {
		return fmt.Errorf("iteration %d: %w", iteration, err)
	}

	wallDiff := time.Duration(now.UnixNano() - start.UnixNano())
	monoDiff := time.Duration(now.Monotonic() - start.Monotonic())

	l.logger.Info("woke",
		slog.Int("iteration", iteration),
		slog.String("at", now.String()),
		slog.String("target", target.String()),
		slog.Duration("wall_diff", wallDiff),
		slog.Duration("mono_diff", monoDiff),
	)

	if now.Before(target) {
		return fmt.Errorf("iteration %d: %w: woke at %v, target %v", iteration, ErrWokeEarly, now, target)
	}
	if now.UnixNano() < target.UnixNano() {
		// the wall clock was set back while sleeping
		l.logger.Warn("wall clock behind target",
			slog.Int("iteration", iteration),
			slog.Duration("behind", time.Duration(target.UnixNano()-now.UnixNano())),
		)
	}
	return nil
}
