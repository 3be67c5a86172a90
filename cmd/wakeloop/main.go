// Command wakeloop repeatedly sets a wake target a fixed interval ahead of
// the current instant, sleeps until it is reached, and reports the wall and
// monotonic time that elapsed. It exits with status 1 if it ever wakes
// before its target.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/clipperhouse/instant"
	"github.com/clipperhouse/instant/internal/config"
	"github.com/clipperhouse/instant/internal/observability"
)

const serviceName = "wakeloop"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := observability.InitLogger(observability.LogConfig{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: serviceName,
	})

	l := newLoop(instant.NewSystemClock(), cfg.Interval, cfg.Iterations, logger)

	logger.Info("starting",
		slog.Duration("interval", cfg.Interval),
		slog.Int("iterations", cfg.Iterations),
	)

	err = l.run(ctx)
	if errors.Is(err, context.Canceled) {
		logger.Info("received shutdown signal")
		return nil
	}
	return err
}
