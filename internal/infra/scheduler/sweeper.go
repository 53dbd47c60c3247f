// Package scheduler runs the periodic hold expiry sweep.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/Fabri-com/esteticas/internal/pkg/config"
	"github.com/Fabri-com/esteticas/internal/pkg/errs"
	"github.com/Fabri-com/esteticas/internal/usecase/commands"

	"github.com/robfig/cron/v3"
)

const defaultSweepTimeout = 30 * time.Second

// Sweeper cancels expired pending holds on a cron schedule. Reservations also
// expire stale holds lazily, so the sweep only keeps the agenda tidy.
type Sweeper struct {
	cron    *cron.Cron
	expiry  commands.ExpiryCommands
	logger  *slog.Logger
	timeout time.Duration
}

func NewSweeper(expiry commands.ExpiryCommands, cfg config.BookingConfig, logger *slog.Logger) (*Sweeper, error) {
	timeout := cfg.SweepTimeout
	if timeout <= 0 {
		timeout = defaultSweepTimeout
	}
	s := &Sweeper{
		cron:    cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		expiry:  expiry,
		logger:  logger,
		timeout: timeout,
	}
	if _, err := s.cron.AddFunc(cfg.SweepSchedule, s.RunOnce); err != nil {
		return nil, errs.Wrapf(err, "invalid BOOKING_SWEEP_SCHEDULE %q", cfg.SweepSchedule)
	}
	return s, nil
}

func (s *Sweeper) Start() {
	s.cron.Start()
	s.logger.Info("expiry sweep scheduled", "entries", len(s.cron.Entries()))
}

// Stop waits for a running sweep to finish or ctx to end.
func (s *Sweeper) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RunOnce performs a single bounded sweep; failures are logged and retried on the next tick.
func (s *Sweeper) RunOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	n, err := s.expiry.SweepExpired(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "expiry sweep failed", "error", err.Error())
		return
	}
	if n > 0 {
		s.logger.InfoContext(ctx, "expiry sweep completed", "cancelled", n)
	}
}
