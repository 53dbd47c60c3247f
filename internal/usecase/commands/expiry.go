package commands

import (
	"context"
	"log/slog"

	"github.com/Fabri-com/esteticas/internal/pkg/clock"
	"github.com/Fabri-com/esteticas/internal/usecase/shared"
)

type ExpiryCommands interface {
	// SweepExpired cancels every pending hold whose expiry has passed and returns how many it cancelled.
	// Running it again right away cancels nothing.
	SweepExpired(ctx context.Context) (int64, error)
}

type expiryCommandsImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

func NewExpiryCommands(uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) ExpiryCommands {
	return &expiryCommandsImpl{
		uow:    uow,
		clock:  clk,
		logger: logger,
	}
}

func (e *expiryCommandsImpl) SweepExpired(ctx context.Context) (int64, error) {
	var cancelled int64
	err := e.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Appointments().ExpireAllStaleHolds(ctx, tx.DB(), e.clock.Now())
		if err != nil {
			return err
		}
		cancelled = n
		return nil
	})
	if err != nil {
		return 0, shared.TranslateStorageErr("sweep expired holds", err)
	}

	if cancelled > 0 {
		e.logger.InfoContext(ctx, "expired pending holds cancelled", "count", cancelled)
	}
	return cancelled, nil
}
