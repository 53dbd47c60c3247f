package bootstrap

import (
	"context"
	"log/slog"

	"github.com/Fabri-com/esteticas/internal/infra/messaging"
	"github.com/Fabri-com/esteticas/internal/infra/scheduler"
	"github.com/Fabri-com/esteticas/internal/pkg/config"
	"github.com/Fabri-com/esteticas/internal/usecase/commands"
	"github.com/Fabri-com/esteticas/internal/usecase/shared"

	"go.uber.org/fx"
)

var WorkersModule = fx.Module("workers",
	fx.Provide(
		NewOutboxRelay,
		NewExpirySweeper,
	),
	fx.Invoke(
		runOutboxRelay,
		runExpirySweeper,
	),
)

func NewOutboxRelay(lc fx.Lifecycle, uow shared.UnitOfWork, cfg config.Config, logger *slog.Logger) *messaging.Relay {
	var writer messaging.MessageWriter
	if w := messaging.NewKafkaWriter(cfg.Kafka.Brokers); w != nil {
		writer = w
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return w.Close()
			},
		})
	}
	return messaging.NewRelay(uow, writer, cfg.Kafka, logger)
}

func NewExpirySweeper(expiry commands.ExpiryCommands, cfg config.Config, logger *slog.Logger) (*scheduler.Sweeper, error) {
	return scheduler.NewSweeper(expiry, cfg.Booking, logger)
}

func runOutboxRelay(lc fx.Lifecycle, relay *messaging.Relay) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				relay.Run(ctx)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})
}

func runExpirySweeper(lc fx.Lifecycle, sweeper *scheduler.Sweeper) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			sweeper.Start()
			return nil
		},
		OnStop: sweeper.Stop,
	})
}
