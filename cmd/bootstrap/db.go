package bootstrap

import (
	"context"

	"github.com/Fabri-com/esteticas/internal/handler"
	"github.com/Fabri-com/esteticas/internal/infra/db"
	"github.com/Fabri-com/esteticas/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
		NewReadyProbe,
	),
)

func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}

func NewReadyProbe(pool *pgxpool.Pool) handler.ReadyProbe {
	return handler.ReadyProbe(db.ReadyCheck(pool))
}
