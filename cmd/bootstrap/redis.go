package bootstrap

import (
	"context"
	"log/slog"

	"github.com/Fabri-com/esteticas/internal/handler/middleware"
	"github.com/Fabri-com/esteticas/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const bookingRateLimitPrefix = "rl:booking"

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedisClient,
		NewBookingRateLimiter,
	),
)

// NewRedisClient returns nil when REDIS_ADDR is unset; booking then runs without a rate limit.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) *redis.Client {
	if cfg.Redis.Addr == "" {
		logger.Warn("redis not configured, booking rate limit disabled")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := rdb.Ping(ctx).Err(); err != nil {
				// limiter fails open or closed per BOOKING_RATE_FAIL_OPEN
				logger.Warn("redis ping failed", "error", err.Error())
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})
	return rdb
}

func NewBookingRateLimiter(rdb *redis.Client, cfg config.Config, logger *slog.Logger) *middleware.RateLimiter {
	if rdb == nil {
		return nil
	}
	return middleware.NewRateLimiter(middleware.NewRedisWindowCounter(rdb), cfg.Redis, bookingRateLimitPrefix, logger)
}
