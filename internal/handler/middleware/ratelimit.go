package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/Fabri-com/esteticas/internal/handler/httperr"
	"github.com/Fabri-com/esteticas/internal/pkg/config"
	"github.com/Fabri-com/esteticas/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

var (
	errRateLimited        = errs.New("rate limit exceeded")
	errLimiterUnavailable = errs.New("rate limiter unavailable")
)

// WindowCounter counts hits on key inside a fixed window that starts at the first hit.
type WindowCounter interface {
	Hit(ctx context.Context, key string, window time.Duration) (int64, error)
}

var fixedWindowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

type RedisWindowCounter struct {
	rdb redis.Scripter
}

func NewRedisWindowCounter(rdb redis.Scripter) *RedisWindowCounter {
	return &RedisWindowCounter{rdb: rdb}
}

func (r *RedisWindowCounter) Hit(ctx context.Context, key string, window time.Duration) (int64, error) {
	res, err := fixedWindowScript.Run(ctx, r.rdb, []string{key}, window.Milliseconds()).Result()
	if err != nil {
		return 0, err
	}
	switch v := res.(type) {
	case int64:
		return v, nil
	case string:
		return strconv.ParseInt(v, 10, 64)
	default:
		return 0, errs.Newf("unexpected redis script result type %T", res)
	}
}

type RateLimiter struct {
	counter  WindowCounter
	limit    int
	window   time.Duration
	prefix   string
	failOpen bool
	logger   *slog.Logger
}

// NewRateLimiter returns nil when counter is nil; a nil limiter lets every request through.
func NewRateLimiter(counter WindowCounter, cfg config.RedisConfig, prefix string, logger *slog.Logger) *RateLimiter {
	if counter == nil {
		return nil
	}
	limit := cfg.RateLimit
	if limit <= 0 {
		limit = 10
	}
	window := cfg.RateWindow
	if window <= 0 {
		window = time.Minute
	}
	return &RateLimiter{
		counter:  counter,
		limit:    limit,
		window:   window,
		prefix:   prefix,
		failOpen: cfg.FailOpen,
		logger:   logger,
	}
}

func (rl *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl == nil {
			c.Next()
			return
		}

		key := rl.prefix + ":" + c.ClientIP()
		count, err := rl.counter.Hit(c.Request.Context(), key, rl.window)
		if err != nil {
			rl.logger.WarnContext(c.Request.Context(), "redis rate limiter error", "error", err.Error())
			if rl.failOpen {
				c.Next()
				return
			}
			httperr.AbortWithError(c, http.StatusServiceUnavailable, errs.Mark(errs.Wrap(err, "rate limiter"), errLimiterUnavailable), "Service temporarily unavailable", nil)
			return
		}

		if count > int64(rl.limit) {
			c.Header("Retry-After", strconv.Itoa(int(rl.window.Seconds())))
			httperr.AbortWithError(c, http.StatusTooManyRequests, errRateLimited, "Too many requests", nil)
			return
		}
		c.Next()
	}
}
