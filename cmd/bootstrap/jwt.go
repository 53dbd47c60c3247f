package bootstrap

import (
	"time"

	"github.com/Fabri-com/esteticas/internal/pkg/clock"
	"github.com/Fabri-com/esteticas/internal/pkg/config"
	"github.com/Fabri-com/esteticas/internal/pkg/errs"
	"github.com/Fabri-com/esteticas/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config, clk clock.Clock) (*jwt.Service, error) {
	duration, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		return nil, errs.Wrap(err, "invalid JWT_DURATION")
	}
	return jwt.NewService(cfg.JWT.Secret, duration, clk), nil
}
