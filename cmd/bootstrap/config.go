package bootstrap

import (
	"time"

	"github.com/Fabri-com/esteticas/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewBusinessLocation,
	),
)

// NewBusinessLocation resolves the timezone every slot and agenda date is read in.
func NewBusinessLocation(cfg config.Config) (*time.Location, error) {
	return cfg.Booking.Location()
}
