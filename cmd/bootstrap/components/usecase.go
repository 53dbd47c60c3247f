package components

import (
	"log/slog"
	"time"

	"github.com/Fabri-com/esteticas/internal/domain/appointment"
	"github.com/Fabri-com/esteticas/internal/pkg/clock"
	"github.com/Fabri-com/esteticas/internal/pkg/config"
	"github.com/Fabri-com/esteticas/internal/pkg/jwt"
	"github.com/Fabri-com/esteticas/internal/usecase/commands"
	"github.com/Fabri-com/esteticas/internal/usecase/queries"
	"github.com/Fabri-com/esteticas/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(clk clock.Clock, cfg config.Config) *appointment.Factory {
		return appointment.NewFactory(clk, cfg.Booking.Buffer(), cfg.Booking.Hold())
	},
	fx.Annotate(
		func(s *jwt.Service) *jwt.Service { return s },
		fx.As(new(commands.TokenIssuer)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewAppointmentCommands,
		commands.NewExpiryCommands,
		func(uow shared.UnitOfWork, factory *appointment.Factory, loc *time.Location, cfg config.Config, logger *slog.Logger) commands.BookingCommands {
			return commands.NewBookingCommands(uow, factory, loc, cfg.Booking.WhatsAppPhone, logger)
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewServiceQueries,
		queries.NewAvailabilityQueries,
		queries.NewCustomerQueries,
		queries.NewAppointmentQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		queries.NewTokenValidator,
	),
)
