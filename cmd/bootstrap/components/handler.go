package components

import (
	"github.com/Fabri-com/esteticas/internal/handler"
	"github.com/Fabri-com/esteticas/internal/handler/api"
	"github.com/Fabri-com/esteticas/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewServiceHandler,
		api.NewAppointmentHandler,
		api.NewCustomerHandler,
		api.NewAdminHandler,
		api.NewAuthHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	service *api.ServiceHandler,
	appointment *api.AppointmentHandler,
	customer *api.CustomerHandler,
	admin *api.AdminHandler,
	auth *api.AuthHandler,
) handler.Handlers {
	return handler.Handlers{
		Service:     service,
		Appointment: appointment,
		Customer:    customer,
		Admin:       admin,
		Auth:        auth,
	}
}
