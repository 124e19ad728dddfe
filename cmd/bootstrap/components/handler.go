package components

import (
	"slotbook/internal/handler"
	"slotbook/internal/handler/api"
	"slotbook/internal/handler/middleware"
	"slotbook/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewSlotHandler,
		api.NewBookingHandler,
		func(cfg config.Config) *middleware.AdminAuth {
			return middleware.NewAdminAuth(cfg.Admin)
		},
	),
	fx.Invoke(handler.NewRouter),
)
