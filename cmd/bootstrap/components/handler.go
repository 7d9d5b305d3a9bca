package components

import (
	"flat-reservation/internal/handler"
	"flat-reservation/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewTenantHandler,
		api.NewFlatHandler,
		api.NewReservationHandler,
	),
	fx.Invoke(handler.NewRouter),
)
