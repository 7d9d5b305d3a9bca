package bootstrap

import (
	"flat-reservation/internal/infra/memstore"

	"go.uber.org/fx"
)

// StoreModule holds all state in process memory; it is lost on restart.
var StoreModule = fx.Module("store",
	fx.Provide(
		memstore.NewTenantStore,
		memstore.NewFlatStore,
		memstore.NewReservationStore,
	),
)
