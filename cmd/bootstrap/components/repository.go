package components

import (
	"flat-reservation/internal/infra/memstore"
	"flat-reservation/internal/infra/notify"
	"flat-reservation/internal/usecase/commands"
	"flat-reservation/internal/usecase/queries"

	"go.uber.org/fx"
)

// RepositoryModule binds the in-memory stores to the write and read ports.
var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// Tenant
		func(s *memstore.TenantStore) commands.TenantRepository { return s },
		func(s *memstore.TenantStore) queries.TenantReadStore { return s },
		// Flat
		func(s *memstore.FlatStore) commands.FlatRepository { return s },
		func(s *memstore.FlatStore) queries.FlatReadStore { return s },
		// Reservation
		func(s *memstore.ReservationStore) commands.ReservationRepository { return s },
		func(s *memstore.ReservationStore) queries.ReservationReadStore { return s },
		// Notification
		func(f *notify.FanOut) commands.Notifier { return f },
	),
)
