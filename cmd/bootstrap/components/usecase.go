package components

import (
	"flat-reservation/internal/domain/reservation"
	"flat-reservation/internal/pkg/clock"
	"flat-reservation/internal/pkg/config"
	"flat-reservation/internal/usecase/commands"
	"flat-reservation/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(clk clock.Clock, cfg config.Config) *reservation.Lifecycle {
		return reservation.NewLifecycle(clk, cfg.Reservation.NoticePeriod)
	},
	NewSlotPlan,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewTenantCommands,
		commands.NewFlatCommands,
		commands.NewReservationCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewTenantQueries,
		queries.NewFlatQueries,
		queries.NewReservationQueries,
	),
)

func NewSlotPlan(cfg config.Config) (reservation.SlotPlan, error) {
	plan := reservation.SlotPlan{
		StartHour:     cfg.Slots.StartHour,
		EndHour:       cfg.Slots.EndHour,
		WindowMinutes: cfg.Slots.WindowMinutes,
		HorizonDays:   cfg.Slots.HorizonDays,
	}
	if err := plan.Validate(); err != nil {
		return reservation.SlotPlan{}, err
	}
	return plan, nil
}
