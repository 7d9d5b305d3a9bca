package commands

//go:generate mockgen -source=flat.go -destination=../../../tests/mock/commands/flat.go -package=commandsmock

import (
	"context"
	"log/slog"

	"flat-reservation/internal/domain/flat"
	"flat-reservation/internal/domain/reservation"
	"flat-reservation/internal/pkg/clock"
	"flat-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrSlotGenerationFailed = errs.New("slot generation failed")

type FlatCommands interface {
	CreateFlat(ctx context.Context, address string, ownerTenantID uuid.UUID) (flat.Flat, error)
}

type flatCommandsImpl struct {
	flats        FlatRepository
	tenants      TenantRepository
	reservations ReservationRepository
	plan         reservation.SlotPlan
	clock        clock.Clock
	logger       *slog.Logger
}

func NewFlatCommands(
	flats FlatRepository,
	tenants TenantRepository,
	reservations ReservationRepository,
	plan reservation.SlotPlan,
	clk clock.Clock,
	logger *slog.Logger,
) FlatCommands {
	return &flatCommandsImpl{
		flats:        flats,
		tenants:      tenants,
		reservations: reservations,
		plan:         plan,
		clock:        clk,
		logger:       logger,
	}
}

// CreateFlat stores the flat and fills the configured week with FREE slots.
func (uc *flatCommandsImpl) CreateFlat(ctx context.Context, address string, ownerTenantID uuid.UUID) (flat.Flat, error) {
	owner, err := uc.tenants.FindByID(ctx, ownerTenantID)
	if err != nil {
		return flat.Flat{}, translateRepoErr(err)
	}

	f, err := flat.NewFlat(address, owner.ID())
	if err != nil {
		return flat.Flat{}, errs.NewValidation(err.Error())
	}

	slots, err := uc.plan.FreeSlots(f.ID(), uc.clock.Now())
	if err != nil {
		return flat.Flat{}, errs.Mark(err, ErrSlotGenerationFailed)
	}

	saved, err := uc.flats.Save(ctx, f)
	if err != nil {
		return flat.Flat{}, errs.Mark(err, ErrStoreOperationFailed)
	}
	if err := uc.reservations.SaveAll(ctx, slots); err != nil {
		return flat.Flat{}, errs.Mark(err, ErrStoreOperationFailed)
	}

	uc.logger.InfoContext(ctx, "Flat created",
		slog.String("flat_id", saved.ID().String()),
		slog.String("owner_tenant_id", owner.ID().String()),
		slog.Int("slots", len(slots)),
	)
	return saved, nil
}
