package commands

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports.go -package=commandsmock

import (
	"context"
	"time"

	"flat-reservation/internal/domain/flat"
	"flat-reservation/internal/domain/reservation"
	"flat-reservation/internal/domain/tenant"

	"github.com/google/uuid"
)

type ReservationRepository interface {
	Save(ctx context.Context, res reservation.Reservation) (reservation.Reservation, error)
	SaveAll(ctx context.Context, slots []reservation.Reservation) error
	FindByID(ctx context.Context, id uuid.UUID) (reservation.Reservation, reservation.Guard, error)
}

type TenantRepository interface {
	Save(ctx context.Context, t tenant.Tenant) (tenant.Tenant, error)
	FindByID(ctx context.Context, id uuid.UUID) (tenant.Tenant, error)
}

type FlatRepository interface {
	Save(ctx context.Context, f flat.Flat) (flat.Flat, error)
	FindByID(ctx context.Context, id uuid.UUID) (flat.Flat, error)
}

// Notifier receives lifecycle notifications. Its errors never reach callers.
type Notifier interface {
	Notify(ctx context.Context, n reservation.Notification) error
}

type MetricsRecorder interface {
	Observe(action, outcome string, duration time.Duration)
}
