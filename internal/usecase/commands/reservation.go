package commands

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/commands/reservation.go -package=commandsmock

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"flat-reservation/internal/domain/flat"
	"flat-reservation/internal/domain/reservation"
	"flat-reservation/internal/infra"
	"flat-reservation/internal/infra/metrics"
	"flat-reservation/internal/pkg/clock"
	"flat-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrStoreOperationFailed = errs.New("store operation failed")

// ActionResult is false when the reservation was busy; the caller may retry.
type ActionResult struct {
	Applied bool `json:"applied"`
}

type ReservationCommands interface {
	Reserve(ctx context.Context, reservationID, tenantID uuid.UUID) (ActionResult, error)
	Cancel(ctx context.Context, reservationID, tenantID uuid.UUID) (ActionResult, error)
	Approve(ctx context.Context, reservationID, tenantID uuid.UUID) (ActionResult, error)
	Reject(ctx context.Context, reservationID, tenantID uuid.UUID) (ActionResult, error)
}

type reservationCommandsImpl struct {
	reservations ReservationRepository
	tenants      TenantRepository
	flats        FlatRepository
	notifier     Notifier
	lifecycle    *reservation.Lifecycle
	metrics      MetricsRecorder
	clock        clock.Clock
	logger       *slog.Logger
}

func NewReservationCommands(
	reservations ReservationRepository,
	tenants TenantRepository,
	flats FlatRepository,
	notifier Notifier,
	lifecycle *reservation.Lifecycle,
	recorder MetricsRecorder,
	clk clock.Clock,
	logger *slog.Logger,
) ReservationCommands {
	return &reservationCommandsImpl{
		reservations: reservations,
		tenants:      tenants,
		flats:        flats,
		notifier:     notifier,
		lifecycle:    lifecycle,
		metrics:      recorder,
		clock:        clk,
		logger:       logger,
	}
}

func (uc *reservationCommandsImpl) Reserve(ctx context.Context, reservationID, tenantID uuid.UUID) (ActionResult, error) {
	return uc.run(ctx, reservation.EventReserve, reservationID, tenantID)
}

func (uc *reservationCommandsImpl) Cancel(ctx context.Context, reservationID, tenantID uuid.UUID) (ActionResult, error) {
	return uc.run(ctx, reservation.EventCancel, reservationID, tenantID)
}

func (uc *reservationCommandsImpl) Approve(ctx context.Context, reservationID, tenantID uuid.UUID) (ActionResult, error) {
	return uc.run(ctx, reservation.EventApprove, reservationID, tenantID)
}

func (uc *reservationCommandsImpl) Reject(ctx context.Context, reservationID, tenantID uuid.UUID) (ActionResult, error) {
	return uc.run(ctx, reservation.EventReject, reservationID, tenantID)
}

func (uc *reservationCommandsImpl) run(
	ctx context.Context,
	event reservation.Event,
	reservationID, tenantID uuid.UUID,
) (result ActionResult, err error) {
	started := time.Now()
	defer func() {
		uc.metrics.Observe(event.String(), outcomeOf(result, err), time.Since(started))
	}()

	_, guard, err := uc.reservations.FindByID(ctx, reservationID)
	if err != nil {
		return ActionResult{}, translateRepoErr(err)
	}

	if !guard.TryLock() {
		uc.logger.WarnContext(ctx, "Reservation busy",
			slog.String("event", event.String()),
			slog.String("reservation_id", reservationID.String()),
			slog.String("tenant_id", tenantID.String()),
		)
		return ActionResult{Applied: false}, nil
	}
	defer guard.Unlock()

	// The snapshot read before locking may be stale; only the one read under
	// the guard is current.
	current, _, err := uc.reservations.FindByID(ctx, reservationID)
	if err != nil {
		return ActionResult{}, translateRepoErr(err)
	}

	if err := uc.transition(ctx, event, current, tenantID); err != nil {
		return ActionResult{}, err
	}
	return ActionResult{Applied: true}, nil
}

// transition runs with the reservation guard held.
func (uc *reservationCommandsImpl) transition(
	ctx context.Context,
	event reservation.Event,
	current reservation.Reservation,
	tenantID uuid.UUID,
) error {
	f, err := uc.flats.FindByID(ctx, current.FlatID())
	if err != nil {
		return translateRepoErr(err)
	}
	actor, err := uc.tenants.FindByID(ctx, tenantID)
	if err != nil {
		return translateRepoErr(err)
	}

	next, err := uc.lifecycle.Apply(current, reservation.Request{Event: event, Actor: actor, Flat: f})
	if err != nil {
		return err
	}

	saved, err := uc.reservations.Save(ctx, next)
	if err != nil {
		return errs.Mark(err, ErrStoreOperationFailed)
	}

	uc.logger.InfoContext(ctx, "Reservation transition applied",
		slog.String("event", event.String()),
		slog.String("reservation_id", saved.ID().String()),
		slog.String("from", current.Status().String()),
		slog.String("to", saved.Status().String()),
		slog.String("tenant_id", actor.ID().String()),
	)

	uc.notify(ctx, notificationFor(event, current, f, uc.clock.Now()))
	return nil
}

// notify never fails the action: the transition is already saved.
func (uc *reservationCommandsImpl) notify(ctx context.Context, n reservation.Notification) {
	if err := uc.notifier.Notify(ctx, n); err != nil {
		uc.logger.ErrorContext(ctx, "Failed to deliver reservation notification",
			slog.String("kind", string(n.Kind)),
			slog.String("reservation_id", n.ReservationID.String()),
			slog.Any("error", err),
		)
	}
}

// notificationFor picks the recipient: the flat owner for created and
// canceled, the occupant before the transition for approved and rejected.
func notificationFor(event reservation.Event, before reservation.Reservation, f flat.Flat, now time.Time) reservation.Notification {
	n := reservation.Notification{
		FlatID:        f.ID(),
		ReservationID: before.ID(),
		OccurredAt:    now,
		TenantID:      f.OwnerTenantID(),
	}
	occupant, _ := before.OccupantID()

	switch event {
	case reservation.EventReserve:
		n.Kind = reservation.NotificationCreated
	case reservation.EventCancel:
		n.Kind = reservation.NotificationCanceled
	case reservation.EventApprove:
		n.Kind = reservation.NotificationApproved
		n.TenantID = occupant
	case reservation.EventReject:
		n.Kind = reservation.NotificationRejected
		n.TenantID = occupant
	}
	return n
}

func translateRepoErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		var nf *errs.NotFoundError
		if errors.As(err, &nf) {
			return nf
		}
	}
	return errs.Mark(err, ErrStoreOperationFailed)
}

func outcomeOf(result ActionResult, err error) string {
	switch {
	case err == nil && result.Applied:
		return metrics.OutcomeApplied
	case err == nil:
		return metrics.OutcomeBusy
	case errors.Is(err, errs.ErrNotFound):
		return metrics.OutcomeNotFound
	case errors.Is(err, errs.ErrAuthorization):
		return metrics.OutcomeForbidden
	case errors.Is(err, errs.ErrValidation):
		return metrics.OutcomeInvalid
	default:
		return metrics.OutcomeError
	}
}
