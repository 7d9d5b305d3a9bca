package queries

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/queries/reservation.go -package=queriesmock

import (
	"context"
	"errors"

	"flat-reservation/internal/domain/reservation"
	"flat-reservation/internal/infra"
	"flat-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (reservation.Reservation, reservation.Guard, error)
	FindByFlat(ctx context.Context, flatID uuid.UUID) ([]reservation.Reservation, error)
}

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindByFlat(ctx context.Context, flatID uuid.UUID) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
}

func NewReservationQueries(store ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{store: store}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	res, _, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOrWrap(err, "failed to get reservation")
	}
	return ToReservationView(res), nil
}

// FindByFlat returns the flat's slots in no particular order; an unknown
// flat yields an empty list.
func (q *reservationQueriesImpl) FindByFlat(ctx context.Context, flatID uuid.UUID) ([]*ReservationView, error) {
	slots, err := q.store.FindByFlat(ctx, flatID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list reservations")
	}

	views := make([]*ReservationView, len(slots))
	for i, res := range slots {
		views[i] = ToReservationView(res)
	}
	return views, nil
}

func ToReservationView(res reservation.Reservation) *ReservationView {
	view := &ReservationView{
		ID:       res.ID(),
		FlatID:   res.FlatID(),
		SlotTime: res.SlotTime(),
		Status:   res.Status().String(),
	}
	if occupant, ok := res.OccupantID(); ok {
		view.OccupantTenantID = &occupant
	}
	return view
}

func notFoundOrWrap(err error, msg string) error {
	if infra.IsKind(err, infra.KindNotFound) {
		var nf *errs.NotFoundError
		if errors.As(err, &nf) {
			return nf
		}
	}
	return errs.Wrap(err, msg)
}
