package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidSnapshot = errors.New("invalid reservation snapshot")

// Reservation is an immutable snapshot of one bookable slot on a flat.
// Transitions return a new value; the zero occupant means "absent".
type Reservation struct {
	id         uuid.UUID
	slotTime   time.Time
	flatID     uuid.UUID
	status     Status
	occupantID uuid.UUID
}

// NewFreeSlot creates a slot in FREE status.
func NewFreeSlot(flatID uuid.UUID, slotTime time.Time) Reservation {
	return Reservation{
		id:       uuid.New(),
		slotTime: slotTime.UTC(),
		flatID:   flatID,
		status:   StatusFree,
	}
}

// ReconstructReservation rebuilds a snapshot and checks the occupant/status
// pairing: an occupant is present iff status is RESERVED or APPROVED.
func ReconstructReservation(
	id, flatID uuid.UUID,
	slotTime time.Time,
	status Status,
	occupantID uuid.UUID,
) (Reservation, error) {
	if !status.IsValid() {
		return Reservation{}, ErrInvalidSnapshot
	}
	if status.HasOccupant() != (occupantID != uuid.Nil) {
		return Reservation{}, ErrInvalidSnapshot
	}
	return Reservation{
		id:         id,
		slotTime:   slotTime.UTC(),
		flatID:     flatID,
		status:     status,
		occupantID: occupantID,
	}, nil
}

func (r Reservation) withStatus(status Status, occupantID uuid.UUID) Reservation {
	next := r
	next.status = status
	next.occupantID = occupantID
	return next
}

func (r Reservation) IsOccupiedBy(tenantID uuid.UUID) bool {
	return r.occupantID != uuid.Nil && r.occupantID == tenantID
}

func (r Reservation) ID() uuid.UUID       { return r.id }
func (r Reservation) SlotTime() time.Time { return r.slotTime }
func (r Reservation) FlatID() uuid.UUID   { return r.flatID }
func (r Reservation) Status() Status      { return r.status }

// OccupantID returns the occupant and whether one is present.
func (r Reservation) OccupantID() (uuid.UUID, bool) {
	return r.occupantID, r.occupantID != uuid.Nil
}
