//go:build unit

package builder

import (
	"time"

	"flat-reservation/internal/domain/reservation"
	reqdto "flat-reservation/internal/handler/dto/request"
	"flat-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID         uuid.UUID
	FlatID     uuid.UUID
	SlotTime   time.Time
	Status     reservation.Status
	OccupantID uuid.UUID
}

// NewReservationBuilder starts from a FREE slot three days ahead.
func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:       uuid.New(),
		FlatID:   uuid.New(),
		SlotTime: time.Now().UTC().Add(72 * time.Hour).Truncate(time.Minute),
		Status:   reservation.StatusFree,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) WithFlat(flatID uuid.UUID) *ReservationBuilder {
	b.FlatID = flatID
	return b
}

func (b *ReservationBuilder) WithSlotTime(t time.Time) *ReservationBuilder {
	b.SlotTime = t
	return b
}

// WithStatus sets status and occupant together; pass uuid.Nil for FREE and REJECTED.
func (b *ReservationBuilder) WithStatus(status reservation.Status, occupantID uuid.UUID) *ReservationBuilder {
	b.Status = status
	b.OccupantID = occupantID
	return b
}

func (b *ReservationBuilder) BuildDomain() reservation.Reservation {
	res, err := reservation.ReconstructReservation(b.ID, b.FlatID, b.SlotTime, b.Status, b.OccupantID)
	if err != nil {
		panic(err)
	}
	return res
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	return queries.ToReservationView(b.BuildDomain())
}

func (b *ReservationBuilder) BuildModifyRequestDTO(tenantID uuid.UUID) reqdto.ModifyReservationRequest {
	return reqdto.ModifyReservationRequest{ReservationID: b.ID, TenantID: tenantID}
}
