package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type ReservationView struct {
	ID               uuid.UUID  `json:"id"`
	FlatID           uuid.UUID  `json:"flat_id"`
	SlotTime         time.Time  `json:"slot_time"`
	Status           string     `json:"status"`
	OccupantTenantID *uuid.UUID `json:"occupant_tenant_id,omitempty"`
}

type TenantView struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

type FlatView struct {
	ID            uuid.UUID `json:"id"`
	Address       string    `json:"address"`
	OwnerTenantID uuid.UUID `json:"owner_tenant_id"`
}
