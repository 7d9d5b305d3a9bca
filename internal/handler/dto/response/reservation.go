package response

import (
	"time"

	"flat-reservation/internal/usecase/commands"
	"flat-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID               uuid.UUID  `json:"id"`
	FlatID           uuid.UUID  `json:"flatId"`
	SlotTime         time.Time  `json:"slotTime"`
	Status           string     `json:"status"`
	OccupantTenantID *uuid.UUID `json:"occupantTenantId,omitempty"`
}

type ActionResponse struct {
	Applied bool `json:"applied"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:               v.ID,
		FlatID:           v.FlatID,
		SlotTime:         v.SlotTime,
		Status:           v.Status,
		OccupantTenantID: v.OccupantTenantID,
	}
}

func FromReservationViews(vs []*queries.ReservationView) []*ReservationResponse {
	out := make([]*ReservationResponse, len(vs))
	for i, v := range vs {
		out[i] = FromReservationView(v)
	}
	return out
}

func FromActionResult(r commands.ActionResult) ActionResponse {
	return ActionResponse{Applied: r.Applied}
}
