package request

import (
	"github.com/google/uuid"
)

// ModifyReservationRequest is shared by reserve, approve, reject and cancel.
// TenantID is the acting tenant, already authenticated upstream.
type ModifyReservationRequest struct {
	ReservationID uuid.UUID `json:"reservationId" binding:"required"`
	TenantID      uuid.UUID `json:"tenantId" binding:"required"`
}
