package request

import (
	"github.com/google/uuid"
)

type CreateFlatRequest struct {
	Address  string    `json:"address" binding:"required,max=512"`
	TenantID uuid.UUID `json:"tenantId" binding:"required"`
}
