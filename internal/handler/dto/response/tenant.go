package response

import (
	"flat-reservation/internal/domain/tenant"
	"flat-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type TenantResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

func FromTenant(t tenant.Tenant) *TenantResponse {
	return &TenantResponse{ID: t.ID(), Email: t.Email().Value()}
}

func FromTenantView(v *queries.TenantView) *TenantResponse {
	return &TenantResponse{ID: v.ID, Email: v.Email}
}
