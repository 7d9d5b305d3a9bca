package response

import (
	"flat-reservation/internal/domain/flat"
	"flat-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type FlatResponse struct {
	ID       uuid.UUID `json:"id"`
	Address  string    `json:"address"`
	TenantID uuid.UUID `json:"tenantId"`
}

func FromFlat(f flat.Flat) *FlatResponse {
	return &FlatResponse{ID: f.ID(), Address: f.Address(), TenantID: f.OwnerTenantID()}
}

func FromFlatView(v *queries.FlatView) *FlatResponse {
	return &FlatResponse{ID: v.ID, Address: v.Address, TenantID: v.OwnerTenantID}
}
