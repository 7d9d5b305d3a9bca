//go:build unit

package builder

import (
	"flat-reservation/internal/domain/flat"
	reqdto "flat-reservation/internal/handler/dto/request"
	"flat-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type FlatBuilder struct {
	ID            uuid.UUID
	Address       string
	OwnerTenantID uuid.UUID
}

func NewFlatBuilder() *FlatBuilder {
	return &FlatBuilder{
		ID:            uuid.New(),
		Address:       "221B Baker Street, London",
		OwnerTenantID: uuid.New(),
	}
}

func (b *FlatBuilder) With(mutate func(*FlatBuilder)) *FlatBuilder {
	mutate(b)
	return b
}

func (b *FlatBuilder) WithOwner(ownerID uuid.UUID) *FlatBuilder {
	b.OwnerTenantID = ownerID
	return b
}

func (b *FlatBuilder) BuildDomain() flat.Flat {
	return flat.ReconstructFlat(b.ID, b.Address, b.OwnerTenantID)
}

func (b *FlatBuilder) BuildView() *queries.FlatView {
	return &queries.FlatView{ID: b.ID, Address: b.Address, OwnerTenantID: b.OwnerTenantID}
}

func (b *FlatBuilder) BuildCreateRequestDTO() reqdto.CreateFlatRequest {
	return reqdto.CreateFlatRequest{Address: b.Address, TenantID: b.OwnerTenantID}
}
