package queries

//go:generate mockgen -source=flat.go -destination=../../../tests/mock/queries/flat.go -package=queriesmock

import (
	"context"

	"flat-reservation/internal/domain/flat"

	"github.com/google/uuid"
)

type FlatReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (flat.Flat, error)
}

type FlatQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*FlatView, error)
}

type flatQueriesImpl struct {
	store FlatReadStore
}

func NewFlatQueries(store FlatReadStore) FlatQueries {
	return &flatQueriesImpl{store: store}
}

func (q *flatQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*FlatView, error) {
	f, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOrWrap(err, "failed to get flat")
	}
	return ToFlatView(f), nil
}

func ToFlatView(f flat.Flat) *FlatView {
	return &FlatView{ID: f.ID(), Address: f.Address(), OwnerTenantID: f.OwnerTenantID()}
}
