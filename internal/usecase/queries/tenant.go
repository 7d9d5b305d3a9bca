package queries

//go:generate mockgen -source=tenant.go -destination=../../../tests/mock/queries/tenant.go -package=queriesmock

import (
	"context"

	"flat-reservation/internal/domain/tenant"

	"github.com/google/uuid"
)

type TenantReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (tenant.Tenant, error)
}

type TenantQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*TenantView, error)
}

type tenantQueriesImpl struct {
	store TenantReadStore
}

func NewTenantQueries(store TenantReadStore) TenantQueries {
	return &tenantQueriesImpl{store: store}
}

func (q *tenantQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*TenantView, error) {
	t, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOrWrap(err, "failed to get tenant")
	}
	return ToTenantView(t), nil
}

func ToTenantView(t tenant.Tenant) *TenantView {
	return &TenantView{ID: t.ID(), Email: t.Email().Value()}
}
