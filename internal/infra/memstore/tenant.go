package memstore

import (
	"context"
	"log/slog"
	"sync"

	"flat-reservation/internal/domain/tenant"
	"flat-reservation/internal/infra"
	"flat-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

type TenantStore struct {
	mu      sync.RWMutex
	tenants map[uuid.UUID]tenant.Tenant
	logger  *slog.Logger
}

func NewTenantStore(logger *slog.Logger) *TenantStore {
	return &TenantStore{
		tenants: make(map[uuid.UUID]tenant.Tenant),
		logger:  logger,
	}
}

func (s *TenantStore) Save(_ context.Context, t tenant.Tenant) (tenant.Tenant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tenants[t.ID()] = t
	return t, nil
}

func (s *TenantStore) FindByID(_ context.Context, id uuid.UUID) (tenant.Tenant, error) {
	s.mu.RLock()
	t, ok := s.tenants[id]
	s.mu.RUnlock()
	if !ok {
		return tenant.Tenant{}, infra.NotFound(s.logger, errs.KindTenant, id)
	}
	return t, nil
}
