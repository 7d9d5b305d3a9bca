package memstore

import (
	"context"
	"log/slog"
	"sync"

	"flat-reservation/internal/domain/flat"
	"flat-reservation/internal/infra"
	"flat-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

type FlatStore struct {
	mu     sync.RWMutex
	flats  map[uuid.UUID]flat.Flat
	logger *slog.Logger
}

func NewFlatStore(logger *slog.Logger) *FlatStore {
	return &FlatStore{
		flats:  make(map[uuid.UUID]flat.Flat),
		logger: logger,
	}
}

func (s *FlatStore) Save(_ context.Context, f flat.Flat) (flat.Flat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flats[f.ID()] = f
	return f, nil
}

func (s *FlatStore) FindByID(_ context.Context, id uuid.UUID) (flat.Flat, error) {
	s.mu.RLock()
	f, ok := s.flats[id]
	s.mu.RUnlock()
	if !ok {
		return flat.Flat{}, infra.NotFound(s.logger, errs.KindFlat, id)
	}
	return f, nil
}
