package memstore

import (
	"context"
	"log/slog"
	"sync"

	"flat-reservation/internal/domain/reservation"
	"flat-reservation/internal/infra"
	"flat-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

// reservationEntry pairs the current snapshot with the guard that was
// created for its id. The guard outlives every snapshot stored under it.
type reservationEntry struct {
	snapshot reservation.Reservation
	guard    *sync.Mutex
}

type ReservationStore struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]reservationEntry
	logger  *slog.Logger
}

func NewReservationStore(logger *slog.Logger) *ReservationStore {
	return &ReservationStore{
		entries: make(map[uuid.UUID]reservationEntry),
		logger:  logger,
	}
}

// Save inserts or replaces the snapshot for res.ID(). An existing guard is
// kept; a new one is created only for an unseen id.
func (s *ReservationStore) Save(_ context.Context, res reservation.Reservation) (reservation.Reservation, error) {
	if res.ID() == uuid.Nil {
		return reservation.Reservation{}, infra.WrapRepoErr(s.logger, infra.KindInvalidInput, "reservation id is required", nil)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[res.ID()]
	if !ok {
		entry.guard = &sync.Mutex{}
	}
	entry.snapshot = res
	s.entries[res.ID()] = entry

	return entry.snapshot, nil
}

func (s *ReservationStore) SaveAll(ctx context.Context, slots []reservation.Reservation) error {
	for _, slot := range slots {
		if _, err := s.Save(ctx, slot); err != nil {
			return err
		}
	}
	return nil
}

// FindByID returns a copy of the snapshot and the shared guard for id.
func (s *ReservationStore) FindByID(_ context.Context, id uuid.UUID) (reservation.Reservation, reservation.Guard, error) {
	s.mu.RLock()
	entry, ok := s.entries[id]
	s.mu.RUnlock()

	if !ok {
		return reservation.Reservation{}, nil, infra.NotFound(s.logger, errs.KindReservation, id)
	}
	return entry.snapshot, entry.guard, nil
}

// FindByFlat returns copies of every snapshot on flatID in no particular order.
func (s *ReservationStore) FindByFlat(_ context.Context, flatID uuid.UUID) ([]reservation.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]reservation.Reservation, 0)
	for _, entry := range s.entries {
		if entry.snapshot.FlatID() == flatID {
			result = append(result, entry.snapshot)
		}
	}
	return result, nil
}
