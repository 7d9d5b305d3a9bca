package notify

import (
	"context"

	"flat-reservation/internal/domain/reservation"
	"flat-reservation/internal/pkg/errs"
)

type Sink interface {
	Notify(ctx context.Context, n reservation.Notification) error
}

// FanOut delivers to every sink even if an earlier one fails.
type FanOut struct {
	sinks []Sink
}

func NewFanOut(sinks ...Sink) *FanOut {
	return &FanOut{sinks: sinks}
}

func (f *FanOut) Notify(ctx context.Context, n reservation.Notification) error {
	var failures []error
	for _, s := range f.sinks {
		if err := s.Notify(ctx, n); err != nil {
			failures = append(failures, err)
		}
	}
	return errs.Join(failures...)
}
