package notify

import (
	"context"
	"log/slog"

	"flat-reservation/internal/domain/reservation"
)

// LogSink writes one structured line per lifecycle notification.
type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Notify(ctx context.Context, n reservation.Notification) error {
	s.logger.InfoContext(ctx, "Reservation notification",
		slog.String("kind", string(n.Kind)),
		slog.String("tenant_id", n.TenantID.String()),
		slog.String("flat_id", n.FlatID.String()),
		slog.String("reservation_id", n.ReservationID.String()),
	)
	return nil
}
