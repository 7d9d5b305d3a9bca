package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"flat-reservation/internal/domain/reservation"
	"flat-reservation/internal/infra"
	"flat-reservation/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

const headerEventKind = "event-kind"

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type eventPayload struct {
	Kind          string    `json:"kind"`
	TenantID      uuid.UUID `json:"tenant_id"`
	FlatID        uuid.UUID `json:"flat_id"`
	ReservationID uuid.UUID `json:"reservation_id"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// KafkaSink publishes notifications as JSON, keyed by flat id so events of
// one flat stay on one partition.
type KafkaSink struct {
	writer       messageWriter
	writeTimeout time.Duration
	logger       *slog.Logger
}

func NewKafkaSink(cfg config.KafkaConfig, logger *slog.Logger) *KafkaSink {
	return newKafkaSink(newWriter(cfg, logger), cfg.WriteTimeout, logger)
}

func newWriter(cfg config.KafkaConfig, logger *slog.Logger) *kafka.Writer {
	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		WriteTimeout: cfg.WriteTimeout,
		Async:        cfg.Async,
		Logger:       kafka.LoggerFunc(func(string, ...any) {}),
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...any) {
			logger.Error("kafka writer error", "message", msg, "args", args)
		}),
	}
	if cfg.Async {
		w.Completion = logCompletion(logger)
	}
	return w
}

// logCompletion reports failed batches of an async writer, which never
// surface from WriteMessages.
func logCompletion(logger *slog.Logger) func([]kafka.Message, error) {
	return func(msgs []kafka.Message, err error) {
		if err == nil {
			return
		}
		for _, m := range msgs {
			logger.Error("Failed to publish notification",
				slog.String("flat_id", string(m.Key)),
				slog.String("kind", eventKind(m)),
				slog.Any("error", err),
			)
		}
	}
}

func eventKind(m kafka.Message) string {
	for _, h := range m.Headers {
		if h.Key == headerEventKind {
			return string(h.Value)
		}
	}
	return ""
}

func newKafkaSink(writer messageWriter, writeTimeout time.Duration, logger *slog.Logger) *KafkaSink {
	return &KafkaSink{
		writer:       writer,
		writeTimeout: writeTimeout,
		logger:       logger,
	}
}

func (s *KafkaSink) Notify(ctx context.Context, n reservation.Notification) error {
	payload, err := json.Marshal(eventPayload{
		Kind:          string(n.Kind),
		TenantID:      n.TenantID,
		FlatID:        n.FlatID,
		ReservationID: n.ReservationID,
		OccurredAt:    n.OccurredAt,
	})
	if err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindPublish, "failed to encode notification", err)
	}

	if s.writeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.writeTimeout)
		defer cancel()
	}

	msg := kafka.Message{
		Key:   []byte(n.FlatID.String()),
		Value: payload,
		Time:  n.OccurredAt,
		Headers: []kafka.Header{
			{Key: headerEventKind, Value: []byte(n.Kind)},
		},
	}
	if err := s.writer.WriteMessages(ctx, msg); err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindPublish, "failed to publish notification", err)
	}
	return nil
}

func (s *KafkaSink) Close() error {
	return s.writer.Close()
}
