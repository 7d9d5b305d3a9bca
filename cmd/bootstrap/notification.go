package bootstrap

import (
	"context"
	"log/slog"

	"flat-reservation/internal/infra/notify"
	"flat-reservation/internal/pkg/config"

	"go.uber.org/fx"
)

var NotificationModule = fx.Module("notification",
	fx.Provide(
		NewNotifier,
	),
)

func NewNotifier(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) *notify.FanOut {
	sinks := []notify.Sink{notify.NewLogSink(logger)}

	if cfg.Notification.Kafka.Enabled {
		kafkaSink := notify.NewKafkaSink(cfg.Notification.Kafka, logger)
		sinks = append(sinks, kafkaSink)

		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return kafkaSink.Close()
			},
		})
		logger.Info("Kafka notifications enabled",
			slog.Any("brokers", cfg.Notification.Kafka.Brokers),
			slog.String("topic", cfg.Notification.Kafka.Topic),
		)
	}

	return notify.NewFanOut(sinks...)
}
