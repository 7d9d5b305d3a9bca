package bootstrap

import (
	"flat-reservation/internal/infra/metrics"
	"flat-reservation/internal/pkg/config"
	"flat-reservation/internal/usecase/commands"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		metrics.NewPrometheusRecorder,
		NewMetricsRecorder,
	),
)

func NewMetricsRecorder(cfg config.Config, prom *metrics.PrometheusRecorder) commands.MetricsRecorder {
	if !cfg.Metrics.Enabled {
		return metrics.NopRecorder{}
	}
	return prom
}
