package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Action outcomes. Busy is counted apart from errors.
const (
	OutcomeApplied   = "applied"
	OutcomeBusy      = "busy"
	OutcomeNotFound  = "not_found"
	OutcomeForbidden = "forbidden"
	OutcomeInvalid   = "invalid"
	OutcomeError     = "error"
)

type Recorder interface {
	Observe(action, outcome string, duration time.Duration)
}

type PrometheusRecorder struct {
	registry *prometheus.Registry
	actions  *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func NewPrometheusRecorder() *PrometheusRecorder {
	registry := prometheus.NewRegistry()
	actions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "flat_reservation_actions_total",
		Help: "Reservation actions by action and outcome.",
	}, []string{"action", "outcome"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "flat_reservation_action_duration_seconds",
		Help:    "Time spent handling a reservation action.",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
	}, []string{"action"})

	registry.MustRegister(actions, duration)

	return &PrometheusRecorder{
		registry: registry,
		actions:  actions,
		duration: duration,
	}
}

func (r *PrometheusRecorder) Observe(action, outcome string, duration time.Duration) {
	r.actions.WithLabelValues(action, outcome).Inc()
	r.duration.WithLabelValues(action).Observe(duration.Seconds())
}

func (r *PrometheusRecorder) Registry() *prometheus.Registry {
	return r.registry
}

func (r *PrometheusRecorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

type NopRecorder struct{}

func (NopRecorder) Observe(string, string, time.Duration) {}
