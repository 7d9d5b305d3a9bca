//go:build unit

package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"flat-reservation/internal/infra/metrics"

	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusRecorder_Observe(t *testing.T) {
	r := metrics.NewPrometheusRecorder()

	r.Observe("reserve", metrics.OutcomeApplied, 2*time.Millisecond)
	r.Observe("reserve", metrics.OutcomeApplied, 3*time.Millisecond)
	r.Observe("reserve", metrics.OutcomeBusy, time.Millisecond)
	r.Observe("cancel", metrics.OutcomeForbidden, time.Millisecond)

	count, err := promtestutil.GatherAndCount(r.Registry(), "flat_reservation_actions_total")
	require.NoError(t, err)
	assert.Equal(t, 3, count, "one series per action/outcome pair")

	count, err = promtestutil.GatherAndCount(r.Registry(), "flat_reservation_action_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, count, "one histogram per action")
}

func TestPrometheusRecorder_Handler(t *testing.T) {
	r := metrics.NewPrometheusRecorder()
	r.Observe("approve", metrics.OutcomeApplied, time.Millisecond)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `flat_reservation_actions_total{action="approve",outcome="applied"} 1`)
}

func TestNopRecorder(t *testing.T) {
	assert.NotPanics(t, func() {
		metrics.NopRecorder{}.Observe("reserve", metrics.OutcomeApplied, time.Second)
	})
}
