package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_ObserveHTTP(t *testing.T) {
	m := New()
	m.ObserveHTTP(http.MethodGet, "/api/v1/nearby/:entityType", http.StatusOK, 20*time.Millisecond)
	m.ObserveHTTP(http.MethodGet, "/api/v1/nearby/:entityType", http.StatusOK, 30*time.Millisecond)

	assert.InDelta(t, 2, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/api/v1/nearby/:entityType", "200")), 0)
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveHTTP(http.MethodGet, "/health", http.StatusOK, time.Millisecond)
		m.ObserveProximity("freelancer", 10, 2)
	})
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.ObserveProximity("freelancer", 10, 2)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `venture_proximity_candidates_count{entity_type="freelancer"} 1`)
}
