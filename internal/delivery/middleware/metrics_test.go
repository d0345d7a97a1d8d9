package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domainerrors "venture/internal/domain/errors"
	"venture/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsMiddleware_Handle(t *testing.T) {
	m := metrics.New()
	e := echo.New()
	e.Use(NewMetricsMiddleware(m).Handle)
	e.GET("/ok/:id", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})
	e.POST("/conflict", func(c echo.Context) error {
		return domainerrors.ErrConnectionExists
	})

	for _, target := range []string{"/ok/1", "/ok/2"} {
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, target, nil))
	}
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/conflict", nil))

	expected := `
# HELP venture_http_requests_total HTTP requests by method, route and status code.
# TYPE venture_http_requests_total counter
venture_http_requests_total{method="GET",route="/ok/:id",status="204"} 2
venture_http_requests_total{method="POST",route="/conflict",status="409"} 1
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "venture_http_requests_total"))
}

func TestMetricsMiddleware_NilMetrics(t *testing.T) {
	e := echo.New()
	e.Use(NewMetricsMiddleware(nil).Handle)
	e.GET("/health", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}
