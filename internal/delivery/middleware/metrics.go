package middleware

import (
	"net/http"
	"time"

	domainerrors "venture/internal/domain/errors"
	"venture/internal/errors"
	"venture/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// MetricsMiddleware records request count and latency per route
type MetricsMiddleware struct {
	metrics *metrics.Metrics
}

// NewMetricsMiddleware creates a new metrics middleware. A nil collector disables recording.
func NewMetricsMiddleware(m *metrics.Metrics) *MetricsMiddleware {
	return &MetricsMiddleware{metrics: m}
}

// Handle observes the request after the handler chain returns
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		// Route template keeps label cardinality bounded
		route := c.Path()
		if route == "" {
			route = "unmatched"
		}

		m.metrics.ObserveHTTP(c.Request().Method, route, statusOf(c, err), time.Since(start))

		return err
	}
}

// statusOf predicts the status the error handler will write for err, since it runs after this
// middleware returns.
func statusOf(c echo.Context, err error) int {
	if err == nil {
		return c.Response().Status
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}
