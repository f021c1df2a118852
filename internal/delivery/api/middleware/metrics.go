package middleware

import (
	"net/http"
	"strconv"
	"time"

	domainerrors "ridingcourse/internal/domain/errors"
	"ridingcourse/internal/errors"
	"ridingcourse/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// MetricsMiddleware observes request latency under the matched route template.
type MetricsMiddleware struct {
	metrics *metrics.Metrics
}

func NewMetricsMiddleware(m *metrics.Metrics) *MetricsMiddleware {
	return &MetricsMiddleware{metrics: m}
}

func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		status := c.Response().Status
		if err != nil {
			// The error handler has not written the response yet.
			status = statusFromError(err)
		}

		path := c.Path()
		if path == "" {
			path = "unmatched"
		}

		m.metrics.HTTPRequestDuration.
			WithLabelValues(c.Request().Method, path, strconv.Itoa(status)).
			Observe(time.Since(start).Seconds())

		return err
	}
}

func statusFromError(err error) int {
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
