// Package middleware provides Echo middleware for card-price-tracker.
package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/donaldgifford/card-price-tracker/internal/metrics"
)

// probeGauges are the operational paths that update an up/down gauge
// instead of the request histogram and counter.
var probeGauges = map[string]prometheus.Gauge{
	"/healthz": metrics.HealthUp,
	"/readyz":  metrics.ReadyUp,
}

const metricsPath = "/metrics"

// unmatchedRoute labels requests that hit no registered route, keeping
// arbitrary URLs out of the path label.
const unmatchedRoute = "unmatched"

// Metrics returns Echo middleware that records request duration and count
// by method, route template and status.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			route := c.Path()
			if route == metricsPath {
				return next(c)
			}

			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}
			status := c.Response().Status

			if gauge, ok := probeGauges[route]; ok {
				gauge.Set(boolToFloat(status >= 200 && status < 300))
				return nil
			}
			if route == "" {
				route = unmatchedRoute
			}

			labels := []string{c.Request().Method, route, strconv.Itoa(status)}
			metrics.HTTPRequestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
			metrics.HTTPRequestsTotal.WithLabelValues(labels...).Inc()
			return nil
		}
	}
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
