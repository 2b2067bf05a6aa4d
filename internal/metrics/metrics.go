// Package metrics exposes Prometheus collectors for the HTTP surface and the
// risk engine.
package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// httpRequestsTotal counts requests by method, route template and status
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "riskradar_http_requests_total",
		Help: "Total HTTP requests by method, route and status",
	}, []string{"method", "route", "status"})

	// httpRequestDuration tracks request latency per route
	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "riskradar_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0005, 2, 14), // 0.5ms to ~4s
	}, []string{"method", "route"})

	// engineOperationsTotal counts analytics calls by operation and outcome
	engineOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "riskradar_engine_operations_total",
		Help: "Total risk engine operations by operation and outcome",
	}, []string{"operation", "outcome"})

	// snapshotsRecordedTotal counts persisted profile snapshots
	snapshotsRecordedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "riskradar_snapshots_recorded_total",
		Help: "Total profile snapshots recorded",
	})

	// achievementsTotal counts newly stored milestones and badges
	achievementsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "riskradar_achievements_total",
		Help: "Total milestones unlocked and badges earned",
	}, []string{"kind"})
)

// Outcome labels for ObserveOperation
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// ObserveOperation records one engine operation
func ObserveOperation(operation string, err error) {
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	engineOperationsTotal.WithLabelValues(operation, outcome).Inc()
}

// SnapshotRecorded records one persisted snapshot
func SnapshotRecorded() {
	snapshotsRecordedTotal.Inc()
}

// MilestoneUnlocked records a newly stored milestone
func MilestoneUnlocked() {
	achievementsTotal.WithLabelValues("milestone").Inc()
}

// BadgeEarned records a newly stored badge
func BadgeEarned() {
	achievementsTotal.WithLabelValues("badge").Inc()
}

// Handler serves the default registry in the Prometheus text format
func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware records request count and latency per route template
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			status := c.Response().Status
			var httpErr *echo.HTTPError
			if errors.As(err, &httpErr) {
				status = httpErr.Code
			} else if err != nil && !c.Response().Committed {
				status = http.StatusInternalServerError
			}

			method := c.Request().Method
			httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
			httpRequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
			return err
		}
	}
}
