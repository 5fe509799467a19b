package server

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/optiruta/internal/planner"
)

// metrics holds the server's collectors on a private registry so that
// several servers (e.g. in tests) never collide on registration.
type metrics struct {
	registry *prometheus.Registry
	queries  *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "optiruta_route_queries_total",
			Help: "Route queries by metric and result (found, not_found, error).",
		}, []string{"metric", "result"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "optiruta_route_query_duration_seconds",
			Help:    "Time spent computing a route.",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
		}, []string{"metric"}),
	}
	m.registry.MustRegister(m.queries, m.duration)

	return m
}

func (m *metrics) observe(metric planner.Metric, r planner.Route, err error, elapsed time.Duration) {
	result := "found"
	switch {
	case err != nil:
		result = "error"
	case !r.Found:
		result = "not_found"
	}
	m.queries.WithLabelValues(string(metric), result).Inc()
	m.duration.WithLabelValues(string(metric)).Observe(elapsed.Seconds())
}
