// Package metrics exposes the service's Prometheus collectors.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

const namespace = "ridingcourse"

// Shortlink outcomes.
const (
	ShortlinkResolved    = "resolved"
	ShortlinkFailed      = "failed"
	ShortlinkBreakerOpen = "breaker_open"
)

// Open event outcomes.
const (
	OpenEventRecorded = "recorded"
	OpenEventDropped  = "dropped"
	OpenEventRetry    = "retry"
)

// Metrics groups the collectors recorded by the link parser, the shortlink resolver, the HTTP server
// and the event worker.
//
// Every collector is registered on the Metrics' own registry, so several instances can
// coexist in tests.
type Metrics struct {
	registry *prometheus.Registry

	// LinkNormalizations counts parse requests.
	// Labels: source (nmap|intent|web|web-short|unknown|none), outcome (ok|not_recognized|missing_destination)
	LinkNormalizations *prometheus.CounterVec

	// ShortlinkResolutions counts naver.me expansion attempts.
	// Labels: outcome (resolved|failed|breaker_open)
	ShortlinkResolutions *prometheus.CounterVec

	// ShortlinkDuration measures expansion latency in seconds.
	ShortlinkDuration prometheus.Histogram

	// RouteOpens counts tracked route opens.
	// Labels: platform
	RouteOpens *prometheus.CounterVec

	// OpenEvents counts RouteOpenedEvent deliveries handled by the event worker.
	// Labels: outcome (recorded|dropped|retry)
	OpenEvents *prometheus.CounterVec

	// HTTPRequestDuration measures HTTP API request latency.
	// Labels: method, path, status_code
	HTTPRequestDuration *prometheus.HistogramVec
}

// NewMetrics creates the collectors on a fresh registry that also carries the Go and process collectors.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,

		LinkNormalizations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "link_normalizations_total",
				Help:      "Total number of shared map links normalized by source and outcome",
			},
			[]string{"source", "outcome"},
		),

		ShortlinkResolutions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "shortlink_resolutions_total",
				Help:      "Total number of shortlink expansions by outcome",
			},
			[]string{"outcome"},
		),

		ShortlinkDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "shortlink_resolution_duration_seconds",
				Help:      "Duration of shortlink expansions in seconds",
				Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 3, 5},
			},
		),

		RouteOpens: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "route_opens_total",
				Help:      "Total number of tracked route opens by platform",
			},
			[]string{"platform"},
		),

		OpenEvents: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "route_open_events_total",
				Help:      "Total number of route open event deliveries by outcome",
			},
			[]string{"outcome"},
		),

		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
			},
			[]string{"method", "path", "status_code"},
		),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

var Module = fx.Options(
	fx.Provide(NewMetrics),
)
