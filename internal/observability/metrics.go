package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jonathan/growth-audit/internal/types"
)

const namespace = "growth_audit"

// Cache lookup results.
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

// Metrics holds the service's Prometheus collectors on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	TransformsTotal   *prometheus.CounterVec
	TransformDuration *prometheus.HistogramVec
	SkippedRecords    *prometheus.CounterVec
	OverallScores     *prometheus.HistogramVec
	CacheRequests     *prometheus.CounterVec
	HTTPRequests      *prometheus.CounterVec
	HTTPDuration      *prometheus.HistogramVec
}

// NewMetrics registers every collector on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		TransformsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "transforms_total",
				Help:      "Profile transforms by platform and outcome",
			},
			[]string{"platform", "outcome"},
		),
		TransformDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "transform_duration_seconds",
				Help:      "Duration of profile transforms in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12), // 0.5ms to ~1s
			},
			[]string{"platform"},
		),
		SkippedRecords: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "skipped_records_total",
				Help:      "Malformed post records skipped during transforms",
			},
			[]string{"platform"},
		),
		OverallScores: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "overall_score",
				Help:      "Overall scores of live audits",
				Buckets:   []float64{40, 55, 70, 85, 100},
			},
			[]string{"platform"},
		),
		CacheRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cache_requests_total",
				Help:      "Audit cache lookups by result",
			},
			[]string{"result"},
		),
		HTTPRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "HTTP requests by method, route and status",
			},
			[]string{"method", "route", "status"},
		),
		HTTPDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}
}

// ObserveTransform records one transform outcome.
func (m *Metrics) ObserveTransform(platform types.Platform, outcome string, elapsed time.Duration) {
	m.TransformsTotal.WithLabelValues(string(platform), outcome).Inc()
	m.TransformDuration.WithLabelValues(string(platform)).Observe(elapsed.Seconds())
}

// AddSkipped counts skipped malformed records.
func (m *Metrics) AddSkipped(platform types.Platform, n int) {
	m.SkippedRecords.WithLabelValues(string(platform)).Add(float64(n))
}

// ObserveScore records the overall score of a live audit.
func (m *Metrics) ObserveScore(platform types.Platform, score int) {
	m.OverallScores.WithLabelValues(string(platform)).Observe(float64(score))
}

// ObserveCache counts one cache lookup.
func (m *Metrics) ObserveCache(result string) {
	m.CacheRequests.WithLabelValues(result).Inc()
}

// ObserveRequest records one served HTTP request.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Registry exposes the private registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
