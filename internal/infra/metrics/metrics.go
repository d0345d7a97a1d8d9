// Package metrics registers the prometheus collectors exported on the metrics endpoint.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "venture"

// Metrics bundles the collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	proximityCandidates *prometheus.HistogramVec
	proximityResults    *prometheus.HistogramVec
}

// New creates a registry with process and Go runtime collectors plus the service collectors.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: registry,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		proximityCandidates: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "proximity",
			Name:      "candidates",
			Help:      "Rows fetched from the database per nearby search.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}, []string{"entity_type"}),
		proximityResults: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "proximity",
			Name:      "results",
			Help:      "Rows returned per nearby search.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}, []string{"entity_type"}),
	}

	registry.MustRegister(m.httpRequests, m.httpDuration, m.proximityCandidates, m.proximityResults)

	return m
}

// Handler serves the registry in the prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveHTTP records one finished request.
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}

	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveProximity records the candidate and result sizes of one nearby search.
func (m *Metrics) ObserveProximity(entityType string, candidates, results int) {
	if m == nil {
		return
	}

	m.proximityCandidates.WithLabelValues(entityType).Observe(float64(candidates))
	m.proximityResults.WithLabelValues(entityType).Observe(float64(results))
}
