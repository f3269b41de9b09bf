// Package metrics exposes Prometheus collectors for offer searches and provider calls.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/flight-search/flight-offer-aggregator/internal/usecase"
)

const namespace = "flight_offers"

// Metrics holds the collectors registered on its own registry.
type Metrics struct {
	registry *prometheus.Registry

	searches       *prometheus.CounterVec
	searchDuration *prometheus.HistogramVec
	offersReturned *prometheus.HistogramVec
	providerCalls  *prometheus.CounterVec
	retries        *prometheus.CounterVec
}

// New creates the collectors and registers them, plus the Go and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "Search invocations by provider and outcome.",
		}, []string{"provider", "outcome"}),
		searchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_duration_seconds",
			Help:      "End to end search latency including normalization and ranking.",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10),
		}, []string{"provider"}),
		offersReturned: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "offers_returned",
			Help:      "Number of offers returned by successful searches.",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250},
		}, []string{"provider"}),
		providerCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "provider_requests_total",
			Help:      "HTTP calls made to a provider by status code.",
		}, []string{"provider", "code"}),
		retries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "provider_retries_total",
			Help:      "Provider calls retried after a transient failure.",
		}, []string{"provider"}),
	}

	m.registry.MustRegister(
		m.searches,
		m.searchDuration,
		m.offersReturned,
		m.providerCalls,
		m.retries,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveSearch implements usecase.Observer.
func (m *Metrics) ObserveSearch(provider string, outcome usecase.Outcome, elapsed time.Duration, offers int) {
	m.searches.WithLabelValues(provider, string(outcome)).Inc()
	m.searchDuration.WithLabelValues(provider).Observe(elapsed.Seconds())
	if outcome != usecase.OutcomeFailure {
		m.offersReturned.WithLabelValues(provider).Observe(float64(offers))
	}
}

// ObserveCall records one HTTP call to provider. A zero status means no response arrived.
func (m *Metrics) ObserveCall(provider string, status int) {
	code := "none"
	if status > 0 {
		code = strconv.Itoa(status)
	}
	m.providerCalls.WithLabelValues(provider, code).Inc()
}

// ObserveRetry records one retried provider call.
func (m *Metrics) ObserveRetry(provider string) {
	m.retries.WithLabelValues(provider).Inc()
}

var _ usecase.Observer = (*Metrics)(nil)
