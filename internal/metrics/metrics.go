// Package metrics exposes Prometheus collectors for the advisory API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry           *prometheus.Registry
	analysesTotal      *prometheus.CounterVec
	validationFailures prometheus.Counter
	httpDuration       *prometheus.HistogramVec
}

// New registers collectors on a private registry so tests can build as
// many instances as they like.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		analysesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "envadvisor_analyses_total",
			Help: "Sensor readings evaluated, by resulting urgency level.",
		}, []string{"urgency"}),
		validationFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "envadvisor_validation_failures_total",
			Help: "Readings rejected before evaluation.",
		}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "envadvisor_http_request_duration_seconds",
			Help:    "HTTP request durations by route and status.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "status"}),
	}

	m.registry.MustRegister(
		m.analysesTotal,
		m.validationFailures,
		m.httpDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveAnalysis counts one evaluated reading. Nil receivers are no-ops.
func (m *Metrics) ObserveAnalysis(urgency string) {
	if m == nil {
		return
	}
	m.analysesTotal.WithLabelValues(urgency).Inc()
}

func (m *Metrics) IncValidationFailure() {
	if m == nil {
		return
	}
	m.validationFailures.Inc()
}

func (m *Metrics) ObserveRequest(route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.httpDuration.WithLabelValues(route, strconv.Itoa(status)).Observe(d.Seconds())
}

// Handler serves the exposition format for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
