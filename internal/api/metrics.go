package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors exposed at /metrics.
type Metrics struct {
	registry *prometheus.Registry

	RequestsTotal      *prometheus.CounterVec
	SimulationDuration prometheus.Histogram
	TrialsTotal        prometheus.Counter
}

// NewMetrics creates a registry with the service's collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "revcast_http_requests_total",
				Help: "HTTP requests by path and status code",
			},
			[]string{"path", "status"},
		),
		SimulationDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "revcast_simulation_duration_seconds",
				Help:    "Wall-clock duration of one full simulation run in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
			},
		),
		TrialsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "revcast_simulation_trials_total",
				Help: "Total Monte-Carlo trials executed",
			},
		),
	}

	m.registry.MustRegister(m.RequestsTotal, m.SimulationDuration, m.TrialsTotal)
	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
