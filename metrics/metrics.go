// Package metrics exposes the service's Prometheus metrics on a dedicated
// listener, separate from the API server.
package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels the terminal state of a request in the resilience pipeline.
type Outcome string

const (
	OutcomeCompleted Outcome = "completed"
	OutcomeShed      Outcome = "shed"
	OutcomeTimedOut  Outcome = "timed_out"
	OutcomeCanceled  Outcome = "canceled"
	OutcomePanicked  Outcome = "panicked"
)

// Metrics holds the collectors of one Prometheus registry.
type Metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	inFlight prometheus.Gauge
	ns       string
}

// NewMetrics creates collectors under namespace on a private registry, so
// independent instances never collide.
func NewMetrics(namespace string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		ns:       namespace,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Requests by terminal pipeline outcome.",
		}, []string{"outcome"}),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "in_flight_requests",
			Help:      "Requests currently admitted into the pipeline.",
		}),
	}
	m.registry.MustRegister(
		m.requests,
		m.inFlight,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) ObserveOutcome(outcome Outcome) {
	m.requests.WithLabelValues(string(outcome)).Inc()
}

func (m *Metrics) SetInFlight(n int64) {
	m.inFlight.Set(float64(n))
}

// TrackRegistrySize exports size() as the entries gauge, sampled at scrape time.
func (m *Metrics) TrackRegistrySize(size func() int) error {
	return m.registry.Register(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: m.ns,
		Name:      "entries",
		Help:      "Validator keys with a registered payout address.",
	}, func() float64 {
		return float64(size())
	}))
}

// Gatherer exposes the underlying registry, mostly for tests.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// MetricsServer serves Metrics on its own address.
type MetricsServer struct {
	*Metrics
	srv *http.Server
}

func New(namespace, metricsAddr string) (*MetricsServer, error) {
	m := NewMetrics(namespace)

	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())

	return &MetricsServer{
		Metrics: m,
		srv: &http.Server{
			Addr:              metricsAddr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}, nil
}

func (s *MetricsServer) ListenAndServe() error {
	return s.srv.ListenAndServe()
}

func (s *MetricsServer) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
