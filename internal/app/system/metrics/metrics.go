// Package metrics exposes Prometheus counters for dashboard activity.
//
// A nil *Metrics is valid and records nothing, so components can be built
// without metrics in tests.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Load outcomes.
const (
	OutcomeLoaded    = "loaded"
	OutcomeAPIFail   = "api_failure"
	OutcomeTransport = "transport_failure"
	OutcomeStale     = "stale"
	OutcomeCanceled  = "canceled"
)

// Metrics owns a private registry so tests can create as many as they like.
type Metrics struct {
	reg      *prometheus.Registry
	loads    *prometheus.CounterVec
	duration *prometheus.HistogramVec
	sessions prometheus.Gauge
}

// New builds and registers the dashboard collectors.
func New() *Metrics {
	m := &Metrics{
		reg: prometheus.NewRegistry(),
		loads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wadua",
			Name:      "view_loads_total",
			Help:      "Dashboard view loads by view and outcome.",
		}, []string{"view", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "wadua",
			Name:      "view_fetch_seconds",
			Help:      "Time spent fetching a view from the stats backend.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"view"}),
		sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "wadua",
			Name:      "dashboard_sessions",
			Help:      "Open dashboard sockets.",
		}),
	}
	m.reg.MustRegister(m.loads, m.duration, m.sessions,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveLoad counts one finished load.
func (m *Metrics) ObserveLoad(view, outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.loads.WithLabelValues(view, outcome).Inc()
	if outcome != OutcomeCanceled {
		m.duration.WithLabelValues(view).Observe(seconds)
	}
}

func (m *Metrics) SessionOpened() {
	if m == nil {
		return
	}
	m.sessions.Inc()
}

func (m *Metrics) SessionClosed() {
	if m == nil {
		return
	}
	m.sessions.Dec()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
}
