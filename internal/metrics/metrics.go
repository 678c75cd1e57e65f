// Package metrics exposes Prometheus metrics for event derivation.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mmynk/docshelf/internal/calendar"
)

var _ calendar.Observer = (*Metrics)(nil)

// Metrics holds the docshelf collectors.
type Metrics struct {
	registry *prometheus.Registry

	derivations   prometheus.Counter
	cacheHits     prometheus.Counter
	documents     prometheus.Gauge
	derivedEvents prometheus.Gauge
}

// New creates the collectors on a fresh registry, along with the Go runtime
// and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		derivations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "docshelf",
			Name:      "event_derivations_total",
			Help:      "Number of times calendar events were recomputed from documents.",
		}),
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "docshelf",
			Name:      "event_derivation_cache_hits_total",
			Help:      "Number of event requests served from the memoized result.",
		}),
		documents: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "docshelf",
			Name:      "documents",
			Help:      "Documents in the collection at the last derivation.",
		}),
		derivedEvents: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "docshelf",
			Name:      "derived_events",
			Help:      "Calendar events produced by the last derivation.",
		}),
	}
	reg.MustRegister(
		m.derivations,
		m.cacheHits,
		m.documents,
		m.derivedEvents,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveDerivation implements calendar.Observer.
func (m *Metrics) ObserveDerivation(documents, events int) {
	m.derivations.Inc()
	m.documents.Set(float64(documents))
	m.derivedEvents.Set(float64(events))
}

// ObserveCacheHit implements calendar.Observer.
func (m *Metrics) ObserveCacheHit() {
	m.cacheHits.Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
