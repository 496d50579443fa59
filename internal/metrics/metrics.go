// Package metrics exposes Prometheus instrumentation for lookup traffic.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the lookup collectors. A nil *Metrics records nothing, so
// callers never have to guard their instrumentation sites.
type Metrics struct {
	LookupsTotal   *prometheus.CounterVec
	LookupDuration *prometheus.HistogramVec
}

// New registers the lookup collectors with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		LookupsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "directory_lookups_total",
			Help: "Lookups processed, labelled by key kind and outcome.",
		}, []string{"kind", "outcome"}),
		LookupDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "directory_lookup_duration_seconds",
			Help:    "Lookup latency from key normalization through row scanning.",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}, []string{"kind"}),
	}
}

// ObserveLookup records one lookup with its outcome and duration.
func (m *Metrics) ObserveLookup(kind, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.LookupsTotal.WithLabelValues(kind, outcome).Inc()
	m.LookupDuration.WithLabelValues(kind).Observe(elapsed.Seconds())
}
