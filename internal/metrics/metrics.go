// Package metrics wires optional Prometheus counters/histograms for
// cache hit/miss and query latency. Grounded on the prometheus/client_golang
// dependency carried by data-power-io-noesis-connectors/libs/go; registered
// only when the engine is given a prometheus.Registerer (nil disables
// metrics entirely — spec.md §5: "no process-wide state required by the
// core").
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds every counter/histogram the engine and cache publish.
// A nil *Metrics is valid everywhere and records nothing.
type Metrics struct {
	CacheHits   prometheus.Counter
	CacheMisses prometheus.Counter
	QueryLatency prometheus.Histogram
}

// New constructs and registers metrics against reg. Returns nil if reg
// is nil, so callers can unconditionally pass the result to components
// that accept a *Metrics.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		return nil
	}

	m := &Metrics{
		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ephemeris_cache_hits_total",
			Help: "Number of cache hits served by the fingerprint cache.",
		}),
		CacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ephemeris_cache_misses_total",
			Help: "Number of cache misses served by the fingerprint cache.",
		}),
		QueryLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "ephemeris_query_duration_seconds",
			Help:    "Query latency, including cache lookup and chain resolution.",
			Buckets: prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(m.CacheHits, m.CacheMisses, m.QueryLatency)
	return m
}

func (m *Metrics) ObserveCacheHit() {
	if m == nil {
		return
	}
	m.CacheHits.Inc()
}

func (m *Metrics) ObserveCacheMiss() {
	if m == nil {
		return
	}
	m.CacheMisses.Inc()
}

func (m *Metrics) ObserveQuerySeconds(s float64) {
	if m == nil {
		return
	}
	m.QueryLatency.Observe(s)
}
