package session

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Search result labels.
const (
	resultFound       = "found"
	resultUnreachable = "unreachable"
	resultError       = "error"
)

// Metrics groups the collectors a Store reports to.
type Metrics struct {
	Searches    *prometheus.CounterVec
	Duration    prometheus.Histogram
	CacheHits   prometheus.Counter
	CacheMisses prometheus.Counter
	Sessions    prometheus.Gauge
}

// NewMetrics creates the collectors and registers them on reg.
// A nil reg yields working but unregistered collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		Searches: f.NewCounterVec(prometheus.CounterOpts{
			Name: "gridpath_searches_total",
			Help: "Path searches by result",
		}, []string{"result"}),
		Duration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "gridpath_search_duration_seconds",
			Help:    "Path search duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00005, 2, 14), // 50µs to ~400ms
		}),
		CacheHits: f.NewCounter(prometheus.CounterOpts{
			Name: "gridpath_path_cache_hits_total",
			Help: "Path cache hits",
		}),
		CacheMisses: f.NewCounter(prometheus.CounterOpts{
			Name: "gridpath_path_cache_misses_total",
			Help: "Path cache misses",
		}),
		Sessions: f.NewGauge(prometheus.GaugeOpts{
			Name: "gridpath_sessions_active",
			Help: "Sessions currently held by the store",
		}),
	}
}
