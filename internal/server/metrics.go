package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Resolution outcomes used as the "outcome" label.
const (
	outcomeFound   = "found"
	outcomeEmpty   = "empty"
	outcomeInvalid = "invalid"
	outcomeError   = "error"
)

type metrics struct {
	resolutions *prometheus.CounterVec
	duration    prometheus.Histogram
	chains      prometheus.Histogram
}

// newMetrics registers the collectors on reg.
func newMetrics(reg prometheus.Registerer) *metrics {
	f := promauto.With(reg)

	return &metrics{
		resolutions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "wordchain_resolutions_total",
			Help: "Resolutions served, by outcome.",
		}, []string{"outcome"}),
		duration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "wordchain_resolution_duration_seconds",
			Help:    "Time spent building the graph and enumerating chains.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
		chains: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "wordchain_chains_per_resolution",
			Help:    "Number of chains returned by a successful resolution.",
			Buckets: []float64{0, 1, 2, 5, 10, 50, 100, 1000},
		}),
	}
}
