package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// SearchMetrics records quote-search traffic and the stale responses the
// coordinator drops.
type SearchMetrics struct {
	duration *prometheus.HistogramVec
	outcomes *prometheus.CounterVec
	stale    prometheus.Counter
}

// NewSearchMetrics registers the search metrics on the provided registerer.
func NewSearchMetrics(reg prometheus.Registerer) *SearchMetrics {
	if reg == nil {
		return &SearchMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "quote_search_duration_seconds",
		Help:    "Duration of quote-source searches in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"outcome"})
	outcomes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "quote_search_total",
		Help: "Quote searches by outcome.",
	}, []string{"outcome"})
	stale := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "quote_search_stale_responses_dropped_total",
		Help: "Quote-source responses discarded because a newer query superseded them.",
	})
	reg.MustRegister(duration, outcomes, stale)
	return &SearchMetrics{
		duration: duration,
		outcomes: outcomes,
		stale:    stale,
	}
}

// ObserveSearch records one completed search with its outcome label.
func (s *SearchMetrics) ObserveSearch(outcome string, duration time.Duration) {
	if s == nil || s.duration == nil {
		return
	}
	label := normalizeLabel(outcome)
	s.duration.WithLabelValues(label).Observe(duration.Seconds())
	s.outcomes.WithLabelValues(label).Inc()
}

// IncStaleDropped counts a superseded response that was silently discarded.
func (s *SearchMetrics) IncStaleDropped() {
	if s == nil || s.stale == nil {
		return
	}
	s.stale.Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
