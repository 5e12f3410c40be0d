package metrics

import "github.com/prometheus/client_golang/prometheus"

// ComparisonMetrics records ranking-engine usage.
type ComparisonMetrics struct {
	comparisons prometheus.Counter
	setSize     prometheus.Histogram
}

// NewComparisonMetrics registers the comparison metrics on the provided registerer.
func NewComparisonMetrics(reg prometheus.Registerer) *ComparisonMetrics {
	if reg == nil {
		return &ComparisonMetrics{}
	}
	comparisons := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "quote_comparisons_total",
		Help: "Completed quote comparisons.",
	})
	setSize := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "quote_comparison_set_size",
		Help:    "Number of quotes per comparison set.",
		Buckets: []float64{1, 2, 3, 5, 8, 13, 21},
	})
	reg.MustRegister(comparisons, setSize)
	return &ComparisonMetrics{
		comparisons: comparisons,
		setSize:     setSize,
	}
}

// ObserveComparison records one completed comparison over a set of the given size.
func (c *ComparisonMetrics) ObserveComparison(setSize int) {
	if c == nil || c.comparisons == nil {
		return
	}
	c.comparisons.Inc()
	c.setSize.Observe(float64(setSize))
}
