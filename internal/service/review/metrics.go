package review

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts review activity.
type Metrics struct {
	recorded  *prometheus.CounterVec
	conflicts prometheus.Counter
	failures  *prometheus.CounterVec
	intervals prometheus.Histogram
}

// NewMetrics registers the review collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		recorded: f.NewCounterVec(prometheus.CounterOpts{
			Name: "kanjilens_reviews_recorded_total",
			Help: "Reviews persisted, by outcome (pass or lapse).",
		}, []string{"outcome"}),
		conflicts: f.NewCounter(prometheus.CounterOpts{
			Name: "kanjilens_review_write_conflicts_total",
			Help: "Conditional review writes rejected because the row changed concurrently.",
		}),
		failures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "kanjilens_review_failures_total",
			Help: "Failed RecordReview calls by error kind.",
		}, []string{"kind"}),
		intervals: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "kanjilens_review_interval_days",
			Help:    "Scheduled interval in days after each review.",
			Buckets: []float64{1, 2, 6, 15, 30, 60, 120, 240, 480},
		}),
	}
}

func (m *Metrics) observeRecorded(passed bool, interval float64) {
	if m == nil {
		return
	}
	outcome := "lapse"
	if passed {
		outcome = "pass"
	}
	m.recorded.WithLabelValues(outcome).Inc()
	m.intervals.Observe(interval)
}

func (m *Metrics) observeConflict() {
	if m == nil {
		return
	}
	m.conflicts.Inc()
}

func (m *Metrics) observeFailure(kind string) {
	if m == nil {
		return
	}
	m.failures.WithLabelValues(kind).Inc()
}
