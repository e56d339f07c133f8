package meter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "passmeter"

// Metrics is optional; a nil *Metrics records nothing.
type Metrics struct {
	checks      *prometheus.CounterVec
	scores      prometheus.Histogram
	suggestions prometheus.Counter
	exhausted   prometheus.Counter
}

func NewMetrics(registerer prometheus.Registerer) *Metrics {
	factory := promauto.With(registerer)

	return &Metrics{
		checks: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checks_total",
			Help:      "Password checks, by report cache outcome.",
		}, []string{"cache"}),
		scores: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "score",
			Help:      "Distribution of heuristic scores.",
			Buckets:   []float64{20, 40, 60, 80, 100},
		}),
		suggestions: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "suggestions_total",
			Help:      "Suggestions handed out.",
		}),
		exhausted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "suggestions_exhausted_total",
			Help:      "Suggestion requests that ran out of attempts.",
		}),
	}
}

func (m *Metrics) observeCheck(score int, cacheHit bool) {
	if m == nil {
		return
	}

	outcome := "miss"
	if cacheHit {
		outcome = "hit"
	}

	m.checks.WithLabelValues(outcome).Inc()
	m.scores.Observe(float64(score))
}

func (m *Metrics) observeSuggestions(n int) {
	if m == nil {
		return
	}

	m.suggestions.Add(float64(n))
}

func (m *Metrics) observeExhausted() {
	if m == nil {
		return
	}

	m.exhausted.Inc()
}
