// Package metrics defines the Prometheus instruments for mnemo.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Phrase generation metrics.
var (
	PhraseRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mnemo",
			Name:      "phrase_requests_total",
			Help:      "Total number of phrase generation requests",
		},
		[]string{"status"}, // "ok" / "invalid_input"
	)

	PhraseDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "mnemo",
			Name:      "phrase_duration_seconds",
			Help:      "Phrase assembly duration in seconds",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
	)

	PhrasePlaceholdersTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "mnemo",
			Name:      "phrase_placeholders_total",
			Help:      "Digit groups that resolved to a placeholder instead of a word",
		},
	)

	IndexedWords = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "mnemo",
			Name:      "indexed_words",
			Help:      "Content words in the built word index",
		},
	)

	DroppedWords = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "mnemo",
			Name:      "dropped_words",
			Help:      "Words excluded from the index (invalid or unencodable)",
		},
	)
)

var phraseMetricsRegistered bool

// RegisterPhraseMetrics registers phrase metrics. Must be called once from main.
func RegisterPhraseMetrics() {
	if phraseMetricsRegistered {
		return
	}
	prometheus.MustRegister(PhraseRequestsTotal)
	prometheus.MustRegister(PhraseDuration)
	prometheus.MustRegister(PhrasePlaceholdersTotal)
	prometheus.MustRegister(IndexedWords)
	prometheus.MustRegister(DroppedWords)
	phraseMetricsRegistered = true
}
