package metrics

import "github.com/prometheus/client_golang/prometheus"

// Part-of-speech tagging metrics.
var (
	TagRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mnemo",
			Name:      "tag_requests_total",
			Help:      "Total number of tagging provider requests",
		},
		[]string{"provider", "model", "status"},
	)

	TagRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "mnemo",
			Name:      "tag_request_duration_seconds",
			Help:      "Tagging provider request duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"provider", "model"},
	)

	TagErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mnemo",
			Name:      "tag_errors_total",
			Help:      "Total tagging provider errors",
		},
		[]string{"provider", "model", "error_type"},
	)

	TagWordsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mnemo",
			Name:      "tag_words_total",
			Help:      "Words sent to the tagging provider",
		},
		[]string{"provider", "model"},
	)

	TagCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mnemo",
			Name:      "tag_cache_total",
			Help:      "Tag cache hits and misses",
		},
		[]string{"result"}, // "hit" / "miss"
	)
)

var tagMetricsRegistered bool

// RegisterTaggingMetrics registers tagging metrics. Must be called once from main.
func RegisterTaggingMetrics() {
	if tagMetricsRegistered {
		return
	}
	prometheus.MustRegister(TagRequestsTotal)
	prometheus.MustRegister(TagRequestDuration)
	prometheus.MustRegister(TagErrorsTotal)
	prometheus.MustRegister(TagWordsTotal)
	prometheus.MustRegister(TagCacheTotal)
	tagMetricsRegistered = true
}
