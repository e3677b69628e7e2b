package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SuggestionsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bucketlist_suggestions_generated_total",
			Help: "Suggestions returned to callers after parsing and deduplication",
		},
		[]string{"flow"}, // "profile", "session"
	)

	SuggestionsDeduplicated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bucketlist_suggestions_deduplicated_total",
			Help: "Suggestions dropped because their content hash already existed",
		},
	)

	SuggestionsSkipped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bucketlist_suggestions_skipped_total",
			Help: "Suggestion items skipped as malformed or unsaveable",
		},
	)

	LLMRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bucketlist_llm_requests_total",
			Help: "LLM completion requests by outcome",
		},
		[]string{"status"}, // "ok", "error", "no_credential", "circuit_open"
	)

	LLMRequestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "bucketlist_llm_request_duration_seconds",
			Help:    "Latency of LLM completion requests",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 30, 60, 120},
		},
	)

	LLMCircuitState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "bucketlist_llm_circuit_state",
			Help: "LLM circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
	)

	FeedbackRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bucketlist_feedback_recorded_total",
			Help: "Feedback verdicts stored",
		},
		[]string{"verdict"},
	)

	FeedbackDuplicates = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bucketlist_feedback_duplicates_total",
			Help: "Repeated feedback submissions ignored",
		},
	)

	CategoryDiversityViolations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bucketlist_category_diversity_violations_total",
			Help: "Session batches that repeated a spending category",
		},
	)
)

// ObserveLLMRequest records the outcome and latency of one LLM call.
func ObserveLLMRequest(status string, started time.Time) {
	LLMRequests.WithLabelValues(status).Inc()
	LLMRequestDuration.Observe(time.Since(started).Seconds())
}
