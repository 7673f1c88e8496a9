package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collectors are registered on the default registry and exposed at /metrics.
var (
	// AssessmentRequests counts risk assessment computations requested
	AssessmentRequests = promauto.NewCounter(prometheus.CounterOpts{
		Name: "assessment_requests_total",
		Help: "Total number of risk assessment computations requested",
	})

	// AssessmentErrors counts failed risk assessment computations
	AssessmentErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "assessment_errors_total",
		Help: "Total number of failed risk assessment computations",
	})

	// AssessmentDuration observes end-to-end assessment computation latency
	AssessmentDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "assessment_duration_seconds",
		Help:    "Risk assessment computation duration in seconds",
		Buckets: prometheus.DefBuckets,
	})

	// CacheHits counts assessments served from cache
	CacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "assessment_cache_hits_total",
		Help: "Total number of assessments served from cache",
	})

	// CacheMisses counts assessments recomputed after a cache miss
	CacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "assessment_cache_misses_total",
		Help: "Total number of assessment cache misses",
	})

	// ClassifierFallbacks counts roster classifications served by the
	// heuristic fallback after an LLM failure
	ClassifierFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "classifier_fallbacks_total",
		Help: "Total number of role classifications served by the heuristic fallback",
	})

	// WebhookRequests counts inbound interaction webhooks by outcome
	WebhookRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "webhook_requests_total",
		Help: "Total number of inbound interaction webhooks",
	}, []string{"outcome"})

	// JobsProcessed counts background assessment jobs by final status
	JobsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "assessment_jobs_processed_total",
		Help: "Total number of background assessment jobs processed",
	}, []string{"status"})
)
