package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request latency (seconds)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	// AI provider call latency (seconds)
	GenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "reply_generation_duration_seconds",
			Help:    "AI reply generation call duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 10), // 100ms to ~100s
		},
		[]string{"provider", "status"},
	)

	// Reply generation outcomes
	RepliesGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "replies_generated_total",
			Help: "Total number of reply generation attempts",
		},
		[]string{"tone", "status"}, // status: success, invalid_tone, generation_failed, storage_failed
	)
)

// RecordHTTPRequestDuration records HTTP request latency
func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// RecordGenerationDuration records one AI provider call
func RecordGenerationDuration(provider, status string, duration time.Duration) {
	GenerationDuration.WithLabelValues(provider, status).Observe(duration.Seconds())
}

// IncrementRepliesGenerated counts one reply generation attempt
func IncrementRepliesGenerated(tone, status string) {
	RepliesGenerated.WithLabelValues(tone, status).Inc()
}
