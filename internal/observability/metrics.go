package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// CacheHits counts generation requests served from the result cache.
	CacheHits = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sqlchart_cache_hits_total",
		Help: "Total number of generation requests served from cache.",
	})

	// CacheMisses counts generation requests that went through the full pipeline.
	CacheMisses = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sqlchart_cache_misses_total",
		Help: "Total number of generation requests not found in cache.",
	})

	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sqlchart_http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sqlchart_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	pipelineStageDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sqlchart_pipeline_stage_duration_seconds",
			Help:    "Generation pipeline stage latency.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"stage"},
	)
)

func init() {
	prometheus.MustRegister(
		CacheHits,
		CacheMisses,
		httpRequestsTotal,
		httpRequestDurationSeconds,
		pipelineStageDurationSeconds,
	)
}

// ObserveStage records the elapsed time of a pipeline stage started at start.
func ObserveStage(stage string, start time.Time) {
	pipelineStageDurationSeconds.WithLabelValues(stage).Observe(time.Since(start).Seconds())
}
