package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Engagement cache outcomes.
const (
	CacheHit     = "hit"
	CacheMiss    = "miss"
	CacheStale   = "stale"
	CacheRefresh = "refresh"
	CacheError   = "error"
)

var (
	// HTTPRequests counts handled requests by route and status.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "partnerdash_http_requests_total",
		Help: "Total HTTP requests by method, route and status",
	}, []string{"method", "route", "status"})

	// HTTPDuration tracks request latency.
	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "partnerdash_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.01, 2, 12), // 10ms to ~20s
	}, []string{"method", "route"})

	// EngagementCache counts cache read outcomes.
	EngagementCache = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "partnerdash_engagement_cache_total",
		Help: "Engagement cache outcomes: hit, miss, stale, refresh, error",
	}, []string{"outcome"})

	// UpstreamErrors counts failed calls to external sources.
	UpstreamErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "partnerdash_upstream_errors_total",
		Help: "Failed upstream calls by source",
	}, []string{"source"})

	// AnalyticsDuration tracks end-to-end analytics computation, fetch included.
	AnalyticsDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "partnerdash_analytics_duration_seconds",
		Help:    "Analytics request duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
	})
)
