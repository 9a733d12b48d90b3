// Newsdesk - RSS Reading Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsdesk

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// State Metrics
	StateCommandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "state_commands_total",
			Help: "Total number of state commands dispatched",
		},
		[]string{"command"},
	)

	// Recommendation Metrics
	RecommendationRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendation_requests_total",
			Help: "Total number of recommendation requests",
		},
		[]string{"mode"}, // "cold_start", "personalized", "by_category"
	)

	RecommendationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommendation_duration_seconds",
			Help:    "Time spent ranking articles",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
		[]string{"mode"},
	)

	RecommendationResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_results",
			Help:    "Number of recommendations returned per request",
			Buckets: []float64{0, 1, 3, 5, 10, 20, 50},
		},
	)

	// Statistics Metrics
	StatsReportsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "stats_reports_total",
			Help: "Total number of statistics reports computed",
		},
	)

	StatsReportDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "stats_report_duration_seconds",
			Help:    "Time spent computing a statistics report",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
	)

	// Reading Tracker Metrics
	ReadingTicksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reading_ticks_total",
			Help: "Total number of reading-time ticks emitted",
		},
	)

	ReadingSecondsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reading_seconds_total",
			Help: "Total seconds of reading time folded into statistics",
		},
	)

	TrackingSessionActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "reading_session_active",
			Help: "1 while an article is being tracked, otherwise 0",
		},
	)

	// Feed Metrics
	FeedFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feed_fetches_total",
			Help: "Total number of feed fetch attempts",
		},
		[]string{"result"}, // "success", "error", "rejected"
	)

	FeedFetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "feed_fetch_duration_seconds",
			Help:    "Duration of feed fetch and parse",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
	)

	ArticlesIngestedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "articles_ingested_total",
			Help: "Total number of articles produced by feed processing",
		},
	)

	FeedRefreshLastSuccess = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "feed_refresh_last_success_timestamp",
			Help: "Unix timestamp of the last refresh with no feed errors",
		},
	)

	// Storage Metrics
	SnapshotSavesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "snapshot_saves_total",
			Help: "Total number of state snapshot writes",
		},
		[]string{"result"},
	)

	SnapshotDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "snapshot_duration_seconds",
			Help:    "Duration of state snapshot writes",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Event Bus Metrics
	BusMessagesPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bus_messages_published_total",
			Help: "Total number of messages published to the event bus",
		},
		[]string{"topic"},
	)

	BusMessagesConsumed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bus_messages_consumed_total",
			Help: "Total number of messages consumed from the event bus",
		},
		[]string{"topic"},
	)

	// Cache Metrics
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache_type"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache_type"},
	)

	CacheEvictions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_evictions_total",
			Help: "Total number of cache evictions",
		},
		[]string{"cache_type"},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// WebSocket Metrics
	WSConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "websocket_connections",
			Help: "Current number of active WebSocket connections",
		},
	)

	WSMessagesSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "websocket_messages_sent_total",
			Help: "Total number of WebSocket messages sent",
		},
		[]string{"message_type"},
	)

	WSErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "websocket_errors_total",
			Help: "Total number of WebSocket errors",
		},
		[]string{"error_type"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Application Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// RecordCommand counts a dispatched state command
func RecordCommand(name string) {
	StateCommandsTotal.WithLabelValues(name).Inc()
}

// RecordRecommendation records one ranking pass
func RecordRecommendation(mode string, duration time.Duration, results int) {
	RecommendationRequests.WithLabelValues(mode).Inc()
	RecommendationDuration.WithLabelValues(mode).Observe(duration.Seconds())
	RecommendationResults.Observe(float64(results))
}

// RecordStatsReport records one statistics report computation
func RecordStatsReport(duration time.Duration) {
	StatsReportsTotal.Inc()
	StatsReportDuration.Observe(duration.Seconds())
}

// RecordReadingTick counts an emitted tick
func RecordReadingTick() {
	ReadingTicksTotal.Inc()
}

// RecordReadingSeconds counts seconds folded into the statistics
func RecordReadingSeconds(seconds int) {
	if seconds > 0 {
		ReadingSecondsTotal.Add(float64(seconds))
	}
}

// SetTrackingActive reports whether a reading session is running
func SetTrackingActive(active bool) {
	if active {
		TrackingSessionActive.Set(1)
	} else {
		TrackingSessionActive.Set(0)
	}
}

// RecordFeedFetch records a feed fetch attempt
func RecordFeedFetch(result string, duration time.Duration) {
	FeedFetchesTotal.WithLabelValues(result).Inc()
	FeedFetchDuration.Observe(duration.Seconds())
}

// RecordArticlesIngested counts processed feed items
func RecordArticlesIngested(n int) {
	if n > 0 {
		ArticlesIngestedTotal.Add(float64(n))
	}
}

// RecordFeedRefresh marks a refresh pass; a pass with no failed feeds updates
// the last success timestamp
func RecordFeedRefresh(failedFeeds int) {
	if failedFeeds == 0 {
		FeedRefreshLastSuccess.Set(float64(time.Now().Unix()))
	}
}

// RecordSnapshot records a state snapshot write
func RecordSnapshot(duration time.Duration, err error) {
	SnapshotDuration.Observe(duration.Seconds())
	if err != nil {
		SnapshotSavesTotal.WithLabelValues("error").Inc()
		return
	}
	SnapshotSavesTotal.WithLabelValues("success").Inc()
}

// RecordBusPublish counts a published bus message
func RecordBusPublish(topic string) {
	BusMessagesPublished.WithLabelValues(topic).Inc()
}

// RecordBusConsume counts a consumed bus message
func RecordBusConsume(topic string) {
	BusMessagesConsumed.WithLabelValues(topic).Inc()
}

// RecordCacheHit counts a cache hit
func RecordCacheHit(cacheType string) {
	CacheHits.WithLabelValues(cacheType).Inc()
}

// RecordCacheMiss counts a cache miss
func RecordCacheMiss(cacheType string) {
	CacheMisses.WithLabelValues(cacheType).Inc()
}

// RecordCacheEviction counts a cache eviction
func RecordCacheEviction(cacheType string) {
	CacheEvictions.WithLabelValues(cacheType).Inc()
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit counts a request rejected by the rate limiter
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// SetWSConnections reports the number of connected WebSocket clients
func SetWSConnections(n int) {
	WSConnections.Set(float64(n))
}

// RecordWSMessage counts a WebSocket message sent
func RecordWSMessage(messageType string) {
	WSMessagesSent.WithLabelValues(messageType).Inc()
}

// RecordWSError counts a WebSocket error
func RecordWSError(errorType string) {
	WSErrors.WithLabelValues(errorType).Inc()
}

// SetAppInfo publishes the build version
func SetAppInfo(version, goVersion string) {
	AppInfo.WithLabelValues(version, goVersion).Set(1)
}
