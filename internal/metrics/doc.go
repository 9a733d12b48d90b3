// Newsdesk - RSS Reading Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsdesk

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered on the default registry through promauto at
package init, and each has a small Record* helper so callers never deal with
label ordering directly.

# Metrics Endpoint

Metrics are exposed at the /metrics endpoint in Prometheus text format:

	curl http://localhost:8080/metrics

# Available Metrics

State and Reading:
  - state_commands_total: Commands dispatched (counter)
    Labels: command
  - reading_ticks_total: Ticks emitted by the tracker (counter)
  - reading_seconds_total: Seconds folded into statistics (counter)
  - reading_session_active: 1 while an article is open (gauge)

Recommendations and Statistics:
  - recommendation_requests_total: Ranking passes (counter)
    Labels: mode (cold_start, personalized, by_category)
  - recommendation_duration_seconds: Ranking latency (histogram)
  - recommendation_results: Items returned per request (histogram)
  - stats_reports_total, stats_report_duration_seconds

Feeds:
  - feed_fetches_total: Fetch attempts (counter)
    Labels: result (success, error, rejected)
  - feed_fetch_duration_seconds: Fetch plus parse latency (histogram)
  - articles_ingested_total: Items turned into articles (counter)
  - feed_refresh_last_success_timestamp (gauge)

Storage and Bus:
  - snapshot_saves_total, snapshot_duration_seconds
  - bus_messages_published_total, bus_messages_consumed_total
    Labels: topic

HTTP and WebSocket:
  - api_requests_total, api_request_duration_seconds, api_active_requests
  - api_rate_limit_hits_total
  - websocket_connections, websocket_messages_sent_total, websocket_errors_total

Circuit Breaker:
  - circuit_breaker_state: Current state (gauge)
    Labels: name
    Values: 0=closed, 1=half-open, 2=open
  - circuit_breaker_requests_total, circuit_breaker_consecutive_failures
  - circuit_breaker_state_transitions_total

# Usage

	start := time.Now()
	recs := engine.Recommend(articles, read, 10)
	metrics.RecordRecommendation("personalized", time.Since(start), len(recs))
*/
package metrics
