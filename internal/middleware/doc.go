// Newsdesk - RSS Reading Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsdesk

/*
Package middleware provides chi-compatible HTTP middleware: request IDs,
Prometheus instrumentation and a rolling latency monitor.

All three have the func(http.Handler) http.Handler shape and are installed
with r.Use:

	monitor := middleware.NewLatencyMonitor(1000, time.Second, logger)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.PrometheusMetrics)
	r.Use(monitor.Middleware)

Metrics and latency samples are keyed by the chi route pattern
("/api/v1/articles/{id}") rather than the raw path, so label cardinality
stays bounded by the route table.
*/
package middleware
