// Newsdesk - RSS Reading Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsdesk

/*
Package api provides the HTTP REST API for Newsdesk.

Every endpoint lives under /api/v1 and answers with the models.APIResponse
envelope:

	{"status":"success","data":{...},"metadata":{"timestamp":"...","state_version":42}}
	{"status":"error","data":null,"error":{"code":"NOT_FOUND","message":"article not found"}}

Endpoint groups:

  - health: /health/live, /health/ready, /health/latency
  - articles: listing with filters, detail, text metrics, open/close
    tracking, read and bookmark toggles
  - bookmarks: sorted and filtered bookmark list, stats, clear
  - recommendations: ranked unread articles and per-category buckets
  - statistics: the full reading report
  - feeds, categories, preferences: library management
  - /ws: WebSocket notifications, /metrics: Prometheus exposition

Middleware, outermost first: request ID, real IP, panic recovery, CORS,
gzip compression, then per-group rate limiting, security headers,
Prometheus metrics and latency tracking.

Service errors map to codes in respondServiceError: NOT_FOUND (404),
VALIDATION_ERROR and BAD_REQUEST (400), CONFLICT (409),
FEED_FETCH_FAILED (502) and SERVICE_UNAVAILABLE (503).

Usage:

	handler := api.NewHandler(svc, hub, monitor, cfg)
	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(cfg.Security), monitor)
	srv := &http.Server{Addr: cfg.Server.Addr(), Handler: router.SetupChi()}
*/
package api
