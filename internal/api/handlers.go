// Newsdesk - RSS Reading Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsdesk

package api

import (
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/tomtom215/newsdesk/internal/logging"
	"github.com/tomtom215/newsdesk/internal/middleware"
	"github.com/tomtom215/newsdesk/internal/reader"
	ws "github.com/tomtom215/newsdesk/internal/websocket"
)

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers.go: Handler struct, constructor, WebSocket upgrade
//   - handlers_helpers.go: response envelopes and request parsing
//   - handlers_health.go: liveness, readiness and latency
//   - handlers_articles.go: articles and bookmarks
//   - handlers_views.go: recommendations and statistics
//   - handlers_library.go: feeds, categories and preferences
type Handler struct {
	svc         *reader.Service
	wsHub       *ws.Hub
	monitor     *middleware.LatencyMonitor
	corsOrigins []string
	startTime   time.Time
	ready       atomic.Bool
}

// NewHandler creates the API handler. hub and monitor may be nil; the
// WebSocket and latency endpoints then answer 503.
func NewHandler(svc *reader.Service, hub *ws.Hub, monitor *middleware.LatencyMonitor, corsOrigins []string) *Handler {
	return &Handler{
		svc:         svc,
		wsHub:       hub,
		monitor:     monitor,
		corsOrigins: corsOrigins,
		startTime:   time.Now(),
	}
}

// SetReady flips the readiness probe. The server marks itself ready once
// the snapshot is loaded and every service has started.
func (h *Handler) SetReady(ready bool) {
	h.ready.Store(ready)
}

// getUpgrader creates a WebSocket upgrader with proper origin checking and timeouts.
func (h *Handler) getUpgrader() websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:   1024,
		WriteBufferSize:  1024,
		CheckOrigin:      h.checkWebSocketOrigin,
		HandshakeTimeout: 10 * time.Second,
	}
}

// checkWebSocketOrigin validates WebSocket connection origins
func (h *Handler) checkWebSocketOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")

	// A missing Origin is rejected.
	if origin == "" {
		logging.Warn().Msg("WebSocket connection rejected: missing Origin header")
		return false
	}

	for _, allowed := range h.corsOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}

	logging.Warn().Str("origin", sanitizeLogValue(origin)).Msg("WebSocket connection rejected from unauthorized origin")
	return false
}

// WebSocket upgrades the connection and hands it to the hub.
func (h *Handler) WebSocket(w http.ResponseWriter, r *http.Request) {
	if h.wsHub == nil {
		logging.Warn().Msg("WebSocket connection rejected: hub not initialized")
		respondError(w, http.StatusServiceUnavailable, CodeServiceUnavailable, ErrHubUnavailable.Error(), nil)
		return
	}

	upgrader := h.getUpgrader()
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("WebSocket upgrade error")
		return
	}

	if !ws.NewClient(h.wsHub, conn).Start() {
		logging.Ctx(r.Context()).Warn().Msg("WebSocket hub stopped, connection closed")
	}
}
