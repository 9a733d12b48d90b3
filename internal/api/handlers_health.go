// Newsdesk - RSS Reading Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsdesk

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/newsdesk/internal/models"
)

// HealthLive handles liveness probe requests.
// Returns 200 OK if the process is alive, regardless of dependencies.
func (h *Handler) HealthLive(w http.ResponseWriter, _ *http.Request) {
	respondOK(w, http.StatusOK, map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	}, models.Metadata{})
}

// HealthReady handles readiness probe requests.
// Returns 200 only after SetReady(true), 503 otherwise.
func (h *Handler) HealthReady(w http.ResponseWriter, _ *http.Request) {
	if !h.ready.Load() {
		respondError(w, http.StatusServiceUnavailable, CodeServiceUnavailable, "Service is not ready", nil)
		return
	}

	st, version := h.svc.Snapshot()
	clients := 0
	if h.wsHub != nil {
		clients = h.wsHub.ClientCount()
	}
	respondOK(w, http.StatusOK, map[string]interface{}{
		"ready":     true,
		"articles":  len(st.Articles),
		"feeds":     len(st.Feeds),
		"wsClients": clients,
		"loading":   st.Loading,
		"lastError": st.Err,
	}, models.Metadata{StateVersion: version})
}

// HealthLatency reports per-route latency percentiles over the recent
// request window.
func (h *Handler) HealthLatency(w http.ResponseWriter, _ *http.Request) {
	if h.monitor == nil {
		respondError(w, http.StatusServiceUnavailable, CodeServiceUnavailable, "Latency monitor not enabled", nil)
		return
	}
	respondOK(w, http.StatusOK, h.monitor.Stats(), models.Metadata{})
}
