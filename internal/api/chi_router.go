// Newsdesk - RSS Reading Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsdesk

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/newsdesk/internal/middleware"
)

// compressionLevel is the gzip level for JSON responses.
const compressionLevel = 5

// Router wires handlers and middleware into a chi mux.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
	monitor       *middleware.LatencyMonitor
}

// NewRouter creates a router. monitor may be nil.
func NewRouter(handler *Handler, mw *ChiMiddleware, monitor *middleware.LatencyMonitor) *Router {
	if mw == nil {
		mw = NewChiMiddleware(nil)
	}
	return &Router{handler: handler, chiMiddleware: mw, monitor: monitor}
}

// observe applies the metrics middleware shared by every API group.
func (router *Router) observe(r chi.Router) {
	r.Use(APISecurityHeaders())
	r.Use(middleware.PrometheusMetrics)
	if router.monitor != nil {
		r.Use(router.monitor.Middleware)
	}
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()
	h := router.handler

	// Applied to ALL routes in order
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // CORS must be global to handle OPTIONS preflight

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		respondError(w, http.StatusNotFound, CodeNotFound, "Route not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
	})

	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitCustom("health", RateLimitHealth))
		router.observe(r)
		r.Get("/live", h.HealthLive)
		r.Get("/ready", h.HealthReady)
		r.Get("/latency", h.HealthLatency)
	})

	r.Route("/api/v1", func(r chi.Router) {
		router.observe(r)

		// The WebSocket route stays outside Compress.
		r.With(router.chiMiddleware.RateLimitCustom("ws", RateLimitWebSocket)).Get("/ws", h.WebSocket)

		r.Group(func(r chi.Router) {
			r.Use(router.chiMiddleware.RateLimit("api"))
			r.Use(chimiddleware.Compress(compressionLevel, "application/json"))
			router.routes(r)
		})
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}

func (router *Router) routes(r chi.Router) {
	h := router.handler

	r.Route("/articles", func(r chi.Router) {
		r.Get("/", h.Articles)
		r.Post("/close", h.CloseArticle)
		r.Get("/{id}", h.Article)
		r.Get("/{id}/metrics", h.ArticleMetrics)
		r.Post("/{id}/open", h.OpenArticle)
		r.Post("/{id}/read", h.MarkRead)
		r.Post("/{id}/bookmark", h.ToggleBookmark)
	})

	r.Route("/bookmarks", func(r chi.Router) {
		r.Get("/", h.Bookmarks)
		r.Delete("/", h.ClearBookmarks)
		r.Get("/stats", h.BookmarkStats)
	})

	r.Get("/recommendations", h.Recommendations)
	r.Get("/recommendations/by-category", h.RecommendationsByCategory)
	r.Get("/statistics", h.Statistics)

	r.Route("/feeds", func(r chi.Router) {
		r.Get("/", h.Feeds)
		r.Group(func(r chi.Router) {
			r.Use(router.chiMiddleware.RateLimitCustom("feeds", RateLimitFeeds))
			r.Post("/", h.AddFeed)
			r.Post("/refresh", h.RefreshFeeds)
		})
		r.Delete("/{id}", h.RemoveFeed)
	})

	r.Route("/categories", func(r chi.Router) {
		r.Get("/", h.Categories)
		r.Post("/", h.AddCategory)
		r.Delete("/{id}", h.RemoveCategory)
	})

	r.Get("/preferences", h.Preferences)
	r.Patch("/preferences", h.UpdatePreferences)
}
