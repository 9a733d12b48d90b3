// Newsdesk - RSS Reading Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsdesk

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/newsdesk/internal/logging"
	"github.com/tomtom215/newsdesk/internal/models"
)

type addFeedRequest struct {
	URL      string `json:"url"`
	Category string `json:"category"`
}

type addCategoryRequest struct {
	Name string `json:"name"`
}

// Feeds lists subscribed feeds.
func (h *Handler) Feeds(w http.ResponseWriter, _ *http.Request) {
	feeds, version := h.svc.Feeds()
	respondOK(w, http.StatusOK, feeds, models.Metadata{StateVersion: version})
}

// AddFeed validates and fetches a feed, then subscribes to it.
// Body: {"url": "...", "category": "..."}.
func (h *Handler) AddFeed(w http.ResponseWriter, r *http.Request) {
	var req addFeedRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	start := time.Now()
	res, err := h.svc.AddFeed(r.Context(), req.URL, req.Category)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	logging.Ctx(r.Context()).Info().
		Str("feed_id", res.Feed.ID).
		Str("url", sanitizeLogValue(res.Feed.URL)).
		Int("articles", res.Articles).
		Msg("Feed subscribed")
	respondOK(w, http.StatusCreated, res, models.Metadata{QueryTimeMS: time.Since(start).Milliseconds()})
}

// RemoveFeed unsubscribes a feed. Its articles stay.
func (h *Handler) RemoveFeed(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.RemoveFeed(chi.URLParam(r, "id")); err != nil {
		respondServiceError(w, err)
		return
	}
	respondOK(w, http.StatusOK, map[string]bool{"removed": true}, models.Metadata{})
}

// RefreshFeeds fetches every subscribed feed now. Individual feed failures
// are reported in the summary, not as an error status.
func (h *Handler) RefreshFeeds(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	summary, err := h.svc.RefreshFeeds(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondOK(w, http.StatusOK, summary, models.Metadata{QueryTimeMS: time.Since(start).Milliseconds()})
}

// Categories lists categories.
func (h *Handler) Categories(w http.ResponseWriter, _ *http.Request) {
	categories, version := h.svc.Categories()
	respondOK(w, http.StatusOK, categories, models.Metadata{StateVersion: version})
}

// AddCategory creates a category. Body: {"name": "..."}.
func (h *Handler) AddCategory(w http.ResponseWriter, r *http.Request) {
	var req addCategoryRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}
	c, err := h.svc.AddCategory(req.Name)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondOK(w, http.StatusCreated, c, models.Metadata{})
}

// RemoveCategory deletes a category.
func (h *Handler) RemoveCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.RemoveCategory(chi.URLParam(r, "id")); err != nil {
		respondServiceError(w, err)
		return
	}
	respondOK(w, http.StatusOK, map[string]bool{"removed": true}, models.Metadata{})
}

// Preferences returns the reading preferences.
func (h *Handler) Preferences(w http.ResponseWriter, _ *http.Request) {
	respondOK(w, http.StatusOK, h.svc.Preferences(), models.Metadata{})
}

// UpdatePreferences merges a partial update into the preferences.
func (h *Handler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	var patch models.PreferencesPatch
	if !decodeJSONBody(w, r, &patch) {
		return
	}
	prefs, err := h.svc.UpdatePreferences(patch)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondOK(w, http.StatusOK, prefs, models.Metadata{})
}
