// Newsdesk - RSS Reading Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsdesk

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/newsdesk/internal/models"
	"github.com/tomtom215/newsdesk/internal/reader"
)

// Articles lists articles.
//
// Query: filter=all|unread|search|category|feed, value=<term, category or feed ID>.
func (h *Handler) Articles(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	q := r.URL.Query()

	f, err := reader.ParseFilter(q.Get("filter"), q.Get("value"))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	articles, version := h.svc.Articles(f)
	respondOK(w, http.StatusOK, articles, models.Metadata{
		QueryTimeMS:  time.Since(start).Milliseconds(),
		StateVersion: version,
	})
}

// Article returns one article.
func (h *Handler) Article(w http.ResponseWriter, r *http.Request) {
	a, err := h.svc.Article(chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondOK(w, http.StatusOK, a, models.Metadata{})
}

// ArticleMetrics returns text statistics, difficulty, reading time and a
// summary for one article.
func (h *Handler) ArticleMetrics(w http.ResponseWriter, r *http.Request) {
	m, err := h.svc.ArticleMetrics(chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondOK(w, http.StatusOK, m, models.Metadata{})
}

// OpenArticle marks the article read and starts the reading-time tracker.
func (h *Handler) OpenArticle(w http.ResponseWriter, r *http.Request) {
	a, err := h.svc.OpenArticle(chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondOK(w, http.StatusOK, a, models.Metadata{})
}

// CloseArticle stops the reading-time tracker.
func (h *Handler) CloseArticle(w http.ResponseWriter, _ *http.Request) {
	respondOK(w, http.StatusOK, map[string]bool{"stopped": h.svc.CloseArticle()}, models.Metadata{})
}

// MarkRead marks the article read without tracking time.
func (h *Handler) MarkRead(w http.ResponseWriter, r *http.Request) {
	a, err := h.svc.MarkRead(chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondOK(w, http.StatusOK, a, models.Metadata{})
}

// ToggleBookmark flips the bookmark flag of one article.
func (h *Handler) ToggleBookmark(w http.ResponseWriter, r *http.Request) {
	a, err := h.svc.ToggleBookmark(chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondOK(w, http.StatusOK, a, models.Metadata{})
}

// Bookmarks lists bookmarked articles.
//
// Query: sort=newest|oldest|title, category=<name or "all">.
func (h *Handler) Bookmarks(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	order, err := reader.ParseBookmarkSort(q.Get("sort"))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	view, version := h.svc.Bookmarks(order, q.Get("category"))
	respondOK(w, http.StatusOK, view, models.Metadata{StateVersion: version})
}

// BookmarkStats counts bookmarks per category.
func (h *Handler) BookmarkStats(w http.ResponseWriter, _ *http.Request) {
	s, version := h.svc.BookmarkStats()
	respondOK(w, http.StatusOK, s, models.Metadata{StateVersion: version})
}

// ClearBookmarks removes every bookmark.
func (h *Handler) ClearBookmarks(w http.ResponseWriter, _ *http.Request) {
	h.svc.ClearBookmarks()
	respondOK(w, http.StatusOK, map[string]bool{"cleared": true}, models.Metadata{})
}
