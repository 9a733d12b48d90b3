// Newsdesk - RSS Reading Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsdesk

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/newsdesk/internal/models"
	"github.com/tomtom215/newsdesk/internal/reader"
)

// maxRecommendationsParam caps the max query parameter.
const maxRecommendationsParam = 100

type recommendationsRequest struct {
	Max int `json:"max" validate:"gte=0,lte=100"`
}

func viewMetadata(start time.Time, meta reader.ViewMeta) models.Metadata {
	return models.Metadata{
		QueryTimeMS:  time.Since(start).Milliseconds(),
		Cached:       meta.Cached,
		StateVersion: meta.StateVersion,
	}
}

// Recommendations ranks unread articles. Query: max=N (0 uses the
// configured default, at most 100).
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	req := recommendationsRequest{Max: getIntParam(r, "max", 0)}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondErrorDetails(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
		return
	}

	recs, meta := h.svc.Recommendations(min(req.Max, maxRecommendationsParam))
	respondOK(w, http.StatusOK, recs, viewMetadata(start, meta))
}

// RecommendationsByCategory returns the top unread articles per category.
func (h *Handler) RecommendationsByCategory(w http.ResponseWriter, _ *http.Request) {
	start := time.Now()
	buckets, meta := h.svc.RecommendationsByCategory()
	respondOK(w, http.StatusOK, buckets, viewMetadata(start, meta))
}

// Statistics returns the full reading report.
func (h *Handler) Statistics(w http.ResponseWriter, _ *http.Request) {
	start := time.Now()
	report, meta := h.svc.Statistics()
	respondOK(w, http.StatusOK, report, viewMetadata(start, meta))
}
