// Newsdesk - RSS Reading Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsdesk

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/newsdesk/internal/ingest"
	"github.com/tomtom215/newsdesk/internal/reader"
	"github.com/tomtom215/newsdesk/internal/validation"
)

// Error codes returned in APIError.Code.
const (
	CodeNotFound           = "NOT_FOUND"
	CodeValidation         = "VALIDATION_ERROR"
	CodeBadRequest         = "BAD_REQUEST"
	CodeConflict           = "CONFLICT"
	CodeFeedFetchFailed    = "FEED_FETCH_FAILED"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	CodeRateLimited        = "RATE_LIMITED"
	CodeInternal           = "INTERNAL_ERROR"
)

// ErrHubUnavailable is returned by the WebSocket endpoint when no hub is
// configured.
var ErrHubUnavailable = errors.New("websocket hub not available")

// respondServiceError maps a reader error to a status and code.
func respondServiceError(w http.ResponseWriter, err error) {
	var verr *validation.RequestValidationError
	switch {
	case errors.As(err, &verr):
		apiErr := verr.ToAPIError()
		respondErrorDetails(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
	case errors.Is(err, reader.ErrArticleNotFound),
		errors.Is(err, reader.ErrFeedNotFound),
		errors.Is(err, reader.ErrCategoryNotFound):
		respondError(w, http.StatusNotFound, CodeNotFound, err.Error(), nil)
	case errors.Is(err, reader.ErrFeedExists), errors.Is(err, reader.ErrCategoryExists):
		respondError(w, http.StatusConflict, CodeConflict, err.Error(), nil)
	case errors.Is(err, reader.ErrInvalidFilter), errors.Is(err, reader.ErrInvalidSort):
		respondError(w, http.StatusBadRequest, CodeBadRequest, err.Error(), nil)
	case errors.Is(err, ingest.ErrFetch), errors.Is(err, ingest.ErrParse):
		respondError(w, http.StatusBadGateway, CodeFeedFetchFailed, "Failed to fetch feed", err)
	case errors.Is(err, reader.ErrNoFetcher):
		respondError(w, http.StatusServiceUnavailable, CodeServiceUnavailable, "Feed fetching is not configured", nil)
	default:
		respondError(w, http.StatusInternalServerError, CodeInternal, "Internal server error", err)
	}
}
