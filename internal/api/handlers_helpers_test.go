// Newsdesk - RSS Reading Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsdesk

package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/newsdesk/internal/ingest"
	"github.com/tomtom215/newsdesk/internal/models"
	"github.com/tomtom215/newsdesk/internal/reader"
)

func TestSanitizeLogValue(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"line\nbreak", "line\\x0abreak"},
		{"tab\there", "tab\\x09here"},
		{"del\x7f", "del\\x7f"},
	}
	for _, tt := range tests {
		if got := sanitizeLogValue(tt.in); got != tt.want {
			t.Errorf("sanitizeLogValue(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGetIntParam(t *testing.T) {
	tests := []struct {
		query string
		want  int
	}{
		{"", 7},
		{"max=3", 3},
		{"max=abc", 7},
		{"max=-2", -2},
	}
	for _, tt := range tests {
		r := httptest.NewRequest(http.MethodGet, "/?"+tt.query, nil)
		if got := getIntParam(r, "max", 7); got != tt.want {
			t.Errorf("getIntParam(%q) = %d, want %d", tt.query, got, tt.want)
		}
	}
}

func TestGenerateETag(t *testing.T) {
	a := generateETag([]byte(`{"a":1}`))
	if a != generateETag([]byte(`{"a":1}`)) {
		t.Error("ETag not stable")
	}
	if a == generateETag([]byte(`{"a":2}`)) {
		t.Error("ETag identical for different bodies")
	}
}

func TestRespondServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"article", fmt.Errorf("article x: %w", reader.ErrArticleNotFound), http.StatusNotFound, CodeNotFound},
		{"category", reader.ErrCategoryNotFound, http.StatusNotFound, CodeNotFound},
		{"exists", reader.ErrFeedExists, http.StatusConflict, CodeConflict},
		{"filter", reader.ErrInvalidFilter, http.StatusBadRequest, CodeBadRequest},
		{"fetch", fmt.Errorf("%w: timeout", ingest.ErrFetch), http.StatusBadGateway, CodeFeedFetchFailed},
		{"parse", ingest.ErrParse, http.StatusBadGateway, CodeFeedFetchFailed},
		{"no fetcher", reader.ErrNoFetcher, http.StatusServiceUnavailable, CodeServiceUnavailable},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, CodeInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			respondServiceError(rec, tt.err)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			var resp models.APIResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Error == nil || resp.Error.Code != tt.wantCode {
				t.Errorf("Error = %+v, want code %s", resp.Error, tt.wantCode)
			}
		})
	}
}

func TestDecodeJSONBody(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantOK     bool
		wantStatus int
	}{
		{"valid", `{"name":"Tech"}`, true, http.StatusOK},
		{"empty", ``, false, http.StatusBadRequest},
		{"malformed", `{"name":`, false, http.StatusBadRequest},
		{"too large", `{"name":"` + strings.Repeat("x", maxBodyBytes) + `"}`, false, http.StatusRequestEntityTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var v addCategoryRequest
			if got := decodeJSONBody(rec, req, &v); got != tt.wantOK {
				t.Fatalf("decodeJSONBody() = %v, want %v", got, tt.wantOK)
			}
			if !tt.wantOK && rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantOK && v.Name != "Tech" {
				t.Errorf("Name = %q, want Tech", v.Name)
			}
		})
	}
}
