// Newsdesk - RSS Reading Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsdesk

package recommend

import (
	"fmt"

	"github.com/tomtom215/newsdesk/internal/models"
)

// Mode identifies how a recommendation list was produced.
type Mode int

const (
	// ModeColdStart ranks by publish date because there is no reading history.
	ModeColdStart Mode = iota

	// ModePersonalized ranks by similarity to recent reads plus recency.
	ModePersonalized
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeColdStart:
		return "cold_start"
	case ModePersonalized:
		return "personalized"
	default:
		return "unknown"
	}
}

// MarshalText encodes the mode by name.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText decodes a mode name written by MarshalText.
func (m *Mode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "cold_start":
		*m = ModeColdStart
	case "personalized":
		*m = ModePersonalized
	default:
		return fmt.Errorf("unknown recommendation mode %q", text)
	}
	return nil
}

// Recommendation is a ranked article with its score components.
// Cold-start recommendations carry zero scores.
type Recommendation struct {
	Article    models.Article `json:"article"`
	Score      float64        `json:"score"`
	Similarity float64        `json:"similarity"`
	Recency    float64        `json:"recency"`
	Mode       Mode           `json:"mode"`
}

// Metrics contains engine counters.
type Metrics struct {
	// RequestCount is the total number of Recommend calls.
	RequestCount int64 `json:"request_count"`

	// ColdStartCount is how many of those fell back to cold start.
	ColdStartCount int64 `json:"cold_start_count"`

	// CategoryRequestCount is the total number of ByCategory calls.
	CategoryRequestCount int64 `json:"category_request_count"`

	// CandidatesScored is the cumulative number of unread articles scored.
	CandidatesScored int64 `json:"candidates_scored"`
}
