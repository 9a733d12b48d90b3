// Newsdesk - RSS Reading Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsdesk

package models

import (
	"strings"
	"time"
)

// DefaultCategory is assigned to articles whose feed has no category.
const DefaultCategory = "Uncategorized"

// NormalizeCategory trims the category and substitutes DefaultCategory for
// blank values.
func NormalizeCategory(category string) string {
	category = strings.TrimSpace(category)
	if category == "" {
		return DefaultCategory
	}
	return category
}

// Article is a single feed item after ingestion.
//
// Everything except IsRead, ReadDate, ActualReadingTime and IsBookmarked is
// fixed once the article enters the state container. Keywords and
// EstimatedReadingTime are derived at ingestion and never recomputed.
type Article struct {
	ID               string   `json:"id"`
	FeedID           string   `json:"feedId,omitempty"`
	Title            string   `json:"title"`
	Content          string   `json:"content,omitempty"`
	PlainTextContent string   `json:"textContent"`
	Summary          string   `json:"summary,omitempty"`
	URL              string   `json:"url"`
	ImageURL         string   `json:"imageUrl,omitempty"`
	Author           string   `json:"author,omitempty"`
	Tags             []string `json:"categories,omitempty"`
	Category         string   `json:"category"`

	// PublishDate is nil when the feed omitted it or it failed to parse.
	PublishDate *time.Time `json:"publishDate,omitempty"`

	// Keywords holds at most 10 entries, most frequent first. Nil means the
	// article has no keyword set at all.
	Keywords []string `json:"keywords"`

	// EstimatedReadingTime is in minutes.
	EstimatedReadingTime int `json:"estimatedReadingTime"`

	IsRead   bool       `json:"isRead"`
	ReadDate *time.Time `json:"readDate,omitempty"`

	// ActualReadingTime is accumulated seconds of active viewing.
	ActualReadingTime int  `json:"actualReadingTime"`
	IsBookmarked      bool `json:"isBookmarked"`
}

// Published returns the publish date and whether it is known.
func (a *Article) Published() (time.Time, bool) {
	if a.PublishDate == nil || a.PublishDate.IsZero() {
		return time.Time{}, false
	}
	return *a.PublishDate, true
}

// ReadAt returns the read date and whether the article has one.
func (a *Article) ReadAt() (time.Time, bool) {
	if a.ReadDate == nil || a.ReadDate.IsZero() {
		return time.Time{}, false
	}
	return *a.ReadDate, true
}

// TimePtr returns a pointer to t. Convenient for building articles in tests
// and fixtures.
func TimePtr(t time.Time) *time.Time {
	return &t
}
