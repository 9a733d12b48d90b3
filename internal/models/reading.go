// Newsdesk - RSS Reading Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsdesk

package models

import "time"

// ReadingEvent is appended exactly once, when an article is first marked read.
type ReadingEvent struct {
	ArticleID string    `json:"articleId"`
	Date      time.Time `json:"date"`
	Category  string    `json:"category"`
}

// ReadingTick is the elapsed-time delta emitted by an active tracking session.
type ReadingTick struct {
	ArticleID string `json:"articleId"`
	Category  string `json:"category"`
	Seconds   int    `json:"seconds"`
}

// ReadingStatistics holds the folded reading totals.
//
// TotalReadingTime and CategoryBreakdown are in seconds and grow only through
// ReadingTick folds.
type ReadingStatistics struct {
	ReadArticles      int            `json:"readArticles"`
	TotalReadingTime  int            `json:"totalReadingTime"`
	CategoryBreakdown map[string]int `json:"categoryBreakdown"`
	ReadingHistory    []ReadingEvent `json:"readingHistory"`
}

// NewReadingStatistics returns zeroed statistics with non-nil collections.
func NewReadingStatistics() ReadingStatistics {
	return ReadingStatistics{
		CategoryBreakdown: make(map[string]int),
		ReadingHistory:    []ReadingEvent{},
	}
}
