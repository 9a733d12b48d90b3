// Newsdesk - RSS Reading Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsdesk

package models

import "time"

// Feed is a subscribed RSS or Atom source.
type Feed struct {
	ID          string    `json:"id"`
	Title       string    `json:"title" validate:"max=256"`
	URL         string    `json:"url" validate:"required,feedurl"`
	Description string    `json:"description,omitempty"`
	Link        string    `json:"link,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Category    string    `json:"category" validate:"omitempty,max=64"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// Category is a user-defined grouping label for feeds.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name" validate:"required,category"`
}
