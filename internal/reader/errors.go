// Newsdesk - RSS Reading Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsdesk

package reader

import "errors"

// Sentinel errors returned by Service. Callers match them with errors.Is.
var (
	ErrArticleNotFound  = errors.New("article not found")
	ErrFeedNotFound     = errors.New("feed not found")
	ErrFeedExists       = errors.New("feed already subscribed")
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryExists   = errors.New("category already exists")
	ErrInvalidFilter    = errors.New("invalid filter")
	ErrInvalidSort      = errors.New("invalid sort")
	ErrNoFetcher        = errors.New("feed fetching is not configured")
)
