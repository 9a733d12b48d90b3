// Newsdesk - RSS Reading Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsdesk

/*
Package models defines the data structures shared across Newsdesk.

Key Components:

  - Article: an ingested feed item plus the four fields mutated by reading
    (IsRead, ReadDate, ActualReadingTime, IsBookmarked)
  - ReadingEvent: append-only log entry written once per first read
  - ReadingTick: elapsed-time delta emitted by the reading-time tracker
  - ReadingStatistics: folded totals (articles read, seconds, per-category seconds)
  - Feed, Category, ReadingPreferences: host-side entities
  - APIResponse: standard HTTP response envelope

Dates that may be missing or unparsable are pointers. A nil PublishDate or
ReadDate means "unknown" and only removes the article from date-dependent
aggregates.

Category strings pass through NormalizeCategory exactly once, when an article
enters the state container, so downstream code never sees an empty category.
*/
package models
