// Newsdesk - RSS Reading Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsdesk

// Package storage persists state snapshots in BadgerDB.
//
// A snapshot is feeds, articles, categories, bookmark IDs, reading statistics
// and preferences, each JSON-encoded under its own key and written in one
// transaction. Articles are capped at MaxArticles by publish date; bookmarked
// articles survive the cap.
//
// Load returns ErrNotFound on a fresh database.
package storage
