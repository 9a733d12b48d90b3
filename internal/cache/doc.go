// Newsdesk - RSS Reading Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsdesk

/*
Package cache provides a generic TTL LRU cache for derived views.

The reader service caches recommendations, category buckets and statistics
reports under keys that embed the state version:

	views := cache.NewLRU[stats.Report]("statistics", 256, 5*time.Minute)
	report, cached := views.GetOrCompute(fmt.Sprintf("report:%d", version), build)

A dispatch bumps the version, so stale entries are never read again and age
out through TTL or LRU eviction.

Hits, misses and evictions are exported as the cache_*_total counters,
labelled by cache name.
*/
package cache
