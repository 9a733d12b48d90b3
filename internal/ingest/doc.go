// Newsdesk - RSS Reading Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsdesk

/*
Package ingest turns RSS, Atom and JSON feeds into enriched articles.

	fetcher := ingest.NewFetcher(ingest.DefaultFetcherConfig(), nil, logger)
	res, err := fetcher.Fetch(ctx, "https://go.dev/blog/feed.atom")
	articles := ingest.AssignFeed(res.Items, feed)

Each item is parsed with gofeed, its HTML sanitized with goquery, and its
plain text used once for the 150-rune summary, keyword set and estimated
reading time. The image is the first <img> in the content, falling back to
the item image or an image enclosure.

Fetcher spaces requests with a token bucket (golang.org/x/time/rate) and
guards each host with a gobreaker circuit breaker. Refresher walks a feed list
sequentially and keeps going after a failing feed.
*/
package ingest
