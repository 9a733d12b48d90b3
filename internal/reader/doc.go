// Newsdesk - RSS Reading Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsdesk

/*
Package reader is the application service behind the HTTP API.

A Service owns no data of its own. Mutations are dispatched to a
state.Store as commands, and reads run the recommendation engine and the
statistics aggregator over the latest committed snapshot:

	svc, err := reader.New(reader.Config{}, reader.Deps{
	    Store:      store,
	    Engine:     engine,
	    Aggregator: aggregator,
	    Tracker:    tr,
	    Fetcher:    fetcher,
	    Publisher:  bus,
	}, logger)

	article, err := svc.OpenArticle(id) // marks read, starts the reading clock
	recs, meta := svc.Recommendations(10)

# Reading time

OpenArticle starts a tracker session for the article. Each tick is
published on the event bus when a Publisher is configured, and the
supervised tick fold consumer applies it with ApplyTick. Without a
Publisher the tick is applied on the tracker goroutine. Ticks are lossy:
closing an article discards the partial interval.

# Derived views

Recommendations, category buckets and the statistics report are cached
under the state version that produced them, so any dispatch makes the
next read recompute. ViewMeta reports the version and whether the view
came from cache.

# Errors

Lookups wrap ErrArticleNotFound, ErrFeedNotFound or ErrCategoryNotFound.
AddFeed and AddCategory return a *validation.RequestValidationError for
bad input, ErrFeedExists or ErrCategoryExists for duplicates, and wrap
ingest.ErrFetch when the feed cannot be retrieved.
*/
package reader
