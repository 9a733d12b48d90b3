// Newsdesk - RSS Reading Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsdesk

package ingest

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/newsdesk/internal/metrics"
	"github.com/tomtom215/newsdesk/internal/models"
)

// RefreshResult collects the outcome of refreshing a set of feeds.
type RefreshResult struct {
	// UpdatedFeeds holds a metadata-refreshed copy of each feed that fetched.
	UpdatedFeeds []models.Feed
	// Articles are the processed items of every successful feed, stamped
	// with their feed's ID and category.
	Articles []models.Article
	// Errors maps feed ID to the fetch error.
	Errors map[string]error
}

// Refresher fetches many feeds, continuing past failures.
type Refresher struct {
	fetcher FeedFetcher
	now     func() time.Time
	logger  zerolog.Logger
}

// NewRefresher creates a refresher.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewRefresher(fetcher FeedFetcher, logger zerolog.Logger) *Refresher {
	return &Refresher{
		fetcher: fetcher,
		now:     time.Now,
		logger:  logger.With().Str("component", "refresher").Logger(),
	}
}

// SetClock overrides the clock used for LastUpdated.
func (r *Refresher) SetClock(now func() time.Time) {
	r.now = now
}

// Refresh fetches feeds in order. A cancelled context stops the pass; feeds
// not yet reached are reported with the context error.
func (r *Refresher) Refresh(ctx context.Context, feeds []models.Feed) RefreshResult {
	res := RefreshResult{
		UpdatedFeeds: make([]models.Feed, 0, len(feeds)),
		Articles:     []models.Article{},
		Errors:       make(map[string]error),
	}

	for _, feed := range feeds {
		if err := ctx.Err(); err != nil {
			res.Errors[feed.ID] = err
			continue
		}

		fetched, err := r.fetcher.Fetch(ctx, feed.URL)
		if err != nil {
			res.Errors[feed.ID] = err
			r.logger.Warn().Err(err).Str("feed_id", feed.ID).Str("url", feed.URL).Msg("feed refresh failed")
			continue
		}

		res.UpdatedFeeds = append(res.UpdatedFeeds, ApplyMeta(feed, fetched.Feed, r.now()))
		res.Articles = append(res.Articles, AssignFeed(fetched.Items, feed)...)
	}

	metrics.RecordFeedRefresh(len(res.Errors))
	r.logger.Info().
		Int("feeds", len(feeds)).
		Int("failed", len(res.Errors)).
		Int("articles", len(res.Articles)).
		Msg("feed refresh complete")
	return res
}
