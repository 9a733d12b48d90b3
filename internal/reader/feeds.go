// Newsdesk - RSS Reading Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsdesk

package reader

import (
	"context"
	"fmt"
	"strings"

	"github.com/tomtom215/newsdesk/internal/events"
	"github.com/tomtom215/newsdesk/internal/ingest"
	"github.com/tomtom215/newsdesk/internal/models"
	"github.com/tomtom215/newsdesk/internal/state"
	"github.com/tomtom215/newsdesk/internal/validation"
)

// AddFeedResult is a newly subscribed feed and a preview of its items.
type AddFeedResult struct {
	Feed     models.Feed      `json:"feed"`
	Preview  []models.Article `json:"preview"`
	Articles int              `json:"articlesAdded"`
}

// RefreshSummary reports one pass over every subscribed feed.
type RefreshSummary struct {
	Feeds    int               `json:"feeds"`
	Updated  int               `json:"updated"`
	Articles int               `json:"articlesAdded"`
	Errors   map[string]string `json:"errors,omitempty"`
}

// Feeds returns the subscribed feeds.
func (s *Service) Feeds() ([]models.Feed, uint64) {
	st, version := s.store.Snapshot()
	return st.Feeds, version
}

// AddFeed validates and fetches feedURL, then subscribes to it and stores
// its articles. Validation failures are returned as
// *validation.RequestValidationError.
func (s *Service) AddFeed(ctx context.Context, feedURL, category string) (AddFeedResult, error) {
	feedURL = strings.TrimSpace(feedURL)
	category = strings.TrimSpace(category)

	candidate := models.Feed{URL: feedURL, Category: category}
	if verr := validation.ValidateStruct(&candidate); verr != nil {
		return AddFeedResult{}, verr
	}
	if s.fetcher == nil {
		return AddFeedResult{}, ErrNoFetcher
	}

	s.addMu.Lock()
	defer s.addMu.Unlock()

	st, _ := s.store.Snapshot()
	for _, f := range st.Feeds {
		if f.URL == feedURL {
			return AddFeedResult{}, fmt.Errorf("%s: %w", feedURL, ErrFeedExists)
		}
	}

	fetched, err := s.fetcher.Fetch(ctx, feedURL)
	if err != nil {
		return AddFeedResult{}, fmt.Errorf("add feed %s: %w", feedURL, err)
	}

	feed := ingest.ApplyMeta(models.Feed{
		ID:       s.newID(),
		URL:      feedURL,
		Category: models.NormalizeCategory(category),
	}, fetched.Feed, s.now())
	if feed.Title == "" {
		feed.Title = feedURL
	}

	s.store.Dispatch(state.AddFeed{Feed: feed})
	added := s.addArticles(ingest.AssignFeed(fetched.Items, feed))[feed.ID]
	s.announce(feed, added)

	s.logger.Info().
		Str("feed_id", feed.ID).
		Str("url", feed.URL).
		Int("articles", added).
		Msg("feed added")

	return AddFeedResult{Feed: feed, Preview: fetched.Preview(), Articles: added}, nil
}

// RemoveFeed unsubscribes from a feed. Its articles stay in the store.
func (s *Service) RemoveFeed(id string) error {
	st, _ := s.store.Snapshot()
	for _, f := range st.Feeds {
		if f.ID == id {
			s.store.Dispatch(state.RemoveFeed{FeedID: id})
			return nil
		}
	}
	return fmt.Errorf("feed %s: %w", id, ErrFeedNotFound)
}

// RefreshFeeds fetches every subscribed feed in turn. A failing feed does
// not stop the pass; its error is reported in the summary. Concurrent calls
// wait for the running pass.
func (s *Service) RefreshFeeds(ctx context.Context) (RefreshSummary, error) {
	if s.refresher == nil {
		return RefreshSummary{}, ErrNoFetcher
	}

	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	feeds, _ := s.Feeds()
	s.store.Dispatch(state.SetLoading{Loading: true})
	defer s.store.Dispatch(state.SetLoading{Loading: false})

	res := s.refresher.Refresh(ctx, feeds)
	for _, f := range res.UpdatedFeeds {
		s.store.Dispatch(state.UpdateFeed{Feed: f})
	}
	perFeed := s.addArticles(res.Articles)
	added := 0
	for _, n := range perFeed {
		added += n
	}

	summary := RefreshSummary{
		Feeds:    len(feeds),
		Updated:  len(res.UpdatedFeeds),
		Articles: added,
	}
	if len(res.Errors) > 0 {
		summary.Errors = make(map[string]string, len(res.Errors))
		for id, err := range res.Errors {
			summary.Errors[id] = err.Error()
		}
		s.store.Dispatch(state.SetError{Message: fmt.Sprintf("%d of %d feeds failed to refresh", len(res.Errors), len(feeds))})
	} else {
		s.store.Dispatch(state.ClearError{})
	}

	for _, f := range res.UpdatedFeeds {
		if perFeed[f.ID] > 0 {
			s.announce(f, perFeed[f.ID])
		}
	}

	return summary, ctx.Err()
}

// addArticles dispatches AddArticles and returns how many articles were new,
// per feed ID. The count applies the same URL rule as the reducer.
func (s *Service) addArticles(articles []models.Article) map[string]int {
	added := make(map[string]int)
	if len(articles) == 0 {
		return added
	}

	st, _ := s.store.Snapshot()
	known := make(map[string]struct{}, len(st.Articles)+len(articles))
	for i := range st.Articles {
		known[st.Articles[i].URL] = struct{}{}
	}
	for i := range articles {
		u := articles[i].URL
		if u != "" {
			if _, dup := known[u]; dup {
				continue
			}
			known[u] = struct{}{}
		}
		added[articles[i].FeedID]++
	}

	s.store.Dispatch(state.AddArticles{Articles: articles})
	return added
}

//nolint:gocritic // Feed is passed by value as a snapshot
func (s *Service) announce(feed models.Feed, articles int) {
	if s.publisher == nil {
		return
	}
	evt := events.IngestedEvent{FeedID: feed.ID, FeedURL: feed.URL, Articles: articles}
	if err := s.publisher.PublishIngested(evt); err != nil {
		s.logger.Warn().Err(err).Str("feed_id", feed.ID).Msg("ingest event not published")
	}
}
