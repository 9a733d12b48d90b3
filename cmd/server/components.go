// Newsdesk - RSS Reading Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsdesk

package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/newsdesk/internal/config"
	"github.com/tomtom215/newsdesk/internal/events"
	"github.com/tomtom215/newsdesk/internal/ingest"
	"github.com/tomtom215/newsdesk/internal/reader"
	"github.com/tomtom215/newsdesk/internal/recommend"
	"github.com/tomtom215/newsdesk/internal/state"
	"github.com/tomtom215/newsdesk/internal/stats"
	"github.com/tomtom215/newsdesk/internal/storage"
	"github.com/tomtom215/newsdesk/internal/tracker"
)

// Components holds everything main wires into the supervisor tree.
type Components struct {
	Store   *storage.Store
	State   *state.Store
	Bus     *events.Bus
	Service *reader.Service
}

// Close releases the bus and the database, in that order.
func (c *Components) Close(logger zerolog.Logger) { //nolint:gocritic // logger passed by value is acceptable for zerolog
	if err := c.Bus.Close(); err != nil {
		logger.Error().Err(err).Msg("error closing event bus")
	}
	if err := c.Store.Close(); err != nil {
		logger.Error().Err(err).Msg("error closing storage")
	}
}

// initComponents opens storage, restores the last snapshot and builds the
// reader service on top of it.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func initComponents(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*Components, error) {
	store, err := storage.Open(buildStorageConfig(cfg), logger)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	initial, meta, err := store.Load(ctx)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		initial = state.Initial()
		logger.Info().Msg("no snapshot found, starting with an empty library")
	case err != nil:
		_ = store.Close()
		return nil, fmt.Errorf("load snapshot: %w", err)
	default:
		logger.Info().
			Int("feeds", len(initial.Feeds)).
			Int("articles", len(initial.Articles)).
			Int("bookmarks", len(initial.Bookmarks)).
			Time("saved_at", meta.SavedAt).
			Msg("snapshot restored")
	}

	engine, err := recommend.NewEngine(buildEngineConfig(cfg), logger)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("create recommendation engine: %w", err)
	}
	aggregator, err := stats.NewAggregator(stats.Config{
		Timezone:      cfg.Statistics.Timezone,
		TopCategories: cfg.Statistics.TopCategories,
	})
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("create statistics aggregator: %w", err)
	}
	trk, err := tracker.New(tracker.Config{
		Interval:    cfg.Tracker.Interval,
		TickSeconds: cfg.Tracker.TickSeconds,
	}, logger)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("create tracker: %w", err)
	}

	bus := events.NewBus(events.DefaultConfig(), logger)
	stateStore := state.NewStore(initial, logger)

	svc, err := reader.New(reader.Config{
		CacheTTL:  cfg.Cache.TTL,
		CacheSize: cfg.Cache.Size,
	}, reader.Deps{
		Store:      stateStore,
		Engine:     engine,
		Aggregator: aggregator,
		Tracker:    trk,
		Fetcher:    ingest.NewFetcher(buildFetcherConfig(cfg), nil, logger),
		Publisher:  bus,
	}, logger)
	if err != nil {
		_ = bus.Close()
		_ = store.Close()
		return nil, fmt.Errorf("create reader service: %w", err)
	}

	return &Components{Store: store, State: stateStore, Bus: bus, Service: svc}, nil
}

// seedFeeds subscribes the configured feed URLs when the library is empty.
// A failing URL is logged and skipped.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func seedFeeds(ctx context.Context, svc *reader.Service, urls []string, logger zerolog.Logger) int {
	if feeds, _ := svc.Feeds(); len(feeds) > 0 || len(urls) == 0 {
		return 0
	}
	added := 0
	for _, u := range urls {
		fetchCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		_, err := svc.AddFeed(fetchCtx, u, "")
		cancel()
		if err != nil {
			logger.Warn().Err(err).Str("url", u).Msg("initial feed subscription failed")
			continue
		}
		added++
	}
	return added
}

func buildStorageConfig(cfg *config.Config) storage.Config {
	return storage.Config{
		Path:        cfg.Storage.Path,
		InMemory:    cfg.Storage.InMemory,
		MaxArticles: cfg.Storage.MaxArticles,
	}
}

func buildEngineConfig(cfg *config.Config) *recommend.Config {
	rc := cfg.Recommend
	return &recommend.Config{
		MaxRecommendations: rc.MaxRecommendations,
		ReferenceSetSize:   rc.ReferenceSetSize,
		CategoryLimit:      rc.CategoryLimit,
		Weights: recommend.Weights{
			Similarity:    rc.SimilarityWeight,
			Recency:       rc.RecencyWeight,
			CategoryBonus: rc.CategoryBonus,
		},
		RecencyWindow: rc.RecencyWindow,
	}
}

func buildFetcherConfig(cfg *config.Config) ingest.FetcherConfig {
	fc := ingest.DefaultFetcherConfig()
	fc.Timeout = cfg.Feeds.RequestTimeout
	fc.RequestsPerSecond = cfg.Feeds.RequestsPerSecond
	fc.Burst = cfg.Feeds.Burst
	fc.UserAgent = cfg.Feeds.UserAgent
	return fc
}
