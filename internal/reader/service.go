// Newsdesk - RSS Reading Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsdesk

package reader

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tomtom215/newsdesk/internal/cache"
	"github.com/tomtom215/newsdesk/internal/events"
	"github.com/tomtom215/newsdesk/internal/ingest"
	"github.com/tomtom215/newsdesk/internal/models"
	"github.com/tomtom215/newsdesk/internal/recommend"
	"github.com/tomtom215/newsdesk/internal/state"
	"github.com/tomtom215/newsdesk/internal/stats"
	"github.com/tomtom215/newsdesk/internal/tracker"
)

// Publisher carries reader events onto the bus. *events.Bus implements it.
type Publisher interface {
	PublishTick(tick models.ReadingTick) error
	PublishIngested(evt events.IngestedEvent) error
}

// Config configures the derived-view caches.
type Config struct {
	// CacheTTL bounds how long a derived view is served.
	// Default: 5m
	CacheTTL time.Duration

	// CacheSize is the entry capacity of each view cache.
	// Default: 256
	CacheSize int
}

// Deps are the collaborators a Service drives. Store, Engine, Aggregator
// and Tracker are required.
type Deps struct {
	Store      *state.Store
	Engine     *recommend.Engine
	Aggregator *stats.Aggregator
	Tracker    *tracker.Tracker

	// Fetcher is optional; without it feed operations return ErrNoFetcher.
	Fetcher ingest.FeedFetcher

	// Publisher is optional; without it ticks are folded on the tracker
	// goroutine and ingest events are not announced.
	Publisher Publisher
}

// ViewMeta describes where a derived view came from.
type ViewMeta struct {
	StateVersion uint64 `json:"stateVersion"`
	Cached       bool   `json:"cached"`
}

// Service is the application layer over the state store. Every mutation is
// a dispatched command; reads run the pure engine and aggregator over the
// latest snapshot and are cached per state version.
type Service struct {
	store      *state.Store
	engine     *recommend.Engine
	aggregator *stats.Aggregator
	tracker    *tracker.Tracker
	fetcher    ingest.FeedFetcher
	refresher  *ingest.Refresher
	publisher  Publisher

	recs    *cache.LRU[[]recommend.Recommendation]
	buckets *cache.LRU[map[string][]models.Article]
	reports *cache.LRU[stats.Report]

	// refreshMu keeps one feed refresh in flight.
	refreshMu sync.Mutex
	// addMu makes the duplicate check and the subscription of a feed atomic.
	addMu sync.Mutex

	now    func() time.Time
	newID  func() string
	logger zerolog.Logger
}

// New creates a Service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func New(cfg Config, deps Deps, logger zerolog.Logger) (*Service, error) {
	switch {
	case deps.Store == nil:
		return nil, errors.New("reader: store is required")
	case deps.Engine == nil:
		return nil, errors.New("reader: engine is required")
	case deps.Aggregator == nil:
		return nil, errors.New("reader: aggregator is required")
	case deps.Tracker == nil:
		return nil, errors.New("reader: tracker is required")
	}

	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 5 * time.Minute
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = 256
	}

	log := logger.With().Str("component", "reader").Logger()
	s := &Service{
		store:      deps.Store,
		engine:     deps.Engine,
		aggregator: deps.Aggregator,
		tracker:    deps.Tracker,
		fetcher:    deps.Fetcher,
		publisher:  deps.Publisher,
		recs:       cache.NewLRU[[]recommend.Recommendation]("recommendations", cfg.CacheSize, cfg.CacheTTL),
		buckets:    cache.NewLRU[map[string][]models.Article]("recommendations_by_category", cfg.CacheSize, cfg.CacheTTL),
		reports:    cache.NewLRU[stats.Report]("statistics", cfg.CacheSize, cfg.CacheTTL),
		now:        time.Now,
		newID:      uuid.NewString,
		logger:     log,
	}
	if deps.Fetcher != nil {
		s.refresher = ingest.NewRefresher(deps.Fetcher, logger)
	}
	return s, nil
}

// SetClock replaces the time source used for read dates and feed refresh.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
	if s.refresher != nil {
		s.refresher.SetClock(now)
	}
}

// Snapshot returns the current state and version.
func (s *Service) Snapshot() (state.State, uint64) {
	return s.store.Snapshot()
}

// Subscribe registers a listener for committed dispatches.
func (s *Service) Subscribe(l state.Listener) func() {
	return s.store.Subscribe(l)
}

// CleanupCaches drops expired view entries and returns how many were removed.
func (s *Service) CleanupCaches() int {
	return s.recs.CleanupExpired() + s.buckets.CleanupExpired() + s.reports.CleanupExpired()
}
