// Newsdesk - RSS Reading Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsdesk

package storage

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/newsdesk/internal/metrics"
	"github.com/tomtom215/newsdesk/internal/models"
	"github.com/tomtom215/newsdesk/internal/state"
)

// Keys. Each collection is one value so a snapshot is written in a single
// transaction.
const (
	keyMeta        = "newsdesk:meta"
	keyFeeds       = "newsdesk:feeds"
	keyArticles    = "newsdesk:articles"
	keyCategories  = "newsdesk:categories"
	keyBookmarks   = "newsdesk:bookmarks"
	keyStatistics  = "newsdesk:statistics"
	keyPreferences = "newsdesk:preferences"

	schemaVersion = 1
)

var (
	// ErrNotFound is returned by Load when nothing has been saved yet.
	ErrNotFound = errors.New("no saved snapshot")

	// ErrClosed is returned after Close.
	ErrClosed = errors.New("storage closed")
)

// Config configures the snapshot store.
type Config struct {
	Path     string
	InMemory bool

	// MaxArticles caps persisted articles, most recently published first.
	// Bookmarked articles are always kept. Default: 1000
	MaxArticles int

	// GCRatio is the value log discard ratio for RunGC. Default: 0.5
	GCRatio float64
}

// DefaultMaxArticles is the persisted article cap.
const DefaultMaxArticles = 1000

// Meta describes the last saved snapshot.
type Meta struct {
	Schema       int       `json:"schema"`
	SavedAt      time.Time `json:"savedAt"`
	StateVersion uint64    `json:"stateVersion"`
	Articles     int       `json:"articles"`
}

// Store persists state snapshots in BadgerDB.
type Store struct {
	db     *badger.DB
	cfg    Config
	logger zerolog.Logger

	mu     sync.RWMutex
	closed bool
}

// Open opens or creates the store.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func Open(cfg Config, logger zerolog.Logger) (*Store, error) {
	if cfg.MaxArticles <= 0 {
		cfg.MaxArticles = DefaultMaxArticles
	}
	if cfg.GCRatio <= 0 || cfg.GCRatio >= 1 {
		cfg.GCRatio = 0.5
	}
	if !cfg.InMemory && cfg.Path == "" {
		return nil, errors.New("storage path is required")
	}

	logger = logger.With().Str("component", "storage").Logger()

	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts.Logger = newBadgerLogger(logger)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}

	logger.Info().Str("path", cfg.Path).Bool("in_memory", cfg.InMemory).Msg("snapshot store opened")
	return &Store{db: db, cfg: cfg, logger: logger}, nil
}

// Save writes a snapshot of s. Loading and error flags are not persisted.
func (st *Store) Save(ctx context.Context, s state.State, stateVersion uint64) (err error) {
	start := time.Now()
	defer func() { metrics.RecordSnapshot(time.Since(start), err) }()

	if err := ctx.Err(); err != nil {
		return err
	}

	st.mu.RLock()
	defer st.mu.RUnlock()
	if st.closed {
		return ErrClosed
	}

	articles := pruneArticles(s.Articles, st.cfg.MaxArticles)
	bookmarks := keptBookmarks(s.Bookmarks, articles)

	values := []struct {
		key string
		val interface{}
	}{
		{keyFeeds, s.Feeds},
		{keyArticles, articles},
		{keyCategories, s.Categories},
		{keyBookmarks, bookmarks},
		{keyStatistics, s.Statistics},
		{keyPreferences, s.Preferences},
		{keyMeta, Meta{
			Schema:       schemaVersion,
			SavedAt:      time.Now().UTC(),
			StateVersion: stateVersion,
			Articles:     len(articles),
		}},
	}

	err = st.db.Update(func(txn *badger.Txn) error {
		for _, v := range values {
			data, err := json.Marshal(v.val)
			if err != nil {
				return fmt.Errorf("marshal %s: %w", v.key, err)
			}
			if err := txn.Set([]byte(v.key), data); err != nil {
				return fmt.Errorf("set %s: %w", v.key, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}

	st.logger.Debug().
		Uint64("state_version", stateVersion).
		Int("articles", len(articles)).
		Dur("duration", time.Since(start)).
		Msg("snapshot saved")
	return nil
}

// Load reads the last snapshot. Missing collections load as empty, and
// categories are normalized.
func (st *Store) Load(ctx context.Context) (state.State, Meta, error) {
	if err := ctx.Err(); err != nil {
		return state.State{}, Meta{}, err
	}

	st.mu.RLock()
	defer st.mu.RUnlock()
	if st.closed {
		return state.State{}, Meta{}, ErrClosed
	}

	s := state.Initial()
	var meta Meta

	err := st.db.View(func(txn *badger.Txn) error {
		found, err := get(txn, keyMeta, &meta)
		if err != nil {
			return err
		}
		if !found {
			return ErrNotFound
		}

		targets := []struct {
			key string
			dst interface{}
		}{
			{keyFeeds, &s.Feeds},
			{keyArticles, &s.Articles},
			{keyCategories, &s.Categories},
			{keyBookmarks, &s.Bookmarks},
			{keyStatistics, &s.Statistics},
			{keyPreferences, &s.Preferences},
		}
		for _, t := range targets {
			if _, err := get(txn, t.key, t.dst); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return state.State{}, Meta{}, ErrNotFound
		}
		return state.State{}, Meta{}, fmt.Errorf("load snapshot: %w", err)
	}

	if meta.Schema > schemaVersion {
		return state.State{}, Meta{}, fmt.Errorf("snapshot schema %d is newer than supported %d", meta.Schema, schemaVersion)
	}

	normalize(&s)
	return s, meta, nil
}

func get(txn *badger.Txn, key string, dst interface{}) (bool, error) {
	item, err := txn.Get([]byte(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get %s: %w", key, err)
	}
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, dst)
	})
	if err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// normalize repairs nil collections and applies category normalization.
func normalize(s *state.State) {
	if s.Feeds == nil {
		s.Feeds = []models.Feed{}
	}
	if s.Articles == nil {
		s.Articles = []models.Article{}
	}
	if s.Categories == nil {
		s.Categories = []models.Category{}
	}
	if s.Bookmarks == nil {
		s.Bookmarks = []string{}
	}
	if s.Statistics.CategoryBreakdown == nil {
		s.Statistics.CategoryBreakdown = make(map[string]int)
	}
	if s.Statistics.ReadingHistory == nil {
		s.Statistics.ReadingHistory = []models.ReadingEvent{}
	}

	for i := range s.Articles {
		s.Articles[i].Category = models.NormalizeCategory(s.Articles[i].Category)
	}
	for i := range s.Statistics.ReadingHistory {
		s.Statistics.ReadingHistory[i].Category = models.NormalizeCategory(s.Statistics.ReadingHistory[i].Category)
	}

	bookmarked := make(map[string]struct{}, len(s.Bookmarks))
	for _, id := range s.Bookmarks {
		bookmarked[id] = struct{}{}
	}
	for i := range s.Articles {
		_, ok := bookmarked[s.Articles[i].ID]
		s.Articles[i].IsBookmarked = ok
	}
}

// pruneArticles keeps the limit most recently published articles plus every
// bookmarked one. Undated articles rank last. Input order is preserved.
func pruneArticles(articles []models.Article, limit int) []models.Article {
	if len(articles) <= limit {
		return articles
	}

	idx := make([]int, len(articles))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		ta, okA := articles[idx[a]].Published()
		tb, okB := articles[idx[b]].Published()
		if okA != okB {
			return okA
		}
		return ta.After(tb)
	})

	keep := make([]bool, len(articles))
	for _, i := range idx[:limit] {
		keep[i] = true
	}
	out := make([]models.Article, 0, limit)
	for i := range articles {
		if keep[i] || articles[i].IsBookmarked {
			out = append(out, articles[i])
		}
	}
	return out
}

func keptBookmarks(bookmarks []string, articles []models.Article) []string {
	present := make(map[string]struct{}, len(articles))
	for i := range articles {
		present[articles[i].ID] = struct{}{}
	}
	out := make([]string, 0, len(bookmarks))
	for _, id := range bookmarks {
		if _, ok := present[id]; ok {
			out = append(out, id)
		}
	}
	return out
}

// RunGC reclaims value log space until nothing is left to rewrite.
func (st *Store) RunGC() error {
	st.mu.RLock()
	defer st.mu.RUnlock()
	if st.closed {
		return ErrClosed
	}
	if st.cfg.InMemory {
		return nil
	}
	for {
		err := st.db.RunValueLogGC(st.cfg.GCRatio)
		if errors.Is(err, badger.ErrNoRewrite) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("run GC: %w", err)
		}
	}
}

// Close closes the database. It is safe to call more than once.
func (st *Store) Close() error {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.closed {
		return nil
	}
	st.closed = true
	if err := st.db.Close(); err != nil {
		return fmt.Errorf("close badger: %w", err)
	}
	st.logger.Info().Msg("snapshot store closed")
	return nil
}
