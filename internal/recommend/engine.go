// Newsdesk - RSS Reading Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsdesk

package recommend

import (
	"fmt"
	"math"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/newsdesk/internal/models"
)

// Engine ranks articles for recommendation. It is safe for concurrent use.
type Engine struct {
	config   *Config
	clock    func() time.Time
	configMu sync.RWMutex

	logger zerolog.Logger

	requestCount         atomic.Int64
	coldStartCount       atomic.Int64
	categoryRequestCount atomic.Int64
	candidatesScored     atomic.Int64
}

// NewEngine creates a new recommendation engine.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Engine{
		config: cfg.Clone(),
		clock:  time.Now,
		logger: logger.With().Str("component", "recommend").Logger(),
	}, nil
}

// SetClock replaces the time source used for recency math.
func (e *Engine) SetClock(now func() time.Time) {
	e.configMu.Lock()
	defer e.configMu.Unlock()
	e.clock = now
}

// GetConfig returns a copy of the current configuration.
func (e *Engine) GetConfig() *Config {
	e.configMu.RLock()
	defer e.configMu.RUnlock()
	return e.config.Clone()
}

// UpdateConfig validates and installs a new configuration.
func (e *Engine) UpdateConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("invalid config: nil")
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	e.configMu.Lock()
	e.config = cfg.Clone()
	e.configMu.Unlock()

	e.logger.Info().
		Int("reference_set_size", cfg.ReferenceSetSize).
		Interface("weights", cfg.Weights.ToMap()).
		Msg("configuration updated")
	return nil
}

// GetMetrics returns the current engine counters.
func (e *Engine) GetMetrics() Metrics {
	return Metrics{
		RequestCount:         e.requestCount.Load(),
		ColdStartCount:       e.coldStartCount.Load(),
		CategoryRequestCount: e.categoryRequestCount.Load(),
		CandidatesScored:     e.candidatesScored.Load(),
	}
}

func (e *Engine) snapshot() (*Config, time.Time) {
	e.configMu.RLock()
	defer e.configMu.RUnlock()
	return e.config, e.clock()
}

// Recommend ranks the unread members of articles.
//
// readArticles is the reading history. When it is empty the newest unread
// articles are returned (cold start). Otherwise each unread article is scored
// against the most recently read ones. A non-positive maxRecommendations uses
// Config.MaxRecommendations. The result is never nil.
func (e *Engine) Recommend(articles, readArticles []models.Article, maxRecommendations int) []Recommendation {
	e.requestCount.Add(1)
	cfg, now := e.snapshot()

	if maxRecommendations <= 0 {
		maxRecommendations = cfg.MaxRecommendations
	}

	candidates := unread(articles)

	if len(readArticles) == 0 {
		e.coldStartCount.Add(1)
		sortByPublishDesc(candidates)
		candidates = truncate(candidates, maxRecommendations)

		recs := make([]Recommendation, len(candidates))
		for i := range candidates {
			recs[i] = Recommendation{Article: candidates[i], Mode: ModeColdStart}
		}
		e.logger.Debug().
			Int("returned", len(recs)).
			Msg("cold start recommendations")
		return recs
	}

	refs := referenceSet(readArticles, cfg.ReferenceSetSize)
	e.candidatesScored.Add(int64(len(candidates)))

	recs := make([]Recommendation, len(candidates))
	for i := range candidates {
		sim := averageSimilarity(&candidates[i], refs, cfg.Weights.CategoryBonus)
		rec := recencyFactor(&candidates[i], now, cfg.RecencyWindow)
		recs[i] = Recommendation{
			Article:    candidates[i],
			Score:      cfg.Weights.Similarity*sim + cfg.Weights.Recency*rec,
			Similarity: sim,
			Recency:    rec,
			Mode:       ModePersonalized,
		}
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})

	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}

	e.logger.Debug().
		Int("candidates", len(candidates)).
		Int("references", len(refs)).
		Int("returned", len(recs)).
		Msg("personalized recommendations")

	return recs
}

// ByCategory returns, for each named category, up to Config.CategoryLimit
// unread articles in that category ordered newest first. Categories without
// unread articles are omitted.
func (e *Engine) ByCategory(articles []models.Article, categories []string) map[string][]models.Article {
	e.categoryRequestCount.Add(1)
	cfg, _ := e.snapshot()

	candidates := unread(articles)
	result := make(map[string][]models.Article)

	for _, category := range categories {
		var matches []models.Article
		for i := range candidates {
			if candidates[i].Category == category {
				matches = append(matches, candidates[i])
			}
		}
		if len(matches) == 0 {
			continue
		}
		sortByPublishDesc(matches)
		result[category] = truncate(matches, cfg.CategoryLimit)
	}

	return result
}

func unread(articles []models.Article) []models.Article {
	out := make([]models.Article, 0, len(articles))
	for i := range articles {
		if !articles[i].IsRead {
			out = append(out, articles[i])
		}
	}
	return out
}

func truncate(articles []models.Article, n int) []models.Article {
	if len(articles) > n {
		return articles[:n]
	}
	return articles
}

// sortByPublishDesc orders articles newest first; unknown dates sort last.
func sortByPublishDesc(articles []models.Article) {
	sort.SliceStable(articles, func(i, j int) bool {
		ti, okI := articles[i].Published()
		tj, okJ := articles[j].Published()
		if okI != okJ {
			return okI
		}
		return okI && ti.After(tj)
	})
}

// referenceSet returns the n most recently read articles; unknown read dates
// sort last.
func referenceSet(read []models.Article, n int) []models.Article {
	refs := make([]models.Article, len(read))
	copy(refs, read)

	sort.SliceStable(refs, func(i, j int) bool {
		ti, okI := refs[i].ReadAt()
		tj, okJ := refs[j].ReadAt()
		if okI != okJ {
			return okI
		}
		return okI && ti.After(tj)
	})

	return truncate(refs, n)
}

func averageSimilarity(candidate *models.Article, refs []models.Article, categoryBonus float64) float64 {
	if len(refs) == 0 {
		return 0
	}

	total := 0.0
	for i := range refs {
		total += Similarity(candidate, &refs[i])
		if candidate.Category == refs[i].Category {
			total += categoryBonus
		}
	}
	return total / float64(len(refs))
}

// recencyFactor decays linearly from 1 at publish time to 0 after window.
// Unknown publish dates score 0.
func recencyFactor(a *models.Article, now time.Time, window time.Duration) float64 {
	published, ok := a.Published()
	if !ok {
		return 0
	}
	ageDays := now.Sub(published).Hours() / 24
	windowDays := window.Hours() / 24
	return math.Max(0, 1-ageDays/windowDays)
}
