// Newsdesk - RSS Reading Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsdesk

package config

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/tomtom215/newsdesk/internal/logging"
)

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateStorage(); err != nil {
		return err
	}
	if err := c.validateRecommend(); err != nil {
		return err
	}
	if err := c.validateStatistics(); err != nil {
		return err
	}
	if err := c.validateTracker(); err != nil {
		return err
	}
	if err := c.validateFeeds(); err != nil {
		return err
	}
	if err := c.validateSecurity(); err != nil {
		return err
	}
	return c.validateCache()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("HTTP read and write timeouts must be positive")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("HTTP_SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("LOG_LEVEL must be one of trace, debug, info, warn, error; got %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
		return nil
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
}

func (c *Config) validateStorage() error {
	if !c.Storage.InMemory && c.Storage.Path == "" {
		return fmt.Errorf("STORAGE_PATH is required unless STORAGE_IN_MEMORY=true")
	}
	if c.Storage.MaxArticles < 1 {
		return fmt.Errorf("STORAGE_MAX_ARTICLES must be at least 1, got %d", c.Storage.MaxArticles)
	}
	if c.Storage.SnapshotInterval < time.Second {
		return fmt.Errorf("STORAGE_SNAPSHOT_INTERVAL must be at least 1s, got %v", c.Storage.SnapshotInterval)
	}
	return nil
}

func (c *Config) validateRecommend() error {
	r := c.Recommend
	if r.MaxRecommendations < 1 {
		return fmt.Errorf("RECOMMEND_MAX must be at least 1, got %d", r.MaxRecommendations)
	}
	if r.ReferenceSetSize < 1 {
		return fmt.Errorf("RECOMMEND_REFERENCE_SET must be at least 1, got %d", r.ReferenceSetSize)
	}
	if r.CategoryLimit < 1 {
		return fmt.Errorf("RECOMMEND_CATEGORY_LIMIT must be at least 1, got %d", r.CategoryLimit)
	}
	if r.SimilarityWeight < 0 || r.RecencyWeight < 0 || r.CategoryBonus < 0 {
		return fmt.Errorf("recommendation weights must be non-negative")
	}
	if r.RecencyWindow <= 0 {
		return fmt.Errorf("RECOMMEND_RECENCY_WINDOW must be positive")
	}
	return nil
}

func (c *Config) validateStatistics() error {
	if c.Statistics.Timezone != "" {
		if _, err := time.LoadLocation(c.Statistics.Timezone); err != nil {
			return fmt.Errorf("STATS_TIMEZONE is invalid: %w", err)
		}
	}
	if c.Statistics.TopCategories < 1 {
		return fmt.Errorf("STATS_TOP_CATEGORIES must be at least 1, got %d", c.Statistics.TopCategories)
	}
	return nil
}

func (c *Config) validateTracker() error {
	if c.Tracker.Interval <= 0 {
		return fmt.Errorf("TRACKER_INTERVAL must be positive")
	}
	if c.Tracker.TickSeconds < 1 {
		return fmt.Errorf("TRACKER_TICK_SECONDS must be at least 1, got %d", c.Tracker.TickSeconds)
	}
	return nil
}

func (c *Config) validateFeeds() error {
	f := c.Feeds
	if f.RefreshSchedule != "" {
		if _, err := cron.ParseStandard(f.RefreshSchedule); err != nil {
			return fmt.Errorf("FEED_REFRESH_SCHEDULE is invalid: %w", err)
		}
	}
	if f.RequestTimeout <= 0 {
		return fmt.Errorf("FEED_REQUEST_TIMEOUT must be positive")
	}
	if f.RequestsPerSecond <= 0 {
		return fmt.Errorf("FEED_REQUESTS_PER_SECOND must be positive, got %v", f.RequestsPerSecond)
	}
	if f.Burst < 1 {
		return fmt.Errorf("FEED_BURST must be at least 1, got %d", f.Burst)
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1, got %d", c.Security.RateLimitReqs)
	}
	if c.Security.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive")
	}
	return nil
}

func (c *Config) validateCache() error {
	if c.Cache.Size < 1 {
		return fmt.Errorf("CACHE_SIZE must be at least 1, got %d", c.Cache.Size)
	}
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive")
	}
	return nil
}
