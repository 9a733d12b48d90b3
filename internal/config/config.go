// Newsdesk - RSS Reading Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsdesk

package config

import "time"

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig     `koanf:"server"`
	Logging    LoggingConfig    `koanf:"logging"`
	Storage    StorageConfig    `koanf:"storage"`
	Recommend  RecommendConfig  `koanf:"recommend"`
	Statistics StatisticsConfig `koanf:"statistics"`
	Tracker    TrackerConfig    `koanf:"tracker"`
	Feeds      FeedsConfig      `koanf:"feeds"`
	Security   SecurityConfig   `koanf:"security"`
	Cache      CacheConfig      `koanf:"cache"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// StorageConfig holds snapshot store settings.
type StorageConfig struct {
	// Path is the BadgerDB directory. Ignored when InMemory is set.
	Path     string `koanf:"path"`
	InMemory bool   `koanf:"in_memory"`

	// MaxArticles caps how many articles a snapshot keeps, newest first.
	MaxArticles int `koanf:"max_articles"`

	// SnapshotInterval is how often a changed state is written.
	SnapshotInterval time.Duration `koanf:"snapshot_interval"`
}

// RecommendConfig holds recommendation engine settings.
type RecommendConfig struct {
	MaxRecommendations int           `koanf:"max_recommendations"`
	ReferenceSetSize   int           `koanf:"reference_set_size"`
	CategoryLimit      int           `koanf:"category_limit"`
	SimilarityWeight   float64       `koanf:"similarity_weight"`
	RecencyWeight      float64       `koanf:"recency_weight"`
	CategoryBonus      float64       `koanf:"category_bonus"`
	RecencyWindow      time.Duration `koanf:"recency_window"`
}

// StatisticsConfig holds statistics settings.
type StatisticsConfig struct {
	// Timezone is the IANA zone used for day and hour buckets. Empty means
	// the process local zone.
	Timezone      string `koanf:"timezone"`
	TopCategories int    `koanf:"top_categories"`
}

// TrackerConfig holds reading-time tracker settings.
type TrackerConfig struct {
	Interval    time.Duration `koanf:"interval"`
	TickSeconds int           `koanf:"tick_seconds"`
}

// FeedsConfig holds feed fetching settings.
type FeedsConfig struct {
	// RefreshSchedule is a cron expression; empty disables scheduled refresh.
	RefreshSchedule   string        `koanf:"refresh_schedule"`
	RequestTimeout    time.Duration `koanf:"request_timeout"`
	RequestsPerSecond float64       `koanf:"requests_per_second"`
	Burst             int           `koanf:"burst"`
	UserAgent         string        `koanf:"user_agent"`

	// URLs are subscribed at startup when the store has no feeds.
	URLs []string `koanf:"urls"`
}

// SecurityConfig holds HTTP hardening settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// CacheConfig holds derived-view cache settings.
type CacheConfig struct {
	TTL  time.Duration `koanf:"ttl"`
	Size int           `koanf:"size"`
}

// Addr returns host:port for the HTTP listener.
func (s ServerConfig) Addr() string {
	return joinHostPort(s.Host, s.Port)
}
