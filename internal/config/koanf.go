// Newsdesk - RSS Reading Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsdesk

package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists config file locations in priority order.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/newsdesk/config.yaml",
	"/etc/newsdesk/config.yml",
}

// ConfigPathEnvVar overrides the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Storage: StorageConfig{
			Path:             "/data/newsdesk",
			MaxArticles:      1000,
			SnapshotInterval: 10 * time.Second,
		},
		Recommend: RecommendConfig{
			MaxRecommendations: 10,
			ReferenceSetSize:   5,
			CategoryLimit:      5,
			SimilarityWeight:   0.7,
			RecencyWeight:      0.3,
			CategoryBonus:      0.2,
			RecencyWindow:      30 * 24 * time.Hour,
		},
		Statistics: StatisticsConfig{
			TopCategories: 3,
		},
		Tracker: TrackerConfig{
			Interval:    5 * time.Second,
			TickSeconds: 5,
		},
		Feeds: FeedsConfig{
			RefreshSchedule:   "@every 30m",
			RequestTimeout:    20 * time.Second,
			RequestsPerSecond: 2,
			Burst:             4,
			UserAgent:         "Newsdesk/1.0 (+https://github.com/tomtom215/newsdesk)",
			URLs:              []string{},
		},
		Security: SecurityConfig{
			CORSOrigins:     []string{"*"},
			RateLimitReqs:   300,
			RateLimitWindow: time.Minute,
		},
		Cache: CacheConfig{
			TTL:  5 * time.Minute,
			Size: 256,
		},
	}
}

// Load reads configuration from, in increasing priority: built-in defaults,
// an optional YAML file, and environment variables. The result is validated.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// sliceConfigPaths are split on commas when they arrive as a single string.
var sliceConfigPaths = []string{
	"security.cors_origins",
	"feeds.urls",
}

func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps environment variable names (lowercased) to config paths.
// Unlisted variables are ignored.
var envMappings = map[string]string{
	"http_host":             "server.host",
	"http_port":             "server.port",
	"http_read_timeout":     "server.read_timeout",
	"http_write_timeout":    "server.write_timeout",
	"http_shutdown_timeout": "server.shutdown_timeout",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	"storage_path":              "storage.path",
	"storage_in_memory":         "storage.in_memory",
	"storage_max_articles":      "storage.max_articles",
	"storage_snapshot_interval": "storage.snapshot_interval",

	"recommend_max":               "recommend.max_recommendations",
	"recommend_reference_set":     "recommend.reference_set_size",
	"recommend_category_limit":    "recommend.category_limit",
	"recommend_similarity_weight": "recommend.similarity_weight",
	"recommend_recency_weight":    "recommend.recency_weight",
	"recommend_category_bonus":    "recommend.category_bonus",
	"recommend_recency_window":    "recommend.recency_window",

	"stats_timezone":       "statistics.timezone",
	"stats_top_categories": "statistics.top_categories",

	"tracker_interval":     "tracker.interval",
	"tracker_tick_seconds": "tracker.tick_seconds",

	"feed_refresh_schedule":     "feeds.refresh_schedule",
	"feed_request_timeout":      "feeds.request_timeout",
	"feed_requests_per_second":  "feeds.requests_per_second",
	"feed_burst":                "feeds.burst",
	"feed_user_agent":           "feeds.user_agent",
	"feed_urls":                 "feeds.urls",

	"cors_origins":        "security.cors_origins",
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",

	"cache_ttl":  "cache.ttl",
	"cache_size": "cache.size",
}

// envTransformFunc maps an environment variable to a config path, or "" to
// skip it.
//
//	HTTP_PORT             -> server.port
//	FEED_REFRESH_SCHEDULE -> feeds.refresh_schedule
//	STATS_TIMEZONE        -> statistics.timezone
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}

func joinHostPort(host string, port int) string {
	return net.JoinHostPort(host, strconv.Itoa(port))
}
