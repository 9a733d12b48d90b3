// Newsdesk - RSS Reading Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsdesk

package main

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/newsdesk/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Storage: config.StorageConfig{InMemory: true, MaxArticles: 50},
		Recommend: config.RecommendConfig{
			MaxRecommendations: 7,
			ReferenceSetSize:   4,
			CategoryLimit:      3,
			SimilarityWeight:   0.6,
			RecencyWeight:      0.4,
			CategoryBonus:      0.1,
			RecencyWindow:      48 * time.Hour,
		},
		Statistics: config.StatisticsConfig{Timezone: "UTC", TopCategories: 3},
		Tracker:    config.TrackerConfig{Interval: time.Second, TickSeconds: 1},
		Feeds: config.FeedsConfig{
			RequestTimeout:    3 * time.Second,
			RequestsPerSecond: 5,
			Burst:             2,
			UserAgent:         "newsdesk-test",
		},
		Cache: config.CacheConfig{TTL: time.Minute, Size: 16},
	}
}

func TestBuildEngineConfig(t *testing.T) {
	got := buildEngineConfig(testConfig())

	if got.MaxRecommendations != 7 || got.ReferenceSetSize != 4 || got.CategoryLimit != 3 {
		t.Errorf("limits = %d/%d/%d, want 7/4/3", got.MaxRecommendations, got.ReferenceSetSize, got.CategoryLimit)
	}
	if got.Weights.Similarity != 0.6 || got.Weights.Recency != 0.4 || got.Weights.CategoryBonus != 0.1 {
		t.Errorf("Weights = %+v", got.Weights)
	}
	if got.RecencyWindow != 48*time.Hour {
		t.Errorf("RecencyWindow = %v, want 48h", got.RecencyWindow)
	}
}

func TestBuildFetcherConfig(t *testing.T) {
	got := buildFetcherConfig(testConfig())

	if got.Timeout != 3*time.Second || got.RequestsPerSecond != 5 || got.Burst != 2 {
		t.Errorf("fetcher = %v/%v/%v, want 3s/5/2", got.Timeout, got.RequestsPerSecond, got.Burst)
	}
	if got.UserAgent != "newsdesk-test" {
		t.Errorf("UserAgent = %q", got.UserAgent)
	}
	if got.Breaker.MaxRequests == 0 {
		t.Error("Breaker left unset, want defaults")
	}
}

func TestInitComponents_InMemory(t *testing.T) {
	ctx := context.Background()
	comp, err := initComponents(ctx, testConfig(), zerolog.Nop())
	if err != nil {
		t.Fatalf("initComponents() error = %v", err)
	}
	defer comp.Close(zerolog.Nop())

	feeds, _ := comp.Service.Feeds()
	if len(feeds) != 0 {
		t.Errorf("Feeds() = %d, want empty library", len(feeds))
	}
	if n := seedFeeds(ctx, comp.Service, nil, zerolog.Nop()); n != 0 {
		t.Errorf("seedFeeds(nil) = %d, want 0", n)
	}
	// Invalid URLs are skipped without a network call.
	if n := seedFeeds(ctx, comp.Service, []string{"not a url"}, zerolog.Nop()); n != 0 {
		t.Errorf("seedFeeds(invalid) = %d, want 0", n)
	}
}

func TestInitComponents_BadTimezone(t *testing.T) {
	cfg := testConfig()
	cfg.Statistics.Timezone = "Mars/Olympus_Mons"

	if _, err := initComponents(context.Background(), cfg, zerolog.Nop()); err == nil {
		t.Fatal("initComponents() = nil, want timezone error")
	}
}
