// Newsdesk - RSS Reading Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsdesk

package recommend

import (
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() error = %v", err)
	}
	if cfg.Weights.Similarity != 0.7 || cfg.Weights.Recency != 0.3 || cfg.Weights.CategoryBonus != 0.2 {
		t.Errorf("Weights = %+v, want 0.7/0.3/0.2", cfg.Weights)
	}
	if cfg.RecencyWindow != 30*24*time.Hour {
		t.Errorf("RecencyWindow = %v, want 720h", cfg.RecencyWindow)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"zero max", func(c *Config) { c.MaxRecommendations = 0 }, "max_recommendations"},
		{"zero reference set", func(c *Config) { c.ReferenceSetSize = 0 }, "reference_set_size"},
		{"zero category limit", func(c *Config) { c.CategoryLimit = 0 }, "category_limit"},
		{"negative similarity", func(c *Config) { c.Weights.Similarity = -0.1 }, "weights.similarity"},
		{"negative recency", func(c *Config) { c.Weights.Recency = -0.1 }, "weights.recency"},
		{"negative bonus", func(c *Config) { c.Weights.CategoryBonus = -0.1 }, "weights.category_bonus"},
		{"zero window", func(c *Config) { c.RecencyWindow = 0 }, "recency_window"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_MarshalJSON(t *testing.T) {
	data, err := DefaultConfig().MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() error = %v", err)
	}
	if !strings.Contains(string(data), `"recency_window":"720h0m0s"`) {
		t.Errorf("MarshalJSON() = %s, want recency_window as duration string", data)
	}
}
