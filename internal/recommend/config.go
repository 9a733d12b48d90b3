// Newsdesk - RSS Reading Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsdesk

package recommend

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

// Config contains all configuration for the recommendation engine.
type Config struct {
	// MaxRecommendations is used when a caller passes a non-positive max.
	// Default: 10
	MaxRecommendations int `json:"max_recommendations"`

	// ReferenceSetSize is how many recently read articles are compared
	// against each candidate.
	// Default: 5
	ReferenceSetSize int `json:"reference_set_size"`

	// CategoryLimit caps each bucket returned by ByCategory.
	// Default: 5
	CategoryLimit int `json:"category_limit"`

	// Weights controls how similarity and recency are combined.
	Weights Weights `json:"weights"`

	// RecencyWindow is the age at which the recency factor reaches zero.
	// Default: 720h (30 days)
	RecencyWindow time.Duration `json:"-"`
}

// Weights defines the relative contribution of each scoring signal.
type Weights struct {
	// Similarity weights the averaged keyword similarity.
	// Default: 0.7
	Similarity float64 `json:"similarity"`

	// Recency weights the linear publish-date decay.
	// Default: 0.3
	Recency float64 `json:"recency"`

	// CategoryBonus is added to the similarity with each reference article
	// that shares the candidate's category.
	// Default: 0.2
	CategoryBonus float64 `json:"category_bonus"`
}

// ToMap returns the weights as a string-keyed map.
//
//nolint:gocritic // value receiver is intentional for immutable semantics
func (w Weights) ToMap() map[string]float64 {
	return map[string]float64{
		"similarity":     w.Similarity,
		"recency":        w.Recency,
		"category_bonus": w.CategoryBonus,
	}
}

// DefaultConfig returns the production defaults.
func DefaultConfig() *Config {
	return &Config{
		MaxRecommendations: 10,
		ReferenceSetSize:   5,
		CategoryLimit:      5,
		Weights: Weights{
			Similarity:    0.7,
			Recency:       0.3,
			CategoryBonus: 0.2,
		},
		RecencyWindow: 30 * 24 * time.Hour,
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.MaxRecommendations < 1 {
		return fmt.Errorf("max_recommendations must be positive, got %d", c.MaxRecommendations)
	}
	if c.ReferenceSetSize < 1 {
		return fmt.Errorf("reference_set_size must be positive, got %d", c.ReferenceSetSize)
	}
	if c.CategoryLimit < 1 {
		return fmt.Errorf("category_limit must be positive, got %d", c.CategoryLimit)
	}
	if c.Weights.Similarity < 0 {
		return fmt.Errorf("weights.similarity must be non-negative, got %f", c.Weights.Similarity)
	}
	if c.Weights.Recency < 0 {
		return fmt.Errorf("weights.recency must be non-negative, got %f", c.Weights.Recency)
	}
	if c.Weights.CategoryBonus < 0 {
		return fmt.Errorf("weights.category_bonus must be non-negative, got %f", c.Weights.CategoryBonus)
	}
	if c.RecencyWindow <= 0 {
		return fmt.Errorf("recency_window must be positive, got %v", c.RecencyWindow)
	}
	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// MarshalJSON renders RecencyWindow as a duration string.
func (c *Config) MarshalJSON() ([]byte, error) {
	type Alias Config
	return json.Marshal(&struct {
		*Alias
		RecencyWindow string `json:"recency_window"`
	}{
		Alias:         (*Alias)(c),
		RecencyWindow: c.RecencyWindow.String(),
	})
}
