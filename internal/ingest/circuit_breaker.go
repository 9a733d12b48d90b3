// Newsdesk - RSS Reading Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsdesk

package ingest

import (
	"errors"
	"sync"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
	"github.com/rs/zerolog"

	"github.com/tomtom215/newsdesk/internal/metrics"
)

// BreakerConfig tunes the per-host circuit breakers.
type BreakerConfig struct {
	// MaxRequests allowed while half-open. Default: 3
	MaxRequests uint32
	// Interval resets counts while closed. Default: 1m
	Interval time.Duration
	// Timeout before an open breaker goes half-open. Default: 2m
	Timeout time.Duration
	// MinRequests before the failure ratio is considered. Default: 5
	MinRequests uint32
	// FailureRatio that trips the breaker. Default: 0.6
	FailureRatio float64
}

// DefaultBreakerConfig returns production defaults.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		MaxRequests:  3,
		Interval:     time.Minute,
		Timeout:      2 * time.Minute,
		MinRequests:  5,
		FailureRatio: 0.6,
	}
}

// breakers keeps one circuit breaker per feed host, so a dead site does not
// block refreshes of the others.
type breakers struct {
	cfg    BreakerConfig
	logger zerolog.Logger

	mu     sync.Mutex
	byHost map[string]*gobreaker.CircuitBreaker[[]byte]
}

//nolint:gocritic // logger passed by value is acceptable for zerolog
func newBreakers(cfg BreakerConfig, logger zerolog.Logger) *breakers {
	return &breakers{
		cfg:    cfg,
		logger: logger,
		byHost: make(map[string]*gobreaker.CircuitBreaker[[]byte]),
	}
}

func breakerName(host string) string {
	return "feed:" + host
}

func (b *breakers) get(host string) *gobreaker.CircuitBreaker[[]byte] {
	b.mu.Lock()
	defer b.mu.Unlock()

	if cb, ok := b.byHost[host]; ok {
		return cb
	}

	name := breakerName(host)
	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)

	cfg := b.cfg
	cb := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			if ratio >= cfg.FailureRatio {
				b.logger.Warn().
					Str("host", host).
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", ratio*100).
					Msg("opening feed circuit")
				return true
			}
			return false
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr, toStr := stateToString(from), stateToString(to)
			b.logger.Info().Str("breaker", name).Str("from", fromStr).Str("to", toStr).Msg("circuit breaker state transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},
	})
	b.byHost[host] = cb
	return cb
}

// execute runs fn under the host's breaker and records the outcome.
func (b *breakers) execute(host string, fn func() ([]byte, error)) ([]byte, error) {
	cb := b.get(host)
	name := breakerName(host)

	body, err := cb.Execute(fn)
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(name, "rejected").Inc()
			return nil, err
		}
		metrics.CircuitBreakerRequests.WithLabelValues(name, "failure").Inc()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(float64(cb.Counts().ConsecutiveFailures))
		return nil, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(name, "success").Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
	return body, nil
}

// state reports the breaker state for host, or closed when none exists yet.
func (b *breakers) state(host string) gobreaker.State {
	b.mu.Lock()
	defer b.mu.Unlock()
	if cb, ok := b.byHost[host]; ok {
		return cb.State()
	}
	return gobreaker.StateClosed
}

func stateToString(s gobreaker.State) string {
	switch s {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

func stateToFloat(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}
