// Newsdesk - RSS Reading Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsdesk

package ingest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/tomtom215/newsdesk/internal/metrics"
)

// maxFeedBytes caps a feed document.
const maxFeedBytes = 10 << 20

// ErrFetch wraps every failure to retrieve a feed document.
var ErrFetch = errors.New("feed fetch failed")

// StatusError reports a non-2xx response.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %s", e.Status)
}

// FetcherConfig configures a Fetcher.
type FetcherConfig struct {
	Timeout           time.Duration
	RequestsPerSecond float64
	Burst             int
	UserAgent         string
	Breaker           BreakerConfig
}

// DefaultFetcherConfig returns production defaults.
func DefaultFetcherConfig() FetcherConfig {
	return FetcherConfig{
		Timeout:           20 * time.Second,
		RequestsPerSecond: 2,
		Burst:             4,
		UserAgent:         "Newsdesk/1.0",
		Breaker:           DefaultBreakerConfig(),
	}
}

// FeedFetcher retrieves and processes one feed.
type FeedFetcher interface {
	Fetch(ctx context.Context, feedURL string) (*Result, error)
}

// Fetcher downloads feeds politely: a shared token bucket spaces requests and
// a per-host circuit breaker stops hammering a failing site.
type Fetcher struct {
	client    *http.Client
	limiter   *rate.Limiter
	breakers  *breakers
	processor *Processor
	userAgent string
	logger    zerolog.Logger
}

var _ FeedFetcher = (*Fetcher)(nil)

// NewFetcher creates a fetcher. A nil client gets one with cfg.Timeout.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewFetcher(cfg FetcherConfig, client *http.Client, logger zerolog.Logger) *Fetcher {
	def := DefaultFetcherConfig()
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = def.RequestsPerSecond
	}
	if cfg.Burst < 1 {
		cfg.Burst = def.Burst
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = def.UserAgent
	}
	if cfg.Breaker.MaxRequests == 0 {
		cfg.Breaker = def.Breaker
	}
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}

	logger = logger.With().Str("component", "ingest").Logger()
	return &Fetcher{
		client:    client,
		limiter:   rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		breakers:  newBreakers(cfg.Breaker, logger),
		processor: NewProcessor(),
		userAgent: cfg.UserAgent,
		logger:    logger,
	}
}

// Fetch downloads feedURL and processes it into articles. Every error wraps
// ErrFetch or ErrParse.
func (f *Fetcher) Fetch(ctx context.Context, feedURL string) (*Result, error) {
	start := time.Now()

	u, err := url.Parse(feedURL)
	if err != nil || u.Host == "" {
		metrics.RecordFeedFetch("invalid", time.Since(start))
		return nil, fmt.Errorf("%w: invalid url %q", ErrFetch, feedURL)
	}

	if err := f.limiter.Wait(ctx); err != nil {
		metrics.RecordFeedFetch("cancelled", time.Since(start))
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}

	body, err := f.breakers.execute(u.Host, func() ([]byte, error) {
		return f.download(ctx, feedURL)
	})
	if err != nil {
		metrics.RecordFeedFetch("error", time.Since(start))
		f.logger.Warn().Err(err).Str("url", feedURL).Msg("feed fetch failed")
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}

	res, err := f.processor.Parse(bytes.NewReader(body))
	if err != nil {
		metrics.RecordFeedFetch("parse_error", time.Since(start))
		return nil, err
	}

	metrics.RecordFeedFetch("success", time.Since(start))
	metrics.RecordArticlesIngested(len(res.Items))
	f.logger.Debug().
		Str("url", feedURL).
		Int("items", len(res.Items)).
		Dur("duration", time.Since(start)).
		Msg("feed fetched")
	return res, nil
}

func (f *Fetcher) download(ctx context.Context, feedURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "application/rss+xml, application/atom+xml, application/feed+json, application/xml;q=0.9, */*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFeedBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return body, nil
}
