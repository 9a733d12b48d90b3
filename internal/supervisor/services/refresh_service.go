// Newsdesk - RSS Reading Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsdesk

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/tomtom215/newsdesk/internal/reader"
)

// FeedRefresher refreshes every subscribed feed.
//
// Satisfied by *reader.Service.
type FeedRefresher interface {
	RefreshFeeds(ctx context.Context) (reader.RefreshSummary, error)
}

// RefreshServiceConfig holds scheduled refresh settings.
type RefreshServiceConfig struct {
	// Schedule is a standard cron expression or descriptor ("@every 30m").
	Schedule string

	// RefreshOnStartup runs one refresh before the first scheduled one.
	RefreshOnStartup bool

	// Timeout bounds one refresh pass. Default: 10m
	Timeout time.Duration
}

// RefreshService runs feed refreshes on a cron schedule. An overrunning
// refresh makes the next firing a no-op.
type RefreshService struct {
	refresher FeedRefresher
	config    RefreshServiceConfig
	schedule  cron.Schedule
	logger    zerolog.Logger
	name      string
}

// NewRefreshService parses the schedule and returns the service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewRefreshService(refresher FeedRefresher, cfg RefreshServiceConfig, logger zerolog.Logger) (*RefreshService, error) {
	schedule, err := cron.ParseStandard(cfg.Schedule)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh schedule %q: %w", cfg.Schedule, err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Minute
	}
	return &RefreshService{
		refresher: refresher,
		config:    cfg,
		schedule:  schedule,
		logger:    logger.With().Str("service", "refresh").Logger(),
		name:      "feed-refresh",
	}, nil
}

// Serve implements suture.Service.
func (s *RefreshService) Serve(ctx context.Context) error {
	cronLogger := cronLogger{logger: s.logger}
	c := cron.New(
		cron.WithLogger(cronLogger),
		cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
	)
	c.Schedule(s.schedule, cron.FuncJob(func() { s.refresh(ctx) }))

	if s.config.RefreshOnStartup {
		s.refresh(ctx)
	}

	c.Start()
	s.logger.Info().
		Str("schedule", s.config.Schedule).
		Time("next", s.schedule.Next(time.Now())).
		Msg("feed refresh scheduled")

	<-ctx.Done()
	// Wait for a running refresh; it sees the canceled context.
	<-c.Stop().Done()
	return ctx.Err()
}

func (s *RefreshService) refresh(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	refreshCtx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	start := time.Now()
	summary, err := s.refresher.RefreshFeeds(refreshCtx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("feed refresh skipped")
		return
	}

	event := s.logger.Info()
	if len(summary.Errors) > 0 {
		event = s.logger.Warn().Interface("errors", summary.Errors)
	}
	event.
		Int("feeds", summary.Feeds).
		Int("updated", summary.Updated).
		Int("articles_added", summary.Articles).
		Dur("duration", time.Since(start)).
		Msg("feed refresh complete")
}

// String returns the service name for logging.
func (s *RefreshService) String() string {
	return s.name
}

// cronLogger routes cron's logr-style calls to zerolog.
type cronLogger struct {
	logger zerolog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug().Fields(keysAndValues).Msg("cron: " + msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error().Err(err).Fields(keysAndValues).Msg("cron: " + msg)
}
