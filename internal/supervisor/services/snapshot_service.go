// Newsdesk - RSS Reading Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsdesk

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/newsdesk/internal/state"
)

// StateSource is the committed state plus the derived-view caches.
//
// Satisfied by *reader.Service.
type StateSource interface {
	Snapshot() (state.State, uint64)
	CleanupCaches() int
}

// SnapshotStore persists state snapshots.
//
// Satisfied by *storage.Store.
type SnapshotStore interface {
	Save(ctx context.Context, s state.State, version uint64) error
	RunGC() error
}

// SnapshotServiceConfig holds snapshot writer settings.
type SnapshotServiceConfig struct {
	// Interval is how often the state version is checked. Default: 10s
	Interval time.Duration

	// GCInterval is how often value log GC and the cache sweep run. Default: 10m
	GCInterval time.Duration

	// SaveTimeout bounds a single Save, including the final one. Default: 5s
	SaveTimeout time.Duration
}

// SnapshotService writes the state to the store whenever its version moved
// since the last successful save, and once more on shutdown.
type SnapshotService struct {
	source StateSource
	store  SnapshotStore
	config SnapshotServiceConfig
	logger zerolog.Logger
	name   string

	// saved survives supervisor restarts.
	saved uint64
}

// NewSnapshotService creates a snapshot writer. The version current at
// construction counts as saved, since it is what was just loaded.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewSnapshotService(source StateSource, store SnapshotStore, cfg SnapshotServiceConfig, logger zerolog.Logger) *SnapshotService {
	if cfg.Interval <= 0 {
		cfg.Interval = 10 * time.Second
	}
	if cfg.GCInterval <= 0 {
		cfg.GCInterval = 10 * time.Minute
	}
	if cfg.SaveTimeout <= 0 {
		cfg.SaveTimeout = 5 * time.Second
	}
	_, version := source.Snapshot()
	return &SnapshotService{
		source: source,
		store:  store,
		config: cfg,
		logger: logger.With().Str("service", "snapshot").Logger(),
		name:   "snapshot-writer",
		saved:  version,
	}
}

// Serve implements suture.Service.
func (s *SnapshotService) Serve(ctx context.Context) error {
	s.logger.Info().
		Dur("interval", s.config.Interval).
		Dur("gc_interval", s.config.GCInterval).
		Msg("snapshot writer running")

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()
	gcTicker := time.NewTicker(s.config.GCInterval)
	defer gcTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			// The parent context is gone; the last save gets its own deadline.
			finalCtx, cancel := context.WithTimeout(context.Background(), s.config.SaveTimeout)
			err := s.saveIfChanged(finalCtx)
			cancel()
			if err != nil {
				s.logger.Error().Err(err).Msg("final snapshot failed")
			} else {
				s.logger.Info().Uint64("version", s.saved).Msg("snapshot writer stopped")
			}
			return ctx.Err()

		case <-ticker.C:
			saveCtx, cancel := context.WithTimeout(ctx, s.config.SaveTimeout)
			if err := s.saveIfChanged(saveCtx); err != nil {
				s.logger.Warn().Err(err).Msg("snapshot failed, will retry")
			}
			cancel()

		case <-gcTicker.C:
			s.maintain()
		}
	}
}

// Flush saves immediately if the state changed.
func (s *SnapshotService) Flush(ctx context.Context) error {
	return s.saveIfChanged(ctx)
}

func (s *SnapshotService) saveIfChanged(ctx context.Context) error {
	st, version := s.source.Snapshot()
	if version == s.saved {
		return nil
	}
	if err := s.store.Save(ctx, st, version); err != nil {
		return err
	}
	s.logger.Debug().
		Uint64("version", version).
		Int("articles", len(st.Articles)).
		Msg("snapshot saved")
	s.saved = version
	return nil
}

func (s *SnapshotService) maintain() {
	if err := s.store.RunGC(); err != nil {
		s.logger.Warn().Err(err).Msg("value log GC failed")
	}
	if n := s.source.CleanupCaches(); n > 0 {
		s.logger.Debug().Int("expired", n).Msg("view caches swept")
	}
}

// String returns the service name for logging.
func (s *SnapshotService) String() string {
	return s.name
}
