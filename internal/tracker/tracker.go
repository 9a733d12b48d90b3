// Newsdesk - RSS Reading Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsdesk

package tracker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/newsdesk/internal/models"
)

// Config controls the tick cadence.
type Config struct {
	// Interval is the wall-clock period between ticks.
	// Default: 5s
	Interval time.Duration `json:"interval"`

	// TickSeconds is the elapsed time each tick reports.
	// Default: 5
	TickSeconds int `json:"tick_seconds"`
}

// DefaultConfig returns the production tick cadence.
func DefaultConfig() Config {
	return Config{Interval: 5 * time.Second, TickSeconds: 5}
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.Interval <= 0 {
		return fmt.Errorf("interval must be positive, got %v", c.Interval)
	}
	if c.TickSeconds <= 0 {
		return fmt.Errorf("tick_seconds must be positive, got %d", c.TickSeconds)
	}
	return nil
}

// TickFunc receives elapsed reading time for the active session.
// It must not call Start or Stop.
type TickFunc func(models.ReadingTick)

type session struct {
	articleID string
	category  string
	onTick    TickFunc
	cancel    context.CancelFunc
	done      chan struct{}

	// emitMu serializes ticks from the ticker goroutine and from Tick.
	emitMu sync.Mutex
	ctx    context.Context
}

func (s *session) emit(seconds int) bool {
	s.emitMu.Lock()
	defer s.emitMu.Unlock()
	if s.ctx.Err() != nil {
		return false
	}
	s.onTick(models.ReadingTick{ArticleID: s.articleID, Category: s.category, Seconds: seconds})
	return true
}

// Tracker measures active reading time for at most one article at a time.
// Starting a session cancels the previous one.
type Tracker struct {
	cfg    Config
	logger zerolog.Logger

	mu     sync.Mutex
	active *session
}

// New creates a tracker.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func New(cfg Config, logger zerolog.Logger) (*Tracker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tracker config: %w", err)
	}
	return &Tracker{
		cfg:    cfg,
		logger: logger.With().Str("component", "tracker").Logger(),
	}, nil
}

// Start begins a session for articleID. Any previous session is stopped and
// its goroutine has exited before Start returns.
func (t *Tracker) Start(articleID, category string, onTick TickFunc) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if prev := t.active; prev != nil {
		t.stopLocked()
		t.logger.Debug().
			Str("previous_article", prev.articleID).
			Str("article_id", articleID).
			Msg("session replaced")
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &session{
		articleID: articleID,
		category:  category,
		onTick:    onTick,
		cancel:    cancel,
		done:      make(chan struct{}),
		ctx:       ctx,
	}
	t.active = s

	go t.run(s)

	t.logger.Debug().Str("article_id", articleID).Msg("session started")
}

// Stop ends the active session, if any. No partial tick is emitted.
func (t *Tracker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.active == nil {
		return
	}
	articleID := t.active.articleID
	t.stopLocked()
	t.logger.Debug().Str("article_id", articleID).Msg("session stopped")
}

// Tick emits one tick for the active session immediately. It reports whether
// a session was active.
func (t *Tracker) Tick() bool {
	t.mu.Lock()
	s := t.active
	t.mu.Unlock()

	if s == nil {
		return false
	}
	return s.emit(t.cfg.TickSeconds)
}

// Active returns the article being tracked.
func (t *Tracker) Active() (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.active == nil {
		return "", false
	}
	return t.active.articleID, true
}

func (t *Tracker) stopLocked() {
	s := t.active
	t.active = nil

	// Cancelling under emitMu guarantees no tick of s runs after this point.
	s.emitMu.Lock()
	s.cancel()
	s.emitMu.Unlock()

	<-s.done
}

func (t *Tracker) run(s *session) {
	defer close(s.done)

	ticker := time.NewTicker(t.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.emit(t.cfg.TickSeconds)
		}
	}
}
