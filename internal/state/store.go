// Newsdesk - RSS Reading Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsdesk

package state

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/tomtom215/newsdesk/internal/metrics"
)

// Listener is called after each committed dispatch with the new state and
// its version. Listeners run on the dispatching goroutine, outside the store
// lock, and may read from the store but should not block.
type Listener func(s State, version uint64)

// Store serializes every state mutation through Reduce.
type Store struct {
	mu      sync.RWMutex
	state   State
	version uint64

	listenersMu sync.RWMutex
	listeners   map[int]Listener
	nextID      int

	logger zerolog.Logger
}

// NewStore creates a store holding initial.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewStore(initial State, logger zerolog.Logger) *Store {
	return &Store{
		state:     initial,
		listeners: make(map[int]Listener),
		logger:    logger.With().Str("component", "state").Logger(),
	}
}

// Dispatch applies cmd and returns the committed state.
func (s *Store) Dispatch(cmd Command) State {
	s.mu.Lock()
	next := Reduce(s.state, cmd)
	s.state = next
	s.version++
	version := s.version
	s.mu.Unlock()

	metrics.RecordCommand(cmd.Name())
	s.logger.Debug().
		Str("command", cmd.Name()).
		Uint64("version", version).
		Msg("command dispatched")

	s.listenersMu.RLock()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.listenersMu.RUnlock()

	for _, l := range listeners {
		l(next, version)
	}
	return next
}

// Snapshot returns the current state and its version.
func (s *Store) Snapshot() (State, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state, s.version
}

// Version returns the number of commands dispatched so far.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Subscribe registers l and returns a function that removes it.
func (s *Store) Subscribe(l Listener) (unsubscribe func()) {
	s.listenersMu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	s.listenersMu.Unlock()

	return func() {
		s.listenersMu.Lock()
		delete(s.listeners, id)
		s.listenersMu.Unlock()
	}
}
