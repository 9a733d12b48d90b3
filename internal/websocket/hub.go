// Newsdesk - RSS Reading Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsdesk

package websocket

import (
	"context"
	"errors"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/newsdesk/internal/metrics"
)

// ShutdownReason identifies why the hub stopped.
type ShutdownReason string

const (
	ShutdownReasonContextCanceled ShutdownReason = "context_canceled"
	ShutdownReasonContextDeadline ShutdownReason = "context_deadline"
)

// Message types for WebSocket communication.
const (
	MessageTypePing         = "ping"
	MessageTypePong         = "pong"
	MessageTypeStateChanged = "state_changed"
	MessageTypeStatsUpdate  = "stats_update"
	MessageTypeFeedIngested = "feed_ingested"
)

// broadcastBuffer is the depth of the broadcast queue.
const broadcastBuffer = 256

// Message is the envelope of every frame.
type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// StateChangedData is the payload of a state_changed message.
type StateChangedData struct {
	Version   uint64 `json:"version"`
	Timestamp string `json:"timestamp"`
}

// StatsFunc returns the payload of a stats_update message.
type StatsFunc func() interface{}

// Hub tracks connected clients and fans messages out to them.
//
// State changes are coalesced: NotifyStateChanged only records the newest
// version, and the hub goroutine sends one state_changed (and, with a
// stats provider, one stats_update) per wake-up no matter how many
// dispatches happened in between.
type Hub struct {
	clients    map[*Client]struct{}
	broadcast  chan Message
	Register   chan *Client
	Unregister chan *Client
	mu         sync.RWMutex

	changed chan struct{}
	version atomic.Uint64

	// done is closed once the hub has shut down, releasing clients that
	// would otherwise block on Register or Unregister.
	done     chan struct{}
	doneOnce sync.Once
	stats    StatsFunc

	logger zerolog.Logger
}

// NewHub creates a hub. Call RunWithContext to start it.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]struct{}),
		broadcast:  make(chan Message, broadcastBuffer),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		changed:    make(chan struct{}, 1),
		done:       make(chan struct{}),
		logger:     logger.With().Str("component", "websocket-hub").Logger(),
	}
}

// SetStatsProvider installs the source of stats_update payloads. It must be
// called before RunWithContext.
func (h *Hub) SetStatsProvider(fn StatsFunc) {
	h.stats = fn
}

// NotifyStateChanged records a new state version without blocking.
func (h *Hub) NotifyStateChanged(version uint64) {
	for {
		cur := h.version.Load()
		if version <= cur || h.version.CompareAndSwap(cur, version) {
			break
		}
	}
	select {
	case h.changed <- struct{}{}:
	default:
	}
}

// RunWithContext serves the hub until ctx is done, then closes every client.
//
// Lifecycle events are drained before broadcasts so a client registered
// just before a message receives it.
func (h *Hub) RunWithContext(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			h.shutdown(ctx)
			return ctx.Err()
		default:
		}

		select {
		case client := <-h.Register:
			h.add(client)
			continue
		case client := <-h.Unregister:
			h.remove(client)
			continue
		default:
		}

		select {
		case <-ctx.Done():
			h.shutdown(ctx)
			return ctx.Err()
		case client := <-h.Register:
			h.add(client)
		case client := <-h.Unregister:
			h.remove(client)
		case message := <-h.broadcast:
			h.broadcastToClients(message)
		case <-h.changed:
			h.announceState()
		}
	}
}

func (h *Hub) add(client *Client) {
	h.mu.Lock()
	h.clients[client] = struct{}{}
	n := len(h.clients)
	h.mu.Unlock()

	metrics.SetWSConnections(n)
	h.logger.Info().Uint64("client_id", client.id).Int("total_clients", n).Msg("websocket client connected")
}

func (h *Hub) remove(client *Client) {
	h.mu.Lock()
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)
	}
	n := len(h.clients)
	h.mu.Unlock()

	metrics.SetWSConnections(n)
	h.logger.Info().Uint64("client_id", client.id).Int("total_clients", n).Msg("websocket client disconnected")
}

func (h *Hub) announceState() {
	if h.ClientCount() == 0 {
		return
	}
	h.broadcastToClients(Message{
		Type: MessageTypeStateChanged,
		Data: StateChangedData{
			Version:   h.version.Load(),
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		},
	})
	if h.stats != nil {
		h.broadcastToClients(Message{Type: MessageTypeStatsUpdate, Data: h.stats()})
	}
}

// broadcastToClients delivers in client ID order. A client whose queue is
// full is dropped.
func (h *Hub) broadcastToClients(message Message) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients := h.sortedLocked()
	var dropped []*Client
	for _, client := range clients {
		select {
		case client.send <- message:
		default:
			dropped = append(dropped, client)
		}
	}

	for _, client := range dropped {
		close(client.send)
		delete(h.clients, client)
		metrics.RecordWSError("slow_client")
		h.logger.Warn().Uint64("client_id", client.id).Msg("dropping slow websocket client")
	}
	if len(dropped) > 0 {
		metrics.SetWSConnections(len(h.clients))
	}
}

func (h *Hub) sortedLocked() []*Client {
	clients := make([]*Client, 0, len(h.clients))
	for client := range h.clients {
		clients = append(clients, client)
	}
	sort.Slice(clients, func(i, j int) bool { return clients[i].id < clients[j].id })
	return clients
}

func (h *Hub) shutdown(ctx context.Context) {
	h.mu.Lock()
	clients := h.sortedLocked()
	for _, client := range clients {
		close(client.send)
		delete(h.clients, client)
	}
	h.mu.Unlock()
	metrics.SetWSConnections(0)
	h.doneOnce.Do(func() { close(h.done) })

	reason := ShutdownReasonContextCanceled
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		reason = ShutdownReasonContextDeadline
	}
	h.logger.Info().
		Str("reason", string(reason)).
		Int("clients_closed", len(clients)).
		Msg("websocket hub stopped")
}

// BroadcastJSON queues a message for every client. It never blocks; when
// the queue is full the message is dropped.
func (h *Hub) BroadcastJSON(messageType string, data interface{}) {
	select {
	case h.broadcast <- Message{Type: messageType, Data: data}:
	default:
		metrics.RecordWSError("broadcast_full")
		h.logger.Warn().Str("message_type", messageType).Msg("broadcast channel full, dropping message")
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// MarshalMessage encodes a message as JSON.
func MarshalMessage(msg Message) ([]byte, error) {
	return json.Marshal(msg)
}
