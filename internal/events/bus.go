// Newsdesk - RSS Reading Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsdesk

package events

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/newsdesk/internal/logging"
	"github.com/tomtom215/newsdesk/internal/metrics"
	"github.com/tomtom215/newsdesk/internal/models"
)

// Topics.
const (
	TickTopic        = "reading.ticks"
	IngestedTopic    = "articles.ingested"
	metadataSchemaV1 = "v1"
)

// ErrClosed is returned when publishing to a closed bus.
var ErrClosed = errors.New("event bus closed")

// Config configures the in-process bus.
type Config struct {
	// OutputChannelBuffer is the per-subscriber buffer. Default: 256
	OutputChannelBuffer int64
}

// DefaultConfig returns production defaults.
func DefaultConfig() Config {
	return Config{OutputChannelBuffer: 256}
}

// Bus is an in-process Watermill pub/sub carrying reading ticks and ingest
// notifications. Delivery is at-most-once: a tick published with no
// subscriber is dropped.
type Bus struct {
	pubsub *gochannel.GoChannel
	logger zerolog.Logger
	closed atomic.Bool

	published atomic.Int64
}

// IngestedEvent announces articles added by a feed fetch.
type IngestedEvent struct {
	FeedID   string `json:"feedId"`
	FeedURL  string `json:"feedUrl"`
	Articles int    `json:"articles"`
}

// NewBus creates a bus.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewBus(cfg Config, logger zerolog.Logger) *Bus {
	if cfg.OutputChannelBuffer <= 0 {
		cfg.OutputChannelBuffer = DefaultConfig().OutputChannelBuffer
	}
	logger = logger.With().Str("component", "events").Logger()

	wmLogger := watermill.NewSlogLogger(logging.NewSlogLoggerFor(logger))
	pubsub := gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer: cfg.OutputChannelBuffer,
	}, wmLogger)

	return &Bus{pubsub: pubsub, logger: logger}
}

// PublishTick publishes a reading tick to TickTopic.
func (b *Bus) PublishTick(tick models.ReadingTick) error {
	return b.publish(TickTopic, tick)
}

// PublishIngested publishes an ingest notification to IngestedTopic.
func (b *Bus) PublishIngested(evt IngestedEvent) error {
	return b.publish(IngestedTopic, evt)
}

func (b *Bus) publish(topic string, payload interface{}) error {
	if b.closed.Load() {
		return ErrClosed
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", topic, err)
	}

	msg := message.NewMessage(watermill.NewUUID(), data)
	msg.Metadata.Set("schema", metadataSchemaV1)

	if err := b.pubsub.Publish(topic, msg); err != nil {
		return fmt.Errorf("publish to %s: %w", topic, err)
	}
	b.published.Add(1)
	metrics.RecordBusPublish(topic)
	return nil
}

// Subscribe returns a channel of raw messages for topic. Each message must be
// acked. The channel closes when ctx is cancelled or the bus is closed.
func (b *Bus) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	if b.closed.Load() {
		return nil, ErrClosed
	}
	ch, err := b.pubsub.Subscribe(ctx, topic)
	if err != nil {
		return nil, fmt.Errorf("subscribe to %s: %w", topic, err)
	}
	return ch, nil
}

// Published returns the number of messages accepted for publishing.
func (b *Bus) Published() int64 {
	return b.published.Load()
}

// Close shuts down the bus and closes all subscriber channels.
func (b *Bus) Close() error {
	if !b.closed.CompareAndSwap(false, true) {
		return nil
	}
	if err := b.pubsub.Close(); err != nil {
		return fmt.Errorf("close pubsub: %w", err)
	}
	return nil
}

// DecodeTick decodes a message published by PublishTick.
func DecodeTick(msg *message.Message) (models.ReadingTick, error) {
	var tick models.ReadingTick
	if err := json.Unmarshal(msg.Payload, &tick); err != nil {
		return models.ReadingTick{}, fmt.Errorf("decode tick %s: %w", msg.UUID, err)
	}
	return tick, nil
}

// DecodeIngested decodes a message published by PublishIngested.
func DecodeIngested(msg *message.Message) (IngestedEvent, error) {
	var evt IngestedEvent
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		return IngestedEvent{}, fmt.Errorf("decode ingested %s: %w", msg.UUID, err)
	}
	return evt, nil
}
