// Newsdesk - RSS Reading Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsdesk

package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/rs/zerolog"

	"github.com/tomtom215/newsdesk/internal/events"
	"github.com/tomtom215/newsdesk/internal/metrics"
	"github.com/tomtom215/newsdesk/internal/models"
	ws "github.com/tomtom215/newsdesk/internal/websocket"
)

// errSubscriptionClosed makes suture restart a consumer whose channel closed
// while its context was still live.
var errSubscriptionClosed = errors.New("subscription closed")

// Subscriber matches *events.Bus.
type Subscriber interface {
	Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error)
}

// MessageHandler processes one bus message.
type MessageHandler func(ctx context.Context, msg *message.Message) error

// ConsumerService subscribes to one topic and hands each message to a
// handler. Every message is acked, including ones the handler rejects, so a
// malformed payload is never redelivered.
type ConsumerService struct {
	sub    Subscriber
	topic  string
	handle MessageHandler
	logger zerolog.Logger
	name   string
}

// NewConsumerService creates a consumer for topic.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewConsumerService(name string, sub Subscriber, topic string, handle MessageHandler, logger zerolog.Logger) *ConsumerService {
	return &ConsumerService{
		sub:    sub,
		topic:  topic,
		handle: handle,
		logger: logger.With().Str("service", name).Str("topic", topic).Logger(),
		name:   name,
	}
}

// Serve implements suture.Service.
func (c *ConsumerService) Serve(ctx context.Context) error {
	messages, err := c.sub.Subscribe(ctx, c.topic)
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", c.topic, err)
	}
	c.logger.Debug().Msg("consumer subscribed")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-messages:
			if !ok {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				return errSubscriptionClosed
			}
			if err := c.handle(ctx, msg); err != nil {
				c.logger.Warn().Err(err).Str("message_id", msg.UUID).Msg("dropping message")
			}
			metrics.RecordBusConsume(c.topic)
			msg.Ack()
		}
	}
}

// String returns the service name for logging.
func (c *ConsumerService) String() string {
	return c.name
}

// TickApplier folds a reading tick into the state.
//
// Satisfied by *reader.Service.
type TickApplier interface {
	ApplyTick(tick models.ReadingTick)
}

// NewTickFoldService consumes reading ticks and applies them to the state.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewTickFoldService(sub Subscriber, applier TickApplier, logger zerolog.Logger) *ConsumerService {
	return NewConsumerService("tick-fold", sub, events.TickTopic, func(_ context.Context, msg *message.Message) error {
		tick, err := events.DecodeTick(msg)
		if err != nil {
			return err
		}
		applier.ApplyTick(tick)
		return nil
	}, logger)
}

// Broadcaster sends a typed message to every WebSocket client.
//
// Satisfied by *websocket.Hub.
type Broadcaster interface {
	BroadcastJSON(messageType string, data interface{})
}

// NewIngestRelayService forwards ingest notifications to WebSocket clients
// as feed_ingested messages.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewIngestRelayService(sub Subscriber, hub Broadcaster, logger zerolog.Logger) *ConsumerService {
	return NewConsumerService("ingest-relay", sub, events.IngestedTopic, func(_ context.Context, msg *message.Message) error {
		evt, err := events.DecodeIngested(msg)
		if err != nil {
			return err
		}
		hub.BroadcastJSON(ws.MessageTypeFeedIngested, evt)
		return nil
	}, logger)
}
