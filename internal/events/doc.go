// Newsdesk - RSS Reading Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsdesk

// Package events provides the in-process Watermill bus.
//
// The tracker publishes each reading tick to TickTopic and the supervised
// tick-fold service consumes it, dispatching state.UpdateReadingTime. Ingest
// announces new articles on IngestedTopic.
//
// Payloads are JSON; consumers decode with DecodeTick or DecodeIngested and
// must Ack every message, including ones that fail to decode.
package events
