// Newsdesk - RSS Reading Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsdesk

/*
Package services adapts Newsdesk components to suture.Service.

	HTTPServerService     ListenAndServe/Shutdown, drives readiness
	WebSocketHubService   hub event loop
	SnapshotService       saves state when its version moves; GC and cache sweep
	RefreshService        cron-scheduled RefreshFeeds (robfig/cron)
	ConsumerService       one Watermill topic, every message acked
	  NewTickFoldService      reading.ticks → ApplyTick
	  NewIngestRelayService   articles.ingested → feed_ingested broadcast

Each service depends on a small interface (Snapshot, RefreshFeeds,
BroadcastJSON...) rather than the concrete reader, store or hub, so tests
use fakes.

A service returns ctx.Err() when its context ends and any other error to
ask suture for a restart. SnapshotService writes once more after
cancellation with a fresh deadline, so a clean shutdown loses no state.
*/
package services
