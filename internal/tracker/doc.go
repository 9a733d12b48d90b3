// Newsdesk - RSS Reading Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsdesk

// Package tracker measures active reading time.
//
// A Tracker owns at most one session. While a session is active a ticker
// reports a fixed elapsed time (5 seconds by default) through the session's
// callback. Starting a new session stops the old one first, and Stop waits for
// the ticker goroutine to exit, so a stopped session never delivers a late
// tick. Time since the last tick is dropped on Stop.
//
//	t, _ := tracker.New(tracker.DefaultConfig(), logger)
//	t.Start(article.ID, article.Category, func(tick models.ReadingTick) {
//	    bus.PublishTick(ctx, tick)
//	})
//	defer t.Stop()
package tracker
