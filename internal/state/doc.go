// Newsdesk - RSS Reading Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsdesk

// Package state holds the reader's application state.
//
// All mutations are Command values applied by Reduce, a pure function that
// returns a new State without touching the old one. Store wraps Reduce with a
// mutex and a version counter, so there is exactly one writer at a time and
// every snapshot handed out stays valid after later dispatches.
//
// Reading events are appended only on an article's first read, which keeps one
// event per read article. Reading ticks are folded into the article, the total
// reading time, and the per-category breakdown in a single step.
//
//	store := state.NewStore(state.Initial(), logger)
//	store.Dispatch(state.MarkRead{ArticleID: id, At: time.Now()})
//	snapshot, version := store.Snapshot()
package state
