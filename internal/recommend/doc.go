// Newsdesk - RSS Reading Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsdesk

// Package recommend ranks unread articles against the reader's recent history.
//
// # Scoring
//
// Personalized ranking compares each unread article to a reference set of the
// most recently read articles (5 by default):
//
//	similarity = mean over refs of (jaccard(keywords) + categoryBonus·[same category])
//	recency    = max(0, 1 - ageDays / recencyWindowDays)
//	score      = similarityWeight·similarity + recencyWeight·recency
//
// With the defaults this is 0.7·similarity + 0.3·recency, a 0.2 category
// bonus, and a 30 day recency window. Articles with an unknown publish date
// get zero recency instead of failing the pass.
//
// # Cold Start
//
// With no reading history the engine returns the newest unread articles by
// publish date. Articles without a publish date sort last.
//
// # Determinism
//
// Every ordering uses a stable sort, so equal scores keep the input order.
// The clock is injectable (SetClock) so recency math is reproducible in tests.
//
// # Thread Safety
//
// The engine holds no per-request state; Recommend and ByCategory are safe for
// concurrent use. Configuration swaps via UpdateConfig are guarded by a
// read-write lock.
//
// # Usage
//
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), logger)
//	if err != nil {
//	    return err
//	}
//	recs := engine.Recommend(articles, readArticles, 10)
package recommend
