// Newsdesk - RSS Reading Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsdesk

package reader

import (
	"fmt"
	"sort"
	"time"

	"github.com/tomtom215/newsdesk/internal/metrics"
	"github.com/tomtom215/newsdesk/internal/models"
	"github.com/tomtom215/newsdesk/internal/recommend"
	"github.com/tomtom215/newsdesk/internal/state"
	"github.com/tomtom215/newsdesk/internal/stats"
)

// Recommendations ranks unread articles against the reading history. A
// non-positive limit uses the engine default.
func (s *Service) Recommendations(limit int) ([]recommend.Recommendation, ViewMeta) {
	st, version := s.store.Snapshot()
	key := fmt.Sprintf("%d:%d", version, limit)

	recs, cached := s.recs.GetOrCompute(key, func() []recommend.Recommendation {
		start := time.Now()
		read := st.ReadArticles()
		out := s.engine.Recommend(st.Articles, read, limit)

		mode := recommend.ModePersonalized
		if len(read) == 0 {
			mode = recommend.ModeColdStart
		}
		metrics.RecordRecommendation(mode.String(), time.Since(start), len(out))
		return out
	})
	return recs, ViewMeta{StateVersion: version, Cached: cached}
}

// RecommendationsByCategory buckets unread articles by category, newest
// first. Buckets follow the configured category list; with none configured
// the categories present on articles are used.
func (s *Service) RecommendationsByCategory() (map[string][]models.Article, ViewMeta) {
	st, version := s.store.Snapshot()
	key := fmt.Sprintf("%d", version)

	buckets, cached := s.buckets.GetOrCompute(key, func() map[string][]models.Article {
		return s.engine.ByCategory(st.Articles, categoryNames(&st))
	})
	return buckets, ViewMeta{StateVersion: version, Cached: cached}
}

// Statistics builds the full reading report. Reports are cached per state
// version and calendar day, since the streak and daily series move at midnight.
func (s *Service) Statistics() (stats.Report, ViewMeta) {
	st, version := s.store.Snapshot()
	key := fmt.Sprintf("%d:%s", version, s.aggregator.Today())

	report, cached := s.reports.GetOrCompute(key, func() stats.Report {
		start := time.Now()
		r := s.aggregator.Report(st.Articles, st.Statistics)
		metrics.RecordStatsReport(time.Since(start))
		return r
	})
	return report, ViewMeta{StateVersion: version, Cached: cached}
}

func categoryNames(st *state.State) []string {
	if len(st.Categories) > 0 {
		names := make([]string, 0, len(st.Categories))
		for _, c := range st.Categories {
			names = append(names, c.Name)
		}
		return names
	}

	seen := make(map[string]struct{})
	names := []string{}
	for i := range st.Articles {
		c := st.Articles[i].Category
		if _, ok := seen[c]; ok || c == "" {
			continue
		}
		seen[c] = struct{}{}
		names = append(names, c)
	}
	sort.Strings(names)
	return names
}
