// Newsdesk - RSS Reading Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsdesk

package reader

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tomtom215/newsdesk/internal/models"
	"github.com/tomtom215/newsdesk/internal/stats"
)

// BookmarkSort orders the bookmarks view.
type BookmarkSort string

const (
	SortNewest BookmarkSort = "newest"
	SortOldest BookmarkSort = "oldest"
	SortTitle  BookmarkSort = "title"
)

// ParseBookmarkSort parses a sort name. Empty means SortNewest.
func ParseBookmarkSort(raw string) (BookmarkSort, error) {
	switch v := BookmarkSort(strings.ToLower(strings.TrimSpace(raw))); v {
	case "":
		return SortNewest, nil
	case SortNewest, SortOldest, SortTitle:
		return v, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidSort, raw)
	}
}

// BookmarksView is the bookmarked articles after sorting and filtering,
// together with every category that has a bookmark.
type BookmarksView struct {
	Articles   []models.Article `json:"articles"`
	Categories []string         `json:"categories"`
}

// Bookmarks returns the bookmarked articles. An empty category or "all"
// disables the category filter. Categories always lists every bookmarked
// category, sorted, regardless of the filter.
func (s *Service) Bookmarks(order BookmarkSort, category string) (BookmarksView, uint64) {
	st, version := s.store.Snapshot()

	marked := make(map[string]struct{}, len(st.Bookmarks))
	for _, id := range st.Bookmarks {
		marked[id] = struct{}{}
	}

	view := BookmarksView{Articles: []models.Article{}, Categories: []string{}}
	seen := make(map[string]struct{})
	for i := range st.Articles {
		a := st.Articles[i]
		if _, ok := marked[a.ID]; !ok {
			continue
		}
		if a.Category != "" {
			if _, dup := seen[a.Category]; !dup {
				seen[a.Category] = struct{}{}
				view.Categories = append(view.Categories, a.Category)
			}
		}
		if category != "" && category != "all" && a.Category != category {
			continue
		}
		view.Articles = append(view.Articles, a)
	}
	sort.Strings(view.Categories)

	switch order {
	case SortOldest:
		sortByPublished(view.Articles, false)
	case SortTitle:
		sort.SliceStable(view.Articles, func(i, j int) bool {
			return strings.ToLower(view.Articles[i].Title) < strings.ToLower(view.Articles[j].Title)
		})
	default:
		sortByPublished(view.Articles, true)
	}
	return view, version
}

// BookmarkStats counts bookmarks and names the most bookmarked category.
func (s *Service) BookmarkStats() (stats.BookmarkStats, uint64) {
	st, version := s.store.Snapshot()
	return s.aggregator.BookmarkStats(st.Articles), version
}
