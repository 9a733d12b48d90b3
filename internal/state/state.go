// Newsdesk - RSS Reading Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsdesk

package state

import "github.com/tomtom215/newsdesk/internal/models"

// State is one committed snapshot of the reader's data. Values returned by
// Reduce and Store never share mutable backing storage with earlier snapshots,
// so callers may read them without locking.
type State struct {
	Feeds       []models.Feed             `json:"feeds"`
	Articles    []models.Article          `json:"articles"`
	Categories  []models.Category         `json:"categories"`
	Bookmarks   []string                  `json:"bookmarks"`
	Statistics  models.ReadingStatistics  `json:"statistics"`
	Preferences models.ReadingPreferences `json:"readingPreferences"`
	Loading     bool                      `json:"loading"`
	Err         string                    `json:"error,omitempty"`
}

// Initial returns the empty starting state.
func Initial() State {
	return State{
		Feeds:       []models.Feed{},
		Articles:    []models.Article{},
		Categories:  []models.Category{},
		Bookmarks:   []string{},
		Statistics:  models.NewReadingStatistics(),
		Preferences: models.DefaultReadingPreferences(),
	}
}

// FindArticle returns the index of the article with id, or -1.
func (s *State) FindArticle(id string) int {
	for i := range s.Articles {
		if s.Articles[i].ID == id {
			return i
		}
	}
	return -1
}

// ReadArticles returns the articles marked as read.
func (s *State) ReadArticles() []models.Article {
	out := []models.Article{}
	for i := range s.Articles {
		if s.Articles[i].IsRead {
			out = append(out, s.Articles[i])
		}
	}
	return out
}

// copyArticles returns a copy of articles whose elements can be modified
// without affecting the original.
func copyArticles(articles []models.Article) []models.Article {
	out := make([]models.Article, len(articles))
	copy(out, articles)
	return out
}

func copyStatistics(st models.ReadingStatistics) models.ReadingStatistics {
	breakdown := make(map[string]int, len(st.CategoryBreakdown))
	for k, v := range st.CategoryBreakdown {
		breakdown[k] = v
	}
	history := make([]models.ReadingEvent, len(st.ReadingHistory))
	copy(history, st.ReadingHistory)

	st.CategoryBreakdown = breakdown
	st.ReadingHistory = history
	return st
}
