// Newsdesk - RSS Reading Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsdesk

package state

import (
	"fmt"

	"github.com/tomtom215/newsdesk/internal/models"
)

// Reduce applies cmd to s and returns the next state. It never modifies s or
// any slice or map reachable from it.
//
//nolint:gocritic // State is passed by value so the reducer stays pure
func Reduce(s State, cmd Command) State {
	switch c := cmd.(type) {
	case SetFeeds:
		s.Feeds = append([]models.Feed{}, c.Feeds...)

	case AddFeed:
		if hasFeed(s.Feeds, c.Feed) {
			break
		}
		s.Feeds = append(append([]models.Feed{}, s.Feeds...), c.Feed)

	case RemoveFeed:
		feeds := make([]models.Feed, 0, len(s.Feeds))
		for _, f := range s.Feeds {
			if f.ID != c.FeedID {
				feeds = append(feeds, f)
			}
		}
		s.Feeds = feeds

	case UpdateFeed:
		feeds := append([]models.Feed{}, s.Feeds...)
		for i := range feeds {
			if feeds[i].ID == c.Feed.ID {
				feeds[i] = c.Feed
			}
		}
		s.Feeds = feeds

	case SetArticles:
		articles := copyArticles(c.Articles)
		for i := range articles {
			articles[i].Category = models.NormalizeCategory(articles[i].Category)
		}
		s.Articles = articles

	case AddArticles:
		s.Articles = addArticles(s.Articles, c.Articles)

	case MarkRead:
		s = markRead(s, c)

	case ToggleBookmark:
		s = toggleBookmark(s, c.ArticleID)

	case SetBookmarks:
		s = setBookmarks(s, c.ArticleIDs)

	case UpdateReadingTime:
		s = updateReadingTime(s, c.Tick)

	case SetCategories:
		s.Categories = append([]models.Category{}, c.Categories...)

	case AddCategory:
		s.Categories = append(append([]models.Category{}, s.Categories...), c.Category)

	case RemoveCategory:
		categories := make([]models.Category, 0, len(s.Categories))
		for _, cat := range s.Categories {
			if cat.ID != c.CategoryID {
				categories = append(categories, cat)
			}
		}
		s.Categories = categories

	case UpdatePreferences:
		s.Preferences = c.Patch.Apply(s.Preferences)

	case SetPreferences:
		s.Preferences = c.Preferences

	case SetStatistics:
		st := copyStatistics(c.Statistics)
		s.Statistics = st

	case SetLoading:
		s.Loading = c.Loading

	case SetError:
		s.Err = c.Message

	case ClearError:
		s.Err = ""

	default:
		panic(fmt.Sprintf("state: unhandled command %T", cmd))
	}
	return s
}

// addArticles appends incoming articles whose URL is not already known,
// including URLs repeated earlier in the same batch. Articles without a URL
// are always kept.
func addArticles(existing, incoming []models.Article) []models.Article {
	seen := make(map[string]struct{}, len(existing)+len(incoming))
	for i := range existing {
		if existing[i].URL != "" {
			seen[existing[i].URL] = struct{}{}
		}
	}

	out := copyArticles(existing)
	for i := range incoming {
		a := incoming[i]
		if a.URL != "" {
			if _, dup := seen[a.URL]; dup {
				continue
			}
			seen[a.URL] = struct{}{}
		}
		a.Category = models.NormalizeCategory(a.Category)
		out = append(out, a)
	}
	return out
}

//nolint:gocritic // State is passed by value so the reducer stays pure
func markRead(s State, c MarkRead) State {
	idx := s.FindArticle(c.ArticleID)
	if idx < 0 || s.Articles[idx].IsRead {
		return s
	}

	articles := copyArticles(s.Articles)
	articles[idx].IsRead = true
	articles[idx].ReadDate = models.TimePtr(c.At)
	s.Articles = articles

	st := copyStatistics(s.Statistics)
	st.ReadArticles++
	st.ReadingHistory = append(st.ReadingHistory, models.ReadingEvent{
		ArticleID: c.ArticleID,
		Date:      c.At,
		Category:  models.NormalizeCategory(articles[idx].Category),
	})
	s.Statistics = st
	return s
}

//nolint:gocritic // State is passed by value so the reducer stays pure
func toggleBookmark(s State, id string) State {
	idx := s.FindArticle(id)
	if idx < 0 {
		return s
	}

	articles := copyArticles(s.Articles)
	articles[idx].IsBookmarked = !articles[idx].IsBookmarked
	s.Articles = articles

	bookmarks := make([]string, 0, len(s.Bookmarks)+1)
	for _, b := range s.Bookmarks {
		if b != id {
			bookmarks = append(bookmarks, b)
		}
	}
	if articles[idx].IsBookmarked {
		bookmarks = append(bookmarks, id)
	}
	s.Bookmarks = bookmarks
	return s
}

//nolint:gocritic // State is passed by value so the reducer stays pure
func setBookmarks(s State, ids []string) State {
	set := make(map[string]struct{}, len(ids))
	bookmarks := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, dup := set[id]; dup {
			continue
		}
		set[id] = struct{}{}
		bookmarks = append(bookmarks, id)
	}

	articles := copyArticles(s.Articles)
	for i := range articles {
		_, ok := set[articles[i].ID]
		articles[i].IsBookmarked = ok
	}

	s.Articles = articles
	s.Bookmarks = bookmarks
	return s
}

// updateReadingTime adds the tick to the article, the running total, and the
// category breakdown. Totals are folded even when the article has since been
// removed.
//
//nolint:gocritic // State is passed by value so the reducer stays pure
func updateReadingTime(s State, tick models.ReadingTick) State {
	if tick.Seconds <= 0 {
		return s
	}

	if idx := s.FindArticle(tick.ArticleID); idx >= 0 {
		articles := copyArticles(s.Articles)
		articles[idx].ActualReadingTime += tick.Seconds
		s.Articles = articles
	}

	st := copyStatistics(s.Statistics)
	st.TotalReadingTime += tick.Seconds
	st.CategoryBreakdown[models.NormalizeCategory(tick.Category)] += tick.Seconds
	s.Statistics = st
	return s
}

func hasFeed(feeds []models.Feed, feed models.Feed) bool {
	for _, f := range feeds {
		if f.ID == feed.ID || (feed.URL != "" && f.URL == feed.URL) {
			return true
		}
	}
	return false
}
