// Newsdesk - RSS Reading Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsdesk

package state

import (
	"testing"
	"time"

	"github.com/tomtom215/newsdesk/internal/models"
)

var readAt = time.Date(2024, 1, 12, 9, 30, 0, 0, time.UTC)

func seeded() State {
	s := Initial()
	return Reduce(s, SetArticles{Articles: []models.Article{
		{ID: "x", URL: "https://example.com/x", Category: "Tech"},
		{ID: "y", URL: "https://example.com/y"},
	}})
}

func TestReduce_SetArticlesNormalizesCategory(t *testing.T) {
	s := seeded()
	if got := s.Articles[1].Category; got != models.DefaultCategory {
		t.Errorf("Category = %q, want %q", got, models.DefaultCategory)
	}
}

func TestReduce_AddArticlesDeduplicatesByURL(t *testing.T) {
	s := seeded()

	next := Reduce(s, AddArticles{Articles: []models.Article{
		{ID: "dup", URL: "https://example.com/x"},
		{ID: "z1", URL: "https://example.com/z"},
		{ID: "z2", URL: "https://example.com/z"},
		{ID: "nourl-1"},
		{ID: "nourl-2"},
	}})

	var gotIDs []string
	for _, a := range next.Articles {
		gotIDs = append(gotIDs, a.ID)
	}
	want := []string{"x", "y", "z1", "nourl-1", "nourl-2"}
	if len(gotIDs) != len(want) {
		t.Fatalf("articles = %v, want %v", gotIDs, want)
	}
	for i := range want {
		if gotIDs[i] != want[i] {
			t.Errorf("articles[%d] = %q, want %q", i, gotIDs[i], want[i])
		}
	}
	if len(s.Articles) != 2 {
		t.Errorf("input state modified: %d articles", len(s.Articles))
	}
}

func TestReduce_MarkRead(t *testing.T) {
	s := seeded()

	next := Reduce(s, MarkRead{ArticleID: "x", At: readAt})

	a := next.Articles[0]
	if !a.IsRead || a.ReadDate == nil || !a.ReadDate.Equal(readAt) {
		t.Errorf("article = %+v, want read at %v", a, readAt)
	}
	if next.Statistics.ReadArticles != 1 {
		t.Errorf("ReadArticles = %d, want 1", next.Statistics.ReadArticles)
	}
	if len(next.Statistics.ReadingHistory) != 1 {
		t.Fatalf("len(ReadingHistory) = %d, want 1", len(next.Statistics.ReadingHistory))
	}
	ev := next.Statistics.ReadingHistory[0]
	if ev.ArticleID != "x" || ev.Category != "Tech" || !ev.Date.Equal(readAt) {
		t.Errorf("event = %+v, want x/Tech at %v", ev, readAt)
	}

	if s.Articles[0].IsRead || s.Statistics.ReadArticles != 0 {
		t.Error("MarkRead modified the previous state")
	}
}

func TestReduce_MarkReadOnlyOnce(t *testing.T) {
	s := Reduce(seeded(), MarkRead{ArticleID: "x", At: readAt})
	again := Reduce(s, MarkRead{ArticleID: "x", At: readAt.Add(time.Hour)})

	if again.Statistics.ReadArticles != 1 {
		t.Errorf("ReadArticles = %d, want 1", again.Statistics.ReadArticles)
	}
	if len(again.Statistics.ReadingHistory) != 1 {
		t.Errorf("len(ReadingHistory) = %d, want 1", len(again.Statistics.ReadingHistory))
	}
	if !again.Articles[0].ReadDate.Equal(readAt) {
		t.Errorf("ReadDate = %v, want first read %v", again.Articles[0].ReadDate, readAt)
	}
}

func TestReduce_MarkReadUnknownArticle(t *testing.T) {
	s := seeded()
	next := Reduce(s, MarkRead{ArticleID: "missing", At: readAt})
	if next.Statistics.ReadArticles != 0 || len(next.Statistics.ReadingHistory) != 0 {
		t.Errorf("statistics = %+v, want unchanged", next.Statistics)
	}
}

func TestReduce_UpdateReadingTime(t *testing.T) {
	s := seeded()
	for i := 0; i < 3; i++ {
		s = Reduce(s, UpdateReadingTime{Tick: models.ReadingTick{ArticleID: "x", Category: "Tech", Seconds: 5}})
	}

	if got := s.Articles[0].ActualReadingTime; got != 15 {
		t.Errorf("ActualReadingTime = %d, want 15", got)
	}
	if got := s.Statistics.TotalReadingTime; got != 15 {
		t.Errorf("TotalReadingTime = %d, want 15", got)
	}
	if got := s.Statistics.CategoryBreakdown["Tech"]; got != 15 {
		t.Errorf("CategoryBreakdown[Tech] = %d, want 15", got)
	}
}

func TestReduce_UpdateReadingTimeEdgeCases(t *testing.T) {
	tests := []struct {
		name          string
		tick          models.ReadingTick
		wantTotal     int
		wantArticle   int
		wantBreakdown map[string]int
	}{
		{"zero seconds ignored", models.ReadingTick{ArticleID: "x", Category: "Tech"}, 0, 0, map[string]int{}},
		{"negative ignored", models.ReadingTick{ArticleID: "x", Category: "Tech", Seconds: -5}, 0, 0, map[string]int{}},
		{"missing article still folds totals", models.ReadingTick{ArticleID: "gone", Category: "Tech", Seconds: 5}, 5, 0, map[string]int{"Tech": 5}},
		{"blank category normalized", models.ReadingTick{ArticleID: "x", Seconds: 5}, 5, 5, map[string]int{models.DefaultCategory: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Reduce(seeded(), UpdateReadingTime{Tick: tt.tick})
			if s.Statistics.TotalReadingTime != tt.wantTotal {
				t.Errorf("TotalReadingTime = %d, want %d", s.Statistics.TotalReadingTime, tt.wantTotal)
			}
			if s.Articles[0].ActualReadingTime != tt.wantArticle {
				t.Errorf("ActualReadingTime = %d, want %d", s.Articles[0].ActualReadingTime, tt.wantArticle)
			}
			if len(s.Statistics.CategoryBreakdown) != len(tt.wantBreakdown) {
				t.Errorf("CategoryBreakdown = %v, want %v", s.Statistics.CategoryBreakdown, tt.wantBreakdown)
			}
			for k, v := range tt.wantBreakdown {
				if s.Statistics.CategoryBreakdown[k] != v {
					t.Errorf("CategoryBreakdown[%s] = %d, want %d", k, s.Statistics.CategoryBreakdown[k], v)
				}
			}
		})
	}
}

func TestReduce_UpdateReadingTimeDoesNotShareMap(t *testing.T) {
	s := seeded()
	next := Reduce(s, UpdateReadingTime{Tick: models.ReadingTick{ArticleID: "x", Category: "Tech", Seconds: 5}})
	if _, ok := s.Statistics.CategoryBreakdown["Tech"]; ok {
		t.Error("previous state's CategoryBreakdown was modified")
	}
	if next.Statistics.CategoryBreakdown["Tech"] != 5 {
		t.Errorf("CategoryBreakdown[Tech] = %d, want 5", next.Statistics.CategoryBreakdown["Tech"])
	}
}

func TestReduce_ToggleBookmark(t *testing.T) {
	s := seeded()

	on := Reduce(s, ToggleBookmark{ArticleID: "y"})
	if !on.Articles[1].IsBookmarked {
		t.Error("IsBookmarked = false after first toggle")
	}
	if len(on.Bookmarks) != 1 || on.Bookmarks[0] != "y" {
		t.Errorf("Bookmarks = %v, want [y]", on.Bookmarks)
	}

	off := Reduce(on, ToggleBookmark{ArticleID: "y"})
	if off.Articles[1].IsBookmarked {
		t.Error("IsBookmarked = true after second toggle")
	}
	if len(off.Bookmarks) != 0 {
		t.Errorf("Bookmarks = %v, want empty", off.Bookmarks)
	}

	unknown := Reduce(s, ToggleBookmark{ArticleID: "missing"})
	if len(unknown.Bookmarks) != 0 {
		t.Errorf("Bookmarks = %v, want empty for unknown article", unknown.Bookmarks)
	}
}

func TestReduce_SetBookmarks(t *testing.T) {
	s := Reduce(seeded(), SetBookmarks{ArticleIDs: []string{"y", "y", "ghost"}})

	if s.Articles[0].IsBookmarked || !s.Articles[1].IsBookmarked {
		t.Errorf("flags = %v/%v, want false/true", s.Articles[0].IsBookmarked, s.Articles[1].IsBookmarked)
	}
	if len(s.Bookmarks) != 2 {
		t.Errorf("Bookmarks = %v, want [y ghost]", s.Bookmarks)
	}
}

func TestReduce_Feeds(t *testing.T) {
	s := Initial()
	s = Reduce(s, AddFeed{Feed: models.Feed{ID: "f1", Title: "One"}})
	s = Reduce(s, AddFeed{Feed: models.Feed{ID: "f2", Title: "Two"}})
	s = Reduce(s, UpdateFeed{Feed: models.Feed{ID: "f1", Title: "Uno"}})
	s = Reduce(s, RemoveFeed{FeedID: "f2"})

	if len(s.Feeds) != 1 || s.Feeds[0].Title != "Uno" {
		t.Errorf("Feeds = %+v, want [Uno]", s.Feeds)
	}

	s = Reduce(s, SetFeeds{Feeds: nil})
	if s.Feeds == nil || len(s.Feeds) != 0 {
		t.Errorf("Feeds = %v, want empty non-nil", s.Feeds)
	}
}

func TestReduce_AddFeed_IgnoresDuplicates(t *testing.T) {
	s := Initial()
	s = Reduce(s, AddFeed{Feed: models.Feed{ID: "f1", URL: "https://a.example/rss"}})

	tests := []struct {
		name string
		feed models.Feed
	}{
		{"same url", models.Feed{ID: "f2", URL: "https://a.example/rss"}},
		{"same id", models.Feed{ID: "f1", URL: "https://b.example/rss"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reduce(s, AddFeed{Feed: tt.feed})
			if len(got.Feeds) != 1 || got.Feeds[0].ID != "f1" {
				t.Errorf("Feeds = %+v, want only f1", got.Feeds)
			}
		})
	}
}

func TestReduce_Categories(t *testing.T) {
	s := Initial()
	s = Reduce(s, AddCategory{Category: models.Category{ID: "c1", Name: "Tech"}})
	s = Reduce(s, AddCategory{Category: models.Category{ID: "c2", Name: "Food"}})
	s = Reduce(s, RemoveCategory{CategoryID: "c1"})

	if len(s.Categories) != 1 || s.Categories[0].Name != "Food" {
		t.Errorf("Categories = %+v, want [Food]", s.Categories)
	}
}

func TestReduce_Preferences(t *testing.T) {
	size := 20
	theme := "dark"
	s := Reduce(Initial(), UpdatePreferences{Patch: models.PreferencesPatch{FontSize: &size, Theme: &theme}})

	if s.Preferences.FontSize != 20 || s.Preferences.Theme != "dark" {
		t.Errorf("Preferences = %+v, want size 20 dark", s.Preferences)
	}
	if s.Preferences.TextAlign != "left" {
		t.Errorf("TextAlign = %q, want unchanged left", s.Preferences.TextAlign)
	}
}

func TestReduce_Flags(t *testing.T) {
	s := Reduce(Initial(), SetLoading{Loading: true})
	s = Reduce(s, SetError{Message: "boom"})
	if !s.Loading || s.Err != "boom" {
		t.Errorf("flags = %v %q, want true boom", s.Loading, s.Err)
	}
	s = Reduce(s, ClearError{})
	if s.Err != "" {
		t.Errorf("Err = %q, want empty", s.Err)
	}
}

func TestReduce_SetStatisticsCopies(t *testing.T) {
	st := models.NewReadingStatistics()
	st.CategoryBreakdown["Tech"] = 10

	s := Reduce(Initial(), SetStatistics{Statistics: st})
	st.CategoryBreakdown["Tech"] = 99

	if s.Statistics.CategoryBreakdown["Tech"] != 10 {
		t.Errorf("CategoryBreakdown[Tech] = %d, want 10", s.Statistics.CategoryBreakdown["Tech"])
	}
}
