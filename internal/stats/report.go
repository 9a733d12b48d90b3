// Newsdesk - RSS Reading Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsdesk

package stats

import (
	"fmt"
	"time"

	"github.com/tomtom215/newsdesk/internal/models"
)

// Totals holds the headline reading numbers.
type Totals struct {
	ReadArticles        int    `json:"readArticles"`
	TotalReadingSeconds int    `json:"totalReadingSeconds"`
	TotalReadingTime    string `json:"totalReadingTime"`
}

// BookmarkStats summarizes bookmarked articles.
type BookmarkStats struct {
	Total       int    `json:"total"`
	TopCategory string `json:"topCategory"`
}

// Report bundles every aggregate for one snapshot.
type Report struct {
	GeneratedAt          time.Time       `json:"generatedAt"`
	Totals               Totals          `json:"totals"`
	CategoryDistribution []CategorySlice `json:"categoryDistribution"`
	TimeOfDay            [24]int         `json:"timeOfDay"`
	DailySeries          []DailyPoint    `json:"dailySeries"`
	ReadingStreak        int             `json:"readingStreak"`
	TopCategories        []CategoryCount `json:"topCategories"`
	CategoryBreakdown    map[string]int  `json:"categoryBreakdown"`
	Bookmarks            BookmarkStats   `json:"bookmarks"`
}

// Totals counts read articles and formats the folded reading time.
//
// Reading time comes from statistics rather than from summing articles, since
// the tick fold is the only writer of the running total.
//
//nolint:gocritic // ReadingStatistics is passed by value as a snapshot
func (a *Aggregator) Totals(articles []models.Article, statistics models.ReadingStatistics) Totals {
	read := 0
	for i := range articles {
		if articles[i].IsRead {
			read++
		}
	}
	return Totals{
		ReadArticles:        read,
		TotalReadingSeconds: statistics.TotalReadingTime,
		TotalReadingTime:    FormatDuration(statistics.TotalReadingTime),
	}
}

// BookmarkStats counts bookmarked articles and finds their most common
// category. Ties go to the category seen first.
func (a *Aggregator) BookmarkStats(articles []models.Article) BookmarkStats {
	index := make(map[string]int)
	var counts []CategoryCount
	total := 0

	for i := range articles {
		if !articles[i].IsBookmarked {
			continue
		}
		total++
		category := models.NormalizeCategory(articles[i].Category)
		pos, ok := index[category]
		if !ok {
			pos = len(counts)
			index[category] = pos
			counts = append(counts, CategoryCount{Category: category})
		}
		counts[pos].Count++
	}

	result := BookmarkStats{Total: total}
	best := 0
	for _, c := range counts {
		if c.Count > best {
			best = c.Count
			result.TopCategory = c.Category
		}
	}
	return result
}

// Report computes every aggregate for the given snapshot.
//
//nolint:gocritic // ReadingStatistics is passed by value as a snapshot
func (a *Aggregator) Report(articles []models.Article, statistics models.ReadingStatistics) Report {
	breakdown := make(map[string]int, len(statistics.CategoryBreakdown))
	for k, v := range statistics.CategoryBreakdown {
		breakdown[k] = v
	}

	return Report{
		GeneratedAt:          a.now(),
		Totals:               a.Totals(articles, statistics),
		CategoryDistribution: a.CategoryDistribution(articles),
		TimeOfDay:            a.TimeOfDay(articles),
		DailySeries:          a.DailySeries(articles),
		ReadingStreak:        a.ReadingStreak(articles),
		TopCategories:        a.TopCategories(articles, 0),
		CategoryBreakdown:    breakdown,
		Bookmarks:            a.BookmarkStats(articles),
	}
}

// FormatDuration renders seconds as "Hh Mm", or "Mm" when under an hour.
// Seconds are rounded to the nearest minute, halves up.
func FormatDuration(seconds int) string {
	minutes := roundMinutes(seconds)
	hours := minutes / 60
	minutes %= 60
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}

// roundMinutes converts seconds to whole minutes, halves rounding up.
func roundMinutes(seconds int) int {
	if seconds <= 0 {
		return 0
	}
	return (seconds + 30) / 60
}
