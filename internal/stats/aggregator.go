// Newsdesk - RSS Reading Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsdesk

package stats

import (
	"fmt"
	"sort"
	"time"

	"github.com/tomtom215/newsdesk/internal/models"
)

const (
	// WindowDays is the length of the daily series.
	WindowDays = 14

	// MaxStreakDays caps the reading streak walk.
	MaxStreakDays = 365

	// DefaultTopCategories is used when Config.TopCategories is not set.
	DefaultTopCategories = 3

	dateKeyLayout = "2006-01-02"
	labelLayout   = "Jan 2"
)

// Palette colors category slices in first-seen order, wrapping after ten.
var Palette = [...]string{
	"#FF6384", "#36A2EB", "#FFCE56", "#4BC0C0", "#9966FF",
	"#FF9F40", "#C9CBCF", "#7FC97F", "#BEAED4", "#FDC086",
}

// Config configures an Aggregator.
type Config struct {
	// Timezone is an IANA name. Empty means the process local zone.
	Timezone string `json:"timezone"`

	// TopCategories is how many entries TopCategories returns for n <= 0.
	TopCategories int `json:"top_categories"`
}

// Aggregator computes reading statistics in a fixed location.
type Aggregator struct {
	loc  *time.Location
	now  func() time.Time
	topN int
}

// NewAggregator creates an aggregator for cfg.
func NewAggregator(cfg Config) (*Aggregator, error) {
	loc := time.Local
	if cfg.Timezone != "" {
		l, err := time.LoadLocation(cfg.Timezone)
		if err != nil {
			return nil, fmt.Errorf("load timezone %q: %w", cfg.Timezone, err)
		}
		loc = l
	}

	topN := cfg.TopCategories
	if topN <= 0 {
		topN = DefaultTopCategories
	}

	return &Aggregator{loc: loc, now: time.Now, topN: topN}, nil
}

// SetClock replaces the time source. Call it before the aggregator is shared.
func (a *Aggregator) SetClock(now func() time.Time) {
	a.now = now
}

// Today returns the current calendar date (YYYY-MM-DD) in the aggregator's
// location.
func (a *Aggregator) Today() string {
	return a.dateKey(a.now())
}

// Location returns the location used for calendar math.
func (a *Aggregator) Location() *time.Location {
	return a.loc
}

// CategorySlice is one entry of the category distribution.
type CategorySlice struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
	Color    string `json:"color"`
}

// CategoryCount is a category with its number of read articles.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// DailyPoint is one calendar day of the daily series.
type DailyPoint struct {
	Date           string `json:"date"`
	Label          string `json:"label"`
	Articles       int    `json:"articles"`
	ReadingMinutes int    `json:"readingMinutes"`
}

// countReadByCategory returns read counts per category in first-seen order.
func countReadByCategory(articles []models.Article) []CategoryCount {
	index := make(map[string]int)
	counts := []CategoryCount{}

	for i := range articles {
		if !articles[i].IsRead {
			continue
		}
		category := models.NormalizeCategory(articles[i].Category)
		pos, ok := index[category]
		if !ok {
			pos = len(counts)
			index[category] = pos
			counts = append(counts, CategoryCount{Category: category})
		}
		counts[pos].Count++
	}
	return counts
}

// CategoryDistribution counts read articles per category in first-seen order.
func (a *Aggregator) CategoryDistribution(articles []models.Article) []CategorySlice {
	counts := countReadByCategory(articles)

	slices := make([]CategorySlice, len(counts))
	for i, c := range counts {
		slices[i] = CategorySlice{
			Category: c.Category,
			Count:    c.Count,
			Color:    Palette[i%len(Palette)],
		}
	}
	return slices
}

// TimeOfDay buckets read articles by the local hour of their read date.
func (a *Aggregator) TimeOfDay(articles []models.Article) [24]int {
	var hours [24]int
	for i := range articles {
		if !articles[i].IsRead {
			continue
		}
		readAt, ok := articles[i].ReadAt()
		if !ok {
			continue
		}
		hours[readAt.In(a.loc).Hour()]++
	}
	return hours
}

// DailySeries returns one point per calendar day from today-13 through today.
// Reading time is summed per day in seconds and rounded to minutes once.
func (a *Aggregator) DailySeries(articles []models.Article) []DailyPoint {
	today := a.startOfDay(a.now())

	points := make([]DailyPoint, WindowDays)
	seconds := make([]int, WindowDays)
	index := make(map[string]int, WindowDays)

	for i := 0; i < WindowDays; i++ {
		day := today.AddDate(0, 0, i-(WindowDays-1))
		key := day.Format(dateKeyLayout)
		points[i] = DailyPoint{Date: key, Label: day.Format(labelLayout)}
		index[key] = i
	}

	for i := range articles {
		if !articles[i].IsRead {
			continue
		}
		readAt, ok := articles[i].ReadAt()
		if !ok {
			continue
		}
		pos, ok := index[a.dateKey(readAt)]
		if !ok {
			continue
		}
		points[pos].Articles++
		seconds[pos] += articles[i].ActualReadingTime
	}

	for i := range points {
		points[i].ReadingMinutes = roundMinutes(seconds[i])
	}
	return points
}

// ReadingStreak counts consecutive calendar days with a read, ending today.
// It is 0 when nothing was read today, and never exceeds MaxStreakDays.
func (a *Aggregator) ReadingStreak(articles []models.Article) int {
	days := make(map[string]struct{})
	for i := range articles {
		if !articles[i].IsRead {
			continue
		}
		if readAt, ok := articles[i].ReadAt(); ok {
			days[a.dateKey(readAt)] = struct{}{}
		}
	}

	today := a.startOfDay(a.now())
	if _, ok := days[today.Format(dateKeyLayout)]; !ok {
		return 0
	}

	streak := 1
	for i := 1; i < MaxStreakDays; i++ {
		day := today.AddDate(0, 0, -i)
		if _, ok := days[day.Format(dateKeyLayout)]; !ok {
			break
		}
		streak++
	}
	return streak
}

// TopCategories returns the n categories with the most read articles. Ties keep
// first-seen order. n <= 0 uses the configured default.
func (a *Aggregator) TopCategories(articles []models.Article, n int) []CategoryCount {
	if n <= 0 {
		n = a.topN
	}

	counts := countReadByCategory(articles)
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})

	if len(counts) > n {
		counts = counts[:n]
	}
	return counts
}

func (a *Aggregator) startOfDay(t time.Time) time.Time {
	t = t.In(a.loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, a.loc)
}

func (a *Aggregator) dateKey(t time.Time) string {
	return t.In(a.loc).Format(dateKeyLayout)
}
