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
)

// FilterType selects which articles a listing returns.
type FilterType string

const (
	FilterAll      FilterType = "all"
	FilterUnread   FilterType = "unread"
	FilterSearch   FilterType = "search"
	FilterCategory FilterType = "category"
	FilterFeed     FilterType = "feed"
)

// Filter is a parsed article listing query.
type Filter struct {
	Type  FilterType `json:"type"`
	Value string     `json:"value,omitempty"`
}

// ParseFilter builds a Filter from query parameters. An empty type means
// FilterAll. Search, category and feed filters require a value.
func ParseFilter(filterType, value string) (Filter, error) {
	value = strings.TrimSpace(value)
	switch t := FilterType(strings.ToLower(strings.TrimSpace(filterType))); t {
	case "", FilterAll:
		return Filter{Type: FilterAll}, nil
	case FilterUnread:
		return Filter{Type: FilterUnread}, nil
	case FilterSearch, FilterCategory, FilterFeed:
		if value == "" {
			return Filter{}, fmt.Errorf("%w: %s requires a value", ErrInvalidFilter, t)
		}
		return Filter{Type: t, Value: value}, nil
	default:
		return Filter{}, fmt.Errorf("%w: unknown type %q", ErrInvalidFilter, filterType)
	}
}

// Apply returns the matching articles in a new slice. Only FilterAll
// reorders, newest first with undated articles last; other filters keep
// the stored order.
func (f Filter) Apply(articles []models.Article) []models.Article {
	out := make([]models.Article, 0, len(articles))

	switch f.Type {
	case FilterSearch:
		term := strings.ToLower(f.Value)
		for i := range articles {
			if matchesSearch(&articles[i], term) {
				out = append(out, articles[i])
			}
		}
	case FilterCategory:
		for i := range articles {
			if articles[i].Category == f.Value {
				out = append(out, articles[i])
			}
		}
	case FilterFeed:
		for i := range articles {
			if articles[i].FeedID == f.Value {
				out = append(out, articles[i])
			}
		}
	case FilterUnread:
		for i := range articles {
			if !articles[i].IsRead {
				out = append(out, articles[i])
			}
		}
	default:
		out = append(out, articles...)
		sortByPublished(out, true)
	}
	return out
}

func matchesSearch(a *models.Article, term string) bool {
	return strings.Contains(strings.ToLower(a.Title), term) ||
		strings.Contains(strings.ToLower(a.Content), term) ||
		strings.Contains(strings.ToLower(a.Summary), term)
}

// sortByPublished orders by publish date. Undated articles go last in
// either direction.
func sortByPublished(articles []models.Article, newestFirst bool) {
	sort.SliceStable(articles, func(i, j int) bool {
		ti, okI := articles[i].Published()
		tj, okJ := articles[j].Published()
		switch {
		case okI != okJ:
			return okI
		case !okI:
			return false
		case newestFirst:
			return ti.After(tj)
		default:
			return ti.Before(tj)
		}
	})
}
