// Newsdesk - RSS Reading Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsdesk

package recommend

import "github.com/tomtom215/newsdesk/internal/models"

// Similarity returns the Jaccard similarity of two articles' keyword sets.
// It is 0 when either article has no keyword set.
func Similarity(a, b *models.Article) float64 {
	if a == nil || b == nil || a.Keywords == nil || b.Keywords == nil {
		return 0
	}
	return Jaccard(a.Keywords, b.Keywords)
}

// Jaccard returns |x ∩ y| / |x ∪ y| over the distinct members of x and y.
// Two empty sets have similarity 0.
func Jaccard(x, y []string) float64 {
	setX := make(map[string]struct{}, len(x))
	for _, s := range x {
		setX[s] = struct{}{}
	}

	setY := make(map[string]struct{}, len(y))
	intersection := 0
	for _, s := range y {
		if _, dup := setY[s]; dup {
			continue
		}
		setY[s] = struct{}{}
		if _, ok := setX[s]; ok {
			intersection++
		}
	}

	union := len(setX) + len(setY) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
