// Newsdesk - RSS Reading Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsdesk

// Package keywords derives a bounded keyword set from article text.
//
// Extraction is frequency based: the text is lower-cased, stripped of
// everything except ASCII word characters and whitespace, tokenized, and
// filtered against a fixed stop-word list and a minimum length. The most
// frequent tokens are returned, ties keeping first-seen order.
package keywords

import (
	"sort"
	"strings"
	"unicode"
)

const (
	// MaxKeywords caps the number of keywords returned by Extract.
	MaxKeywords = 10

	// MinLength is the shortest token kept. Shorter tokens carry little signal.
	MinLength = 4
)

var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "a": {}, "an": {}, "in": {}, "on": {}, "at": {},
	"to": {}, "for": {}, "of": {}, "with": {}, "by": {}, "as": {}, "is": {},
	"are": {}, "was": {}, "were": {}, "be": {}, "this": {}, "that": {},
}

// IsStopWord reports whether word is in the stop-word list. The check is
// case sensitive; callers pass lower-cased tokens.
func IsStopWord(word string) bool {
	_, ok := stopWords[word]
	return ok
}

type termCount struct {
	term  string
	count int
}

// Extract returns up to MaxKeywords keywords from text, most frequent first.
// The result is never nil.
func Extract(text string) []string {
	counts := make(map[string]int)
	var order []termCount

	for _, token := range strings.Fields(normalize(text)) {
		if len(token) < MinLength || IsStopWord(token) {
			continue
		}
		if idx, seen := counts[token]; seen {
			order[idx].count++
			continue
		}
		counts[token] = len(order)
		order = append(order, termCount{term: token, count: 1})
	}

	sort.SliceStable(order, func(i, j int) bool {
		return order[i].count > order[j].count
	})

	if len(order) > MaxKeywords {
		order = order[:MaxKeywords]
	}

	result := make([]string, len(order))
	for i, tc := range order {
		result[i] = tc.term
	}
	return result
}

// normalize lower-cases text and drops every rune that is neither an ASCII
// word character nor whitespace.
func normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteByte(' ')
		}
	}
	return b.String()
}
