// Newsdesk - RSS Reading Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsdesk

package keywords

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
)

func TestExtract(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "empty text",
			text: "",
			want: []string{},
		},
		{
			name: "frequency order",
			text: "golang rocks golang compiler golang compiler",
			want: []string{"golang", "compiler", "rocks"},
		},
		{
			name: "ties keep first seen order",
			text: "zebra apple mango apple zebra mango",
			want: []string{"zebra", "apple", "mango"},
		},
		{
			name: "short tokens and stop words dropped",
			text: "The cat was with this that were over them",
			want: []string{"over", "them"},
		},
		{
			name: "punctuation stripped before splitting",
			text: "Don't panic! Rust's borrow-checker, rust's borrow-checker.",
			want: []string{"rusts", "borrowchecker", "dont", "panic"},
		},
		{
			name: "case folded",
			text: "Kubernetes KUBERNETES kubernetes",
			want: []string{"kubernetes"},
		},
		{
			name: "non ascii letters removed",
			text: "café déjà café",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Extract(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Extract(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtract_CapAndFilters(t *testing.T) {
	t.Parallel()

	var words []string
	for i := 0; i < 25; i++ {
		// word00..word24, each repeated a different number of times
		w := fmt.Sprintf("word%02d", i)
		for j := 0; j <= i%4; j++ {
			words = append(words, w)
		}
	}
	words = append(words, "the", "and", "this", "that", "with", "abc", "xy")

	got := Extract(strings.Join(words, " "))

	if len(got) > MaxKeywords {
		t.Fatalf("len(Extract()) = %d, want <= %d", len(got), MaxKeywords)
	}
	for _, kw := range got {
		if len(kw) < MinLength {
			t.Errorf("keyword %q shorter than %d", kw, MinLength)
		}
		if IsStopWord(kw) {
			t.Errorf("keyword %q is a stop word", kw)
		}
	}
	// word03, word07, ... appear four times and must lead in first-seen order.
	if got[0] != "word03" || got[1] != "word07" {
		t.Errorf("leading keywords = %v, want word03, word07 first", got[:2])
	}
}

func TestExtract_NeverNil(t *testing.T) {
	if got := Extract("a an the"); got == nil {
		t.Error("Extract() returned nil, want empty slice")
	}
}

func TestIsStopWord(t *testing.T) {
	for _, w := range []string{"the", "that", "were"} {
		if !IsStopWord(w) {
			t.Errorf("IsStopWord(%q) = false, want true", w)
		}
	}
	if IsStopWord("golang") {
		t.Error("IsStopWord(golang) = true, want false")
	}
}
