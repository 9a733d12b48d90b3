// Newsdesk - RSS Reading Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsdesk

package ingest

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/tomtom215/newsdesk/internal/models"
)

const sampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:content="http://purl.org/rss/1.0/modules/content/">
<channel>
  <title>Gopher Weekly</title>
  <link>https://gopher.example</link>
  <description>News about Go</description>
  <image><url>https://gopher.example/logo.png</url><title>Gopher Weekly</title><link>https://gopher.example</link></image>
  <item>
    <title>Generics in practice</title>
    <link>https://gopher.example/generics</link>
    <pubDate>Mon, 08 Jan 2024 10:00:00 GMT</pubDate>
    <category>golang</category>
    <content:encoded><![CDATA[<p>Generics generics generics make containers reusable.</p><img src="https://gopher.example/g.png"><script>evil()</script>]]></content:encoded>
  </item>
  <item>
    <title>Profiling tips</title>
    <link>https://gopher.example/pprof</link>
    <description>Use pprof to find hot paths.</description>
    <enclosure url="https://gopher.example/pprof.jpg" type="image/jpeg" length="100"/>
  </item>
  <item>
    <title>Third</title>
    <link>https://gopher.example/3</link>
    <description>three</description>
  </item>
  <item>
    <title>Fourth</title>
    <link>https://gopher.example/4</link>
    <description>four</description>
  </item>
</channel>
</rss>`

func newTestProcessor() *Processor {
	n := 0
	return &Processor{newID: func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}}
}

func TestProcessor_Parse(t *testing.T) {
	res, err := newTestProcessor().Parse(strings.NewReader(sampleRSS))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if res.Feed.Title != "Gopher Weekly" {
		t.Errorf("Feed.Title = %q, want Gopher Weekly", res.Feed.Title)
	}
	if res.Feed.ImageURL != "https://gopher.example/logo.png" {
		t.Errorf("Feed.ImageURL = %q", res.Feed.ImageURL)
	}
	if len(res.Items) != 4 {
		t.Fatalf("len(Items) = %d, want 4", len(res.Items))
	}

	first := res.Items[0]
	if first.ID != "id-1" {
		t.Errorf("ID = %q, want id-1", first.ID)
	}
	if strings.Contains(first.Content, "evil") {
		t.Errorf("Content = %q, want script removed", first.Content)
	}
	if first.PlainTextContent != "Generics generics generics make containers reusable." {
		t.Errorf("PlainTextContent = %q", first.PlainTextContent)
	}
	if first.ImageURL != "https://gopher.example/g.png" {
		t.Errorf("ImageURL = %q, want first <img>", first.ImageURL)
	}
	if len(first.Keywords) == 0 || first.Keywords[0] != "generics" {
		t.Errorf("Keywords = %v, want generics first", first.Keywords)
	}
	if first.EstimatedReadingTime != 1 {
		t.Errorf("EstimatedReadingTime = %d, want 1", first.EstimatedReadingTime)
	}
	wantDate := time.Date(2024, 1, 8, 10, 0, 0, 0, time.UTC)
	if first.PublishDate == nil || !first.PublishDate.Equal(wantDate) {
		t.Errorf("PublishDate = %v, want %v", first.PublishDate, wantDate)
	}
	if len(first.Tags) != 1 || first.Tags[0] != "golang" {
		t.Errorf("Tags = %v, want [golang]", first.Tags)
	}

	second := res.Items[1]
	if second.PlainTextContent != "Use pprof to find hot paths." {
		t.Errorf("description fallback = %q", second.PlainTextContent)
	}
	if second.ImageURL != "https://gopher.example/pprof.jpg" {
		t.Errorf("enclosure fallback ImageURL = %q", second.ImageURL)
	}
	if second.PublishDate != nil {
		t.Errorf("PublishDate = %v, want nil when missing", second.PublishDate)
	}

	if got := len(res.Preview()); got != PreviewSize {
		t.Errorf("len(Preview()) = %d, want %d", got, PreviewSize)
	}
}

func TestProcessor_ParseInvalid(t *testing.T) {
	_, err := newTestProcessor().Parse(strings.NewReader("<html><body>not a feed</body></html>"))
	if !errors.Is(err, ErrParse) {
		t.Errorf("Parse() error = %v, want ErrParse", err)
	}
}

func TestProcessItem_Summary(t *testing.T) {
	long := strings.Repeat("word ", 60)
	item := &gofeed.Item{Title: "t", Description: long}

	a := newTestProcessor().ProcessItem(item)
	if !strings.HasSuffix(a.Summary, "...") {
		t.Errorf("Summary = %q, want ellipsis", a.Summary)
	}
	if got := len([]rune(a.Summary)); got != SummaryLength+3 {
		t.Errorf("len(Summary) = %d, want %d", got, SummaryLength+3)
	}

	short := newTestProcessor().ProcessItem(&gofeed.Item{Description: "brief"})
	if short.Summary != "brief" {
		t.Errorf("Summary = %q, want brief", short.Summary)
	}
	if short.Keywords == nil {
		t.Error("Keywords = nil, want non-nil")
	}
}

func TestAssignFeed(t *testing.T) {
	in := []models.Article{{ID: "a"}, {ID: "b", Category: "old"}}
	out := AssignFeed(in, models.Feed{ID: "f1", Category: "  "})

	for _, a := range out {
		if a.FeedID != "f1" {
			t.Errorf("FeedID = %q, want f1", a.FeedID)
		}
		if a.Category != models.DefaultCategory {
			t.Errorf("Category = %q, want %q", a.Category, models.DefaultCategory)
		}
	}
	if in[0].FeedID != "" {
		t.Error("AssignFeed modified its input")
	}
}

func TestApplyMeta(t *testing.T) {
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	feed := models.Feed{ID: "f", Title: "Mine", URL: "https://x.example/rss"}

	got := ApplyMeta(feed, FeedMeta{Description: "d", ImageURL: "i"}, now)
	if got.Title != "Mine" {
		t.Errorf("Title = %q, want stored title kept", got.Title)
	}
	if got.Description != "d" || got.ImageURL != "i" {
		t.Errorf("meta not applied: %+v", got)
	}
	if !got.LastUpdated.Equal(now) {
		t.Errorf("LastUpdated = %v, want %v", got.LastUpdated, now)
	}

	got = ApplyMeta(feed, FeedMeta{Title: "Theirs"}, now)
	if got.Title != "Theirs" {
		t.Errorf("Title = %q, want Theirs", got.Title)
	}
}
