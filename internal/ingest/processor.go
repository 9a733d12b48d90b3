// Newsdesk - RSS Reading Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsdesk

package ingest

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mmcdole/gofeed"

	"github.com/tomtom215/newsdesk/internal/keywords"
	"github.com/tomtom215/newsdesk/internal/models"
	"github.com/tomtom215/newsdesk/internal/textmetrics"
)

const (
	// SummaryLength is the rune length of a generated summary.
	SummaryLength = 150

	// PreviewSize is how many items a feed preview carries.
	PreviewSize = 3
)

// ErrParse is returned when a document is not a readable RSS, Atom or JSON
// feed.
var ErrParse = errors.New("feed parse failed")

// FeedMeta is the channel-level metadata of a parsed feed.
type FeedMeta struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Link        string `json:"link,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// Result is a parsed feed with every item processed into an article.
type Result struct {
	Feed  FeedMeta         `json:"feed"`
	Items []models.Article `json:"items"`
}

// Preview returns up to PreviewSize items.
func (r *Result) Preview() []models.Article {
	if len(r.Items) <= PreviewSize {
		return r.Items
	}
	return r.Items[:PreviewSize]
}

// Processor turns feed documents into enriched articles.
type Processor struct {
	newID func() string
}

// NewProcessor creates a processor that assigns random UUIDs.
func NewProcessor() *Processor {
	return &Processor{newID: uuid.NewString}
}

// Parse reads a feed document and processes every item.
func (p *Processor) Parse(r io.Reader) (*Result, error) {
	feed, err := gofeed.NewParser().Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	res := &Result{
		Feed: FeedMeta{
			Title:       strings.TrimSpace(feed.Title),
			Description: strings.TrimSpace(feed.Description),
			Link:        feed.Link,
		},
		Items: make([]models.Article, 0, len(feed.Items)),
	}
	if feed.Image != nil {
		res.Feed.ImageURL = feed.Image.URL
	}

	for _, item := range feed.Items {
		if item == nil {
			continue
		}
		res.Items = append(res.Items, p.ProcessItem(item))
	}
	return res, nil
}

// ProcessItem builds an article from a feed item. Content is sanitized, then
// the plain text drives the summary, keywords and reading time. The category
// is left for AssignFeed.
func (p *Processor) ProcessItem(item *gofeed.Item) models.Article {
	raw := item.Content
	if strings.TrimSpace(raw) == "" {
		raw = item.Description
	}
	content, err := Sanitize(raw)
	if err != nil {
		content = ""
	}
	text := ExtractText(content)

	article := models.Article{
		ID:                   p.newID(),
		Title:                strings.TrimSpace(item.Title),
		Content:              content,
		PlainTextContent:     text,
		Summary:              textmetrics.Excerpt(text, SummaryLength),
		URL:                  strings.TrimSpace(item.Link),
		ImageURL:             FirstImage(content),
		PublishDate:          publishDate(item),
		Author:               author(item),
		Tags:                 item.Categories,
		Keywords:             keywords.Extract(text),
		EstimatedReadingTime: textmetrics.EstimateReadingTime(text),
	}
	if article.ImageURL == "" {
		article.ImageURL = itemImage(item)
	}
	if article.Tags == nil {
		article.Tags = []string{}
	}
	return article
}

// AssignFeed stamps each article with the feed's ID and normalized category.
func AssignFeed(articles []models.Article, feed models.Feed) []models.Article {
	category := models.NormalizeCategory(feed.Category)
	out := make([]models.Article, len(articles))
	for i, a := range articles {
		a.FeedID = feed.ID
		a.Category = category
		out[i] = a
	}
	return out
}

// ApplyMeta refreshes feed metadata from a fetch. A blank fetched title keeps
// the stored one.
func ApplyMeta(feed models.Feed, meta FeedMeta, now time.Time) models.Feed {
	if meta.Title != "" {
		feed.Title = meta.Title
	}
	feed.Description = meta.Description
	if meta.Link != "" {
		feed.Link = meta.Link
	}
	feed.ImageURL = meta.ImageURL
	feed.LastUpdated = now
	return feed
}

func publishDate(item *gofeed.Item) *time.Time {
	switch {
	case item.PublishedParsed != nil:
		return models.TimePtr(item.PublishedParsed.UTC())
	case item.UpdatedParsed != nil:
		return models.TimePtr(item.UpdatedParsed.UTC())
	default:
		return nil
	}
}

func author(item *gofeed.Item) string {
	if item.Author != nil && item.Author.Name != "" {
		return item.Author.Name
	}
	for _, a := range item.Authors {
		if a != nil && a.Name != "" {
			return a.Name
		}
	}
	return ""
}

func itemImage(item *gofeed.Item) string {
	if item.Image != nil && item.Image.URL != "" {
		return item.Image.URL
	}
	for _, enc := range item.Enclosures {
		if enc != nil && strings.HasPrefix(enc.Type, "image/") {
			return enc.URL
		}
	}
	return ""
}
