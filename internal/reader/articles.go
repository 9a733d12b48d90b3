// Newsdesk - RSS Reading Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsdesk

package reader

import (
	"fmt"

	"github.com/tomtom215/newsdesk/internal/metrics"
	"github.com/tomtom215/newsdesk/internal/models"
	"github.com/tomtom215/newsdesk/internal/state"
	"github.com/tomtom215/newsdesk/internal/textmetrics"
)

// summarySentences is how many sentences ArticleMetrics summarizes to.
const summarySentences = 3

// ArticleMetrics is the reading analysis of one article's text.
type ArticleMetrics struct {
	ArticleID       string                 `json:"articleId"`
	Statistics      textmetrics.Statistics `json:"statistics"`
	Difficulty      textmetrics.Difficulty `json:"difficulty"`
	ReadingTime     int                    `json:"readingTime"`
	ReadingTimeText string                 `json:"readingTimeText"`
	Summary         string                 `json:"summary"`
}

// Articles lists the articles matching f.
func (s *Service) Articles(f Filter) ([]models.Article, uint64) {
	st, version := s.store.Snapshot()
	return f.Apply(st.Articles), version
}

// Article returns one article by ID.
func (s *Service) Article(id string) (models.Article, error) {
	st, _ := s.store.Snapshot()
	return findArticle(&st, id)
}

func findArticle(st *state.State, id string) (models.Article, error) {
	i := st.FindArticle(id)
	if i < 0 {
		return models.Article{}, fmt.Errorf("article %s: %w", id, ErrArticleNotFound)
	}
	return st.Articles[i], nil
}

// ArticleMetrics analyzes the plain text of one article.
func (s *Service) ArticleMetrics(id string) (ArticleMetrics, error) {
	a, err := s.Article(id)
	if err != nil {
		return ArticleMetrics{}, err
	}
	text := a.PlainTextContent
	minutes := textmetrics.EstimateReadingTime(text)
	return ArticleMetrics{
		ArticleID:       a.ID,
		Statistics:      textmetrics.GetTextStatistics(text),
		Difficulty:      textmetrics.CalculateReadingDifficulty(text),
		ReadingTime:     minutes,
		ReadingTimeText: textmetrics.FormatReadingTime(minutes),
		Summary:         textmetrics.Summarize(text, summarySentences),
	}, nil
}

// OpenArticle marks the article read and starts tracking reading time for
// it, replacing any session already running.
func (s *Service) OpenArticle(id string) (models.Article, error) {
	a, err := s.MarkRead(id)
	if err != nil {
		return models.Article{}, err
	}

	s.tracker.Start(a.ID, a.Category, s.onTick)
	metrics.SetTrackingActive(true)
	s.logger.Debug().Str("article_id", a.ID).Msg("article opened")
	return a, nil
}

// CloseArticle stops reading-time tracking. It reports whether a session
// was running.
func (s *Service) CloseArticle() bool {
	_, active := s.tracker.Active()
	s.tracker.Stop()
	metrics.SetTrackingActive(false)
	return active
}

// ActiveArticle returns the ID of the article being tracked.
func (s *Service) ActiveArticle() (string, bool) {
	return s.tracker.Active()
}

// MarkRead marks the article read. Only the first read is recorded.
func (s *Service) MarkRead(id string) (models.Article, error) {
	if _, err := s.Article(id); err != nil {
		return models.Article{}, err
	}
	st := s.store.Dispatch(state.MarkRead{ArticleID: id, At: s.now()})
	return findArticle(&st, id)
}

// ToggleBookmark flips the bookmark flag of an article.
func (s *Service) ToggleBookmark(id string) (models.Article, error) {
	if _, err := s.Article(id); err != nil {
		return models.Article{}, err
	}
	st := s.store.Dispatch(state.ToggleBookmark{ArticleID: id})
	return findArticle(&st, id)
}

// ClearBookmarks removes every bookmark.
func (s *Service) ClearBookmarks() {
	s.store.Dispatch(state.SetBookmarks{ArticleIDs: []string{}})
}

// ApplyTick folds one reading tick into the article and the statistics.
func (s *Service) ApplyTick(tick models.ReadingTick) {
	s.store.Dispatch(state.UpdateReadingTime{Tick: tick})
	metrics.RecordReadingSeconds(tick.Seconds)
}

// onTick runs on the tracker goroutine. With a publisher the tick travels
// over the bus to the fold consumer; otherwise it is folded in place.
func (s *Service) onTick(tick models.ReadingTick) {
	metrics.RecordReadingTick()
	if s.publisher == nil {
		s.ApplyTick(tick)
		return
	}
	if err := s.publisher.PublishTick(tick); err != nil {
		s.logger.Warn().Err(err).Str("article_id", tick.ArticleID).Msg("reading tick dropped")
	}
}
