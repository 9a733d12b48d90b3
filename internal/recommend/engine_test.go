// Newsdesk - RSS Reading Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsdesk

package recommend

import (
	"math"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/newsdesk/internal/models"
)

var testNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(nil, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	e.SetClock(func() time.Time { return testNow })
	return e
}

func daysAgo(d float64) *time.Time {
	return models.TimePtr(testNow.Add(-time.Duration(d * 24 * float64(time.Hour))))
}

func ids(recs []Recommendation) []string {
	out := make([]string, len(recs))
	for i := range recs {
		out[i] = recs[i].Article.ID
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNewEngine(t *testing.T) {
	t.Run("nil config uses defaults", func(t *testing.T) {
		e, err := NewEngine(nil, zerolog.Nop())
		if err != nil {
			t.Fatalf("NewEngine() error = %v", err)
		}
		if got := e.GetConfig().ReferenceSetSize; got != 5 {
			t.Errorf("ReferenceSetSize = %d, want 5", got)
		}
	})

	t.Run("invalid config rejected", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.ReferenceSetSize = 0
		if _, err := NewEngine(cfg, zerolog.Nop()); err == nil {
			t.Error("NewEngine() expected error for zero reference set")
		}
	})

	t.Run("config is copied", func(t *testing.T) {
		cfg := DefaultConfig()
		e, err := NewEngine(cfg, zerolog.Nop())
		if err != nil {
			t.Fatalf("NewEngine() error = %v", err)
		}
		cfg.MaxRecommendations = 99
		if got := e.GetConfig().MaxRecommendations; got != 10 {
			t.Errorf("MaxRecommendations = %d, want 10", got)
		}
	})
}

func TestRecommend_ColdStart(t *testing.T) {
	e := newTestEngine(t)

	articles := []models.Article{
		{ID: "old", PublishDate: daysAgo(10)},
		{ID: "undated"},
		{ID: "new", PublishDate: daysAgo(1)},
		{ID: "read", PublishDate: daysAgo(0), IsRead: true},
		{ID: "mid", PublishDate: daysAgo(5)},
	}

	recs := e.Recommend(articles, nil, 10)

	want := []string{"new", "mid", "old", "undated"}
	if got := ids(recs); !equalIDs(got, want) {
		t.Errorf("Recommend() ids = %v, want %v", got, want)
	}
	for _, r := range recs {
		if r.Mode != ModeColdStart {
			t.Errorf("Mode = %v, want cold_start", r.Mode)
		}
		if r.Score != 0 {
			t.Errorf("Score = %v, want 0", r.Score)
		}
	}

	if got := e.GetMetrics().ColdStartCount; got != 1 {
		t.Errorf("ColdStartCount = %d, want 1", got)
	}
}

func TestRecommend_ColdStartLimit(t *testing.T) {
	e := newTestEngine(t)

	articles := []models.Article{
		{ID: "a", PublishDate: daysAgo(3)},
		{ID: "b", PublishDate: daysAgo(2)},
		{ID: "c", PublishDate: daysAgo(1)},
	}

	recs := e.Recommend(articles, nil, 2)
	want := []string{"c", "b"}
	if got := ids(recs); !equalIDs(got, want) {
		t.Errorf("Recommend() ids = %v, want %v", got, want)
	}
}

func TestRecommend_EmptyInputs(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		name     string
		articles []models.Article
		read     []models.Article
	}{
		{"no articles no history", nil, nil},
		{"no articles with history", nil, []models.Article{{ID: "r", IsRead: true}}},
		{"all read", []models.Article{{ID: "x", IsRead: true}}, []models.Article{{ID: "x", IsRead: true}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs := e.Recommend(tt.articles, tt.read, 5)
			if recs == nil {
				t.Fatal("Recommend() returned nil, want empty slice")
			}
			if len(recs) != 0 {
				t.Errorf("len(Recommend()) = %d, want 0", len(recs))
			}
		})
	}
}

func TestRecommend_Personalized(t *testing.T) {
	e := newTestEngine(t)

	read := []models.Article{
		{ID: "r1", Category: "Tech", Keywords: []string{"golang", "server", "cloud"}, IsRead: true, ReadDate: daysAgo(1)},
	}
	articles := []models.Article{
		{ID: "unrelated", Category: "Food", Keywords: []string{"pasta", "sauce"}, PublishDate: daysAgo(0)},
		{ID: "similar", Category: "Tech", Keywords: []string{"golang", "server", "cloud"}, PublishDate: daysAgo(15)},
		read[0],
	}

	recs := e.Recommend(articles, read, 10)

	want := []string{"similar", "unrelated"}
	if got := ids(recs); !equalIDs(got, want) {
		t.Fatalf("Recommend() ids = %v, want %v", got, want)
	}

	// similar: sim = 1 + 0.2, recency = 0.5 -> 0.7*1.2 + 0.3*0.5 = 0.99
	if got := recs[0].Score; math.Abs(got-0.99) > 1e-9 {
		t.Errorf("similar Score = %v, want 0.99", got)
	}
	// unrelated: sim = 0, recency = 1 -> 0.3
	if got := recs[1].Score; math.Abs(got-0.3) > 1e-9 {
		t.Errorf("unrelated Score = %v, want 0.3", got)
	}
	for _, r := range recs {
		if r.Mode != ModePersonalized {
			t.Errorf("Mode = %v, want personalized", r.Mode)
		}
	}
}

func TestRecommend_UnknownPublishDate(t *testing.T) {
	e := newTestEngine(t)

	read := []models.Article{{ID: "r", Keywords: []string{"alpha"}, IsRead: true, ReadDate: daysAgo(1)}}
	articles := []models.Article{
		{ID: "undated", Keywords: []string{"alpha"}},
	}

	recs := e.Recommend(articles, read, 10)
	if len(recs) != 1 {
		t.Fatalf("len(Recommend()) = %d, want 1", len(recs))
	}
	if recs[0].Recency != 0 {
		t.Errorf("Recency = %v, want 0", recs[0].Recency)
	}
}

func TestRecommend_StableTies(t *testing.T) {
	e := newTestEngine(t)

	read := []models.Article{{ID: "r", Keywords: []string{"zzz"}, IsRead: true, ReadDate: daysAgo(1)}}
	articles := []models.Article{
		{ID: "first", Keywords: []string{"a"}},
		{ID: "second", Keywords: []string{"b"}},
		{ID: "third", Keywords: []string{"c"}},
	}

	recs := e.Recommend(articles, read, 10)
	want := []string{"first", "second", "third"}
	if got := ids(recs); !equalIDs(got, want) {
		t.Errorf("Recommend() ids = %v, want %v", got, want)
	}
}

func TestRecommend_ReferenceSetUsesMostRecentReads(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ReferenceSetSize = 1
	e, err := NewEngine(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	e.SetClock(func() time.Time { return testNow })

	read := []models.Article{
		{ID: "older", Keywords: []string{"cooking"}, IsRead: true, ReadDate: daysAgo(20)},
		{ID: "newest", Keywords: []string{"rust"}, IsRead: true, ReadDate: daysAgo(1)},
	}
	articles := []models.Article{
		{ID: "cook", Keywords: []string{"cooking"}},
		{ID: "rusty", Keywords: []string{"rust"}},
	}

	recs := e.Recommend(articles, read, 10)
	if got := recs[0].Article.ID; got != "rusty" {
		t.Errorf("top recommendation = %q, want rusty", got)
	}

	if read[0].ID != "older" {
		t.Error("Recommend() reordered the caller's history slice")
	}
}

func TestRecommend_DefaultMax(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxRecommendations = 2
	e, err := NewEngine(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}

	articles := []models.Article{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	if got := len(e.Recommend(articles, nil, 0)); got != 2 {
		t.Errorf("len(Recommend(max=0)) = %d, want 2", got)
	}
}

func TestRecencyFactor(t *testing.T) {
	window := 30 * 24 * time.Hour

	tests := []struct {
		name    string
		publish *time.Time
		want    float64
	}{
		{"now", daysAgo(0), 1},
		{"half window", daysAgo(15), 0.5},
		{"past window", daysAgo(45), 0},
		{"unknown", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := models.Article{PublishDate: tt.publish}
			if got := recencyFactor(&a, testNow, window); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("recencyFactor() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestByCategory(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CategoryLimit = 2
	e, err := NewEngine(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}

	articles := []models.Article{
		{ID: "t1", Category: "Tech", PublishDate: daysAgo(3)},
		{ID: "t2", Category: "Tech", PublishDate: daysAgo(1)},
		{ID: "t3", Category: "Tech", PublishDate: daysAgo(2)},
		{ID: "f1", Category: "Food", IsRead: true},
		{ID: "s1", Category: "Sports"},
	}

	got := e.ByCategory(articles, []string{"Tech", "Food", "Sports", "Missing"})

	if _, ok := got["Food"]; ok {
		t.Error("ByCategory() included Food, which has no unread articles")
	}
	if _, ok := got["Missing"]; ok {
		t.Error("ByCategory() included Missing")
	}

	tech := got["Tech"]
	if len(tech) != 2 || tech[0].ID != "t2" || tech[1].ID != "t3" {
		t.Errorf("Tech = %v, want [t2 t3]", tech)
	}
	if len(got["Sports"]) != 1 {
		t.Errorf("len(Sports) = %d, want 1", len(got["Sports"]))
	}

	if m := e.GetMetrics(); m.CategoryRequestCount != 1 {
		t.Errorf("CategoryRequestCount = %d, want 1", m.CategoryRequestCount)
	}

	if lower := e.ByCategory(articles, []string{"tech"}); len(lower) != 0 {
		t.Errorf("ByCategory(tech) = %v, want empty (names match exactly)", lower)
	}
}

func TestUpdateConfig(t *testing.T) {
	e := newTestEngine(t)

	if err := e.UpdateConfig(nil); err == nil {
		t.Error("UpdateConfig(nil) expected error")
	}

	bad := DefaultConfig()
	bad.Weights.Similarity = -1
	if err := e.UpdateConfig(bad); err == nil {
		t.Error("UpdateConfig() expected error for negative weight")
	}

	good := DefaultConfig()
	good.CategoryLimit = 7
	if err := e.UpdateConfig(good); err != nil {
		t.Fatalf("UpdateConfig() error = %v", err)
	}
	if got := e.GetConfig().CategoryLimit; got != 7 {
		t.Errorf("CategoryLimit = %d, want 7", got)
	}
}

func TestEngine_Concurrent(t *testing.T) {
	e := newTestEngine(t)

	read := []models.Article{{ID: "r", Keywords: []string{"go"}, IsRead: true, ReadDate: daysAgo(1)}}
	articles := []models.Article{
		{ID: "a", Keywords: []string{"go"}, PublishDate: daysAgo(1)},
		{ID: "b", Keywords: []string{"rust"}, PublishDate: daysAgo(2)},
	}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = e.Recommend(articles, read, 5)
			_ = e.ByCategory(articles, []string{"x"})
		}()
	}
	wg.Wait()

	m := e.GetMetrics()
	if m.RequestCount != 20 {
		t.Errorf("RequestCount = %d, want 20", m.RequestCount)
	}
	if m.CandidatesScored != 40 {
		t.Errorf("CandidatesScored = %d, want 40", m.CandidatesScored)
	}
}
