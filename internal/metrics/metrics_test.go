// Newsdesk - RSS Reading Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsdesk

package metrics

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
)

func histogramCount(t *testing.T, h prometheus.Observer) uint64 {
	t.Helper()
	m, ok := h.(prometheus.Metric)
	if !ok {
		t.Fatalf("observer %T is not a metric", h)
	}
	var out dto.Metric
	if err := m.Write(&out); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	return out.GetHistogram().GetSampleCount()
}

func TestRecordCommand(t *testing.T) {
	before := testutil.ToFloat64(StateCommandsTotal.WithLabelValues("mark_read"))

	RecordCommand("mark_read")
	RecordCommand("mark_read")

	after := testutil.ToFloat64(StateCommandsTotal.WithLabelValues("mark_read"))
	if after-before != 2 {
		t.Errorf("state_commands_total{mark_read} delta = %v, want 2", after-before)
	}
}

func TestRecordRecommendation(t *testing.T) {
	tests := []struct {
		name    string
		mode    string
		results int
	}{
		{"cold start", "cold_start", 10},
		{"personalized", "personalized", 3},
		{"empty", "personalized", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(RecommendationRequests.WithLabelValues(tt.mode))
			countBefore := histogramCount(t, RecommendationDuration.WithLabelValues(tt.mode))

			RecordRecommendation(tt.mode, time.Millisecond, tt.results)

			if got := testutil.ToFloat64(RecommendationRequests.WithLabelValues(tt.mode)) - before; got != 1 {
				t.Errorf("recommendation_requests_total delta = %v, want 1", got)
			}
			if got := histogramCount(t, RecommendationDuration.WithLabelValues(tt.mode)) - countBefore; got != 1 {
				t.Errorf("recommendation_duration_seconds count delta = %d, want 1", got)
			}
		})
	}
}

func TestRecordReadingSeconds(t *testing.T) {
	before := testutil.ToFloat64(ReadingSecondsTotal)

	RecordReadingSeconds(5)
	RecordReadingSeconds(0)
	RecordReadingSeconds(-3)

	if got := testutil.ToFloat64(ReadingSecondsTotal) - before; got != 5 {
		t.Errorf("reading_seconds_total delta = %v, want 5", got)
	}
}

func TestSetTrackingActive(t *testing.T) {
	SetTrackingActive(true)
	if got := testutil.ToFloat64(TrackingSessionActive); got != 1 {
		t.Errorf("reading_session_active = %v, want 1", got)
	}
	SetTrackingActive(false)
	if got := testutil.ToFloat64(TrackingSessionActive); got != 0 {
		t.Errorf("reading_session_active = %v, want 0", got)
	}
}

func TestRecordSnapshot(t *testing.T) {
	okBefore := testutil.ToFloat64(SnapshotSavesTotal.WithLabelValues("success"))
	errBefore := testutil.ToFloat64(SnapshotSavesTotal.WithLabelValues("error"))

	RecordSnapshot(10*time.Millisecond, nil)
	RecordSnapshot(10*time.Millisecond, errors.New("disk full"))

	if got := testutil.ToFloat64(SnapshotSavesTotal.WithLabelValues("success")) - okBefore; got != 1 {
		t.Errorf("snapshot_saves_total{success} delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(SnapshotSavesTotal.WithLabelValues("error")) - errBefore; got != 1 {
		t.Errorf("snapshot_saves_total{error} delta = %v, want 1", got)
	}
}

func TestRecordFeedRefresh(t *testing.T) {
	FeedRefreshLastSuccess.Set(0)

	RecordFeedRefresh(2)
	if got := testutil.ToFloat64(FeedRefreshLastSuccess); got != 0 {
		t.Errorf("last success = %v after failed refresh, want 0", got)
	}

	RecordFeedRefresh(0)
	if got := testutil.ToFloat64(FeedRefreshLastSuccess); got <= 0 {
		t.Errorf("last success = %v after clean refresh, want > 0", got)
	}
}

func TestRecordArticlesIngested(t *testing.T) {
	before := testutil.ToFloat64(ArticlesIngestedTotal)
	RecordArticlesIngested(7)
	RecordArticlesIngested(0)
	if got := testutil.ToFloat64(ArticlesIngestedTotal) - before; got != 7 {
		t.Errorf("articles_ingested_total delta = %v, want 7", got)
	}
}

func TestTrackActiveRequest_Concurrent(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			TrackActiveRequest(true)
			TrackActiveRequest(false)
		}()
	}
	wg.Wait()

	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("api_active_requests = %v, want %v", got, before)
	}
}

func TestCacheCounters(t *testing.T) {
	hits := testutil.ToFloat64(CacheHits.WithLabelValues("reader"))
	misses := testutil.ToFloat64(CacheMisses.WithLabelValues("reader"))
	evictions := testutil.ToFloat64(CacheEvictions.WithLabelValues("reader"))

	RecordCacheHit("reader")
	RecordCacheMiss("reader")
	RecordCacheEviction("reader")

	if testutil.ToFloat64(CacheHits.WithLabelValues("reader"))-hits != 1 ||
		testutil.ToFloat64(CacheMisses.WithLabelValues("reader"))-misses != 1 ||
		testutil.ToFloat64(CacheEvictions.WithLabelValues("reader"))-evictions != 1 {
		t.Error("cache counters did not each advance by 1")
	}
}
