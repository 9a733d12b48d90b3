// Newsdesk - RSS Reading Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsdesk

package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/newsdesk/internal/reader"
)

type fakeRefresher struct {
	calls atomic.Int32
	err   error
	block time.Duration
}

func (f *fakeRefresher) RefreshFeeds(ctx context.Context) (reader.RefreshSummary, error) {
	f.calls.Add(1)
	if f.block > 0 {
		select {
		case <-ctx.Done():
		case <-time.After(f.block):
		}
	}
	if f.err != nil {
		return reader.RefreshSummary{}, f.err
	}
	return reader.RefreshSummary{Feeds: 2, Updated: 1, Articles: 3, Errors: map[string]string{"f2": "timeout"}}, nil
}

func TestNewRefreshService_Schedule(t *testing.T) {
	tests := []struct {
		schedule string
		wantErr  bool
	}{
		{"@every 30m", false},
		{"*/15 * * * *", false},
		{"@hourly", false},
		{"", true},
		{"every half hour", true},
		{"0 0 * * * *", true},
	}
	for _, tt := range tests {
		t.Run(tt.schedule, func(t *testing.T) {
			_, err := NewRefreshService(&fakeRefresher{}, RefreshServiceConfig{Schedule: tt.schedule}, zerolog.Nop())
			if (err != nil) != tt.wantErr {
				t.Errorf("NewRefreshService(%q) error = %v, wantErr %v", tt.schedule, err, tt.wantErr)
			}
		})
	}
}

func TestRefreshService_RefreshOnStartup(t *testing.T) {
	refresher := &fakeRefresher{}
	svc, err := NewRefreshService(refresher, RefreshServiceConfig{
		Schedule:         "@every 1h",
		RefreshOnStartup: true,
	}, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	if svc.config.Timeout != 10*time.Minute {
		t.Errorf("Timeout = %v, want 10m default", svc.config.Timeout)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	if err := svc.Serve(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Serve() = %v, want context.DeadlineExceeded", err)
	}
	if got := refresher.calls.Load(); got != 1 {
		t.Errorf("RefreshFeeds calls = %d, want 1", got)
	}
}

func TestRefreshService_Scheduled(t *testing.T) {
	refresher := &fakeRefresher{err: reader.ErrNoFetcher}
	svc, err := NewRefreshService(refresher, RefreshServiceConfig{Schedule: "@every 1s"}, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2500*time.Millisecond)
	defer cancel()
	_ = svc.Serve(ctx)

	// Errors are logged; the schedule keeps firing.
	if got := refresher.calls.Load(); got < 2 {
		t.Errorf("RefreshFeeds calls = %d, want >= 2", got)
	}
}

func TestRefreshService_StopWaitsForRunningRefresh(t *testing.T) {
	refresher := &fakeRefresher{block: time.Hour}
	svc, _ := NewRefreshService(refresher, RefreshServiceConfig{Schedule: "@every 1s"}, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()

	deadline := time.Now().Add(3 * time.Second)
	for refresher.calls.Load() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("scheduled refresh never ran")
		}
		time.Sleep(10 * time.Millisecond)
	}
	cancel()

	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Serve() = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return; running refresh ignored cancellation")
	}
}
