// Newsdesk - RSS Reading Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsdesk

package middleware

import (
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// RouteLatency aggregates the samples of one route in the window.
type RouteLatency struct {
	Route    string  `json:"route"`
	Requests int     `json:"requests"`
	Errors   int     `json:"errors"`
	AvgMS    float64 `json:"avgMs"`
	P50MS    int64   `json:"p50Ms"`
	P95MS    int64   `json:"p95Ms"`
	P99MS    int64   `json:"p99Ms"`
	MaxMS    int64   `json:"maxMs"`
}

type latencySample struct {
	route    string
	duration time.Duration
	status   int
}

// LatencyMonitor keeps the last N request durations in a ring buffer and
// warns about requests slower than a threshold.
type LatencyMonitor struct {
	mu      sync.Mutex
	samples []latencySample
	next    int
	full    bool

	slow   time.Duration
	logger zerolog.Logger
}

// NewLatencyMonitor creates a monitor holding window samples. A
// non-positive slow threshold disables slow-request logging.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewLatencyMonitor(window int, slow time.Duration, logger zerolog.Logger) *LatencyMonitor {
	if window <= 0 {
		window = 1000
	}
	return &LatencyMonitor{
		samples: make([]latencySample, window),
		slow:    slow,
		logger:  logger.With().Str("component", "latency").Logger(),
	}
}

// Middleware times each request.
func (m *LatencyMonitor) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := newStatusRecorder(w)
		next.ServeHTTP(rec, r)

		route := r.Method + " " + routePattern(r)
		d := time.Since(start)
		m.Record(route, d, rec.status)

		if m.slow > 0 && d > m.slow {
			m.logger.Warn().
				Str("route", route).
				Int("status", rec.status).
				Dur("duration", d).
				Dur("threshold", m.slow).
				Msg("slow request")
		}
	})
}

// Record adds one sample, overwriting the oldest once the window is full.
func (m *LatencyMonitor) Record(route string, d time.Duration, status int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.samples[m.next] = latencySample{route: route, duration: d, status: status}
	m.next++
	if m.next == len(m.samples) {
		m.next = 0
		m.full = true
	}
}

// Stats aggregates the window per route, busiest route first.
func (m *LatencyMonitor) Stats() []RouteLatency {
	m.mu.Lock()
	n := m.next
	if m.full {
		n = len(m.samples)
	}
	window := make([]latencySample, n)
	copy(window, m.samples[:n])
	m.mu.Unlock()

	byRoute := make(map[string][]int64)
	errs := make(map[string]int)
	for _, s := range window {
		byRoute[s.route] = append(byRoute[s.route], s.duration.Milliseconds())
		if s.status >= http.StatusInternalServerError {
			errs[s.route]++
		}
	}

	out := make([]RouteLatency, 0, len(byRoute))
	for route, ms := range byRoute {
		sort.Slice(ms, func(i, j int) bool { return ms[i] < ms[j] })
		var sum int64
		for _, v := range ms {
			sum += v
		}
		out = append(out, RouteLatency{
			Route:    route,
			Requests: len(ms),
			Errors:   errs[route],
			AvgMS:    float64(sum) / float64(len(ms)),
			P50MS:    percentile(ms, 0.50),
			P95MS:    percentile(ms, 0.95),
			P99MS:    percentile(ms, 0.99),
			MaxMS:    ms[len(ms)-1],
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Requests != out[j].Requests {
			return out[i].Requests > out[j].Requests
		}
		return out[i].Route < out[j].Route
	})
	return out
}

// percentile uses nearest-rank on an ascending slice.
func percentile(sorted []int64, p float64) int64 {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[int(float64(len(sorted)-1)*p)]
}
