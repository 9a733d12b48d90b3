// Newsdesk - RSS Reading Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsdesk

package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// HTTPServer is the lifecycle half of *http.Server.
type HTTPServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// ReadinessSetter flips the /health/ready answer.
//
// Satisfied by *api.Handler.
type ReadinessSetter interface {
	SetReady(ready bool)
}

// HTTPServerService runs the API server under suture. Readiness goes up once
// ListenAndServe is running and down before Shutdown starts draining, so a
// load balancer stops routing before connections close.
type HTTPServerService struct {
	server          HTTPServer
	shutdownTimeout time.Duration
	readiness       ReadinessSetter
	name            string
}

// NewHTTPServerService wraps server. A non-positive shutdownTimeout means 10s.
func NewHTTPServerService(server HTTPServer, shutdownTimeout time.Duration) *HTTPServerService {
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	return &HTTPServerService{
		server:          server,
		shutdownTimeout: shutdownTimeout,
		name:            "http-server",
	}
}

// WithReadiness attaches a readiness flag driven by the server lifecycle.
func (h *HTTPServerService) WithReadiness(r ReadinessSetter) *HTTPServerService {
	h.readiness = r
	return h
}

// Serve implements suture.Service. http.ErrServerClosed is not a failure.
func (h *HTTPServerService) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	h.setReady(true)

	select {
	case err := <-errCh:
		h.setReady(false)
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil

	case <-ctx.Done():
		h.setReady(false)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), h.shutdownTimeout)
		defer cancel()

		if err := h.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown failed: %w", err)
		}
		<-errCh
		return ctx.Err()
	}
}

func (h *HTTPServerService) setReady(ready bool) {
	if h.readiness != nil {
		h.readiness.SetReady(ready)
	}
}

// String returns the service name for logging.
func (h *HTTPServerService) String() string {
	return h.name
}
