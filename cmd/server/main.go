// Newsdesk - RSS Reading Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsdesk

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/tomtom215/newsdesk/internal/api"
	"github.com/tomtom215/newsdesk/internal/config"
	"github.com/tomtom215/newsdesk/internal/logging"
	"github.com/tomtom215/newsdesk/internal/metrics"
	"github.com/tomtom215/newsdesk/internal/middleware"
	"github.com/tomtom215/newsdesk/internal/state"
	"github.com/tomtom215/newsdesk/internal/supervisor"
	"github.com/tomtom215/newsdesk/internal/supervisor/services"
	ws "github.com/tomtom215/newsdesk/internal/websocket"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

//nolint:gocyclo // Main initialization function with sequential setup steps
func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})
	logger := logging.Logger()
	metrics.SetAppInfo(version, runtime.Version())

	logging.Info().
		Str("version", version).
		Str("storage", cfg.Storage.Path).
		Bool("in_memory", cfg.Storage.InMemory).
		Str("refresh_schedule", cfg.Feeds.RefreshSchedule).
		Msg("Starting Newsdesk with supervisor tree")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	comp, err := initComponents(ctx, cfg, logger)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize components")
	}
	defer comp.Close(logger)
	svc := comp.Service

	// Constructed before seeding so the seeded feeds count as unsaved.
	snapshot := services.NewSnapshotService(svc, comp.Store, services.SnapshotServiceConfig{
		Interval: cfg.Storage.SnapshotInterval,
	}, logger)

	if n := seedFeeds(ctx, svc, cfg.Feeds.URLs, logger); n > 0 {
		logging.Info().Int("feeds", n).Msg("Subscribed configured feeds")
	}

	wsHub := ws.NewHub(logger)
	wsHub.SetStatsProvider(func() interface{} {
		report, _ := svc.Statistics()
		return report.Totals
	})
	unsubscribe := svc.Subscribe(func(_ state.State, v uint64) { wsHub.NotifyStateChanged(v) })
	defer unsubscribe()

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}
	for _, origin := range cfg.Security.CORSOrigins {
		if origin == "*" {
			logging.Warn().Msg("CORS allows any origin (CORS_ORIGINS=*); set explicit origins in production")
			break
		}
	}

	monitor := middleware.NewLatencyMonitor(1000, time.Second, logger)
	handler := api.NewHandler(svc, wsHub, monitor, cfg.Security.CORSOrigins)
	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(cfg.Security), monitor)

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLoggerFor(logger), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddDataService(snapshot)
	tree.AddDataService(services.NewTickFoldService(comp.Bus, svc, logger))
	tree.AddMessagingService(services.NewWebSocketHubService(wsHub))
	tree.AddMessagingService(services.NewIngestRelayService(comp.Bus, wsHub, logger))

	if cfg.Feeds.RefreshSchedule != "" {
		refresh, err := services.NewRefreshService(svc, services.RefreshServiceConfig{
			Schedule: cfg.Feeds.RefreshSchedule,
		}, logger)
		if err != nil {
			logging.Fatal().Err(err).Msg("Failed to create feed refresh service")
		}
		tree.AddIngestService(refresh)
	} else {
		logging.Info().Msg("Scheduled feed refresh disabled (FEED_REFRESH_SCHEDULE empty)")
	}

	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout).WithReadiness(handler))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
		cancel()
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, s := range unstopped {
		logging.Warn().Str("service", s.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Application stopped gracefully")
}
