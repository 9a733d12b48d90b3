// Newsdesk - RSS Reading Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsdesk

/*
Package supervisor runs every long-lived Newsdesk service under a suture v4
tree.

	root ("newsdesk")
	├── data-layer
	│   ├── SnapshotService        (periodic Badger snapshot, GC, cache sweep)
	│   └── ConsumerService        (reading.ticks → reader.ApplyTick)
	├── messaging-layer
	│   ├── WebSocketHubService
	│   └── ConsumerService        (articles.ingested → feed_ingested broadcast)
	├── ingest-layer
	│   └── RefreshService         (cron-scheduled feed refresh)
	└── api-layer
	    └── HTTPServerService

Each layer counts failures on its own, so a feed host that keeps failing
backs off the ingest layer while the API keeps serving.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddDataService(services.NewSnapshotService(svc, store, snapshotCfg, logger))
	tree.AddDataService(services.NewTickFoldService(bus, svc, logger))
	tree.AddMessagingService(services.NewWebSocketHubService(hub))
	tree.AddMessagingService(services.NewIngestRelayService(bus, hub, logger))
	tree.AddIngestService(refresh)
	tree.AddAPIService(services.NewHTTPServerService(server, timeout).WithReadiness(handler))

	errCh := tree.ServeBackground(ctx)

Cancelling ctx stops every layer; services that miss the shutdown timeout
show up in UnstoppedServiceReport.

Supervisor events (start, stop, panic, backoff) go through sutureslog into
the slog adapter of the zerolog logger.
*/
package supervisor
