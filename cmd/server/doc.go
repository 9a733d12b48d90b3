// Newsdesk - RSS Reading Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsdesk

/*
Package main is the entry point for the Newsdesk server.

Newsdesk is a self-hosted RSS reader backend. It subscribes to feeds, tracks
how long each article is read, recommends unread articles by keyword
similarity, and reports reading statistics over a REST and WebSocket API.

# Application Architecture

	root ("newsdesk")
	├── data-layer
	│   ├── snapshot-writer   (BadgerDB, every STORAGE_SNAPSHOT_INTERVAL)
	│   └── tick-fold         (reading.ticks → reading time)
	├── messaging-layer
	│   ├── websocket-hub     (state_changed, stats_update, feed_ingested)
	│   └── ingest-relay      (articles.ingested → feed_ingested)
	├── ingest-layer
	│   └── feed-refresh      (cron, FEED_REFRESH_SCHEDULE)
	└── api-layer
	    └── http-server       (chi router under /api/v1)

Startup order:

 1. Configuration: koanf v2 (defaults, config.yaml, environment)
 2. Logging: zerolog, JSON or console
 3. Storage: BadgerDB snapshot restored into the state store
 4. Reader service: recommendation engine, statistics aggregator, tracker,
    feed fetcher and the Watermill bus
 5. FEED_URLS subscribed when the library is empty
 6. WebSocket hub subscribed to state changes
 7. Supervisor tree with every service above

# Configuration

Common environment variables:

	HTTP_PORT               listen port (default 8080)
	STORAGE_PATH            BadgerDB directory (default /data/newsdesk)
	STORAGE_IN_MEMORY       keep state in memory only
	FEED_URLS               comma separated feeds subscribed on first start
	FEED_REFRESH_SCHEDULE   cron expression, empty disables (default @every 30m)
	LOG_LEVEL, LOG_FORMAT   zerolog level and json|console
	CORS_ORIGINS            comma separated allowed origins

# Signal Handling

SIGINT and SIGTERM cancel the root context. Readiness drops first, the HTTP
server drains for HTTP_SHUTDOWN_TIMEOUT, the snapshot writer saves once more,
then the bus and the database are closed.

# Example Usage

	export FEED_URLS=https://go.dev/blog/feed.atom,https://blog.golang.org/feed.atom
	export STORAGE_PATH=./data
	export LOG_FORMAT=console
	./newsdesk

	curl localhost:8080/api/v1/recommendations?max=5
*/
package main
