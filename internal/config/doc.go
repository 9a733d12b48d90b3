// Newsdesk - RSS Reading Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsdesk

// Package config loads Newsdesk configuration with Koanf.
//
// Sources are layered, later ones winning:
//
//  1. Built-in defaults (defaultConfig)
//  2. A YAML file: CONFIG_PATH, or the first of DefaultConfigPaths that exists
//  3. Environment variables listed in envMappings
//
// Unmapped environment variables are ignored, so the process environment can
// carry unrelated settings. Comma-separated values are accepted for list
// settings (CORS_ORIGINS, FEED_URLS).
//
// Example config.yaml:
//
//	server:
//	  port: 8080
//	storage:
//	  path: /var/lib/newsdesk
//	feeds:
//	  refresh_schedule: "@every 15m"
//	  urls:
//	    - https://go.dev/blog/feed.atom
//	statistics:
//	  timezone: UTC
//
// Load validates the merged result and returns an error naming the offending
// environment variable.
package config
