// Newsdesk - RSS Reading Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsdesk

// Package logging provides centralized zerolog-based logging for Newsdesk.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//
//	logging.Info().Str("feed", feed.URL).Msg("feed added")
//	logging.Err(err).Msg("snapshot failed")
//
//	// HTTP handlers
//	logging.Ctx(r.Context()).Warn().Msg("article not found")
//
// Components receive a zerolog.Logger at construction time and tag it:
//
//	logger = logger.With().Str("component", "ingest").Logger()
//
// # slog Bridge
//
// Libraries that accept *slog.Logger (suture's sutureslog hook, Watermill)
// are given NewSlogLogger, which routes through the same zerolog writer.
//
// # Configuration
//
// Environment variables (through internal/config):
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false
package logging
