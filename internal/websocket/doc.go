// Newsdesk - RSS Reading Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsdesk

/*
Package websocket pushes live notifications to browser clients using
gorilla/websocket and a hub-and-spoke layout.

	┌──────────┐
	│   Hub    │ ← state changes, bus relays
	└────┬─────┘
	┌────┴─────┬─────────┐
	│ Client1  │ Client2 │ ...
	└──────────┴─────────┘

Each Client runs a readPump (answers "ping" frames) and a writePump (sends
queued messages and keepalive pings).

Message types:

  - state_changed: {version, timestamp}, after any committed dispatch
  - stats_update: the headline reading totals, sent with state_changed
  - feed_ingested: relayed from the articles.ingested bus topic
  - pong: reply to a client "ping"

State notifications are coalesced. The store listener calls
NotifyStateChanged on every dispatch, which only records the newest
version; the hub sends one pair of messages per wake-up:

	hub := websocket.NewHub(logger)
	hub.SetStatsProvider(func() interface{} {
	    report, _ := svc.Statistics()
	    return report.Totals
	})
	svc.Subscribe(func(_ state.State, v uint64) { hub.NotifyStateChanged(v) })

The hub runs under the supervisor through RunWithContext. A client whose
send queue fills up is dropped rather than slowing the others down.
*/
package websocket
