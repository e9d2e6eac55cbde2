// Copyright (c) 2025 Mukesh Ghildiyal.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the live polling server.

One process runs one classroom: a teacher starts timed multiple-choice
polls, students answer over a websocket, and everyone sees live results,
the roster and a shared chat.

# Starting the Server

	go run .

Or with flags:

	go run . -p 3001 -cors "http://localhost:5173" -grace 2s

# Configuration

Every setting has a default. Flags win over environment variables, which
can also come from a .env file:

  - PORT (-p): Server port (default: 3001)
  - CORS_ORIGINS (-cors): Allowed frontend origins, comma separated
  - COMPLETION_GRACE (-grace): Delay before closing a fully answered poll
  - MAX_TIME_LIMIT (-max-time-limit): Longest poll, in seconds
  - SEND_BUFFER (-send-buffer): Per-client outbound queue size
  - NOTIFY_REJECTIONS (-notify-rejections): Send command-rejected frames
  - LOG_SALT (-log-salt): Salt for hashed client addresses in logs

# Architecture

  - session: the coordinator, sole owner of polls, roster and chat
  - hub: fan-out of notifications to websocket clients
  - handlers: websocket pumps and status endpoints
  - router: route definitions using chi
  - middleware: CORS, logging, JSON helpers
  - models: domain types, commands, notifications
  - auth: identifiers, role parsing, address hashing
  - cliparse: configuration parsing

All session state is in memory and is lost on restart.

See package documentation for each component.
*/
package main
