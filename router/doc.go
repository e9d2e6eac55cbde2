// Copyright (c) 2025 Mukesh Ghildiyal.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the live polling server.

# Route Registration

NewRouter returns a chi router with every endpoint:

	r := router.NewRouter(coord, hub, cfg)

Router-wide middleware, in order: chi's Recoverer, then CORS for
cfg.CORSOrigins.

# Endpoints

	GET /api/health - Liveness and uptime
	GET /api/polls  - Session snapshot (archive, current poll, roster)
	GET /ws         - Websocket for the live session
	GET /           - Banner

The session itself is driven entirely over /ws; the HTTP endpoints are
read-only.
*/
package router
