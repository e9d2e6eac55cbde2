// Copyright (c) 2025 Mukesh Ghildiyal.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP and websocket handlers for the live
polling server.

# Handler Types

  - WSHandler: upgrades GET /ws and pumps frames between the socket, the
    hub and the session coordinator
  - StatusHandler: health and read-only session status

Handlers are created via constructor functions:

	ws := handlers.NewWSHandler(coord, hub, cfg)
	status := handlers.NewStatusHandler(coord)

# Websocket Frames

Every frame in either direction is a JSON envelope:

	{"type": "submit-answer", "data": {"optionId": "option-1"}}

Inbound types are the coordinator commands (select-role, register-name,
create-poll, submit-answer, end-poll, remove-student, send-chat) plus the
browser aliases student-name and chat-message. Frames that fail to decode
are logged and dropped; the connection stays open.

Each connection runs two goroutines. The read pump decodes commands and
calls Coordinator.Handle; when the socket fails it unregisters from the
hub and calls Coordinator.Disconnect. The write pump drains the hub queue
and sends pings every cfg.PingInterval.

# Status Endpoints

	GET /api/health → {"status": "OK", "message": ..., "uptime": "5 minutes"}
	GET /api/polls  → {"polls", "currentPoll", "students", "canCreatePoll"}

GET /api/polls is a pure read of the coordinator snapshot.
*/
package handlers
