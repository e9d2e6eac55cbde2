// Copyright (c) 2025 Mukesh Ghildiyal.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package hub fans coordinator notifications out to websocket clients.

Each Client owns a buffered queue of encoded {type, data} frames that its
write pump drains. Broadcast and Send encode once and enqueue without
blocking; a full queue drops the client and closes its queue, which ends
the connection's pumps and, through the read pump, reports a disconnect
to the coordinator.

The hub never calls back into the coordinator, so the coordinator may
hold its own lock while broadcasting.
*/
package hub
