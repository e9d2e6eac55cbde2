// Copyright (c) 2025 Mukesh Ghildiyal.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session is the authoritative state machine for one classroom.

# Coordinator

A Coordinator owns the Session (current poll, archive, roster, chat log)
and is its only writer. Transports feed it connection events:

	coord := session.New(hub, cfg, nil)
	coord.Connect(connID)
	coord.Handle(connID, models.SelectRole{Role: models.RoleStudent})
	coord.Disconnect(connID)

Every call takes one mutex and runs to completion, notifications
included, so the Broadcaster sees events in mutation order. Broadcaster
implementations must not block.

# Role Gate

A connection binds a role once with select-role; the first bind wins and
later select-role calls are ignored. Commands for the wrong role, from an
unbound connection, or from a kicked connection change nothing.

	select-role                    any connection
	register-name, submit-answer   student
	create-poll, end-poll,
	remove-student                 teacher
	send-chat                      teacher or registered student

# Poll Lifecycle

	Idle --create-poll--> Active --close--> Idle (poll archived)

create-poll on an Active session closes the old poll first, so clients
always see poll-ended before the next poll-started. Close has three
triggers: end-poll, the poll's time limit, and the completion grace
(every present student answered). Close is idempotent.

# Timers

Each timer is armed against a poll id. Closing a poll stops its timers;
a timer that fires anyway compares its poll id with the live poll and
does nothing on mismatch. Pass a Clock to New to drive time in tests.

# Tally

Option vote counts always equal the number of present students who
answered that option. Removing a student who answered the active poll
takes their vote back, never below zero.

# Rejections

Handle returns a models.RejectReason for ignored commands. When
cfg.RejectionNotices is set the caller also receives command-rejected.
*/
package session
