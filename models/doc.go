// Copyright (c) 2025 Mukesh Ghildiyal.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines domain types and the websocket wire protocol.

# Domain Types

  - Poll: question, ordered options, time limit (seconds), active flag
  - PollOption: option id ("option-<index>"), text, vote count
  - Student: connection id, display name, answer state
  - ChatMessage: immutable chat log entry

JSON field names are camelCase to match the browser client.

# Commands

Client frames are {"type": "<name>", "data": {...}} and decode into a
closed set of typed commands:

	cmd, err := models.DecodeCommand(raw)

	select-role     SelectRole{Role}
	register-name   RegisterName{Name}      (alias: student-name)
	create-poll     CreatePoll{Question, Options, TimeLimit}
	submit-answer   SubmitAnswer{OptionID}
	end-poll        EndPoll{}
	remove-student  RemoveStudent{StudentID}
	send-chat       SendChat{Message}       (alias: chat-message)

Unknown types return ErrUnknownCommand; bad JSON returns ErrMalformedFrame.

# Notifications

Every server event implements Notification and is framed with Wrap:

	conn.WriteJSON(models.Wrap(models.PollStarted{Poll: p}))

Join snapshots are teacher-connected and student-connected. Poll state
travels as poll-started, poll-updated and poll-ended; roster changes as
student-joined, student-left, student-removed, students-updated and
student-answered. kicked-out, name-exists and command-rejected are only
ever sent to a single connection.

# Rejections

RejectReason names why a command was ignored. The coordinator always
computes one; it is only sent to clients as command-rejected when
rejection notices are enabled.
*/
package models
