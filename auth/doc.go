// Copyright (c) 2025 Mukesh Ghildiyal.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides identifiers and the role claim check.

There is no login. A connection claims a role once and the session
coordinator gates commands on it:

	role, err := auth.ParseRole("teacher")

# Identifiers

Connection ids are random hex; a student's roster id is its connection id:

	id, err := auth.NewConnectionID()  // 20 hex characters

Polls and chat messages use UUID v4:

	pollID := auth.NewPollID()
	msgID := auth.NewMessageID()

Options are numbered in submission order:

	auth.OptionID(0) // "option-0"

# IP Hashing

Client addresses are hashed before they reach the logs:

	hash := auth.HashIP(ipAddress, salt)

Returns first 8 bytes (16 hex chars) of HMAC-SHA256.
*/
package auth
