// Copyright (c) 2025 Mukesh Ghildiyal.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"log/slog"

	"github.com/Mukesh-ghildiyal/real-time-pollling/auth"
	"github.com/Mukesh-ghildiyal/real-time-pollling/models"
)

// Connection is what the coordinator knows about one live connection.
type Connection struct {
	ID         string
	Role       models.Role
	Registered bool // student has a roster entry
	Removed    bool // kicked by the teacher; every later command is ignored
}

// requiredRole is the role a command needs. RoleNone means any bound role,
// except select-role which needs no role at all.
func requiredRole(cmd models.Command) models.Role {
	switch cmd.(type) {
	case models.RegisterName, models.SubmitAnswer:
		return models.RoleStudent
	case models.CreatePoll, models.EndPoll, models.RemoveStudent:
		return models.RoleTeacher
	}
	return models.RoleNone
}

func (c *Coordinator) authorize(conn *Connection, cmd models.Command) models.RejectReason {
	if conn.Removed {
		return models.ReasonRemoved
	}
	if _, ok := cmd.(models.SelectRole); ok {
		return models.ReasonNone
	}
	if conn.Role == models.RoleNone {
		return models.ReasonWrongRole
	}
	if want := requiredRole(cmd); want != models.RoleNone && want != conn.Role {
		return models.ReasonWrongRole
	}
	return models.ReasonNone
}

// selectRole binds the role once. The first bind wins; later calls are
// ignored even when they name the same role.
func (c *Coordinator) selectRole(conn *Connection, cmd models.SelectRole) models.RejectReason {
	if conn.Role != models.RoleNone {
		return models.ReasonRoleAlreadySet
	}
	role, err := auth.ParseRole(string(cmd.Role))
	if err != nil {
		return models.ReasonInvalidRole
	}
	conn.Role = role

	slog.Info("role selected", "conn_id", conn.ID, "role", string(role))

	switch role {
	case models.RoleTeacher:
		c.send(conn.ID, models.TeacherConnected{
			Polls:        c.archive(),
			Students:     c.state.Roster.List(),
			CurrentPoll:  c.state.CurrentPoll.Clone(),
			ChatMessages: c.state.Chat.List(),
		})
	case models.RoleStudent:
		c.send(conn.ID, models.StudentConnected{
			CurrentPoll: c.state.CurrentPoll.Clone(),
			Students:    c.state.Roster.List(),
		})
	}

	return models.ReasonNone
}
