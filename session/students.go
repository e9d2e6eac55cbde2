// Copyright (c) 2025 Mukesh Ghildiyal.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/Mukesh-ghildiyal/real-time-pollling/models"
)

const maxNameLength = 50

func (c *Coordinator) registerName(conn *Connection, cmd models.RegisterName) models.RejectReason {
	if conn.Registered {
		return models.ReasonAlreadyRegistered
	}

	name := strings.TrimSpace(cmd.Name)
	if name == "" || utf8.RuneCountInString(name) > maxNameLength {
		return models.ReasonInvalidName
	}

	if c.state.Roster.NameTaken(name) {
		c.send(conn.ID, models.NameExists{Message: "Name already taken"})
		return models.ReasonNameTaken
	}

	student := models.Student{
		ID:       conn.ID,
		Name:     name,
		JoinedAt: c.now(),
	}
	c.state.Roster.Add(student)
	conn.Registered = true

	slog.Info("student joined", "student_id", student.ID, "name", name, "students", c.state.Roster.Len())

	c.broadcast(models.StudentJoined{Student: student})

	// Latecomers see the live poll
	if poll := c.state.CurrentPoll; poll != nil && poll.IsActive {
		c.send(conn.ID, models.PollStarted{Poll: poll.Clone()})
	}

	return models.ReasonNone
}

func (c *Coordinator) submitAnswer(conn *Connection, cmd models.SubmitAnswer) models.RejectReason {
	if !conn.Registered {
		return models.ReasonNotRegistered
	}
	student, ok := c.state.Roster.Get(conn.ID)
	if !ok {
		return models.ReasonNotRegistered
	}

	poll := c.state.CurrentPoll
	if reason := applyVote(poll, student, cmd.OptionID); reason != models.ReasonNone {
		return reason
	}

	slog.Info("answer submitted",
		"poll_id", poll.ID,
		"student_id", student.ID,
		"answered", c.state.Roster.AnsweredCount(),
		"students", c.state.Roster.Len(),
	)

	c.broadcast(models.PollUpdated{Poll: poll.Clone()})
	c.broadcast(models.StudentAnswered{StudentID: student.ID, StudentName: student.Name})

	c.scheduleCompletion()

	return models.ReasonNone
}

func (c *Coordinator) kickStudent(conn *Connection, cmd models.RemoveStudent) models.RejectReason {
	if _, ok := c.state.Roster.Get(cmd.StudentID); !ok {
		return models.ReasonUnknownStudent
	}
	c.removeStudent(cmd.StudentID, true)
	return models.ReasonNone
}

// removeStudent takes the student off the roster, reversing their vote on
// the active poll first. kicked selects the teacher-removal path, which
// tells the student before anyone else.
func (c *Coordinator) removeStudent(studentID string, kicked bool) {
	student, ok := c.state.Roster.Get(studentID)
	if !ok {
		return
	}
	poll := c.state.CurrentPoll
	reversed := reverseVote(poll, *student)
	removed, _ := c.state.Roster.Remove(studentID)

	if conn, ok := c.conns[studentID]; ok {
		conn.Registered = false
		if kicked {
			conn.Removed = true
		}
	}

	slog.Info("student removed",
		"student_id", removed.ID,
		"name", removed.Name,
		"kicked", kicked,
		"vote_reversed", reversed,
		"students", c.state.Roster.Len(),
	)

	if kicked {
		c.send(studentID, models.KickedOut{})
		c.broadcast(models.StudentRemoved{StudentID: studentID})
	} else {
		c.broadcast(models.StudentLeft{StudentID: studentID, StudentName: removed.Name})
	}

	if poll != nil && poll.IsActive {
		c.broadcast(models.PollUpdated{Poll: poll.Clone()})
	}
}
