// Copyright (c) 2025 Mukesh Ghildiyal.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/Mukesh-ghildiyal/real-time-pollling/auth"
	"github.com/Mukesh-ghildiyal/real-time-pollling/models"
)

const maxChatLength = 500

// ChatLog is append-only; entries are never edited.
type ChatLog struct {
	messages []models.ChatMessage
}

func (l *ChatLog) Append(m models.ChatMessage) {
	l.messages = append(l.messages, m)
}

func (l *ChatLog) Len() int {
	return len(l.messages)
}

// List copies the log in arrival order. Never nil.
func (l *ChatLog) List() []models.ChatMessage {
	out := make([]models.ChatMessage, len(l.messages))
	copy(out, l.messages)
	return out
}

func (c *Coordinator) sendChat(conn *Connection, cmd models.SendChat) models.RejectReason {
	var sender string
	switch conn.Role {
	case models.RoleTeacher:
		sender = models.TeacherSender
	case models.RoleStudent:
		student, ok := c.state.Roster.Get(conn.ID)
		if !conn.Registered || !ok {
			return models.ReasonNotRegistered
		}
		sender = student.Name
	default:
		return models.ReasonWrongRole
	}

	text := strings.TrimSpace(cmd.Message)
	if text == "" || utf8.RuneCountInString(text) > maxChatLength {
		return models.ReasonInvalidMessage
	}

	msg := models.ChatMessage{
		ID:        auth.NewMessageID(),
		Sender:    sender,
		Message:   text,
		Timestamp: c.now(),
		IsTeacher: conn.Role == models.RoleTeacher,
	}
	c.state.Chat.Append(msg)

	slog.Debug("chat message", "message_id", msg.ID, "sender", sender, "messages", c.state.Chat.Len())

	c.broadcast(models.ChatPosted{Message: msg})
	return models.ReasonNone
}
