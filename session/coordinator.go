// Copyright (c) 2025 Mukesh Ghildiyal.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"log/slog"
	"sync"
	"time"

	"github.com/Mukesh-ghildiyal/real-time-pollling/cliparse"
	"github.com/Mukesh-ghildiyal/real-time-pollling/models"
)

// Broadcaster delivers notifications to connections. Both methods are
// called with the coordinator lock held and must not block.
type Broadcaster interface {
	Broadcast(n models.Notification)
	Send(connID string, n models.Notification)
}

// Session is the state of the one classroom this process serves.
type Session struct {
	CurrentPoll *models.Poll
	Archive     []models.Poll
	Roster      *Roster
	Chat        *ChatLog
}

func NewSession() *Session {
	return &Session{
		Roster: NewRoster(),
		Chat:   &ChatLog{},
	}
}

// Coordinator is the single writer for the Session. Every command,
// disconnect and timer firing runs to completion under mu, broadcasts
// included, so events from one mutation reach the hub in order.
type Coordinator struct {
	mu     sync.Mutex
	state  *Session
	conns  map[string]*Connection
	out    Broadcaster
	timers *timerService
	clock  Clock
	cfg    cliparse.Config
}

// New builds a coordinator. A nil clock means the wall clock.
func New(out Broadcaster, cfg cliparse.Config, clock Clock) *Coordinator {
	if clock == nil {
		clock = WallClock{}
	}
	if cfg.CompletionGrace <= 0 {
		cfg.CompletionGrace = cliparse.DefaultCompletionGrace
	}
	if cfg.MaxTimeLimit <= 0 {
		cfg.MaxTimeLimit = cliparse.DefaultMaxTimeLimit
	}
	return &Coordinator{
		state:  NewSession(),
		conns:  make(map[string]*Connection),
		out:    out,
		timers: newTimerService(clock),
		clock:  clock,
		cfg:    cfg,
	}
}

// Connect registers a new connection with no role.
func (c *Coordinator) Connect(connID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.conns[connID]; exists {
		return
	}
	c.conns[connID] = &Connection{ID: connID}
	slog.Debug("connection opened", "conn_id", connID, "connections", len(c.conns))
}

// Handle applies one command from connID. Rejected commands change nothing.
func (c *Coordinator) Handle(connID string, cmd models.Command) models.RejectReason {
	c.mu.Lock()
	defer c.mu.Unlock()

	conn, ok := c.conns[connID]
	if !ok {
		return models.ReasonRemoved
	}

	reason := c.authorize(conn, cmd)
	if reason == models.ReasonNone {
		switch cmd := cmd.(type) {
		case models.SelectRole:
			reason = c.selectRole(conn, cmd)
		case models.RegisterName:
			reason = c.registerName(conn, cmd)
		case models.CreatePoll:
			reason = c.createPoll(conn, cmd)
		case models.SubmitAnswer:
			reason = c.submitAnswer(conn, cmd)
		case models.EndPoll:
			reason = c.endPoll()
		case models.RemoveStudent:
			reason = c.kickStudent(conn, cmd)
		case models.SendChat:
			reason = c.sendChat(conn, cmd)
		}
	}

	if reason != models.ReasonNone {
		slog.Debug("command ignored",
			"conn_id", connID,
			"role", string(conn.Role),
			"command", cmd.Kind(),
			"reason", string(reason),
		)
		// name-exists already told the client
		if c.cfg.RejectionNotices && reason != models.ReasonNameTaken {
			c.out.Send(connID, models.CommandRejected{Command: cmd.Kind(), Reason: reason})
		}
	}

	return reason
}

// Disconnect forgets connID and removes its student, if any.
func (c *Coordinator) Disconnect(connID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	conn, ok := c.conns[connID]
	if !ok {
		return
	}
	delete(c.conns, connID)

	if conn.Role == models.RoleStudent && conn.Registered {
		c.removeStudent(connID, false)
	}
	slog.Debug("connection closed", "conn_id", connID, "connections", len(c.conns))
}

// Snapshot is the read-only status probe. It never mutates.
func (c *Coordinator) Snapshot() models.StatusSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	return models.StatusSnapshot{
		Polls:         c.archive(),
		CurrentPoll:   c.state.CurrentPoll.Clone(),
		Students:      c.state.Roster.List(),
		CanCreatePoll: c.canCreatePoll(),
	}
}

// ChatHistory copies the chat log.
func (c *Coordinator) ChatHistory() []models.ChatMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Chat.List()
}

// Close stops pending timers. Used on shutdown.
func (c *Coordinator) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.timers.StopAll()
}

func (c *Coordinator) archive() []models.Poll {
	out := make([]models.Poll, 0, len(c.state.Archive))
	for i := range c.state.Archive {
		out = append(out, *c.state.Archive[i].Clone())
	}
	return out
}

func (c *Coordinator) now() time.Time {
	return c.clock.Now()
}

func (c *Coordinator) broadcast(n models.Notification) {
	c.out.Broadcast(n)
}

func (c *Coordinator) send(connID string, n models.Notification) {
	c.out.Send(connID, n)
}
