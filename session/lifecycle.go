// Copyright (c) 2025 Mukesh Ghildiyal.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"log/slog"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/Mukesh-ghildiyal/real-time-pollling/auth"
	"github.com/Mukesh-ghildiyal/real-time-pollling/models"
)

// Close triggers, for logs
const (
	closeReplaced  = "replaced"
	closeEnded     = "ended"
	closeExpired   = "expired"
	closeCompleted = "completed"
)

// createPoll force-closes any active poll, then starts a new one.
func (c *Coordinator) createPoll(conn *Connection, cmd models.CreatePoll) models.RejectReason {
	question := strings.TrimSpace(cmd.Question)
	if question == "" {
		return models.ReasonInvalidPoll
	}
	if len(cmd.Options) < 2 {
		return models.ReasonInvalidPoll
	}
	options := make([]models.PollOption, 0, len(cmd.Options))
	for i, text := range cmd.Options {
		text = strings.TrimSpace(text)
		if text == "" {
			return models.ReasonInvalidPoll
		}
		options = append(options, models.PollOption{ID: auth.OptionID(i), Text: text})
	}
	if cmd.TimeLimit < 1 || cmd.TimeLimit > c.cfg.MaxTimeLimit {
		return models.ReasonInvalidPoll
	}

	// Starting a new question ends the old one
	if c.state.CurrentPoll != nil && c.state.CurrentPoll.IsActive {
		c.closePoll(closeReplaced)
	}

	poll := &models.Poll{
		ID:        auth.NewPollID(),
		Question:  question,
		Options:   options,
		TimeLimit: cmd.TimeLimit,
		IsActive:  true,
		CreatedAt: c.now(),
	}
	c.state.CurrentPoll = poll
	c.state.Roster.ResetAnswers()

	limit := time.Duration(cmd.TimeLimit) * time.Second
	c.timers.Arm(poll.ID, limit, func(pollID string) { c.expire(pollID, closeExpired) })

	slog.Info("poll started",
		"poll_id", poll.ID,
		"options", len(poll.Options),
		"time_limit", humanDuration(limit),
		"students", c.state.Roster.Len(),
	)

	c.broadcast(models.PollStarted{Poll: poll.Clone()})
	c.broadcast(models.StudentsUpdated{Students: c.state.Roster.List()})

	return models.ReasonNone
}

func (c *Coordinator) endPoll() models.RejectReason {
	if !c.closePoll(closeEnded) {
		return models.ReasonNoActivePoll
	}
	return models.ReasonNone
}

// expire is the timer callback for both the time limit and the
// completion grace. It acts only if pollID is still the live poll.
func (c *Coordinator) expire(pollID, trigger string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	poll := c.state.CurrentPoll
	if poll == nil || poll.ID != pollID || !poll.IsActive {
		slog.Debug("stale poll timer dropped", "poll_id", pollID, "trigger", trigger)
		return
	}
	c.closePoll(trigger)
}

// scheduleCompletion arms the grace-period close once everyone answered.
func (c *Coordinator) scheduleCompletion() {
	poll := c.state.CurrentPoll
	if poll == nil || !poll.IsActive || !c.state.Roster.Complete() {
		return
	}
	slog.Info("all students answered",
		"poll_id", poll.ID,
		"closing_in", humanDuration(c.cfg.CompletionGrace),
	)
	c.timers.Arm(poll.ID, c.cfg.CompletionGrace, func(pollID string) { c.expire(pollID, closeCompleted) })
}

// closePoll is the one Close action behind every trigger. It reports
// false when there was nothing active to close.
func (c *Coordinator) closePoll(trigger string) bool {
	poll := c.state.CurrentPoll
	if poll == nil || !poll.IsActive {
		return false
	}

	poll.IsActive = false
	c.state.Archive = append(c.state.Archive, *poll.Clone())
	c.broadcast(models.PollEnded{Poll: poll.Clone()})
	c.state.CurrentPoll = nil
	c.timers.Cancel(poll.ID)

	slog.Info("poll ended",
		"poll_id", poll.ID,
		"trigger", trigger,
		"votes", poll.TotalVotes(),
		"open_for", humanDuration(c.now().Sub(poll.CreatedAt)),
	)
	return true
}

// canCreatePoll is advisory for the teacher UI; create-poll never checks it.
func (c *Coordinator) canCreatePoll() bool {
	poll := c.state.CurrentPoll
	if poll == nil || !poll.IsActive {
		return true
	}
	return c.state.Roster.AnsweredCount() == c.state.Roster.Len()
}

// humanDuration renders d as "30 seconds", "2 minutes" for logs.
func humanDuration(d time.Duration) string {
	start := time.Time{}
	return strings.TrimSpace(humanize.RelTime(start, start.Add(d), "", ""))
}
