// Copyright (c) 2025 Mukesh Ghildiyal.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"github.com/Mukesh-ghildiyal/real-time-pollling/models"
)

// applyVote records s's answer on p. Nothing changes unless every
// precondition holds.
func applyVote(p *models.Poll, s *models.Student, optionID string) models.RejectReason {
	if p == nil || !p.IsActive {
		return models.ReasonNoActivePoll
	}
	if s.HasAnswered {
		return models.ReasonAlreadyAnswered
	}
	opt := p.Option(optionID)
	if opt == nil {
		return models.ReasonUnknownOption
	}

	answer := optionID
	s.HasAnswered = true
	s.Answer = &answer
	opt.Votes++

	return models.ReasonNone
}

// reverseVote takes back the vote of a student leaving the roster.
// Votes never go below zero.
func reverseVote(p *models.Poll, s models.Student) bool {
	if p == nil || !p.IsActive || !s.HasAnswered || s.Answer == nil {
		return false
	}
	opt := p.Option(*s.Answer)
	if opt == nil || opt.Votes == 0 {
		return false
	}
	opt.Votes--
	return true
}
