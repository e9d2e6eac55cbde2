// Copyright (c) 2025 Mukesh Ghildiyal.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"github.com/Mukesh-ghildiyal/real-time-pollling/models"
)

// Roster holds the currently present students in join order.
type Roster struct {
	order []string
	byID  map[string]*models.Student
}

func NewRoster() *Roster {
	return &Roster{byID: make(map[string]*models.Student)}
}

func (r *Roster) Len() int {
	return len(r.order)
}

// Add inserts s at the end of the join order. Callers check NameTaken first.
func (r *Roster) Add(s models.Student) {
	if _, exists := r.byID[s.ID]; exists {
		return
	}
	student := s
	r.byID[s.ID] = &student
	r.order = append(r.order, s.ID)
}

func (r *Roster) Get(id string) (*models.Student, bool) {
	s, ok := r.byID[id]
	return s, ok
}

// Remove deletes the student and returns its last state.
func (r *Roster) Remove(id string) (models.Student, bool) {
	s, ok := r.byID[id]
	if !ok {
		return models.Student{}, false
	}
	delete(r.byID, id)
	for i, sid := range r.order {
		if sid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return *s, true
}

// NameTaken compares case-sensitively against present students only.
func (r *Roster) NameTaken(name string) bool {
	for _, s := range r.byID {
		if s.Name == name {
			return true
		}
	}
	return false
}

// ResetAnswers clears every student's answer for a new poll.
func (r *Roster) ResetAnswers() {
	for _, s := range r.byID {
		s.HasAnswered = false
		s.Answer = nil
	}
}

func (r *Roster) AnsweredCount() int {
	n := 0
	for _, s := range r.byID {
		if s.HasAnswered {
			n++
		}
	}
	return n
}

// Complete is true when at least one student is present and all answered.
func (r *Roster) Complete() bool {
	return r.Len() > 0 && r.AnsweredCount() == r.Len()
}

// List copies the roster in join order. Never nil.
func (r *Roster) List() []models.Student {
	out := make([]models.Student, 0, len(r.order))
	for _, id := range r.order {
		s := *r.byID[id]
		if s.Answer != nil {
			answer := *s.Answer
			s.Answer = &answer
		}
		out = append(out, s)
	}
	return out
}
