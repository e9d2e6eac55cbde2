// Copyright (c) 2025 Mukesh Ghildiyal.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"testing"

	"github.com/Mukesh-ghildiyal/real-time-pollling/models"
)

func TestRoster(t *testing.T) {
	r := NewRoster()
	if r.Complete() {
		t.Error("empty roster is never complete")
	}
	if list := r.List(); list == nil || len(list) != 0 {
		t.Errorf("List() = %v, want empty non-nil", list)
	}

	r.Add(models.Student{ID: "a", Name: "Alice"})
	r.Add(models.Student{ID: "b", Name: "Bob"})
	r.Add(models.Student{ID: "c", Name: "Carol"})
	r.Add(models.Student{ID: "a", Name: "Duplicate"})

	if r.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", r.Len())
	}
	if !r.NameTaken("Alice") || r.NameTaken("alice") || r.NameTaken("Duplicate") {
		t.Error("NameTaken should match present names exactly")
	}

	removed, ok := r.Remove("b")
	if !ok || removed.Name != "Bob" {
		t.Fatalf("Remove(b) = %+v, %v", removed, ok)
	}
	if _, ok := r.Remove("b"); ok {
		t.Error("second Remove should report false")
	}

	list := r.List()
	if len(list) != 2 || list[0].ID != "a" || list[1].ID != "c" {
		t.Errorf("join order lost: %+v", list)
	}
}

func TestRoster_AnswersAndReset(t *testing.T) {
	r := NewRoster()
	r.Add(models.Student{ID: "a", Name: "Alice"})
	r.Add(models.Student{ID: "b", Name: "Bob"})

	answer := "option-0"
	for _, id := range []string{"a", "b"} {
		s, _ := r.Get(id)
		s.HasAnswered = true
		s.Answer = &answer
	}
	if r.AnsweredCount() != 2 || !r.Complete() {
		t.Errorf("AnsweredCount() = %d, Complete() = %v", r.AnsweredCount(), r.Complete())
	}

	r.ResetAnswers()
	for _, s := range r.List() {
		if s.HasAnswered || s.Answer != nil {
			t.Errorf("student %s not reset: %+v", s.ID, s)
		}
	}
}
