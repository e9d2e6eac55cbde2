// Copyright (c) 2025 Mukesh Ghildiyal.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Mukesh-ghildiyal/real-time-pollling/models"
	"github.com/Mukesh-ghildiyal/real-time-pollling/testutil"
)

func TestHealth(t *testing.T) {
	h := testutil.NewHarness(t, testutil.GetTestConfig())
	handler := NewStatusHandler(h.Coord)

	started := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	testCases := []struct {
		name    string
		elapsed time.Duration
		uptime  string
	}{
		{"just started", 0, "now"},
		{"seconds", 42 * time.Second, "42 seconds"},
		{"minutes", 5 * time.Minute, "5 minutes"},
		{"hours", 3 * time.Hour, "3 hours"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler.started = started
			handler.now = func() time.Time { return started.Add(tc.elapsed) }

			w := httptest.NewRecorder()
			handler.Health(w, testutil.MakeRequest("GET", "/api/health", nil, nil))

			testutil.AssertStatus(t, w, http.StatusOK)
			var resp models.HealthResponse
			testutil.AssertJSON(t, w, &resp)

			if resp.Status != "OK" || resp.Message != "Live Polling System Backend" {
				t.Errorf("Unexpected health response %+v", resp)
			}
			if resp.Uptime != tc.uptime {
				t.Errorf("Expected uptime %q, got %q", tc.uptime, resp.Uptime)
			}
		})
	}
}

func TestPolls(t *testing.T) {
	h := testutil.NewHarness(t, testutil.GetTestConfig())
	handler := NewStatusHandler(h.Coord)

	t.Run("idle session", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Polls(w, testutil.MakeRequest("GET", "/api/polls", nil, nil))

		testutil.AssertStatus(t, w, http.StatusOK)
		var snap models.StatusSnapshot
		testutil.AssertJSON(t, w, &snap)

		if snap.CurrentPoll != nil || len(snap.Polls) != 0 || len(snap.Students) != 0 {
			t.Errorf("Expected empty snapshot, got %+v", snap)
		}
		if !snap.CanCreatePoll {
			t.Error("Expected canCreatePoll on an idle session")
		}
	})

	h.Teacher(t, "teacher")
	h.Student(t, "s1", "Alice")
	h.Student(t, "s2", "Bob")
	first := h.StartPoll(t, "teacher", 30, "Red", "Blue")
	h.Coord.Handle("s1", models.SubmitAnswer{OptionID: "option-0"})
	h.Coord.Handle("teacher", models.EndPoll{})
	second := h.StartPoll(t, "teacher", 30, "Yes", "No")
	h.Coord.Handle("s2", models.SubmitAnswer{OptionID: "option-1"})
	h.Out.Reset()

	t.Run("active session", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Polls(w, testutil.MakeRequest("GET", "/api/polls", nil, nil))

		testutil.AssertStatus(t, w, http.StatusOK)
		var snap models.StatusSnapshot
		testutil.AssertJSON(t, w, &snap)

		if len(snap.Polls) != 1 || snap.Polls[0].ID != first.ID || snap.Polls[0].IsActive {
			t.Errorf("Unexpected archive %+v", snap.Polls)
		}
		if snap.Polls[0].Options[0].Votes != 1 {
			t.Errorf("Expected archived tally to keep its vote, got %+v", snap.Polls[0].Options)
		}
		if snap.CurrentPoll == nil || snap.CurrentPoll.ID != second.ID || snap.CurrentPoll.Options[1].Votes != 1 {
			t.Errorf("Unexpected current poll %+v", snap.CurrentPoll)
		}
		if len(snap.Students) != 2 || snap.Students[0].Name != "Alice" {
			t.Errorf("Unexpected roster %+v", snap.Students)
		}
		if snap.CanCreatePoll {
			t.Error("Alice has not answered the second poll yet")
		}
	})

	if len(h.Out.All()) != 0 {
		t.Errorf("Status probe emitted %v", h.Out.Events())
	}
}

func TestRoot(t *testing.T) {
	h := testutil.NewHarness(t, testutil.GetTestConfig())
	handler := NewStatusHandler(h.Coord)

	w := httptest.NewRecorder()
	handler.Root(w, testutil.MakeRequest("GET", "/", nil, nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	if w.Body.String() != "real-time-polling API v1" {
		t.Errorf("Unexpected body %q", w.Body.String())
	}
}
