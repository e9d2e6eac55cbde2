// Copyright (c) 2025 Mukesh Ghildiyal.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/Mukesh-ghildiyal/real-time-pollling/cliparse"
	"github.com/Mukesh-ghildiyal/real-time-pollling/models"
	"github.com/Mukesh-ghildiyal/real-time-pollling/session"
)

// Delivery is one notification as a Recorder saw it.
// To is empty for broadcasts.
type Delivery struct {
	To    string
	Event models.Notification
}

// Recorder is a session.Broadcaster that keeps every delivery in order.
type Recorder struct {
	mu         sync.Mutex
	deliveries []Delivery
}

func (r *Recorder) Broadcast(n models.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deliveries = append(r.deliveries, Delivery{Event: n})
}

func (r *Recorder) Send(connID string, n models.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deliveries = append(r.deliveries, Delivery{To: connID, Event: n})
}

// All returns every delivery so far.
func (r *Recorder) All() []Delivery {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Delivery, len(r.deliveries))
	copy(out, r.deliveries)
	return out
}

// Events lists event names in delivery order.
func (r *Recorder) Events() []string {
	var names []string
	for _, d := range r.All() {
		names = append(names, d.Event.Event())
	}
	return names
}

// Broadcasts returns only global deliveries of the named event.
func (r *Recorder) Broadcasts(event string) []models.Notification {
	var out []models.Notification
	for _, d := range r.All() {
		if d.To == "" && d.Event.Event() == event {
			out = append(out, d.Event)
		}
	}
	return out
}

// SentTo returns targeted deliveries to connID.
func (r *Recorder) SentTo(connID string) []models.Notification {
	var out []models.Notification
	for _, d := range r.All() {
		if d.To == connID {
			out = append(out, d.Event)
		}
	}
	return out
}

// Count counts deliveries of the named event, global and targeted.
func (r *Recorder) Count(event string) int {
	n := 0
	for _, d := range r.All() {
		if d.Event.Event() == event {
			n++
		}
	}
	return n
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deliveries = nil
}

// ManualClock is a session.Clock that only moves when Advance is called.
type ManualClock struct {
	mu     sync.Mutex
	now    time.Time
	seq    int
	timers []*manualTimer
}

type manualTimer struct {
	clock   *ManualClock
	at      time.Time
	seq     int
	f       func()
	stopped bool
}

func NewManualClock() *ManualClock {
	return &ManualClock{now: time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *ManualClock) AfterFunc(d time.Duration, f func()) session.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	t := &manualTimer{clock: c, at: c.now.Add(d), seq: c.seq, f: f}
	c.timers = append(c.timers, t)
	return t
}

func (t *manualTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	if t.stopped {
		return false
	}
	t.stopped = true
	return true
}

// Pending counts timers that have neither fired nor been stopped.
func (c *ManualClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}

// Advance moves time forward by d, firing due timers in deadline order.
// Callbacks run on the calling goroutine without the clock lock held.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now.Add(d)
	c.mu.Unlock()

	for {
		c.mu.Lock()
		sort.SliceStable(c.timers, func(i, j int) bool {
			if c.timers[i].at.Equal(c.timers[j].at) {
				return c.timers[i].seq < c.timers[j].seq
			}
			return c.timers[i].at.Before(c.timers[j].at)
		})
		var next *manualTimer
		for _, t := range c.timers {
			if !t.stopped && !t.at.After(target) {
				next = t
				break
			}
		}
		if next == nil {
			c.now = target
			c.mu.Unlock()
			return
		}
		next.stopped = true
		c.now = next.at
		c.mu.Unlock()

		next.f()
	}
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:            3001,
		CORSOrigins:     []string{"http://localhost:5173"},
		CompletionGrace: 2 * time.Second,
		MaxTimeLimit:    600,
		SendBuffer:      16,
		PingInterval:    54 * time.Second,
		ReadTimeout:     60 * time.Second,
		WriteTimeout:    10 * time.Second,
		LogSalt:         "test-log-salt",
	}
}

// Harness wires a coordinator to a Recorder and a ManualClock.
type Harness struct {
	Coord *session.Coordinator
	Out   *Recorder
	Clock *ManualClock
}

func NewHarness(t *testing.T, cfg cliparse.Config) *Harness {
	t.Helper()
	h := &Harness{Out: &Recorder{}, Clock: NewManualClock()}
	h.Coord = session.New(h.Out, cfg, h.Clock)
	t.Cleanup(h.Coord.Close)
	return h
}

// Teacher connects connID and binds it as teacher.
func (h *Harness) Teacher(t *testing.T, connID string) {
	t.Helper()
	h.Coord.Connect(connID)
	if reason := h.Coord.Handle(connID, models.SelectRole{Role: models.RoleTeacher}); reason != models.ReasonNone {
		t.Fatalf("select teacher role for %s: %s", connID, reason)
	}
}

// Student connects connID, binds it as student and registers name.
func (h *Harness) Student(t *testing.T, connID, name string) {
	t.Helper()
	h.Coord.Connect(connID)
	if reason := h.Coord.Handle(connID, models.SelectRole{Role: models.RoleStudent}); reason != models.ReasonNone {
		t.Fatalf("select student role for %s: %s", connID, reason)
	}
	if reason := h.Coord.Handle(connID, models.RegisterName{Name: name}); reason != models.ReasonNone {
		t.Fatalf("register %q for %s: %s", name, connID, reason)
	}
}

// StartPoll creates a poll from teacherID and returns the live poll.
func (h *Harness) StartPoll(t *testing.T, teacherID string, timeLimit int, options ...string) *models.Poll {
	t.Helper()
	reason := h.Coord.Handle(teacherID, models.CreatePoll{
		Question:  "Which option?",
		Options:   options,
		TimeLimit: timeLimit,
	})
	if reason != models.ReasonNone {
		t.Fatalf("create poll: %s", reason)
	}
	poll := h.Coord.Snapshot().CurrentPoll
	if poll == nil {
		t.Fatal("expected an active poll")
	}
	return poll
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
