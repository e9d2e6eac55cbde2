// Copyright (c) 2025 Mukesh Ghildiyal.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"testing"
	"time"
)

// stepClock fires timers only when fire is called.
type stepClock struct {
	now    time.Time
	timers []*stepTimer
}

type stepTimer struct {
	f       func()
	stopped bool
}

func (t *stepTimer) Stop() bool {
	was := !t.stopped
	t.stopped = true
	return was
}

func (c *stepClock) Now() time.Time { return c.now }

func (c *stepClock) AfterFunc(d time.Duration, f func()) Timer {
	t := &stepTimer{f: f}
	c.timers = append(c.timers, t)
	return t
}

func TestTimerService(t *testing.T) {
	clock := &stepClock{}
	ts := newTimerService(clock)

	var fired []string
	fire := func(pollID string) { fired = append(fired, pollID) }

	ts.Arm("p1", time.Second, fire)
	ts.Arm("p1", 2*time.Second, fire)
	ts.Arm("p2", time.Second, fire)

	if ts.Pending("p1") != 2 || ts.Pending("p2") != 1 {
		t.Fatalf("Pending = %d, %d", ts.Pending("p1"), ts.Pending("p2"))
	}
	if n := ts.Cancel("p1"); n != 2 {
		t.Errorf("Cancel(p1) = %d, want 2", n)
	}
	if ts.Pending("p1") != 0 {
		t.Error("cancelled timers still tracked")
	}

	clock.timers[2].f()
	if len(fired) != 1 || fired[0] != "p2" {
		t.Errorf("fired = %v, want [p2]", fired)
	}

	ts.StopAll()
	for i, timer := range clock.timers {
		if !timer.stopped {
			t.Errorf("timer %d still running after StopAll", i)
		}
	}
}
