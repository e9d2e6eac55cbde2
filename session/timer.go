// Copyright (c) 2025 Mukesh Ghildiyal.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"time"
)

// Clock is the source of time and delayed callbacks for the coordinator.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a pending callback that can be stopped before it fires.
type Timer interface {
	Stop() bool
}

// WallClock schedules on the runtime timer heap.
type WallClock struct{}

func (WallClock) Now() time.Time { return time.Now() }

func (WallClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// timerService keeps every armed timer keyed by the poll id it was armed
// for. The poll id doubles as the generation token: a firing callback is
// handed the id it was armed with and must compare it to the live poll.
// Not safe for concurrent use; the coordinator lock guards it.
type timerService struct {
	clock Clock
	armed map[string][]Timer
}

func newTimerService(clock Clock) *timerService {
	return &timerService{
		clock: clock,
		armed: make(map[string][]Timer),
	}
}

// Arm schedules fire(pollID) after d.
func (t *timerService) Arm(pollID string, d time.Duration, fire func(pollID string)) {
	timer := t.clock.AfterFunc(d, func() { fire(pollID) })
	t.armed[pollID] = append(t.armed[pollID], timer)
}

// Cancel stops every timer armed for pollID. A timer already in flight
// still runs its callback, which then sees a stale id and does nothing.
func (t *timerService) Cancel(pollID string) int {
	timers := t.armed[pollID]
	delete(t.armed, pollID)
	stopped := 0
	for _, timer := range timers {
		if timer.Stop() {
			stopped++
		}
	}
	return stopped
}

// Pending reports how many timers are armed for pollID.
func (t *timerService) Pending(pollID string) int {
	return len(t.armed[pollID])
}

func (t *timerService) StopAll() {
	for id := range t.armed {
		t.Cancel(id)
	}
}
