// Package sessiontest provides a virtual clock for driving session
// controllers in tests without sleeping.
package sessiontest

import (
	"sort"
	"sync"
	"time"

	"glasschat/internal/session"
)

var _ session.Scheduler = (*ManualScheduler)(nil)

// ManualScheduler is a virtual clock. Nothing fires until Advance is called,
// and callbacks run synchronously on the caller's goroutine.
type ManualScheduler struct {
	mu      sync.Mutex
	start   time.Time
	elapsed time.Duration
	seq     int
	pending []*manualTimer
}

type manualTimer struct {
	s   *ManualScheduler
	at  time.Duration
	seq int
	fn  func()
}

// NewManualScheduler returns a clock reading start.
func NewManualScheduler(start time.Time) *ManualScheduler {
	return &ManualScheduler{start: start}
}

func (s *ManualScheduler) AfterFunc(d time.Duration, fn func()) session.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()

	if d < 0 {
		d = 0
	}
	s.seq++
	t := &manualTimer{s: s, at: s.elapsed + d, seq: s.seq, fn: fn}
	s.pending = append(s.pending, t)
	return t
}

func (t *manualTimer) Stop() bool {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	return t.s.remove(t)
}

func (s *ManualScheduler) remove(t *manualTimer) bool {
	for i, p := range s.pending {
		if p == t {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return true
		}
	}
	return false
}

// Advance moves the clock forward by d, firing every timer that falls due in
// deadline order. Timers scheduled by a callback fire in the same call if
// they fall inside the window.
func (s *ManualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	target := s.elapsed + d
	s.mu.Unlock()

	for {
		s.mu.Lock()
		next := s.nextDue(target)
		if next == nil {
			s.elapsed = target
			s.mu.Unlock()
			return
		}
		s.elapsed = next.at
		s.remove(next)
		s.mu.Unlock()

		next.fn()
	}
}

func (s *ManualScheduler) nextDue(target time.Duration) *manualTimer {
	due := make([]*manualTimer, 0, len(s.pending))
	for _, t := range s.pending {
		if t.at <= target {
			due = append(due, t)
		}
	}
	if len(due) == 0 {
		return nil
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].at != due[j].at {
			return due[i].at < due[j].at
		}
		return due[i].seq < due[j].seq
	})
	return due[0]
}

// Pending returns the number of armed timers.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Now returns the virtual wall clock.
func (s *ManualScheduler) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.start.Add(s.elapsed)
}
