package sim

import (
	"sort"
	"sync"
	"time"

	"github.com/opd-ai/openpush/retry"
)

// Scheduler is a retry.Scheduler driven by a manual clock. Timers fire only
// from Advance or RunNext, on the caller's goroutine.
type Scheduler struct {
	mu     sync.Mutex
	now    time.Duration
	tasks  []*task
	delays []time.Duration
}

type task struct {
	s       *Scheduler
	due     time.Duration
	seq     int
	f       func()
	stopped bool
	fired   bool
}

var _ retry.Scheduler = (*Scheduler)(nil)

// NewScheduler creates a Scheduler at time zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// AfterFunc implements retry.Scheduler.
func (s *Scheduler) AfterFunc(d time.Duration, f func()) retry.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &task{s: s, due: s.now + d, seq: len(s.delays), f: f}
	s.tasks = append(s.tasks, t)
	s.delays = append(s.delays, d)
	return t
}

// Stop implements retry.Timer.
func (t *task) Stop() bool {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if t.fired || t.stopped {
		return false
	}
	t.stopped = true
	return true
}

// Now returns the elapsed manual time.
func (s *Scheduler) Now() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

// Delays returns every delay ever scheduled, in scheduling order.
func (s *Scheduler) Delays() []time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]time.Duration(nil), s.delays...)
}

// Pending returns the delays of timers that have neither fired nor been
// stopped, soonest first.
func (s *Scheduler) Pending() []time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []time.Duration
	for _, t := range s.live() {
		out = append(out, t.due-s.now)
	}
	return out
}

// Advance moves the clock forward by d, firing every timer that falls due,
// including timers scheduled by fired callbacks.
func (s *Scheduler) Advance(d time.Duration) {
	s.mu.Lock()
	target := s.now + d
	s.mu.Unlock()
	for s.fireNext(target) {
	}
	s.mu.Lock()
	if s.now < target {
		s.now = target
	}
	s.mu.Unlock()
}

// RunNext advances to the soonest live timer and fires it. It reports false
// when no timer is pending.
func (s *Scheduler) RunNext() bool {
	s.mu.Lock()
	live := s.live()
	if len(live) == 0 {
		s.mu.Unlock()
		return false
	}
	due := live[0].due
	s.mu.Unlock()
	return s.fireNext(due)
}

func (s *Scheduler) fireNext(target time.Duration) bool {
	s.mu.Lock()
	live := s.live()
	if len(live) == 0 || live[0].due > target {
		s.mu.Unlock()
		return false
	}
	t := live[0]
	t.fired = true
	s.now = t.due
	s.mu.Unlock()

	t.f()
	return true
}

// live returns the pending tasks ordered by due time. s.mu must be held.
func (s *Scheduler) live() []*task {
	var out []*task
	for _, t := range s.tasks {
		if !t.fired && !t.stopped {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].due != out[j].due {
			return out[i].due < out[j].due
		}
		return out[i].seq < out[j].seq
	})
	return out
}
