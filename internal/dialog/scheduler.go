package dialog

import (
	"sort"
	"time"
)

// Scheduler runs fn once after d has elapsed. Implementations must run fn on
// the same goroutine that drives the Controller.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func())
}

// ManualScheduler is a virtual clock. Tasks run only when the clock is
// advanced, in due-time order, ties broken by scheduling order.
type ManualScheduler struct {
	now   time.Duration
	seq   int
	tasks []task
}

type task struct {
	at  time.Duration
	seq int
	fn  func()
}

// NewManualScheduler creates a virtual clock at zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

func (s *ManualScheduler) AfterFunc(d time.Duration, fn func()) {
	s.seq++
	s.tasks = append(s.tasks, task{at: s.now + max(d, 0), seq: s.seq, fn: fn})
}

// Now returns the virtual time elapsed since creation.
func (s *ManualScheduler) Now() time.Duration {
	return s.now
}

// Pending returns the number of tasks not yet run.
func (s *ManualScheduler) Pending() int {
	return len(s.tasks)
}

// Advance moves the clock forward by d, running every task that falls due,
// including tasks scheduled by tasks run during the advance.
func (s *ManualScheduler) Advance(d time.Duration) {
	target := s.now + d
	for {
		t, ok := s.next(target)
		if !ok {
			break
		}
		s.now = t.at
		t.fn()
	}
	s.now = target
}

// Drain runs tasks until none remain and returns the virtual time spent.
func (s *ManualScheduler) Drain() time.Duration {
	start := s.now
	for len(s.tasks) > 0 {
		s.sort()
		s.Advance(s.tasks[0].at - s.now)
	}
	return s.now - start
}

func (s *ManualScheduler) next(target time.Duration) (task, bool) {
	if len(s.tasks) == 0 {
		return task{}, false
	}
	s.sort()
	t := s.tasks[0]
	if t.at > target {
		return task{}, false
	}
	s.tasks = s.tasks[1:]
	return t, true
}

func (s *ManualScheduler) sort() {
	sort.SliceStable(s.tasks, func(i, j int) bool {
		if s.tasks[i].at != s.tasks[j].at {
			return s.tasks[i].at < s.tasks[j].at
		}
		return s.tasks[i].seq < s.tasks[j].seq
	})
}
