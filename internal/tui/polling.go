package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// timerMsg carries a scheduled continuation back into Update.
type timerMsg struct {
	fn func()
}

// Scheduler implements dialog.Scheduler on top of tea.Tick. Continuations are
// queued as commands and run inside Update when their tick fires, so they
// share the program's goroutine with every other model change.
type Scheduler struct {
	tick    func(d time.Duration, msg tea.Msg) tea.Cmd
	pending []tea.Cmd
}

// NewScheduler creates an empty Scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{tick: tick}
}

func tick(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return msg
	})
}

// AfterFunc queues fn to run after d.
func (s *Scheduler) AfterFunc(d time.Duration, fn func()) {
	s.pending = append(s.pending, s.tick(d, timerMsg{fn: fn}))
}

// Pending returns the number of queued commands not yet handed to the program.
func (s *Scheduler) Pending() int {
	return len(s.pending)
}

// Flush hands every queued tick to the program.
func (s *Scheduler) Flush() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}
