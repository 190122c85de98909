package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// AdvanceMsg is delivered when a scheduled callback is due.
type AdvanceMsg struct {
	ID uint64
}

// Scheduler turns "call fn after delay" into tea.Tick commands so that every
// callback runs inside Model.Update, on the event loop goroutine.
type Scheduler struct {
	next    uint64
	pending map[uint64]func()
	queued  []tea.Cmd
}

func NewScheduler() *Scheduler {
	return &Scheduler{pending: make(map[uint64]func())}
}

func (s *Scheduler) After(delay time.Duration, fn func()) func() {
	s.next++
	id := s.next
	s.pending[id] = fn
	s.queued = append(s.queued, tea.Tick(delay, func(time.Time) tea.Msg {
		return AdvanceMsg{ID: id}
	}))
	return func() { delete(s.pending, id) }
}

// Fire runs the callback registered under id unless it was cancelled.
func (s *Scheduler) Fire(id uint64) bool {
	fn, ok := s.pending[id]
	if !ok {
		return false
	}
	delete(s.pending, id)
	fn()
	return true
}

// Flush hands the ticks scheduled since the last call to the program.
func (s *Scheduler) Flush() tea.Cmd {
	if len(s.queued) == 0 {
		return nil
	}
	cmds := s.queued
	s.queued = nil
	if len(cmds) == 1 {
		return cmds[0]
	}
	return tea.Batch(cmds...)
}

// Pending counts callbacks that are scheduled and not cancelled.
func (s *Scheduler) Pending() int {
	return len(s.pending)
}
