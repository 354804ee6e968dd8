package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"faqflip/internal/flipcard"
)

// taskMsg delivers a deferred controller step back to the event loop
type taskMsg struct {
	task flipcard.Task
}

// TickScheduler turns controller continuations into tea.Tick commands. The
// model drains them after every controller call, so each step runs on the
// Bubble Tea event loop and never concurrently with a key press.
type TickScheduler struct {
	pending []tea.Cmd
}

func NewTickScheduler() *TickScheduler {
	return &TickScheduler{}
}

func (s *TickScheduler) After(ctx context.Context, delay time.Duration, task flipcard.Task) {
	if ctx.Err() != nil {
		return
	}
	s.pending = append(s.pending, tea.Tick(delay, func(time.Time) tea.Msg {
		return taskMsg{task: task}
	}))
}

// Drain returns the scheduled steps as one command
func (s *TickScheduler) Drain() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}
