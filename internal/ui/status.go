package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type statusExpiredMsg struct {
	seq int
}

// Status is the transient message surface. A new message replaces the one
// on screen; the expiry of a replaced message is ignored.
type Status struct {
	text  string
	isErr bool
	seq   int
}

func (s *Status) Show(text string, d time.Duration) tea.Cmd {
	return s.show(text, false, d)
}

func (s *Status) ShowError(text string, d time.Duration) tea.Cmd {
	return s.show(text, true, d)
}

func (s *Status) show(text string, isErr bool, d time.Duration) tea.Cmd {
	s.seq++
	s.text = text
	s.isErr = isErr

	seq := s.seq
	return tea.Tick(d, func(time.Time) tea.Msg {
		return statusExpiredMsg{seq: seq}
	})
}

func (s *Status) expire(msg statusExpiredMsg) {
	if msg.seq == s.seq {
		s.text = ""
		s.isErr = false
	}
}

func (s Status) Text() string {
	return s.text
}

func (s Status) IsError() bool {
	return s.isErr
}
