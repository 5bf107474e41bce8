package ui

import (
	"testing"
	"time"

	"github.com/remindapp/remindapp/internal/config"
	"github.com/remindapp/remindapp/internal/reminder"

	tea "github.com/charmbracelet/bubbletea"
)

// testNow is a Sunday morning.
var testNow = time.Date(2025, 6, 1, 10, 30, 0, 0, time.Local)

var namedKeys = map[string]tea.KeyType{
	"enter":     tea.KeyEnter,
	"esc":       tea.KeyEscape,
	"tab":       tea.KeyTab,
	"shift+tab": tea.KeyShiftTab,
	"up":        tea.KeyUp,
	"down":      tea.KeyDown,
	"left":      tea.KeyLeft,
	"right":     tea.KeyRight,
	"backspace": tea.KeyBackspace,
	"f1":        tea.KeyF1,
	"ctrl+c":    tea.KeyCtrlC,
	"ctrl+d":    tea.KeyCtrlD,
	"ctrl+t":    tea.KeyCtrlT,
	"ctrl+s":    tea.KeyCtrlS,
	"ctrl+x":    tea.KeyCtrlX,
}

func key(s string) tea.KeyMsg {
	if t, ok := namedKeys[s]; ok {
		return tea.KeyMsg{Type: t}
	}
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T) *Model {
	t.Helper()

	m := NewModel(config.DefaultConfig(), reminder.FixedClock(testNow), nil)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return m
}

// press sends keys in order and returns the command of the last one.
func press(m *Model, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(key(k))
	}
	return cmd
}

func repeat(k string, n int) []string {
	keys := make([]string, n)
	for i := range keys {
		keys[i] = k
	}
	return keys
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}
