package ui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/remindapp/remindapp/internal/config"
	"github.com/remindapp/remindapp/internal/reminder"
)

// pickChristmas moves the open date picker from 6/1/2025 to 12/25/2025.
func pickChristmas(m *Model) {
	press(m, "ctrl+d")
	press(m, repeat(">", 6)...)
	press(m, repeat("j", 3)...)
	press(m, repeat("l", 3)...)
	press(m, "enter")
}

// pickNineAM moves the open time picker from 10:30 to 9:00.
func pickNineAM(m *Model) {
	press(m, "ctrl+t", "j", "l")
	press(m, repeat("J", 3)...)
	press(m, "enter")
}

func TestSetReminderFlow(t *testing.T) {
	m := newTestModel(t)

	press(m, "Buy milk")
	pickChristmas(m)
	pickNineAM(m)

	if got := m.Draft().DateDisplay(); got != "12/25/2025" {
		t.Fatalf("date = %s, want 12/25/2025", got)
	}
	if got := m.Draft().TimeDisplay(); got != "9:0" {
		t.Fatalf("time = %s, want 9:0", got)
	}

	cmd := press(m, "ctrl+s")

	if !m.Draft().Confirmed {
		t.Fatal("reminder should be confirmed")
	}
	if cmd == nil {
		t.Error("confirm should schedule the status expiry")
	}
	if got := m.status.Text(); got != "Reminder set for 12/25/2025 at 9:0!" {
		t.Errorf("status = %q", got)
	}
	if !m.detailsVisible {
		t.Error("details should be visible")
	}

	view := m.View()
	for _, want := range []string{"Reminder Message: Buy milk", "Date: 12/25/2025", "Time: 9:0"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestClearResetsForm(t *testing.T) {
	m := newTestModel(t)

	press(m, "Buy milk")
	pickChristmas(m)
	pickNineAM(m)
	press(m, "ctrl+s")
	press(m, "ctrl+x")

	if m.Draft() != (reminder.Draft{}) {
		t.Errorf("draft not reset: %+v", m.Draft())
	}
	if m.input.Value() != "" {
		t.Errorf("input not cleared: %q", m.input.Value())
	}
	if m.detailsVisible {
		t.Error("details should be hidden")
	}
	if got := m.status.Text(); got != "Reminder cleared" {
		t.Errorf("status = %q", got)
	}

	view := m.View()
	if strings.Contains(view, "Reminder Message:") {
		t.Error("details still rendered after clear")
	}
	if !strings.Contains(view, reminder.DatePlaceholder) {
		t.Error("date placeholder not shown")
	}
}

func TestConfirmIncompleteIsSilent(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*Model)
	}{
		{"nothing", func(m *Model) {}},
		{"message only", func(m *Model) { press(m, "Buy milk") }},
		{"no message", func(m *Model) { pickChristmas(m); pickNineAM(m) }},
		{"no time", func(m *Model) { press(m, "Buy milk"); pickChristmas(m) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t)
			tt.setup(m)

			cmd := press(m, "ctrl+s")

			if m.Draft().Confirmed {
				t.Error("incomplete reminder was confirmed")
			}
			if cmd != nil {
				t.Error("no status should be scheduled")
			}
			if m.status.Text() != "" {
				t.Errorf("unexpected status %q", m.status.Text())
			}
		})
	}
}

func TestPastTimeShowsError(t *testing.T) {
	m := newTestModel(t)

	// 10:30 -> 9:30 today
	press(m, "ctrl+t", "j", "enter")

	if m.Draft().Time.IsSet() {
		t.Fatal("past time should not be stored")
	}
	if !errors.Is(m.Draft().TimeErr, reminder.ErrTimeInPast) {
		t.Fatalf("TimeErr = %v", m.Draft().TimeErr)
	}
	if !strings.Contains(m.View(), "Time is in the past!") {
		t.Error("view should show the time error")
	}
}

func TestTypingQDoesNotQuit(t *testing.T) {
	m := newTestModel(t)

	press(m, "q")

	if m.input.Value() != "q" {
		t.Errorf("input = %q, want q", m.input.Value())
	}
	if m.Draft().Message != "q" {
		t.Errorf("message = %q, want q", m.Draft().Message)
	}
	if m.mode != ViewMain || m.focus != fieldMessage {
		t.Error("typing q should leave the form as is")
	}
}

func TestQuitKeys(t *testing.T) {
	m := newTestModel(t)

	// Letter bindings apply once focus leaves the message field
	press(m, "tab")
	if m.focus != fieldDate {
		t.Fatalf("focus = %d, want date", m.focus)
	}
	if !isQuit(press(m, "q")) {
		t.Error("q should quit when a button has focus")
	}

	m = newTestModel(t)
	press(m, "ctrl+d")
	if !isQuit(press(m, "ctrl+c")) {
		t.Error("ctrl+c should quit from the date picker")
	}
}

func TestFocusCycleAndActivate(t *testing.T) {
	m := newTestModel(t)

	press(m, "shift+tab")
	if m.focus != fieldClear {
		t.Fatalf("focus = %d, want clear", m.focus)
	}

	press(m, "tab", "tab")
	if m.focus != fieldDate {
		t.Fatalf("focus = %d, want date", m.focus)
	}
	if m.input.Focused() {
		t.Error("input should be blurred")
	}

	press(m, "enter")
	if m.mode != ViewDatePicker {
		t.Fatalf("mode = %d, want date picker", m.mode)
	}

	press(m, "esc")
	if m.mode != ViewMain {
		t.Fatalf("mode = %d, want main", m.mode)
	}
	if m.Draft().Date.IsSet() {
		t.Error("cancelled pick should not set a date")
	}

	press(m, "tab", "enter")
	if m.mode != ViewTimePicker {
		t.Fatalf("mode = %d, want time picker", m.mode)
	}
	press(m, "esc")

	// Letter shortcuts on the buttons
	press(m, "d")
	if m.mode != ViewDatePicker {
		t.Errorf("d should open the date picker, mode = %d", m.mode)
	}
}

func TestEditAfterConfirmHidesDetails(t *testing.T) {
	m := newTestModel(t)

	press(m, "Buy milk")
	pickChristmas(m)
	pickNineAM(m)
	press(m, "ctrl+s")

	press(m, "backspace")

	if m.Draft().Confirmed {
		t.Error("editing should revoke the confirmation")
	}
	if m.detailsVisible {
		t.Error("details should be hidden after an edit")
	}
	if m.Draft().Message != "Buy mil" {
		t.Errorf("message = %q", m.Draft().Message)
	}
}

func TestReopenPickersStartFromPickedValues(t *testing.T) {
	m := newTestModel(t)

	pickChristmas(m)
	pickNineAM(m)

	press(m, "ctrl+d")
	if y, mo, d := m.datePicker.Selected(); y != 2025 || mo != time.December || d != 25 {
		t.Errorf("date picker opened on %d-%d-%d", y, mo, d)
	}
	press(m, "esc", "ctrl+t")
	if h, mi := m.timePicker.Selected(); h != 9 || mi != 0 {
		t.Errorf("time picker opened on %d:%d", h, mi)
	}
}

func TestHelpToggle(t *testing.T) {
	m := newTestModel(t)

	press(m, "f1")
	if m.mode != ViewHelp {
		t.Fatalf("mode = %d, want help", m.mode)
	}
	if !strings.Contains(m.View(), "Set reminder") {
		t.Error("help should list actions")
	}

	press(m, "x")
	if m.mode != ViewMain {
		t.Errorf("any key should leave help, mode = %d", m.mode)
	}
}

func TestStatusExpiry(t *testing.T) {
	m := newTestModel(t)

	press(m, "ctrl+x")
	first := m.status.seq
	press(m, "ctrl+x")

	// The first message's expiry arrives after it was replaced
	m.Update(statusExpiredMsg{seq: first})
	if m.status.Text() != "Reminder cleared" {
		t.Errorf("stale expiry cleared the status")
	}

	m.Update(statusExpiredMsg{seq: m.status.seq})
	if m.status.Text() != "" {
		t.Errorf("status = %q, want empty", m.status.Text())
	}
}

func TestConfigReload(t *testing.T) {
	m := newTestModel(t)

	cfg := config.DefaultConfig()
	cfg.KeyBindings["ctrl+s"] = ""
	cfg.KeyBindings["ctrl+x"] = config.ActionConfirm
	cfg.StatusDuration = time.Second

	m.Update(ConfigReloadedMsg{Config: cfg})
	if m.status.Text() != "Config reloaded" {
		t.Errorf("status = %q", m.status.Text())
	}

	press(m, "Buy milk")
	pickChristmas(m)
	pickNineAM(m)
	press(m, "ctrl+x")

	if !m.Draft().Confirmed {
		t.Error("rebound key should confirm")
	}

	m.Update(ConfigReloadedMsg{Err: errors.New("line 3: unknown config line: nope")})
	if !m.status.IsError() {
		t.Error("reload failure should show an error status")
	}
	if m.config != cfg {
		t.Error("failed reload should keep the previous config")
	}
}

func TestViewBeforeSize(t *testing.T) {
	m := NewModel(config.DefaultConfig(), reminder.FixedClock(testNow), nil)

	if m.View() != "Loading..." {
		t.Errorf("View = %q", m.View())
	}
}
