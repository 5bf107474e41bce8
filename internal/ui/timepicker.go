package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	hourField = iota
	minuteField
)

// TimePicker edits an hour and a minute. It has no floor.
type TimePicker struct {
	hour   int
	minute int
	field  int
	use24  bool
}

func NewTimePicker(initial time.Time, use24 bool) TimePicker {
	return TimePicker{
		hour:   initial.Hour(),
		minute: initial.Minute(),
		use24:  use24,
	}
}

func (p *TimePicker) SetTime(hour, minute int) {
	p.hour = hour
	p.minute = minute
}

func (p TimePicker) Selected() (int, int) {
	return p.hour, p.minute
}

func (p TimePicker) Update(msg tea.KeyMsg) (TimePicker, pickOutcome) {
	switch msg.String() {
	case "k", "up", "+":
		p.step(1)
	case "j", "down", "-":
		p.step(-1)
	case "K", "pgup":
		p.step(10)
	case "J", "pgdown":
		p.step(-10)
	case "h", "left", "shift+tab":
		p.field = hourField
	case "l", "right", "tab":
		p.field = minuteField
	case "a":
		if p.hour >= 12 {
			p.hour -= 12
		}
	case "p":
		if p.hour < 12 {
			p.hour += 12
		}
	case "enter", " ":
		return p, pickDone
	case "esc", "q":
		return p, pickCancelled
	}
	return p, pickPending
}

// step changes the focused field with wrap-around.
func (p *TimePicker) step(n int) {
	if p.field == hourField {
		p.hour = ((p.hour+n)%24 + 24) % 24
	} else {
		p.minute = ((p.minute+n)%60 + 60) % 60
	}
}

// Display renders the time as the picker shows it.
func (p TimePicker) Display() string {
	if p.use24 {
		return fmt.Sprintf("%02d:%02d", p.hour, p.minute)
	}
	h, suffix := to12Hour(p.hour)
	return fmt.Sprintf("%2d:%02d %s", h, p.minute, suffix)
}

func (p TimePicker) View(styles Styles) string {
	hour := fmt.Sprintf("%02d", p.hour)
	suffix := ""
	if !p.use24 {
		h, s := to12Hour(p.hour)
		hour = fmt.Sprintf("%2d", h)
		suffix = " " + styles.Normal.Render(s)
	}
	minute := fmt.Sprintf("%02d", p.minute)

	if p.field == hourField {
		hour = styles.Selected.Render(hour)
		minute = styles.Normal.Render(minute)
	} else {
		hour = styles.Normal.Render(hour)
		minute = styles.Selected.Render(minute)
	}

	help := "↑/↓ change  ←/→ hour/minute"
	if !p.use24 {
		help += "  a/p am/pm"
	}

	lines := []string{
		styles.Title.Render("Select Time"),
		"",
		hour + styles.Normal.Render(" : ") + minute + suffix,
		"",
		styles.Help.Render(help),
		styles.Help.Render("enter pick  esc cancel"),
	}

	return styles.Border.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func to12Hour(hour int) (int, string) {
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	h := hour % 12
	if h == 0 {
		h = 12
	}
	return h, suffix
}
