package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/remindapp/remindapp/internal/reminder"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/golang-module/carbon/v2"
)

type pickOutcome int

const (
	pickPending pickOutcome = iota
	pickDone
	pickCancelled
)

var weekdayAbbrevs = [7]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

// DatePicker is a month grid dialog. The cursor never goes before floor.
type DatePicker struct {
	cursor    time.Time
	floor     time.Time
	weekStart time.Weekday
}

func NewDatePicker(now time.Time, weekStart time.Weekday) DatePicker {
	today := reminder.Today(now)
	return DatePicker{
		cursor:    today,
		floor:     today,
		weekStart: weekStart,
	}
}

// SetCursor moves the cursor to the given day, clamped to the floor.
func (p *DatePicker) SetCursor(year int, month time.Month, day int) {
	p.move(time.Date(year, month, day, 0, 0, 0, 0, p.floor.Location()))
}

func (p *DatePicker) move(t time.Time) {
	if t.Before(p.floor) {
		t = p.floor
	}
	p.cursor = t
}

func (p DatePicker) Selected() (int, time.Month, int) {
	return p.cursor.Year(), p.cursor.Month(), p.cursor.Day()
}

func (p DatePicker) Update(msg tea.KeyMsg) (DatePicker, pickOutcome) {
	switch msg.String() {
	case "l", "right":
		p.move(p.cursor.AddDate(0, 0, 1))
	case "h", "left":
		p.move(p.cursor.AddDate(0, 0, -1))
	case "j", "down":
		p.move(p.cursor.AddDate(0, 0, 7))
	case "k", "up":
		p.move(p.cursor.AddDate(0, 0, -7))
	case ">", "pgdown":
		// Jan 31 + 1 month is Feb 28/29, not Mar 3
		p.move(carbon.Time2Carbon(p.cursor).AddMonthsNoOverflow(1).Carbon2Time())
	case "<", "pgup":
		p.move(carbon.Time2Carbon(p.cursor).SubMonthsNoOverflow(1).Carbon2Time())
	case "home", "g":
		p.move(p.floor)
	case "enter", " ":
		return p, pickDone
	case "esc", "q":
		return p, pickCancelled
	}
	return p, pickPending
}

func (p DatePicker) View(styles Styles) string {
	var lines []string

	lines = append(lines, styles.Title.Render("Select Date"))
	lines = append(lines, "")
	lines = append(lines, styles.Normal.Render(p.cursor.Format("January 2006")))

	// Day headers
	headers := make([]string, 7)
	for i := range headers {
		headers[i] = weekdayAbbrevs[(int(p.weekStart)+i)%7]
	}
	lines = append(lines, styles.Label.Render(strings.Join(headers, " ")))

	firstDay := time.Date(p.cursor.Year(), p.cursor.Month(), 1, 0, 0, 0, 0, p.cursor.Location())
	startOffset := (int(firstDay.Weekday()) - int(p.weekStart) + 7) % 7
	day := firstDay.AddDate(0, 0, -startOffset)

	for week := 0; week < 6; week++ {
		cells := make([]string, 7)
		for weekday := 0; weekday < 7; weekday++ {
			dayStr := fmt.Sprintf("%2d", day.Day())

			switch {
			case sameDay(day, p.cursor):
				dayStr = styles.Selected.Render(dayStr)
			case day.Before(p.floor):
				dayStr = styles.Disabled.Render(dayStr)
			case day.Month() != p.cursor.Month():
				dayStr = styles.Help.Render(dayStr) // Dimmed
			case sameDay(day, p.floor):
				dayStr = styles.Today.Render(dayStr)
			default:
				dayStr = styles.Normal.Render(dayStr)
			}

			cells[weekday] = dayStr
			day = day.AddDate(0, 0, 1)
		}
		lines = append(lines, strings.Join(cells, " "))

		// Stop once the month is fully shown
		if day.Month() != p.cursor.Month() && week > 3 {
			break
		}
	}

	lines = append(lines, "")
	lines = append(lines, styles.Help.Render("←/→ day  ↑/↓ week  </> month"))
	lines = append(lines, styles.Help.Render("enter pick  esc cancel"))

	return styles.Border.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
