package ui

import (
	"fmt"
	"strings"

	"github.com/remindapp/remindapp/internal/config"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

func (m *Model) viewMain() string {
	var sections []string

	sections = append(sections, m.styles.Title.Render("Remind App"))
	sections = append(sections, "")

	inputStyle := m.styles.Input
	if m.focus == fieldMessage {
		inputStyle = m.styles.InputOn
	}
	sections = append(sections, m.styles.Label.Render("Enter Reminder:"))
	sections = append(sections, inputStyle.Render(m.input.View()))
	sections = append(sections, "")

	dateValue := m.styles.Normal.Render(m.draft.DateDisplay())
	timeValue := m.styles.Normal.Render(m.draft.TimeDisplay())
	if m.draft.TimeErr != nil && !m.draft.Time.IsSet() {
		timeValue = m.styles.Error.Render(m.draft.TimeDisplay())
	}

	sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Center,
		m.renderButton("Select Date", fieldDate), "  ", dateValue))
	sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Center,
		m.renderButton("Select Time", fieldTime), "  ", timeValue))
	sections = append(sections, "")
	sections = append(sections, m.renderButton("Set Reminder", fieldSet))

	if m.detailsVisible {
		sections = append(sections, "")
		sections = append(sections, m.renderDetails())
	}

	sections = append(sections, "")
	sections = append(sections, m.renderButton("Clear Reminder", fieldClear))

	body := lipgloss.JoinVertical(lipgloss.Center, sections...)
	body = lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, body)

	return lipgloss.JoinVertical(lipgloss.Left, body, m.renderStatusBar())
}

func (m *Model) renderButton(label string, f field) string {
	if m.focus == f {
		return m.styles.Focused.Render(label)
	}
	return m.styles.Button.Render(label)
}

// renderDetails shows the confirmed reminder.
func (m *Model) renderDetails() string {
	width := m.width - 4
	if width < 20 {
		width = 20
	}

	message := wordwrap.String("Reminder Message: "+m.draft.Message, width)

	return lipgloss.JoinVertical(lipgloss.Center,
		m.styles.Bold.Render(message),
		m.styles.Details.Render("Date: "+m.draft.DateDisplay()),
		m.styles.Details.Render("Time: "+m.draft.TimeDisplay()),
	)
}

func (m *Model) viewDialog(dialog string) string {
	body := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, dialog)
	return lipgloss.JoinVertical(lipgloss.Left, body, m.renderStatusBar())
}

func (m *Model) viewHelp() string {
	line := func(action, text string) string {
		keys := strings.Join(m.config.KeysFor(action), "/")
		return m.styles.Help.Render(fmt.Sprintf("  %-16s - %s", keys, text))
	}

	help := []string{
		m.styles.Title.Render("Remind App Help"),
		"",
		m.styles.Normal.Render("Navigation:"),
		line(config.ActionNextField, "Next field"),
		line(config.ActionPrevField, "Previous field"),
		line(config.ActionActivate, "Press focused button"),
		"",
		m.styles.Normal.Render("Actions:"),
		line(config.ActionPickDate, "Select date"),
		line(config.ActionPickTime, "Select time"),
		line(config.ActionConfirm, "Set reminder"),
		line(config.ActionClear, "Clear reminder"),
		line(config.ActionHelp, "Toggle help"),
		line(config.ActionQuit, "Quit"),
		"",
		m.styles.Help.Render("Single letter keys work when the message field is not focused."),
		"",
		m.styles.Help.Render("Press any key to return..."),
	}

	return lipgloss.JoinVertical(lipgloss.Left, help...)
}

func (m *Model) renderStatusBar() string {
	left := fmt.Sprintf(" %s %s", m.draft.DateDisplay(), m.draft.TimeDisplay())
	if m.draft.Confirmed {
		left += " | set"
	}

	right := m.styles.Help.Render("f1 for help | ctrl+c to quit")
	if text := m.status.Text(); text != "" {
		if m.status.IsError() {
			right = m.styles.Error.Render(text)
		} else {
			right = m.styles.Status.Render(text)
		}
	}

	width := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if width < 0 {
		width = 0
	}

	middle := strings.Repeat(" ", width)

	return m.styles.Help.Render(left+middle) + right
}
