package ui

import (
	"github.com/remindapp/remindapp/internal/config"

	"github.com/charmbracelet/lipgloss"
)

type Styles struct {
	Title    lipgloss.Style
	Normal   lipgloss.Style
	Label    lipgloss.Style
	Button   lipgloss.Style
	Focused  lipgloss.Style
	Input    lipgloss.Style
	InputOn  lipgloss.Style
	Details  lipgloss.Style
	Bold     lipgloss.Style
	Status   lipgloss.Style
	Error    lipgloss.Style
	Help     lipgloss.Style
	Today    lipgloss.Style
	Selected lipgloss.Style
	Disabled lipgloss.Style
	Border   lipgloss.Style
}

func DefaultStyles() Styles {
	return StylesFromColors(config.DefaultConfig().Colors)
}

// StylesFromColors builds styles from the color table of the config.
// Missing entries fall back to the terminal default.
func StylesFromColors(colors map[string]string) Styles {
	c := func(name string) lipgloss.TerminalColor {
		if v, ok := colors[name]; ok && v != "" && v != "default" {
			return lipgloss.Color(v)
		}
		return lipgloss.NoColor{}
	}

	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(c("title")).
			Bold(true).
			Underline(true),
		Normal: lipgloss.NewStyle().
			Foreground(c("normal")),
		Label: lipgloss.NewStyle().
			Foreground(c("label")),
		Button: lipgloss.NewStyle().
			Foreground(c("normal")).
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c("disabled")),
		Focused: lipgloss.NewStyle().
			Foreground(c("focused")).
			Bold(true).
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c("focused")),
		Input: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(c("disabled")).
			Padding(0, 1),
		InputOn: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(c("focused")).
			Padding(0, 1),
		Details: lipgloss.NewStyle().
			Foreground(c("details")),
		Bold: lipgloss.NewStyle().
			Foreground(c("details")).
			Bold(true),
		Status: lipgloss.NewStyle().
			Foreground(c("status")).
			Background(lipgloss.Color("235")).
			Padding(0, 1),
		Error: lipgloss.NewStyle().
			Foreground(c("error")).
			Bold(true),
		Help: lipgloss.NewStyle().
			Foreground(c("help")),
		Today: lipgloss.NewStyle().
			Foreground(c("today")).
			Bold(true),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("235")).
			Background(c("selected")).
			Bold(true),
		Disabled: lipgloss.NewStyle().
			Foreground(c("disabled")),
		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(c("disabled")).
			Padding(0, 1),
	}
}
