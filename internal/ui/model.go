package ui

import (
	"fmt"

	"github.com/remindapp/remindapp/internal/config"
	"github.com/remindapp/remindapp/internal/reminder"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

type ViewMode int

const (
	ViewMain ViewMode = iota
	ViewDatePicker
	ViewTimePicker
	ViewHelp
)

// field is a focusable element of the main screen, in tab order.
type field int

const (
	fieldMessage field = iota
	fieldDate
	fieldTime
	fieldSet
	fieldClear
	fieldCount
)

// ConfigReloadedMsg is sent by the config watcher after the file changed.
type ConfigReloadedMsg struct {
	Config *config.Config
	Err    error
}

type Model struct {
	// Core components
	config *config.Config
	clock  reminder.Clock
	logger *zap.Logger

	// Reminder state
	draft          reminder.Draft
	detailsVisible bool

	// View state
	mode       ViewMode
	focus      field
	input      textinput.Model
	datePicker DatePicker
	timePicker TimePicker

	// UI state
	width  int
	height int
	status Status

	styles Styles
}

func NewModel(cfg *config.Config, clock reminder.Clock, logger *zap.Logger) *Model {
	if clock == nil {
		clock = reminder.SystemClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	input := textinput.New()
	input.Placeholder = "Buy milk"
	input.Prompt = ""
	input.CharLimit = cfg.MessageLimit
	input.Width = 40
	input.Focus()

	return &Model{
		config: cfg,
		clock:  clock,
		logger: logger,
		mode:   ViewMain,
		focus:  fieldMessage,
		input:  input,
		styles: StylesFromColors(cfg.Colors),
	}
}

// Draft returns the current reminder state.
func (m *Model) Draft() reminder.Draft {
	return m.draft
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("Remind App"),
		textinput.Blink,
	)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = inputWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case statusExpiredMsg:
		m.status.expire(msg)
		return m, nil

	case ConfigReloadedMsg:
		return m, m.applyConfig(msg)
	}

	// Cursor blink and other textinput internals
	if m.mode == ViewMain && m.focus == fieldMessage {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	switch m.mode {
	case ViewDatePicker:
		return m.viewDialog(m.datePicker.View(m.styles))
	case ViewTimePicker:
		return m.viewDialog(m.timePicker.View(m.styles))
	case ViewHelp:
		return m.viewHelp()
	default:
		return m.viewMain()
	}
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Always quit, whatever has focus
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.mode {
	case ViewHelp:
		m.mode = ViewMain
		return m, nil

	case ViewDatePicker:
		var outcome pickOutcome
		m.datePicker, outcome = m.datePicker.Update(msg)
		switch outcome {
		case pickDone:
			m.mode = ViewMain
			year, month, day := m.datePicker.Selected()
			return m, m.dispatch(reminder.DatePicked{Year: year, Month: month, Day: day})
		case pickCancelled:
			m.mode = ViewMain
		}
		return m, nil

	case ViewTimePicker:
		var outcome pickOutcome
		m.timePicker, outcome = m.timePicker.Update(msg)
		switch outcome {
		case pickDone:
			m.mode = ViewMain
			hour, minute := m.timePicker.Selected()
			return m, m.dispatch(reminder.TimePicked{Hour: hour, Minute: minute})
		case pickCancelled:
			m.mode = ViewMain
		}
		return m, nil
	}

	return m.handleMainKeys(msg)
}

func (m *Model) handleMainKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.config.ActionFor(msg.String())

	// Printable keys belong to the message while it has focus
	typing := m.focus == fieldMessage && (msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace)
	if typing {
		action = ""
	}

	switch action {
	case config.ActionQuit:
		return m, tea.Quit

	case config.ActionHelp:
		m.mode = ViewHelp
		return m, nil

	case config.ActionNextField:
		return m, m.setFocus((m.focus + 1) % fieldCount)

	case config.ActionPrevField:
		return m, m.setFocus((m.focus + fieldCount - 1) % fieldCount)

	case config.ActionActivate:
		return m, m.activate()

	case config.ActionPickDate:
		m.openDatePicker()
		return m, nil

	case config.ActionPickTime:
		m.openTimePicker()
		return m, nil

	case config.ActionConfirm:
		return m, m.dispatch(reminder.ConfirmPressed{})

	case config.ActionClear:
		return m, m.dispatch(reminder.ClearPressed{})
	}

	if m.focus != fieldMessage {
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != m.draft.Message {
		if c := m.dispatch(reminder.MessageChanged{Text: m.input.Value()}); c != nil {
			cmd = tea.Batch(cmd, c)
		}
	}
	return m, cmd
}

// activate presses the focused element.
func (m *Model) activate() tea.Cmd {
	switch m.focus {
	case fieldMessage:
		return m.setFocus(fieldDate)
	case fieldDate:
		m.openDatePicker()
	case fieldTime:
		m.openTimePicker()
	case fieldSet:
		return m.dispatch(reminder.ConfirmPressed{})
	case fieldClear:
		return m.dispatch(reminder.ClearPressed{})
	}
	return nil
}

func (m *Model) setFocus(f field) tea.Cmd {
	m.focus = f
	if f == fieldMessage {
		return m.input.Focus()
	}
	m.input.Blur()
	return nil
}

func (m *Model) openDatePicker() {
	m.datePicker = NewDatePicker(m.clock.Now(), m.config.WeekStartDay)
	if d := m.draft.Date; d.IsSet() {
		m.datePicker.SetCursor(d.Year, d.Month, d.Day)
	}
	m.mode = ViewDatePicker
}

func (m *Model) openTimePicker() {
	m.timePicker = NewTimePicker(m.clock.Now(), m.config.Time24Hour)
	if t := m.draft.Time; t.IsSet() {
		m.timePicker.SetTime(t.Hour, t.Minute)
	}
	m.mode = ViewTimePicker
}

// dispatch runs ev through the reducer and turns its effects into view
// state and commands.
func (m *Model) dispatch(ev reminder.Event) tea.Cmd {
	t := reminder.Reduce(m.draft, ev, m.clock.Now())
	m.draft = t.Draft

	if m.input.Value() != m.draft.Message {
		m.input.SetValue(m.draft.Message)
	}

	if t.Err != nil {
		m.logger.Debug("event rejected",
			zap.String("event", fmt.Sprintf("%T", ev)),
			zap.Error(t.Err))
	} else {
		m.logger.Debug("event applied",
			zap.String("event", fmt.Sprintf("%T", ev)),
			zap.String("date", m.draft.DateDisplay()),
			zap.String("time", m.draft.TimeDisplay()),
			zap.Bool("confirmed", m.draft.Confirmed))
	}

	var cmd tea.Cmd
	for _, eff := range t.Effects {
		switch e := eff.(type) {
		case reminder.StatusEffect:
			cmd = m.status.Show(e.Text, m.config.StatusDuration)
		case reminder.DetailsEffect:
			m.detailsVisible = e.Visible
		}
	}

	if _, ok := ev.(reminder.ConfirmPressed); ok && m.draft.Confirmed {
		m.logger.Info("reminder set",
			zap.String("date", m.draft.DateDisplay()),
			zap.String("time", m.draft.TimeDisplay()))
	}

	return cmd
}

func (m *Model) applyConfig(msg ConfigReloadedMsg) tea.Cmd {
	if msg.Err != nil {
		m.logger.Warn("config reload failed", zap.Error(msg.Err))
		return m.status.ShowError(fmt.Sprintf("Config error: %v", msg.Err), m.config.StatusDuration)
	}

	if msg.Config == nil {
		return nil
	}

	m.config = msg.Config
	m.styles = StylesFromColors(msg.Config.Colors)
	m.input.CharLimit = msg.Config.MessageLimit
	m.logger.Info("config reloaded", zap.String("path", msg.Config.Path))

	return m.status.Show("Config reloaded", m.config.StatusDuration)
}

func inputWidth(termWidth int) int {
	w := termWidth - 12
	if w > 60 {
		w = 60
	}
	if w < 10 {
		w = 10
	}
	return w
}
