package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/studylog/internal/parser"
	"github.com/balkashynov/studylog/internal/tracker"
)

// adjustField is the focused row of the adjust form
type adjustField int

const (
	fieldMode adjustField = iota
	fieldHours
	fieldMinutes
	fieldCount
)

// AdjustModel is the "Adjust Time" form: add/remove toggle plus hours and minutes
type AdjustModel struct {
	ctx      context.Context
	adjuster *tracker.Adjuster

	inputs  []textinput.Model // hours, minutes
	focus   adjustField
	removal bool
	width   int
	height  int

	// embedded forms hand control back to the timer instead of quitting
	embedded bool

	// State
	err           error
	validationErr string
	completed     bool
	cancelled     bool
	recordID      uint
	seconds       int64
}

// NewAdjustModel creates the adjust form with focus on the hours field
func NewAdjustModel(ctx context.Context, adjuster *tracker.Adjuster) AdjustModel {
	inputs := make([]textinput.Model, 2)

	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 12
		inputs[i].CharLimit = 3
		inputs[i].Prompt = ""
		inputs[i].TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
		inputs[i].PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
		inputs[i].Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
		inputs[i].Placeholder = "0"
	}

	// Allow more digits when the configured bound does
	if adjuster.MaxHours == 0 || adjuster.MaxHours > 999 {
		inputs[0].CharLimit = 6
	}
	if adjuster.MaxMinutes == 0 || adjuster.MaxMinutes > 999 {
		inputs[1].CharLimit = 6
	}

	inputs[0].Focus()

	return AdjustModel{
		ctx:      ctx,
		adjuster: adjuster,
		inputs:   inputs,
		focus:    fieldHours,
	}
}

// Init initializes the model
func (m AdjustModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m AdjustModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, m.finish()

		case "enter":
			return m.submit()

		case "tab", "down":
			return m.moveFocus(1)

		case "shift+tab", "up":
			return m.moveFocus(-1)

		case "ctrl+r":
			m.removal = !m.removal
			return m, nil
		}

		if m.focus == fieldMode {
			switch msg.String() {
			case "left", "right", " ", "space":
				m.removal = !m.removal
			case "a", "+":
				m.removal = false
			case "r", "-":
				m.removal = true
			}
			return m, nil
		}

		// Digits only in the number fields
		if msg.Type == tea.KeyRunes {
			for _, r := range msg.Runes {
				if !unicode.IsDigit(r) {
					m.validationErr = "Hours and minutes take digits only"
					return m, nil
				}
			}
		}
		m.validationErr = ""
	}

	if m.focus == fieldMode {
		return m, nil
	}

	var cmd tea.Cmd
	idx := m.inputIndex()
	m.inputs[idx], cmd = m.inputs[idx].Update(msg)
	return m, cmd
}

// inputIndex maps the focused number field to its input
func (m AdjustModel) inputIndex() int {
	if m.focus == fieldMinutes {
		return 1
	}
	return 0
}

func (m AdjustModel) moveFocus(delta int) (AdjustModel, tea.Cmd) {
	m.focus = adjustField((int(m.focus) + delta + int(fieldCount)) % int(fieldCount))

	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	if m.focus == fieldMode {
		return m, nil
	}
	return m, m.inputs[m.inputIndex()].Focus()
}

// values reads both fields; empty means 0
func (m AdjustModel) values() (int, int, error) {
	read := func(i int, name string) (int, error) {
		v := strings.TrimSpace(m.inputs[i].Value())
		if v == "" {
			return 0, nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("%s must be a whole number", name)
		}
		return n, nil
	}

	hours, err := read(0, "Hours")
	if err != nil {
		return 0, 0, err
	}
	minutes, err := read(1, "Minutes")
	if err != nil {
		return 0, 0, err
	}
	return hours, minutes, nil
}

func (m AdjustModel) submit() (AdjustModel, tea.Cmd) {
	hours, minutes, err := m.values()
	if err != nil {
		m.validationErr = err.Error()
		return m, nil
	}

	id, err := m.adjuster.Submit(m.ctx, hours, minutes, m.removal)
	if err != nil {
		if errors.Is(err, tracker.ErrValidation) {
			m.validationErr = validationMessage(err)
			return m, nil
		}
		// Storage failure: keep the form so the user can retry
		m.err = err
		m.validationErr = ""
		return m, nil
	}

	m.err = nil
	m.completed = true
	m.recordID = id
	m.seconds = tracker.Seconds(hours, minutes, m.removal)
	return m, m.finish()
}

func (m AdjustModel) finish() tea.Cmd {
	if m.embedded {
		return nil
	}
	return tea.Quit
}

// validationMessage drops the sentinel prefix for display
func validationMessage(err error) string {
	msg := strings.TrimPrefix(err.Error(), tracker.ErrValidation.Error()+": ")
	if msg == "" {
		return "Invalid adjustment"
	}
	return strings.ToUpper(msg[:1]) + msg[1:]
}

// Done reports whether the form was submitted or cancelled
func (m AdjustModel) Done() bool {
	return m.completed || m.cancelled
}

// Summary describes the outcome for the status line
func (m AdjustModel) Summary() string {
	switch {
	case m.completed:
		return fmt.Sprintf("Adjustment %s recorded (#%d)", parser.FormatAdjustment(m.seconds), m.recordID)
	case m.cancelled:
		return "Adjustment cancelled"
	default:
		return ""
	}
}

// View renders the form
func (m AdjustModel) View() string {
	if !m.embedded && (m.completed || m.cancelled) {
		return "" // Let the caller print the outcome
	}

	form := m.renderForm()
	if m.width == 0 || m.height == 0 {
		return form
	}

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, form)
}

func (m AdjustModel) renderForm() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true)
	b.WriteString(titleStyle.Render("Adjust Time"))
	b.WriteString("\n\n")

	// Add/remove toggle
	b.WriteString(m.renderLabel("Mode", m.focus == fieldMode))
	b.WriteString(m.renderOption("Add Time", !m.removal, ColorSuccess))
	b.WriteString("  ")
	b.WriteString(m.renderOption("Remove Time", m.removal, ColorError))
	b.WriteString("\n\n")

	b.WriteString(m.renderLabel("Hours", m.focus == fieldHours))
	b.WriteString(m.inputs[0].View())
	b.WriteString("\n")
	b.WriteString(m.renderLabel("Minutes", m.focus == fieldMinutes))
	b.WriteString(m.inputs[1].View())
	b.WriteString("\n\n")

	if m.validationErr != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError)).Render("⚠ " + m.validationErr))
		b.WriteString("\n\n")
	} else if m.err != nil {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError)).Render("❌ " + m.err.Error()))
		b.WriteString("\n\n")
	}

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true)
	b.WriteString(helpStyle.Render("tab/↑↓ move · ←/→ add/remove · enter save · esc cancel"))

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccentMain)).
		Padding(1, 3)

	return cardStyle.Render(b.String())
}

func (m AdjustModel) renderLabel(label string, focused bool) string {
	style := lipgloss.NewStyle().
		Width(10).
		Foreground(lipgloss.Color(ColorSecondaryText))
	marker := "  "
	if focused {
		style = style.Foreground(lipgloss.Color(ColorAccentBright)).Bold(true)
		marker = "▸ "
	}
	return marker + style.Render(label)
}

func (m AdjustModel) renderOption(label string, selected bool, color string) string {
	if selected {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(color)).
			Bold(true).
			Render("◉ " + label)
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDisabledText)).
		Render("○ " + label)
}
