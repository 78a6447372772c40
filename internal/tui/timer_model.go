package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/studylog/internal/logger"
	"github.com/balkashynov/studylog/internal/models"
	"github.com/balkashynov/studylog/internal/tracker"
)

type viewMode int

const (
	viewTimer viewMode = iota
	viewAdjust
)

// TimerModel is the main window: big clock, lifetime total, start/stop and adjust
type TimerModel struct {
	ctx  context.Context
	core *tracker.Core

	width  int
	height int
	mode   viewMode
	adjust AdjustModel

	// Timer state
	elapsed    int64
	totalHours float64
	totalErr   error
	tickGen    int // ticks from an earlier session carry an older generation

	// Animation state
	shimmer *Shimmer

	// Status line
	status      string
	statusColor string

	lastSession *models.Session
	saved       int // sessions recorded during this run

	quitting  bool
	discarded bool // quit with a running session that was not saved
}

// timerTickMsg is sent every second while a session is active
type timerTickMsg struct {
	gen int
}

// animationTickMsg is sent for faster animations
type animationTickMsg struct{}

// totalMsg carries a freshly computed lifetime total
type totalMsg struct {
	hours float64
	err   error
}

// NewTimerModel creates the timer window. The session may already be running.
func NewTimerModel(ctx context.Context, core *tracker.Core, shimmer ShimmerConfig) TimerModel {
	return TimerModel{
		ctx:         ctx,
		core:        core,
		elapsed:     core.Tracker().Elapsed(),
		shimmer:     NewShimmer(shimmer),
		statusColor: ColorSecondaryText,
	}
}

// Init initializes the timer model
func (m TimerModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadTotal(), animationTick()}
	if m.core.Tracker().Active() {
		cmds = append(cmds, timerTick(m.tickGen))
	}
	return tea.Batch(cmds...)
}

func timerTick(gen int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return timerTickMsg{gen: gen}
	})
}

func animationTick() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(time.Time) tea.Msg {
		return animationTickMsg{}
	})
}

// loadTotal recomputes the lifetime total from the store
func (m TimerModel) loadTotal() tea.Cmd {
	ctx, core := m.ctx, m.core
	return func() tea.Msg {
		hours, err := core.TotalHours(ctx)
		return totalMsg{hours: hours, err: err}
	}
}

// Update handles messages
func (m TimerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		if msg.gen != m.tickGen || !m.core.Tracker().Active() {
			return m, nil
		}
		m.elapsed = m.core.Tick()
		return m, timerTick(m.tickGen)

	case animationTickMsg:
		m.shimmer.Advance()
		if m.quitting {
			return m, nil
		}
		return m, animationTick()

	case totalMsg:
		m.totalHours = msg.hours
		m.totalErr = msg.err
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.mode == viewAdjust {
			updated, _ := m.adjust.Update(msg)
			m.adjust = updated.(AdjustModel)
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			// Force quit: a running session is not recorded
			m.discarded = m.core.Tracker().Active()
			m.quitting = true
			return m, tea.Quit
		}
		if m.mode == viewAdjust {
			return m.updateAdjust(msg)
		}

		switch msg.String() {
		case "s", "S", " ", "space", "enter":
			return m.toggle()
		case "a", "A":
			return m.openAdjust()
		case "r", "R":
			return m.retryPending()
		case "q", "esc":
			return m.quit()
		}
	}

	if m.mode == viewAdjust {
		return m.updateAdjust(msg)
	}
	return m, nil
}

// toggle starts an idle tracker or stops a running one
func (m TimerModel) toggle() (TimerModel, tea.Cmd) {
	if !m.core.Tracker().Active() {
		if err := m.core.StartSession(); err != nil {
			m.setStatus(err.Error(), ColorError)
			return m, nil
		}
		m.tickGen++
		m.elapsed = 0
		m.shimmer.Reset()
		m.setStatus(fmt.Sprintf("Session started at %s", m.core.Tracker().StartedAt().Format("15:04:05")), ColorSecondaryText)
		return m, timerTick(m.tickGen)
	}

	m, _ = m.stop()
	return m, m.loadTotal()
}

// stop ends the running session and reports the outcome on the status line
func (m TimerModel) stop() (TimerModel, error) {
	m.tickGen++
	m.elapsed = 0

	session, err := m.core.StopSession(m.ctx)
	var storageErr *tracker.StorageError
	switch {
	case errors.As(err, &storageErr):
		m.lastSession = &session
		m.setStatus(fmt.Sprintf("Session of %s NOT saved (%v) · r to retry", tracker.FormatElapsed(session.DurationSeconds), storageErr.Err), ColorWarning)
	case err != nil:
		m.setStatus(err.Error(), ColorError)
	default:
		m.lastSession = &session
		m.saved++
		m.setStatus(fmt.Sprintf("Saved session #%d · %s", session.ID, tracker.FormatElapsed(session.DurationSeconds)), ColorSuccess)
	}
	return m, err
}

func (m TimerModel) retryPending() (TimerModel, tea.Cmd) {
	pending := len(m.core.Tracker().Pending())
	if pending == 0 {
		m.setStatus("Nothing to retry", ColorSecondaryText)
		return m, nil
	}
	if err := m.core.Tracker().RetryPending(m.ctx); err != nil {
		m.setStatus(fmt.Sprintf("Retry failed: %v", err), ColorError)
		return m, nil
	}
	m.saved += pending
	m.setStatus(fmt.Sprintf("Saved %d pending session(s)", pending), ColorSuccess)
	return m, m.loadTotal()
}

func (m TimerModel) openAdjust() (TimerModel, tea.Cmd) {
	m.adjust = NewAdjustModel(m.ctx, m.core.Adjuster())
	m.adjust.embedded = true
	m.adjust.width = m.width
	m.adjust.height = m.height
	m.mode = viewAdjust
	return m, m.adjust.Init()
}

func (m TimerModel) updateAdjust(msg tea.Msg) (TimerModel, tea.Cmd) {
	updated, cmd := m.adjust.Update(msg)
	m.adjust = updated.(AdjustModel)
	if !m.adjust.Done() {
		return m, cmd
	}

	m.mode = viewTimer
	if m.adjust.completed {
		m.setStatus(m.adjust.Summary(), ColorSuccess)
		return m, m.loadTotal()
	}
	m.setStatus(m.adjust.Summary(), ColorSecondaryText)
	return m, nil
}

// quit saves a running session before leaving
func (m TimerModel) quit() (TimerModel, tea.Cmd) {
	if m.core.Tracker().Active() {
		var err error
		m, err = m.stop()
		if err != nil {
			// Stay open so the failure is visible and can be retried
			logger.Log().Warn().Err(err).Msg("quit with unsaved session")
			return m, nil
		}
	}
	m.quitting = true
	return m, tea.Quit
}

func (m *TimerModel) setStatus(text, color string) {
	m.status = text
	m.statusColor = color
}

// View renders the timer TUI
func (m TimerModel) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	helpBar := m.renderHelpBar()
	contentHeight := m.height - 2

	if m.mode == viewAdjust {
		m.adjust.width = m.width
		m.adjust.height = contentHeight
		return lipgloss.JoinVertical(lipgloss.Left, m.adjust.View(), helpBar)
	}

	// Narrow view: just the clock panel
	if m.width < 90 {
		return lipgloss.JoinVertical(
			lipgloss.Left,
			m.renderTimerPanel(m.width, contentHeight),
			helpBar,
		)
	}

	leftWidth := m.width * 3 / 5
	rightWidth := m.width - leftWidth - 2 // -2 for gap

	content := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderTimerPanel(leftWidth, contentHeight),
		"  ", // Gap
		m.renderTotalsPanel(rightWidth, contentHeight),
	)

	return lipgloss.JoinVertical(lipgloss.Left, content, helpBar)
}

// renderTimerPanel renders the clock, header and status line
func (m TimerModel) renderTimerPanel(width, height int) string {
	var components []string
	active := m.core.Tracker().Active()

	center := lipgloss.NewStyle().Align(lipgloss.Center).Width(width)

	if active {
		header := m.shimmer.Render("⏱  TRACKING TIME  ⏱", lipgloss.NewStyle().Bold(true))
		components = append(components, center.Render(header))
	} else {
		components = append(components, center.
			Foreground(lipgloss.Color(ColorSecondaryText)).
			Bold(true).
			Render("STUDY LOGGER"))
	}

	clockColor := ColorAccentMain
	if active {
		clockColor = ColorAccentBright
	}
	clock := renderBigClock(tracker.FormatElapsed(m.elapsed), clockColor)
	var clockLines []string
	for _, line := range strings.Split(clock, "\n") {
		clockLines = append(clockLines, center.Render(line))
	}
	components = append(components, strings.Join(clockLines, "\n"))

	components = append(components, center.
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Bold(true).
		Render(m.renderTotal()))

	if active {
		components = append(components, center.
			Foreground(lipgloss.Color(ColorSecondaryText)).
			Italic(true).
			Render(fmt.Sprintf("Started at %s", m.core.Tracker().StartedAt().Format("15:04:05"))))
	}

	if m.status != "" {
		components = append(components, center.
			Foreground(lipgloss.Color(m.statusColor)).
			Render(m.status))
	}

	panelStyle := lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center)

	return panelStyle.Render(strings.Join(components, "\n\n"))
}

func (m TimerModel) renderTotal() string {
	if m.totalErr != nil {
		return "Total Time: unavailable"
	}
	return tracker.FormatHours(m.totalHours)
}

// renderTotalsPanel renders the right panel with this run's details
func (m TimerModel) renderTotalsPanel(width, height int) string {
	var b strings.Builder
	line := lipgloss.NewStyle().Align(lipgloss.Center).Width(width - 4)

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccentMain)).
		Width(width-8).
		Padding(0, 1)
	b.WriteString(titleStyle.Render("This run"))
	b.WriteString("\n\n")

	stateText, stateColor := "idle", ColorDisabledText
	if m.core.Tracker().Active() {
		stateText, stateColor = "tracking", ColorSuccess
	}
	b.WriteString(line.Render(fmt.Sprintf("● State: %s",
		lipgloss.NewStyle().Foreground(lipgloss.Color(stateColor)).Bold(true).Render(stateText))))
	b.WriteString("\n")

	b.WriteString(line.Render(fmt.Sprintf("💾 Saved sessions: %d", m.saved)))
	b.WriteString("\n")

	lastValue, lastColor := "none", ColorDisabledText
	if m.lastSession != nil {
		lastValue = tracker.FormatElapsed(m.lastSession.DurationSeconds)
		lastColor = ColorAccentBright
	}
	b.WriteString(line.Render(fmt.Sprintf("⏮  Last session: %s",
		lipgloss.NewStyle().Foreground(lipgloss.Color(lastColor)).Render(lastValue))))
	b.WriteString("\n")

	if pending := len(m.core.Tracker().Pending()); pending > 0 {
		b.WriteString(line.Render(lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorWarning)).
			Render(fmt.Sprintf("⚠ Unsaved sessions: %d", pending))))
		b.WriteString("\n")
	}

	if m.totalErr != nil {
		b.WriteString(line.Render(lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorError)).
			Render("❌ " + m.totalErr.Error())))
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		AlignVertical(lipgloss.Center).
		Render(b.String())
}

// renderHelpBar renders the help bar at the bottom
func (m TimerModel) renderHelpBar() string {
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width)

	if m.mode == viewAdjust {
		return helpStyle.Render("adjusting total · esc back to timer")
	}

	helpText := "space/s start · a adjust time · q quit · ctrl+c force quit"
	if m.core.Tracker().Active() {
		helpText = "space/s stop & save · a adjust time · q save & quit · ctrl+c quit without saving"
	}
	return helpStyle.Render(helpText)
}
