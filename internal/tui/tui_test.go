package tui

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/studylog/internal/db"
	"github.com/balkashynov/studylog/internal/tracker"
)

func openCore(t *testing.T) (*tracker.Core, *db.Store) {
	t.Helper()
	store, err := db.Open(filepath.Join(t.TempDir(), "studylog.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	return tracker.NewCore(store, nil, 999, 999), store
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func sendAdjust(m AdjustModel, keys ...string) AdjustModel {
	for _, k := range keys {
		updated, _ := m.Update(key(k))
		m = updated.(AdjustModel)
	}
	return m
}

func sendTimer(m TimerModel, msgs ...tea.Msg) TimerModel {
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		m = updated.(TimerModel)
	}
	return m
}

func TestAdjustFormSubmitsAddition(t *testing.T) {
	core, _ := openCore(t)
	ctx := context.Background()

	m := NewAdjustModel(ctx, core.Adjuster())
	m = sendAdjust(m, "2", "tab", "3", "0", "enter")

	if !m.completed {
		t.Fatalf("form not completed, validation=%q err=%v", m.validationErr, m.err)
	}
	if m.seconds != 9000 {
		t.Errorf("expected 9000 seconds, got %d", m.seconds)
	}
	total, err := core.TotalSeconds(ctx)
	if err != nil {
		t.Fatalf("total: %v", err)
	}
	if total != 9000 {
		t.Fatalf("expected total 9000, got %d", total)
	}
	if !strings.Contains(m.Summary(), "+2h30m") {
		t.Errorf("unexpected summary %q", m.Summary())
	}
}

func TestAdjustFormRemoval(t *testing.T) {
	core, _ := openCore(t)
	ctx := context.Background()

	m := NewAdjustModel(ctx, core.Adjuster())
	// Back to the mode row, switch to remove, then fill hours
	m = sendAdjust(m, "shift+tab", "r", "tab", "1", "enter")

	if !m.completed {
		t.Fatalf("form not completed, validation=%q err=%v", m.validationErr, m.err)
	}
	total, _ := core.TotalSeconds(ctx)
	if total != -3600 {
		t.Fatalf("expected total -3600, got %d", total)
	}
}

func TestAdjustFormRejectsZero(t *testing.T) {
	core, store := openCore(t)
	ctx := context.Background()

	m := NewAdjustModel(ctx, core.Adjuster())
	m = sendAdjust(m, "enter")

	if m.completed {
		t.Fatal("zero adjustment should not complete")
	}
	if m.validationErr == "" {
		t.Fatal("expected validation message")
	}
	sessions, _ := store.ListSessions(ctx, 0)
	if len(sessions) != 0 {
		t.Fatalf("expected no rows, got %d", len(sessions))
	}
}

func TestAdjustFormIgnoresLetters(t *testing.T) {
	core, _ := openCore(t)
	m := NewAdjustModel(context.Background(), core.Adjuster())
	m = sendAdjust(m, "x")

	if m.inputs[0].Value() != "" {
		t.Errorf("letters reached the hours field: %q", m.inputs[0].Value())
	}
	if m.validationErr == "" {
		t.Error("expected digits-only hint")
	}
}

func TestAdjustFormCancel(t *testing.T) {
	core, _ := openCore(t)
	m := NewAdjustModel(context.Background(), core.Adjuster())
	updated, cmd := m.Update(key("esc"))
	m = updated.(AdjustModel)

	if !m.cancelled || cmd == nil {
		t.Fatal("esc should cancel and quit the standalone form")
	}
}

func TestTimerToggleRecordsSession(t *testing.T) {
	core, store := openCore(t)
	ctx := context.Background()

	m := NewTimerModel(ctx, core, ShimmerConfig{Enabled: false})
	m = sendTimer(m, key("s"))
	if !core.Tracker().Active() {
		t.Fatal("s should start a session")
	}

	gen := m.tickGen
	m = sendTimer(m, timerTickMsg{gen: gen}, timerTickMsg{gen: gen}, timerTickMsg{gen: gen - 1})
	if m.elapsed != 2 {
		t.Fatalf("expected elapsed 2 (stale tick ignored), got %d", m.elapsed)
	}

	m = sendTimer(m, key("s"))
	if core.Tracker().Active() {
		t.Fatal("second s should stop the session")
	}
	if m.saved != 1 || m.lastSession == nil {
		t.Fatalf("expected one saved session, got saved=%d", m.saved)
	}
	if m.elapsed != 0 {
		t.Errorf("elapsed not reset: %d", m.elapsed)
	}

	// A tick from the finished session does nothing
	m = sendTimer(m, timerTickMsg{gen: gen})
	if m.elapsed != 0 {
		t.Errorf("tick after stop changed elapsed to %d", m.elapsed)
	}

	sessions, err := store.ListSessions(ctx, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("expected 1 row, got %d", len(sessions))
	}
}

func TestTimerAdjustModeRoundTrip(t *testing.T) {
	core, _ := openCore(t)
	ctx := context.Background()

	m := NewTimerModel(ctx, core, ShimmerConfig{Enabled: false})
	m = sendTimer(m, key("a"))
	if m.mode != viewAdjust {
		t.Fatal("a should open the adjust form")
	}

	m = sendTimer(m, key("4"), key("5"), key("tab"), key("enter"))
	// Enter on the minutes field submits 45 hours
	if m.mode != viewTimer {
		t.Fatalf("form should close after submit, status=%q", m.status)
	}
	total, _ := core.TotalSeconds(ctx)
	if total != 45*3600 {
		t.Fatalf("expected %d, got %d", 45*3600, total)
	}
}

func TestTimerQuitSavesRunningSession(t *testing.T) {
	core, store := openCore(t)
	ctx := context.Background()

	m := NewTimerModel(ctx, core, DefaultShimmerConfig())
	m = sendTimer(m, key("s"), key("q"))

	if !m.quitting || m.discarded {
		t.Fatalf("expected clean quit, quitting=%v discarded=%v", m.quitting, m.discarded)
	}
	sessions, _ := store.ListSessions(ctx, 0)
	if len(sessions) != 1 {
		t.Fatalf("q should save the running session, got %d rows", len(sessions))
	}
}

func TestTimerForceQuitDiscards(t *testing.T) {
	core, store := openCore(t)
	ctx := context.Background()

	m := NewTimerModel(ctx, core, DefaultShimmerConfig())
	m = sendTimer(m, key("s"), tea.KeyMsg{Type: tea.KeyCtrlC})

	if !m.discarded {
		t.Fatal("ctrl+c with a running session should mark it discarded")
	}
	sessions, _ := store.ListSessions(ctx, 0)
	if len(sessions) != 0 {
		t.Fatalf("ctrl+c should not save, got %d rows", len(sessions))
	}
}

func TestTimerStopWithClosedStoreShowsPending(t *testing.T) {
	core, store := openCore(t)
	ctx := context.Background()

	m := NewTimerModel(ctx, core, DefaultShimmerConfig())
	m = sendTimer(m, key("s"))
	_ = store.Close()
	m = sendTimer(m, key("s"))

	if core.Tracker().Active() {
		t.Fatal("tracker should be idle after failed stop")
	}
	if m.statusColor != ColorWarning || !strings.Contains(m.status, "NOT saved") {
		t.Fatalf("unexpected status %q", m.status)
	}
	if len(core.Tracker().Pending()) != 1 {
		t.Fatal("expected a pending session")
	}
}

func TestTimerViewShowsClockAndTotal(t *testing.T) {
	core, _ := openCore(t)
	m := NewTimerModel(context.Background(), core, DefaultShimmerConfig())
	m = sendTimer(m, tea.WindowSizeMsg{Width: 120, Height: 40}, totalMsg{hours: 2.5})

	view := m.View()
	if !strings.Contains(view, "Total Time: 2.50 hours") {
		t.Errorf("view missing total:\n%s", view)
	}
	if !strings.Contains(view, "█") {
		t.Error("view missing big clock")
	}
}

func TestRenderBigClockWidth(t *testing.T) {
	clock := renderBigClock("01:01:01", ColorAccentMain)
	lines := strings.Split(clock, "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d", len(lines))
	}
	// 8 glyphs of 5 columns plus 7 separators
	if w := lipgloss.Width(lines[0]); w != 8*5+7 {
		t.Errorf("unexpected clock width %d", w)
	}
}

func TestShimmerCycles(t *testing.T) {
	s := NewShimmer(ShimmerConfig{Enabled: true, WidthRatio: 0.25, StepsPerRun: 3, PauseSteps: 1})
	for i := 0; i < 4; i++ {
		s.Advance()
	}
	if s.step != 0 {
		t.Fatalf("expected shimmer to wrap to step 0, got %d", s.step)
	}

	still := NewShimmer(ShimmerConfig{Enabled: true, ReduceMotion: true, StepsPerRun: 3})
	still.Advance()
	if still.step != 0 || still.Animated() {
		t.Fatal("reduced motion shimmer should not advance")
	}
	if still.Render("TRACKING", lipgloss.NewStyle()) == "" {
		t.Fatal("static shimmer rendered nothing")
	}
}
