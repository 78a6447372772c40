package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/balkashynov/studylog/internal/tracker"
)

// RunTimerTUI runs the timer window until the user quits
func RunTimerTUI(ctx context.Context, core *tracker.Core, shimmer ShimmerConfig) error {
	model := NewTimerModel(ctx, core, shimmer)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	timerModel, ok := finalModel.(TimerModel)
	if !ok {
		return nil
	}

	if timerModel.saved > 0 {
		fmt.Printf("⏹️  Saved %d session(s) this run\n", timerModel.saved)
	}
	if timerModel.discarded {
		fmt.Println("⚠️  Running session discarded (quit without saving)")
	}
	if pending := core.Tracker().Pending(); len(pending) > 0 {
		fmt.Printf("❌ %d session(s) could not be saved and are lost:\n", len(pending))
		for _, p := range pending {
			fmt.Printf("   %s → %s (%s)\n", p.Start.Format("15:04:05"), p.End.Format("15:04:05"), tracker.FormatElapsed(p.Duration))
		}
	}

	if hours, err := core.TotalHours(ctx); err == nil {
		fmt.Printf("📊 %s\n", tracker.FormatHours(hours))
	}

	return nil
}

// RunAdjustTUI runs the standalone adjust form
func RunAdjustTUI(ctx context.Context, adjuster *tracker.Adjuster) error {
	model := NewAdjustModel(ctx, adjuster)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	finalModel, err := p.Run()

	// Handle exit messages after TUI closes
	if err != nil {
		return err
	}

	if m, ok := finalModel.(AdjustModel); ok {
		if m.cancelled {
			fmt.Println("❌ Adjustment cancelled.")
		} else if m.completed {
			fmt.Printf("✅ %s\n", m.Summary())
		}
	}

	return nil
}
