package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ShimmerConfig holds configuration for the header shimmer
type ShimmerConfig struct {
	Enabled      bool    // animations: on|off
	ReduceMotion bool    // if true → use static highlight
	WidthRatio   float64 // width of the highlight relative to the text
	StepsPerRun  int     // animation ticks for one pass over the text
	PauseSteps   int     // animation ticks to rest between passes
}

// DefaultShimmerConfig returns default shimmer configuration
func DefaultShimmerConfig() ShimmerConfig {
	return ShimmerConfig{
		Enabled:     true,
		WidthRatio:  0.25,
		StepsPerRun: 12,
		PauseSteps:  4,
	}
}

// Shimmer sweeps a highlight across a line of text, one step per animation tick
type Shimmer struct {
	config ShimmerConfig
	step   int
}

// NewShimmer creates a shimmer at the start of its first pass
func NewShimmer(config ShimmerConfig) *Shimmer {
	if config.StepsPerRun <= 0 {
		config.StepsPerRun = 1
	}
	if config.PauseSteps < 0 {
		config.PauseSteps = 0
	}
	return &Shimmer{config: config}
}

// Animated reports whether Advance changes the output
func (s *Shimmer) Animated() bool {
	return s.config.Enabled && !s.config.ReduceMotion
}

// Advance moves the highlight one step
func (s *Shimmer) Advance() {
	if !s.Animated() {
		return
	}
	s.step = (s.step + 1) % (s.config.StepsPerRun + s.config.PauseSteps)
}

// Reset restarts the pass (call when the session starts)
func (s *Shimmer) Reset() {
	s.step = 0
}

// center returns the highlight position in runes; false while pausing
func (s *Shimmer) center(textLen int) (float64, bool) {
	if s.step >= s.config.StepsPerRun {
		return 0, false
	}
	// Travel from before the first rune to after the last one
	margin := float64(textLen) * s.config.WidthRatio
	span := float64(textLen) + 2*margin
	return -margin + span*float64(s.step)/float64(s.config.StepsPerRun), true
}

// Render styles text with the highlight at its current position
func (s *Shimmer) Render(text string, base lipgloss.Style) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}

	if !s.Animated() {
		return base.Foreground(lipgloss.Color(ColorAccentBright)).Render(text)
	}

	center, ok := s.center(len(runes))
	if !ok {
		return base.Foreground(lipgloss.Color(ColorSecondaryText)).Render(text)
	}

	sigma := math.Max(1, s.config.WidthRatio*float64(len(runes))/2)

	var b strings.Builder
	for i, r := range runes {
		dx := float64(i) - center
		weight := math.Exp(-(dx * dx) / (2 * sigma * sigma))
		b.WriteString(base.Foreground(shimmerColor(weight)).Render(string(r)))
	}
	return b.String()
}

// shimmerColor blends the secondary text color toward the highlight by weight
func shimmerColor(weight float64) lipgloss.Color {
	switch {
	case weight > 0.66:
		return lipgloss.Color(ColorShimmer)
	case weight > 0.33:
		return lipgloss.Color(ColorAccentBright)
	default:
		return lipgloss.Color(ColorSecondaryText)
	}
}
