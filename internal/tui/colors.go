package tui

// Color constants for the studylog TUI theme
const (
	ColorBorder = "#3A3F55" // Grey-blue

	// Text Colors
	ColorPrimaryText   = "#E6EAF2" // Primary text (labels, user input, titles)
	ColorSecondaryText = "#B1B8C7" // Secondary text - subtle purple-tinted grey
	ColorDisabledText  = "#6D7383" // Disabled/muted text
	ColorPlaceholder   = "#B1B8C7"
	ColorHelpText      = "240" // Dark grey for help text

	// Accent Colors (Purple theme)
	ColorAccentMain   = "#7C3AED" // Logo, idle clock, active borders
	ColorAccentBright = "#A78BFA" // Running clock, focused field

	// Shimmer highlight, lightest step of the violet ramp
	ColorShimmer = "#EAE6FF"

	// State Colors
	ColorError   = "#EF4444" // Validation errors, removals
	ColorSuccess = "#22C55E" // Saved sessions, additions
	ColorWarning = "#F59E0B" // Unsaved (pending) sessions
)
