package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Adjustment is a parsed manual time correction
type Adjustment struct {
	Hours   int
	Minutes int
	Removal bool
}

var (
	unitRegex  = regexp.MustCompile(`^(?:(\d+)\s*h(?:ours?|rs?)?)?\s*(?:(\d+)\s*m(?:in(?:ute)?s?)?)?$`)
	clockRegex = regexp.MustCompile(`^(\d+):(\d{1,3})$`)
)

// ParseAdjustment parses adjustment strings
// Supported formats:
// - XhYm (e.g., "2h30m", "2h", "45m", "1h 15m", "3 hours")
// - H:MM (e.g., "1:30")
// A leading "-" means remove time, a leading "+" is allowed and ignored.
func ParseAdjustment(input string) (Adjustment, error) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return Adjustment{}, fmt.Errorf("empty adjustment")
	}

	var adj Adjustment
	switch input[0] {
	case '-':
		adj.Removal = true
		input = strings.TrimSpace(input[1:])
	case '+':
		input = strings.TrimSpace(input[1:])
	}

	// Try H:MM first
	if matches := clockRegex.FindStringSubmatch(input); len(matches) == 3 {
		hours, err := strconv.Atoi(matches[1])
		if err != nil {
			return Adjustment{}, fmt.Errorf("invalid hours")
		}
		minutes, err := strconv.Atoi(matches[2])
		if err != nil {
			return Adjustment{}, fmt.Errorf("invalid minutes")
		}
		adj.Hours = hours
		adj.Minutes = minutes
		return adj, nil
	}

	matches := unitRegex.FindStringSubmatch(input)
	if len(matches) != 3 || (matches[1] == "" && matches[2] == "") {
		return Adjustment{}, fmt.Errorf("invalid adjustment format. Use: 2h30m, 45m, 1h or 1:30")
	}

	if matches[1] != "" {
		hours, err := strconv.Atoi(matches[1])
		if err != nil {
			return Adjustment{}, fmt.Errorf("invalid hours")
		}
		adj.Hours = hours
	}
	if matches[2] != "" {
		minutes, err := strconv.Atoi(matches[2])
		if err != nil {
			return Adjustment{}, fmt.Errorf("invalid minutes")
		}
		adj.Minutes = minutes
	}

	return adj, nil
}

// FormatAdjustment renders signed seconds as a short adjustment string
func FormatAdjustment(seconds int64) string {
	sign := "+"
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	switch {
	case hours > 0 && minutes > 0:
		return fmt.Sprintf("%s%dh%dm", sign, hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%s%dh", sign, hours)
	default:
		return fmt.Sprintf("%s%dm", sign, minutes)
	}
}
