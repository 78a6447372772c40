package tracker

import "fmt"

// FormatElapsed renders seconds as HH:MM:SS. Hours are not capped at 99.
func FormatElapsed(seconds int64) string {
	sign := ""
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%s%02d:%02d:%02d", sign, h, m, s)
}

// FormatHours renders a total the way the main window shows it.
func FormatHours(hours float64) string {
	return fmt.Sprintf("Total Time: %.2f hours", hours)
}
