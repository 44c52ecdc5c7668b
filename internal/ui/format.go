package ui

import (
	"fmt"

	"ritmo/internal/task"
)

// formatPriority renders a fixed-width priority tag.
func formatPriority(p task.Priority) string {
	switch p {
	case task.PriorityHigh:
		return formatHigh("[H]")
	case task.PriorityLow:
		return formatLow("[L]")
	default:
		return formatMedium("[M]")
	}
}

// formatDuration formats minutes as a human-readable duration.
func formatDuration(minutes int) string {
	if minutes == 0 {
		return "0m"
	}
	hours := minutes / 60
	mins := minutes % 60
	if hours == 0 {
		return fmt.Sprintf("%dm", mins)
	}
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh%dm", hours, mins)
}

// shortID abbreviates a UUID to its first segment for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// nameWidth sizes the name column from the terminal width, clamped so
// narrow terminals stay readable and wide ones don't sprawl.
func nameWidth() int {
	w := termWidth() - 40
	if w < 20 {
		return 20
	}
	if w > 60 {
		return 60
	}
	return w
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
