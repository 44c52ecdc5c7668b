package ui

import (
	"testing"

	"github.com/fatih/color"

	"ritmo/internal/task"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "0m"},
		{45, "45m"},
		{60, "1h"},
		{90, "1h30m"},
		{600, "10h"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.minutes); got != tt.want {
			t.Errorf("formatDuration(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

func TestShortID(t *testing.T) {
	if got := shortID("0a1b2c3d-ffff-ffff-ffff-ffffffffffff"); got != "0a1b2c3d" {
		t.Errorf("shortID() = %q", got)
	}
	if got := shortID("abc"); got != "abc" {
		t.Errorf("shortID() = %q, want unchanged short input", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate() = %q", got)
	}
	if got := truncate("a very long task name", 10); got != "a very ..." {
		t.Errorf("truncate() = %q", got)
	}
}

func TestFormatPriorityPlain(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	tests := []struct {
		priority task.Priority
		want     string
	}{
		{task.PriorityHigh, "[H]"},
		{task.PriorityMedium, "[M]"},
		{task.PriorityLow, "[L]"},
	}
	for _, tt := range tests {
		if got := formatPriority(tt.priority); got != tt.want {
			t.Errorf("formatPriority(%s) = %q, want %q", tt.priority, got, tt.want)
		}
	}
}
