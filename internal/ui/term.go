package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the UI.
var (
	// High priority: bold red, it needs attention first
	colorHigh = color.New(color.FgRed, color.Bold)

	// Medium priority: yellow
	colorMedium = color.New(color.FgYellow)

	// Low priority: dim/grey
	colorLow = color.New(color.FgWhite, color.Faint)

	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Overdue markers
	colorOverdue = color.New(color.FgRed)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// ConfigureColor applies the "auto"/"always"/"never" setting.
func ConfigureColor(mode string) {
	switch mode {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	}
	// "auto" keeps the library's own TTY detection.
}

func formatHigh(s string) string    { return colorHigh.Sprint(s) }
func formatMedium(s string) string  { return colorMedium.Sprint(s) }
func formatLow(s string) string     { return colorLow.Sprint(s) }
func formatHeader(s string) string  { return colorHeader.Sprint(s) }
func formatOverdue(s string) string { return colorOverdue.Sprint(s) }
func formatMuted(s string) string   { return colorMuted.Sprint(s) }
