package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"ritmo/internal/engine"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	dayHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	commitmentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	timeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("110"))

	priorityHighStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("203"))

	priorityMediumStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("221"))

	priorityLowStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("246"))

	partialStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("244"))

	unscheduledStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("203"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("150"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	errStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("203"))
)

// View renders the schedule browser.
func (m Model) View() string {
	if m.err != nil {
		return errStyle.Render(fmt.Sprintf("error: %v", m.err)) + "\n\npress q to quit\n"
	}
	if m.loading || m.schedule == nil {
		return "Generating schedule...\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("ritmo"))
	b.WriteString("  ")
	b.WriteString(helpStyle.Render(fmt.Sprintf("day %d/%d", m.cursor+1, max(len(m.dayKeys), 1))))
	b.WriteString("\n\n")

	if m.showUnscheduled {
		b.WriteString(m.renderUnscheduled())
	} else {
		b.WriteString(m.renderDay())
	}

	b.WriteString("\n")
	if m.mode == ModePrompt {
		b.WriteString("  add task: " + m.input.View() + "\n")
		b.WriteString(helpStyle.Render("  enter save · esc cancel"))
	} else {
		if m.statusMsg != "" {
			b.WriteString(statusStyle.Render("  "+m.statusMsg) + "\n")
		}
		b.WriteString(helpStyle.Render("  ←/→ day · t today · u unscheduled · a add · y copy · r refresh · q quit"))
	}
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderDay() string {
	if len(m.dayKeys) == 0 {
		return "  Nothing scheduled. Press 'a' to add a task.\n"
	}

	key := m.dayKeys[m.cursor]
	day := m.schedule.Days[key]

	var b strings.Builder
	b.WriteString("  " + dayHeaderStyle.Render(day.Date) + "\n\n")

	for _, c := range day.Commitments {
		b.WriteString(fmt.Sprintf("    %s  %s\n",
			timeStyle.Render(c.StartTime+"-"+c.EndTime),
			commitmentStyle.Render(m.fit(c.Name)),
		))
	}
	if len(day.Commitments) > 0 && len(day.Tasks) > 0 {
		b.WriteString("\n")
	}

	for _, t := range day.Tasks {
		line := fmt.Sprintf("    %s  %s %s",
			timeStyle.Render(t.StartTime+"-"+t.EndTime),
			m.priorityTag(t),
			m.fit(t.Name),
		)
		if t.IsPartial {
			line += " " + partialStyle.Render("(continues)")
		}
		b.WriteString(line + "\n")
	}

	if len(day.Tasks) == 0 && len(day.Commitments) == 0 {
		b.WriteString("  Free day.\n")
	}
	if n := len(m.schedule.Unscheduled); n > 0 {
		b.WriteString("\n  " + unscheduledStyle.Render(fmt.Sprintf("%d task(s) did not fit (press u)", n)) + "\n")
	}
	return b.String()
}

func (m Model) renderUnscheduled() string {
	var b strings.Builder
	b.WriteString("  " + dayHeaderStyle.Render("Unscheduled") + "\n\n")

	if len(m.schedule.Unscheduled) == 0 {
		b.WriteString("  Everything fits. Press u to go back.\n")
		return b.String()
	}
	for _, u := range m.schedule.Unscheduled {
		b.WriteString(fmt.Sprintf("    %s %s  %s\n",
			priorityHighStyle.Render("!"),
			m.fit(u.Name),
			commitmentStyle.Render(fmt.Sprintf("%dm of %dm left, due %s",
				u.RemainingDuration, u.Duration, u.Deadline.Format("2006-01-02"))),
		))
	}
	return b.String()
}

func (m Model) priorityTag(t engine.ScheduledTask) string {
	switch t.Priority {
	case "high":
		return priorityHighStyle.Render("[H]")
	case "low":
		return priorityLowStyle.Render("[L]")
	default:
		return priorityMediumStyle.Render("[M]")
	}
}

// fit truncates a name to the available width, ANSI-aware.
func (m Model) fit(s string) string {
	width := m.width - 30
	if width < 20 {
		width = 20
	}
	return ansi.Truncate(s, width, "…")
}

// currentDayText renders the selected day as plain text for the clipboard.
func (m Model) currentDayText() string {
	if m.schedule == nil || len(m.dayKeys) == 0 {
		return ""
	}
	day := m.schedule.Days[m.dayKeys[m.cursor]]

	var b strings.Builder
	b.WriteString(day.Date + "\n")
	for _, c := range day.Commitments {
		b.WriteString(fmt.Sprintf("%s-%s  %s\n", c.StartTime, c.EndTime, c.Name))
	}
	for _, t := range day.Tasks {
		b.WriteString(fmt.Sprintf("%s-%s  %s\n", t.StartTime, t.EndTime, t.Name))
	}
	return b.String()
}
