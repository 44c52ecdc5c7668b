package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"ritmo/internal/dateutil"
	"ritmo/internal/task"
)

// Update handles all messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case scheduleMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.setSchedule(msg.schedule)
		LogEvent("SCHEDULE_LOADED", map[string]any{"days": len(m.dayKeys)})
		return m, nil

	case taskAddedMsg:
		if msg.err != nil {
			m.statusMsg = fmt.Sprintf("error: %v", msg.err)
			return m, nil
		}
		m.statusMsg = fmt.Sprintf("added %q", msg.name)
		m.loading = true
		return m, loadSchedule(m.repo)

	case tea.KeyMsg:
		LogKeyPress(msg)
		if m.mode == ModePrompt {
			return m.updatePrompt(msg)
		}
		return m.updateNormal(msg)
	}

	return m, nil
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.statusMsg = ""

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "left", "h":
		if m.cursor > 0 {
			m.cursor--
		}

	case "right", "l":
		if m.cursor < len(m.dayKeys)-1 {
			m.cursor++
		}

	case "t":
		m.cursorToToday()

	case "u":
		m.showUnscheduled = !m.showUnscheduled

	case "r":
		m.loading = true
		return m, loadSchedule(m.repo)

	case "a":
		m.mode = ModePrompt
		m.input.SetValue("")
		m.input.Focus()
		return m, nil

	case "y":
		if text := m.currentDayText(); text != "" {
			if err := clipboard.WriteAll(text); err != nil {
				m.statusMsg = fmt.Sprintf("copy failed: %v", err)
			} else {
				m.statusMsg = "day copied to clipboard"
			}
		}
	}

	return m, nil
}

func (m Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = ModeNormal
		m.input.Blur()
		return m, nil

	case "enter":
		m.mode = ModeNormal
		m.input.Blur()
		t, err := parseQuickAdd(m.input.Value(), time.Now())
		if err != nil {
			m.statusMsg = fmt.Sprintf("error: %v", err)
			return m, nil
		}
		return m, addTask(m.repo, t)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// parseQuickAdd parses the quick-add line: a task name optionally followed
// by comma-separated duration ("2h", "45m"), deadline and priority fields,
// in any order.
//
//	write report, 2h, friday, high
func parseQuickAdd(s string, now time.Time) (*task.Task, error) {
	parts := strings.Split(s, ",")
	name := strings.TrimSpace(parts[0])
	if name == "" {
		return nil, fmt.Errorf("task name is required")
	}

	duration := 1.0
	unit := task.UnitHours
	deadline := dateutil.EndOfDay(now.AddDate(0, 0, 1))
	priority := task.PriorityMedium

	for _, part := range parts[1:] {
		field := strings.ToLower(strings.TrimSpace(part))
		if field == "" {
			continue
		}

		if p := task.Priority(field); p.Valid() {
			priority = p
			continue
		}
		if d, u, ok := parseQuickDuration(field); ok {
			duration, unit = d, u
			continue
		}
		if t, err := dateutil.ParseDeadline(field, now); err == nil {
			deadline = t
			continue
		}
		return nil, fmt.Errorf("cannot parse %q", field)
	}

	return task.New(name, duration, unit, deadline, priority)
}

// parseQuickDuration reads "2h", "1.5h" or "45m".
func parseQuickDuration(s string) (float64, task.DurationUnit, bool) {
	var unit task.DurationUnit
	switch {
	case strings.HasSuffix(s, "h"):
		unit = task.UnitHours
	case strings.HasSuffix(s, "m"):
		unit = task.UnitMinutes
	default:
		return 0, "", false
	}

	var value float64
	if _, err := fmt.Sscanf(strings.TrimSuffix(s, string(s[len(s)-1])), "%g", &value); err != nil {
		return 0, "", false
	}
	if value <= 0 {
		return 0, "", false
	}
	return value, unit, true
}
