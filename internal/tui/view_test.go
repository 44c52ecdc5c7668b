package tui

import (
	"strings"
	"testing"

	"ritmo/internal/engine"
)

func TestRenderDayUnscheduledHint(t *testing.T) {
	m := Model{
		width:   80,
		dayKeys: []string{"2026-03-02"},
		schedule: &engine.Schedule{
			Days: map[string]*engine.DaySchedule{
				"2026-03-02": {Date: "Monday, March 2nd", Tasks: []engine.ScheduledTask{}},
			},
			Unscheduled: []engine.UnscheduledTask{
				{TaskID: "x", Name: "overflow", RemainingDuration: 60},
			},
		},
	}

	out := m.renderDay()
	if !strings.Contains(out, "1 task(s) did not fit (press u)") {
		t.Errorf("missing unscheduled hint in:\n%s", out)
	}
	if strings.Contains(out, "—") {
		t.Errorf("unexpected em-dash in rendered output:\n%s", out)
	}
}
