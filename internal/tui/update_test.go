package tui

import (
	"testing"
	"time"

	"ritmo/internal/task"
)

var quickNow = time.Date(2026, 3, 2, 9, 0, 0, 0, time.Local) // a Monday

func TestParseQuickAddFull(t *testing.T) {
	got, err := parseQuickAdd("write report, 2h, friday, high", quickNow)
	if err != nil {
		t.Fatalf("parseQuickAdd: %v", err)
	}
	if got.Name != "write report" {
		t.Errorf("Name = %q", got.Name)
	}
	if got.DurationMinutes() != 120 {
		t.Errorf("DurationMinutes() = %d, want 120", got.DurationMinutes())
	}
	if got.Priority != task.PriorityHigh {
		t.Errorf("Priority = %q", got.Priority)
	}
	want := time.Date(2026, 3, 6, 23, 59, 0, 0, time.Local)
	if !got.Deadline.Equal(want) {
		t.Errorf("Deadline = %v, want %v", got.Deadline, want)
	}
}

func TestParseQuickAddDefaults(t *testing.T) {
	got, err := parseQuickAdd("just a name", quickNow)
	if err != nil {
		t.Fatalf("parseQuickAdd: %v", err)
	}
	if got.DurationMinutes() != 60 {
		t.Errorf("DurationMinutes() = %d, want 60", got.DurationMinutes())
	}
	if got.Priority != task.PriorityMedium {
		t.Errorf("Priority = %q, want medium", got.Priority)
	}
	// Deadline defaults to tomorrow 23:59.
	want := time.Date(2026, 3, 3, 23, 59, 0, 0, time.Local)
	if !got.Deadline.Equal(want) {
		t.Errorf("Deadline = %v, want %v", got.Deadline, want)
	}
}

func TestParseQuickAddFieldsAnyOrder(t *testing.T) {
	got, err := parseQuickAdd("gym, low, tomorrow, 45m", quickNow)
	if err != nil {
		t.Fatalf("parseQuickAdd: %v", err)
	}
	if got.DurationMinutes() != 45 {
		t.Errorf("DurationMinutes() = %d, want 45", got.DurationMinutes())
	}
	if got.Priority != task.PriorityLow {
		t.Errorf("Priority = %q, want low", got.Priority)
	}
}

func TestParseQuickAddErrors(t *testing.T) {
	if _, err := parseQuickAdd("   ", quickNow); err == nil {
		t.Error("accepted empty name")
	}
	if _, err := parseQuickAdd("name, blargh", quickNow); err == nil {
		t.Error("accepted unparseable field")
	}
	if _, err := parseQuickAdd("name, -2h", quickNow); err == nil {
		t.Error("accepted negative duration")
	}
}

func TestParseQuickDuration(t *testing.T) {
	tests := []struct {
		in    string
		value float64
		unit  task.DurationUnit
		ok    bool
	}{
		{"2h", 2, task.UnitHours, true},
		{"1.5h", 1.5, task.UnitHours, true},
		{"45m", 45, task.UnitMinutes, true},
		{"h", 0, "", false},
		{"2d", 0, "", false},
		{"0h", 0, "", false},
	}
	for _, tt := range tests {
		value, unit, ok := parseQuickDuration(tt.in)
		if ok != tt.ok || value != tt.value || unit != tt.unit {
			t.Errorf("parseQuickDuration(%q) = (%v, %q, %v), want (%v, %q, %v)",
				tt.in, value, unit, ok, tt.value, tt.unit, tt.ok)
		}
	}
}

func TestContentKeysSkipEmptyDays(t *testing.T) {
	deadline := time.Now().AddDate(0, 0, 5)
	tk, err := task.New("solo", 1, task.UnitHours, deadline, task.PriorityMedium)
	if err != nil {
		t.Fatal(err)
	}
	m := New(&fakeRepo{tasks: []*task.Task{tk}})

	msg := loadSchedule(m.repo)()
	sm, ok := msg.(scheduleMsg)
	if !ok || sm.err != nil {
		t.Fatalf("loadSchedule returned %+v", msg)
	}

	m.setSchedule(sm.schedule)
	// Horizon materializes 30+ days but only one has content.
	if len(m.dayKeys) != 1 {
		t.Fatalf("dayKeys = %v, want exactly one populated day", m.dayKeys)
	}
	if len(sm.schedule.Days) < 30 {
		t.Errorf("horizon has %d days, want >= 30", len(sm.schedule.Days))
	}
}
