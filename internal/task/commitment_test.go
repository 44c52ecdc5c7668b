package task

import (
	"errors"
	"testing"
)

func TestNewCommitmentValidation(t *testing.T) {
	tests := []struct {
		name       string
		commitName string
		start      string
		end        string
		recurrence Recurrence
		days       []string
		date       string
		wantErr    error
	}{
		{"daily", "standup", "09:00", "09:30", RecurrenceDaily, nil, "", nil},
		{"weekly", "gym", "18:00", "19:00", RecurrenceWeekly, []string{"monday", "friday"}, "", nil},
		{"one-off", "dentist", "14:00", "15:00", RecurrenceNone, nil, "2026-03-10", nil},
		{"empty name", "", "09:00", "10:00", RecurrenceDaily, nil, "", ErrEmptyName},
		{"bad start", "x", "9am", "10:00", RecurrenceDaily, nil, "", ErrInvalidTimeFormat},
		{"bad end", "x", "09:00", "25:00", RecurrenceDaily, nil, "", ErrInvalidTimeFormat},
		{"end before start", "x", "10:00", "09:00", RecurrenceDaily, nil, "", ErrEndBeforeStart},
		{"end equals start", "x", "10:00", "10:00", RecurrenceDaily, nil, "", ErrEndBeforeStart},
		{"bad recurrence", "x", "09:00", "10:00", "monthly", nil, "", ErrInvalidRecurrence},
		{"one-off without date", "x", "09:00", "10:00", RecurrenceNone, nil, "", ErrMissingDate},
		{"weekly without days", "x", "09:00", "10:00", RecurrenceWeekly, nil, "", ErrMissingDays},
		{"weekly bad day", "x", "09:00", "10:00", RecurrenceWeekly, []string{"funday"}, "", ErrInvalidWeekday},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewCommitment(tt.commitName, tt.start, tt.end, tt.recurrence, tt.days, tt.date)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("NewCommitment() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewCommitment() error = %v", err)
			}
			if got.ID == "" {
				t.Error("NewCommitment() did not assign an ID")
			}
		})
	}
}

func TestNewCommitmentRejectsBadDate(t *testing.T) {
	if _, err := NewCommitment("x", "09:00", "10:00", RecurrenceNone, nil, "10/03/2026"); err == nil {
		t.Fatal("accepted a non-ISO date")
	}
}

func TestHasDay(t *testing.T) {
	c, err := NewCommitment("gym", "18:00", "19:00", RecurrenceWeekly, []string{"monday", "friday"}, "")
	if err != nil {
		t.Fatal(err)
	}
	if !c.HasDay("monday") || !c.HasDay("friday") {
		t.Error("HasDay missed a configured day")
	}
	if c.HasDay("tuesday") {
		t.Error("HasDay matched an unconfigured day")
	}
}

func TestCommitmentDurationMinutes(t *testing.T) {
	c := &Commitment{StartTime: "09:15", EndTime: "10:45"}
	if got := c.DurationMinutes(); got != 90 {
		t.Errorf("DurationMinutes() = %d, want 90", got)
	}
}
