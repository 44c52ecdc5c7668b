package engine

import (
	"testing"
	"time"

	"ritmo/internal/task"
)

// 2026-03-02 is a Monday.
var monday = time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local)

func TestMatches(t *testing.T) {
	t.Run("daily matches every date", func(t *testing.T) {
		c := &task.Commitment{Recurrence: task.RecurrenceDaily}
		for i := 0; i < 14; i++ {
			if !Matches(c, monday.AddDate(0, 0, i)) {
				t.Errorf("daily commitment did not match day offset %d", i)
			}
		}
	})

	t.Run("weekly matches only listed weekdays", func(t *testing.T) {
		c := &task.Commitment{
			Recurrence: task.RecurrenceWeekly,
			Days:       []string{"monday", "wednesday"},
		}
		want := map[int]bool{0: true, 1: false, 2: true, 3: false, 4: false, 5: false, 6: false}
		for offset, expected := range want {
			if got := Matches(c, monday.AddDate(0, 0, offset)); got != expected {
				t.Errorf("offset %d: expected %v, got %v", offset, expected, got)
			}
		}
	})

	t.Run("one-off matches exactly its date", func(t *testing.T) {
		c := &task.Commitment{Recurrence: task.RecurrenceNone, Date: "2026-03-04"}
		if Matches(c, monday) {
			t.Error("matched wrong date")
		}
		if !Matches(c, monday.AddDate(0, 0, 2)) {
			t.Error("did not match its own date")
		}
	})

	t.Run("unknown recurrence never matches", func(t *testing.T) {
		c := &task.Commitment{Recurrence: task.Recurrence("fortnightly")}
		if Matches(c, monday) {
			t.Error("unknown recurrence matched")
		}
	})
}

func TestMatchingCommitments(t *testing.T) {
	commitments := []*task.Commitment{
		{ID: "a", Recurrence: task.RecurrenceDaily},
		{ID: "b", Recurrence: task.RecurrenceWeekly, Days: []string{"tuesday"}},
		{ID: "c", Recurrence: task.RecurrenceNone, Date: "2026-03-02"},
	}

	got := MatchingCommitments(commitments, monday)
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}
	if got[0].ID != "a" || got[1].ID != "c" {
		t.Errorf("expected [a c], got [%s %s]", got[0].ID, got[1].ID)
	}
}
