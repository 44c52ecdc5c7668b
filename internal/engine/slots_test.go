package engine

import (
	"testing"

	"ritmo/internal/task"
)

var window = task.DailySettings{WakeUpTime: "08:00", SleepTime: "22:00"}

func TestFreeSlots(t *testing.T) {
	t.Run("no commitments yields full window", func(t *testing.T) {
		slotsEqual(t, FreeSlots(nil, window, nil), []Slot{NewSlot(480, 1320)})
	})

	t.Run("commitment carves a gap", func(t *testing.T) {
		matching := []*task.Commitment{{StartTime: "09:00", EndTime: "17:00"}}
		slotsEqual(t, FreeSlots(matching, window, nil), []Slot{
			NewSlot(480, 540),
			NewSlot(1020, 1320),
		})
	})

	t.Run("unsorted commitments are walked in time order", func(t *testing.T) {
		matching := []*task.Commitment{
			{StartTime: "14:00", EndTime: "15:00"},
			{StartTime: "09:00", EndTime: "10:00"},
		}
		slotsEqual(t, FreeSlots(matching, window, nil), []Slot{
			NewSlot(480, 540),
			NewSlot(600, 840),
			NewSlot(900, 1320),
		})
	})

	t.Run("commitment before wake leaves no leading gap", func(t *testing.T) {
		matching := []*task.Commitment{{StartTime: "06:00", EndTime: "09:00"}}
		slotsEqual(t, FreeSlots(matching, window, nil), []Slot{NewSlot(540, 1320)})
	})

	t.Run("commitment at sleep leaves no trailing gap", func(t *testing.T) {
		matching := []*task.Commitment{{StartTime: "20:00", EndTime: "22:00"}}
		slotsEqual(t, FreeSlots(matching, window, nil), []Slot{NewSlot(480, 1200)})
	})

	t.Run("occupied blocks are subtracted", func(t *testing.T) {
		occupied := []Slot{NewSlot(480, 600)}
		slotsEqual(t, FreeSlots(nil, window, occupied), []Slot{NewSlot(600, 1320)})
	})

	t.Run("midnight wrap extends the window", func(t *testing.T) {
		wrap := task.DailySettings{WakeUpTime: "08:00", SleepTime: "02:00"}
		if wrap.WindowMinutes() != 1080 {
			t.Fatalf("expected 1080 minute window, got %d", wrap.WindowMinutes())
		}
		slotsEqual(t, FreeSlots(nil, wrap, nil), []Slot{NewSlot(480, 1560)})
	})
}
