package engine

import (
	"slices"

	"ritmo/internal/task"
)

// FreeSlots computes a day's free intervals: the wake-to-sleep window minus
// the matching commitments, minus the blocks already allocated to earlier
// tasks on that date within the same run.
//
// Commitments for one date are expected to be non-overlapping; overlapping
// ones are walked as-is without merging, which is a data-quality contract on
// the caller, not something the engine resolves.
func FreeSlots(matching []*task.Commitment, settings task.DailySettings, occupied []Slot) []Slot {
	wake, sleep := settings.Window()

	var slots []Slot
	if len(matching) == 0 {
		slots = []Slot{NewSlot(wake, sleep)}
	} else {
		sorted := slices.Clone(matching)
		slices.SortStableFunc(sorted, func(a, b *task.Commitment) int {
			return task.TimeToMinutes(a.StartTime) - task.TimeToMinutes(b.StartTime)
		})

		cursor := wake
		for _, c := range sorted {
			start := task.TimeToMinutes(c.StartTime)
			end := task.TimeToMinutes(c.EndTime)
			if cursor < start {
				slots = append(slots, NewSlot(cursor, start))
			}
			if end > cursor {
				cursor = end
			}
		}
		if cursor < sleep {
			slots = append(slots, NewSlot(cursor, sleep))
		}
	}

	if len(occupied) > 0 {
		slots = Subtract(slots, occupied)
	}
	return slots
}
