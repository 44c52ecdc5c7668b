package engine

import (
	"math"
	"time"

	"ritmo/internal/dateutil"
	"ritmo/internal/task"
)

// Generate produces the schedule for the given inputs, anchored at the
// current time. Callers invoke it again after any task, commitment or
// settings change; there is no incremental update path.
func Generate(tasks []*task.Task, commitments []*task.Commitment, settings task.DailySettings) *Schedule {
	return GenerateAt(time.Now(), tasks, commitments, settings)
}

// GenerateAt is the deterministic core: identical inputs and an identical
// now always produce identical output. It performs no I/O and holds no
// state between invocations.
func GenerateAt(now time.Time, tasks []*task.Task, commitments []*task.Commitment, settings task.DailySettings) *Schedule {
	items := prepareTasks(now, tasks)
	horizon := horizonDays(now, items)

	// Pre-resolve matching commitments per date, shared by all tasks and by
	// the final display pass.
	matching := make(map[string][]*task.Commitment, horizon+1)
	for i := 0; i <= horizon; i++ {
		date := now.AddDate(0, 0, i)
		matching[dateutil.DayKey(date)] = MatchingCommitments(commitments, date)
	}

	sched := &Schedule{Days: make(map[string]*DaySchedule, horizon+1)}

	// Blocks allocated so far per date; a later task must never overlap an
	// earlier task's placement on the same day.
	occupied := make(map[string][]Slot)

	for _, item := range items {
		remaining := item.DurationMinutes()
		current := now

		for remaining > 0 && current.Before(item.deadline) {
			key := dateutil.DayKey(current)
			day := sched.Days[key]
			if day == nil {
				day = &DaySchedule{
					Date:        dateutil.DayLabel(current),
					Tasks:       []ScheduledTask{},
					Commitments: commitmentInstances(matching[key]),
				}
				sched.Days[key] = day
			}

			progress := false
			for _, slot := range FreeSlots(matching[key], settings, occupied[key]) {
				if remaining <= 0 {
					break
				}
				chunk := min(remaining, slot.Duration)
				if chunk < MinGranule {
					// Sliver stays free and does not consume remaining.
					continue
				}

				day.Tasks = append(day.Tasks, ScheduledTask{
					TaskID:           item.ID,
					Name:             item.Name,
					Priority:         item.Priority,
					StartTime:        task.MinutesToTime(slot.Start),
					EndTime:          task.MinutesToTime(slot.Start + chunk),
					Duration:         chunk,
					IsPartial:        remaining > chunk,
					Deadline:         item.deadline,
					OriginalDeadline: item.originalDeadline,
				})
				occupied[key] = append(occupied[key], NewSlot(slot.Start, slot.Start+chunk))
				remaining -= chunk
				progress = true
			}

			current = current.AddDate(0, 0, 1)
			if !progress {
				// Nothing fit today; probing further dates would never
				// terminate for a task that can never fit.
				break
			}
		}

		if remaining > 0 {
			sched.Unscheduled = append(sched.Unscheduled, UnscheduledTask{
				TaskID:            item.ID,
				Name:              item.Name,
				Priority:          item.Priority,
				Deadline:          item.deadline,
				OriginalDeadline:  item.originalDeadline,
				Duration:          item.DurationMinutes(),
				RemainingDuration: remaining,
				Reason:            ReasonInsufficientTime,
			})
		}
	}

	// Every date in the horizon gets an entry so the calendar view has no
	// gaps, commitments included.
	for i := 0; i <= horizon; i++ {
		date := now.AddDate(0, 0, i)
		key := dateutil.DayKey(date)
		if sched.Days[key] == nil {
			sched.Days[key] = &DaySchedule{
				Date:        dateutil.DayLabel(date),
				Tasks:       []ScheduledTask{},
				Commitments: commitmentInstances(matching[key]),
			}
		}
	}

	return sched
}

// horizonDays returns the number of future days to consider: at least 30,
// extended to cover the latest effective deadline.
func horizonDays(now time.Time, items []workTask) int {
	maxDeadline := now
	for _, item := range items {
		if item.deadline.After(maxDeadline) {
			maxDeadline = item.deadline
		}
	}
	days := int(math.Ceil(maxDeadline.Sub(now).Hours() / 24))
	return max(30, days)
}
