package engine

import (
	"slices"
	"time"

	"ritmo/internal/dateutil"
	"ritmo/internal/task"
)

// workTask is a task paired with its effective deadline for this run.
type workTask struct {
	*task.Task
	deadline         time.Time  // effective deadline
	originalDeadline *time.Time // set when same-day normalization applied
}

// prepareTasks produces the greedy processing order: completed tasks are
// dropped, same-day deadlines are pushed to tomorrow 23:59 (keeping the
// original for display), and the rest are stably sorted by priority weight
// descending then effective deadline ascending. Tasks with identical
// priority and deadline keep their original relative order; that ordering
// is part of the engine's contract.
func prepareTasks(now time.Time, tasks []*task.Task) []workTask {
	items := make([]workTask, 0, len(tasks))
	for _, t := range tasks {
		if t.Completed {
			continue
		}
		w := workTask{Task: t, deadline: t.Deadline}
		if dateutil.SameDay(t.Deadline, now) {
			orig := t.Deadline
			w.deadline = dateutil.EndOfDay(now.AddDate(0, 0, 1))
			w.originalDeadline = &orig
		}
		items = append(items, w)
	}

	slices.SortStableFunc(items, func(a, b workTask) int {
		if d := b.Priority.Weight() - a.Priority.Weight(); d != 0 {
			return d
		}
		return a.deadline.Compare(b.deadline)
	})
	return items
}
