package engine

import (
	"time"

	"ritmo/internal/dateutil"
	"ritmo/internal/task"
)

// Matches reports whether a commitment applies on the given calendar date.
// Daily commitments match every date, weekly ones match their weekday set,
// and one-off commitments match exactly their stored date.
func Matches(c *task.Commitment, date time.Time) bool {
	switch c.Recurrence {
	case task.RecurrenceDaily:
		return true
	case task.RecurrenceWeekly:
		return c.HasDay(dateutil.WeekdayName(date))
	case task.RecurrenceNone:
		return c.Date == dateutil.DayKey(date)
	default:
		return false
	}
}

// MatchingCommitments filters the commitments that apply on the given date.
func MatchingCommitments(commitments []*task.Commitment, date time.Time) []*task.Commitment {
	var matching []*task.Commitment
	for _, c := range commitments {
		if Matches(c, date) {
			matching = append(matching, c)
		}
	}
	return matching
}
