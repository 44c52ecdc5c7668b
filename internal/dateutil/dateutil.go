// Package dateutil provides date parsing, keys and labels for the scheduler.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Validation errors.
var (
	ErrInvalidDateFormat     = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidDeadlineFormat = errors.New("deadline must be a date or 'YYYY-MM-DD HH:MM'")
)

// weekdayMap maps lowercase weekday names to time.Weekday values.
var weekdayMap = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// WeekdayName returns the lowercase weekday name of t, e.g. "monday".
func WeekdayName(t time.Time) string {
	return strings.ToLower(t.Weekday().String())
}

// DayKey returns the canonical "YYYY-MM-DD" key for a date.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// DayLabel returns the human display label for a date, e.g.
// "Monday, January 2nd".
func DayLabel(t time.Time) string {
	return fmt.Sprintf("%s %s", t.Format("Monday, January"), ordinal(t.Day()))
}

// ordinal renders a day-of-month with its English ordinal suffix.
func ordinal(n int) string {
	suffix := "th"
	if n%100 < 11 || n%100 > 13 {
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}

// ParseDate parses a date string in YYYY-MM-DD format.
// If the string is empty, returns today's date.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return TruncateToDay(time.Now()), nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return t, nil
}

// ParseDeadline parses a task deadline. Accepted forms:
//   - "2006-01-02 15:04" or "2006-01-02T15:04"
//   - "2006-01-02" (deadline becomes 23:59 that day)
//   - relative keywords handled by ParseRelativeDate ("tomorrow", "friday",
//     "next-week", ...), also at 23:59
//
// Deadlines are interpreted in local time.
func ParseDeadline(s string, relativeTo time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"2006-01-02 15:04", "2006-01-02T15:04"} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}

	day, err := ParseRelativeDate(s, relativeTo)
	if err != nil {
		return time.Time{}, ErrInvalidDeadlineFormat
	}
	return EndOfDay(day), nil
}

// EndOfDay returns 23:59 local time on the given date.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 0, 0, t.Location())
}

// TruncateToDay returns t with time set to midnight.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay returns true if a and b fall on the same local calendar date.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// ParseRelativeDate parses a date string that can be:
//   - Empty string or "today": returns relativeTo date
//   - Absolute date: "2025-01-15" (YYYY-MM-DD)
//   - Keywords: "tomorrow"
//   - Weekday names: "monday" through "sunday" (next occurrence, always future)
//   - Next prefixed: "next-monday" through "next-sunday", "next-week"
//
// All inputs are case-insensitive.
func ParseRelativeDate(s string, relativeTo time.Time) (time.Time, error) {
	today := TruncateToDay(relativeTo)
	input := strings.ToLower(strings.TrimSpace(s))

	if input == "" || input == "today" {
		return today, nil
	}

	if input == "tomorrow" {
		return today.AddDate(0, 0, 1), nil
	}

	// "next-week" - same weekday, +7 days
	if input == "next-week" {
		return today.AddDate(0, 0, 7), nil
	}

	// "next-monday", "next-tuesday", etc.
	if strings.HasPrefix(input, "next-") {
		weekdayName := strings.TrimPrefix(input, "next-")
		if targetDay, ok := weekdayMap[weekdayName]; ok {
			return nextWeekday(today, targetDay), nil
		}
		return time.Time{}, ErrInvalidDateFormat
	}

	// Weekday names: "monday", "tuesday", etc.
	if targetDay, ok := weekdayMap[input]; ok {
		return nextWeekday(today, targetDay), nil
	}

	// Absolute date: YYYY-MM-DD
	result, err := time.ParseInLocation("2006-01-02", input, time.Local)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return result, nil
}

// nextWeekday returns the next occurrence of the given weekday after today.
// If today is the target weekday, returns one week from today.
func nextWeekday(today time.Time, target time.Weekday) time.Time {
	current := today.Weekday()
	daysUntil := int(target) - int(current)
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return today.AddDate(0, 0, daysUntil)
}
