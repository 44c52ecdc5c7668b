package task

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Commitment validation errors.
var (
	ErrInvalidTimeFormat = errors.New("time must be in HH:MM format")
	ErrEndBeforeStart    = errors.New("end time must be after start time")
	ErrInvalidRecurrence = errors.New("recurrence must be 'none', 'daily' or 'weekly'")
	ErrMissingDate       = errors.New("one-off commitments require a date")
	ErrMissingDays       = errors.New("weekly commitments require at least one day")
	ErrInvalidWeekday    = errors.New("invalid weekday name")
)

// Recurrence describes how often a commitment repeats.
type Recurrence string

const (
	RecurrenceNone   Recurrence = "none"
	RecurrenceDaily  Recurrence = "daily"
	RecurrenceWeekly Recurrence = "weekly"
)

// Valid returns true if the recurrence is a recognized value.
func (r Recurrence) Valid() bool {
	switch r {
	case RecurrenceNone, RecurrenceDaily, RecurrenceWeekly:
		return true
	default:
		return false
	}
}

var validWeekdays = map[string]bool{
	"monday":    true,
	"tuesday":   true,
	"wednesday": true,
	"thursday":  true,
	"friday":    true,
	"saturday":  true,
	"sunday":    true,
}

// Commitment represents a fixed block of time the scheduler must work around.
type Commitment struct {
	ID         string
	Name       string
	StartTime  string // "HH:MM"
	EndTime    string // "HH:MM", strictly after StartTime on the same day
	Recurrence Recurrence
	Days       []string // lowercase weekday names, used when Recurrence is weekly
	Date       string   // "YYYY-MM-DD", used when Recurrence is none
	CreatedAt  time.Time
}

// NewCommitment creates a Commitment with a fresh ID and validation.
// days is only consulted for weekly recurrence; date only for one-off.
func NewCommitment(name, start, end string, recurrence Recurrence, days []string, date string) (*Commitment, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if err := ValidateTimeFormat(start); err != nil {
		return nil, err
	}
	if err := ValidateTimeFormat(end); err != nil {
		return nil, err
	}
	if end <= start {
		return nil, ErrEndBeforeStart
	}
	if !recurrence.Valid() {
		return nil, ErrInvalidRecurrence
	}

	c := &Commitment{
		ID:         uuid.NewString(),
		Name:       name,
		StartTime:  start,
		EndTime:    end,
		Recurrence: recurrence,
		CreatedAt:  time.Now(),
	}

	switch recurrence {
	case RecurrenceNone:
		if date == "" {
			return nil, ErrMissingDate
		}
		if _, err := time.Parse("2006-01-02", date); err != nil {
			return nil, err
		}
		c.Date = date
	case RecurrenceWeekly:
		if len(days) == 0 {
			return nil, ErrMissingDays
		}
		for _, d := range days {
			if !validWeekdays[d] {
				return nil, ErrInvalidWeekday
			}
		}
		c.Days = days
	}

	return c, nil
}

// HasDay returns true if the commitment's weekday set contains the given
// lowercase weekday name.
func (c *Commitment) HasDay(weekday string) bool {
	for _, d := range c.Days {
		if d == weekday {
			return true
		}
	}
	return false
}

// DurationMinutes returns the commitment length in minutes.
func (c *Commitment) DurationMinutes() int {
	return TimeToMinutes(c.EndTime) - TimeToMinutes(c.StartTime)
}
