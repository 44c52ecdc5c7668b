// Package task defines the core domain types for ritmo.
package task

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

// Validation errors.
var (
	ErrEmptyName           = errors.New("name cannot be empty")
	ErrNonPositiveDuration = errors.New("duration must be positive")
	ErrInvalidDurationUnit = errors.New("duration unit must be 'hours' or 'minutes'")
	ErrInvalidPriority     = errors.New("priority must be 'high', 'medium' or 'low'")
	ErrZeroDeadline        = errors.New("deadline is required")
)

// Domain errors.
var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrCommitmentNotFound = errors.New("commitment not found")
)

// Priority represents task importance. Higher weight schedules first.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Weight returns the numeric ordering weight of the priority.
// Unknown priorities weigh zero and sort last.
func (p Priority) Weight() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// Valid returns true if the priority is a recognized value.
func (p Priority) Valid() bool {
	return p.Weight() > 0
}

// DurationUnit is the unit a task duration was entered in.
type DurationUnit string

const (
	UnitHours   DurationUnit = "hours"
	UnitMinutes DurationUnit = "minutes"
)

// Valid returns true if the unit is a recognized value.
func (u DurationUnit) Valid() bool {
	return u == UnitHours || u == UnitMinutes
}

// Task represents a unit of pending work to be placed on the calendar.
type Task struct {
	ID           string
	Name         string
	Duration     float64 // in DurationUnit units
	DurationUnit DurationUnit
	Deadline     time.Time
	Priority     Priority

	// Recurrence metadata is carried for callers that pre-materialize
	// recurring tasks; the engine never expands it.
	Recurrence     Recurrence
	RecurrenceDays []string

	Completed bool
	CreatedAt time.Time
}

// New creates a Task with a fresh ID and validation.
func New(name string, duration float64, unit DurationUnit, deadline time.Time, priority Priority) (*Task, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if duration <= 0 {
		return nil, ErrNonPositiveDuration
	}
	if !unit.Valid() {
		return nil, ErrInvalidDurationUnit
	}
	if deadline.IsZero() {
		return nil, ErrZeroDeadline
	}
	if !priority.Valid() {
		return nil, ErrInvalidPriority
	}

	return &Task{
		ID:           uuid.NewString(),
		Name:         name,
		Duration:     duration,
		DurationUnit: unit,
		Deadline:     deadline,
		Priority:     priority,
		Recurrence:   RecurrenceNone,
		CreatedAt:    time.Now(),
	}, nil
}

// DurationMinutes returns the canonical duration in whole minutes, rounded
// to the nearest minute.
func (t *Task) DurationMinutes() int {
	if t.DurationUnit == UnitHours {
		return int(math.Round(t.Duration * 60))
	}
	return int(math.Round(t.Duration))
}

// Overdue returns true if the task deadline has passed and it is not done.
func (t *Task) Overdue(now time.Time) bool {
	return !t.Completed && now.After(t.Deadline)
}

// DurationLabel renders the duration for display, e.g. "2h" or "45m".
func (t *Task) DurationLabel() string {
	if t.DurationUnit == UnitHours {
		if t.Duration == float64(int(t.Duration)) {
			return fmt.Sprintf("%dh", int(t.Duration))
		}
		return fmt.Sprintf("%.1fh", t.Duration)
	}
	return fmt.Sprintf("%dm", int(t.Duration))
}
