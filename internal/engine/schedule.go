package engine

import (
	"encoding/json"
	"sort"
	"time"

	"ritmo/internal/task"
)

// ReasonInsufficientTime is the reason attached to tasks that could not be
// fully placed before their effective deadline.
const ReasonInsufficientTime = "Insufficient time before deadline"

// ScheduledTask is one placed block of a task on a specific date.
type ScheduledTask struct {
	TaskID           string        `json:"id"`
	Name             string        `json:"name"`
	Priority         task.Priority `json:"priority"`
	StartTime        string        `json:"startTime"` // "HH:MM"
	EndTime          string        `json:"endTime"`   // "HH:MM"
	Duration         int           `json:"duration"`  // minutes in this block
	IsPartial        bool          `json:"isPartial"` // true unless this block exhausts the task
	Deadline         time.Time     `json:"deadline"`
	OriginalDeadline *time.Time    `json:"originalDeadline,omitempty"`
}

// CommitmentInstance is a commitment occurrence shown on a day.
type CommitmentInstance struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// DaySchedule holds everything placed on a single calendar date.
type DaySchedule struct {
	Date        string               `json:"date"` // display label, e.g. "Monday, January 2nd"
	Tasks       []ScheduledTask      `json:"tasks"`
	Commitments []CommitmentInstance `json:"commitments"`
}

// UnscheduledTask reports the portion of a task that could not be placed.
type UnscheduledTask struct {
	TaskID            string        `json:"id"`
	Name              string        `json:"name"`
	Priority          task.Priority `json:"priority"`
	Deadline          time.Time     `json:"deadline"`
	OriginalDeadline  *time.Time    `json:"originalDeadline,omitempty"`
	Duration          int           `json:"duration"` // total canonical minutes
	RemainingDuration int           `json:"remainingDuration"`
	Reason            string        `json:"reason"`
}

// Schedule is the engine output: one DaySchedule per date in the horizon
// plus the unscheduled remainder bucket. It is recomputed wholesale on every
// run and never mutated in place.
type Schedule struct {
	Days        map[string]*DaySchedule // keyed by "YYYY-MM-DD"
	Unscheduled []UnscheduledTask
}

// Day returns the DaySchedule for a date key, or an empty one if the key is
// outside the horizon.
func (s *Schedule) Day(key string) *DaySchedule {
	if d, ok := s.Days[key]; ok {
		return d
	}
	return &DaySchedule{}
}

// SortedKeys returns the date keys in ascending order.
func (s *Schedule) SortedKeys() []string {
	keys := make([]string, 0, len(s.Days))
	for k := range s.Days {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ScheduledMinutes returns the total minutes allocated to the given task
// across all days.
func (s *Schedule) ScheduledMinutes(taskID string) int {
	total := 0
	for _, day := range s.Days {
		for _, st := range day.Tasks {
			if st.TaskID == taskID {
				total += st.Duration
			}
		}
	}
	return total
}

// MarshalJSON emits the flat output contract: an object keyed by
// "YYYY-MM-DD" with one distinguished "unscheduled" key.
func (s *Schedule) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(s.Days)+1)
	for k, d := range s.Days {
		out[k] = d
	}
	if s.Unscheduled == nil {
		out["unscheduled"] = []UnscheduledTask{}
	} else {
		out["unscheduled"] = s.Unscheduled
	}
	return json.Marshal(out)
}

func commitmentInstances(matching []*task.Commitment) []CommitmentInstance {
	instances := make([]CommitmentInstance, 0, len(matching))
	for _, c := range matching {
		instances = append(instances, CommitmentInstance{
			ID:        c.ID,
			Name:      c.Name,
			StartTime: c.StartTime,
			EndTime:   c.EndTime,
		})
	}
	return instances
}
