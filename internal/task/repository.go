package task

import "context"

// State is a snapshot of everything the scheduler consumes. It is the unit
// of exchange with the persistence layer and with backup import/export.
type State struct {
	Tasks         []*Task       `json:"tasks"`
	Commitments   []*Commitment `json:"commitments"`
	DailySettings DailySettings `json:"dailySettings"`
}

// Repository defines the storage interface for tasks, commitments and settings.
type Repository interface {
	// CreateTask adds a new task.
	CreateTask(ctx context.Context, t *Task) error

	// ListTasks returns all tasks, completed ones included, ordered by creation.
	ListTasks(ctx context.Context) ([]*Task, error)

	// CompleteTask marks a task as completed. The record is kept; the
	// scheduler permanently excludes it.
	CompleteTask(ctx context.Context, id string) error

	// DeleteTask removes a task.
	DeleteTask(ctx context.Context, id string) error

	// CreateCommitment adds a new commitment.
	CreateCommitment(ctx context.Context, c *Commitment) error

	// ListCommitments returns all commitments, ordered by creation.
	ListCommitments(ctx context.Context) ([]*Commitment, error)

	// DeleteCommitment removes a commitment.
	DeleteCommitment(ctx context.Context, id string) error

	// ClearCommitments removes every commitment.
	ClearCommitments(ctx context.Context) error

	// Settings returns the stored daily window, or the defaults if none
	// has been saved yet.
	Settings(ctx context.Context) (DailySettings, error)

	// SaveSettings stores the daily window.
	SaveSettings(ctx context.Context, s DailySettings) error

	// Load returns a snapshot of the full state.
	Load(ctx context.Context) (*State, error)

	// Save upserts the snapshot into storage, record by record, keyed by ID.
	// Existing records not present in the snapshot are left alone.
	Save(ctx context.Context, s *State) error

	// Close releases any resources held by the repository.
	Close() error
}
