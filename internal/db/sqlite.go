// Package db provides SQLite storage implementation.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"ritmo/internal/task"
)

// SQLite implements task.Repository using SQLite.
type SQLite struct {
	db *sql.DB
}

// New creates a new SQLite repository and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// CreateTask adds a new task.
func (s *SQLite) CreateTask(ctx context.Context, t *task.Task) error {
	query := `
		INSERT INTO tasks (
			id, name, duration, duration_unit, deadline, priority,
			recurrence, recurrence_days, completed, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		t.ID,
		t.Name,
		t.Duration,
		t.DurationUnit,
		t.Deadline.Format(time.RFC3339),
		t.Priority,
		t.Recurrence,
		joinDays(t.RecurrenceDays),
		t.Completed,
		t.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

// ListTasks returns all tasks ordered by creation time.
func (s *SQLite) ListTasks(ctx context.Context) ([]*task.Task, error) {
	query := `
		SELECT id, name, duration, duration_unit, deadline, priority,
		       recurrence, recurrence_days, completed, created_at
		FROM tasks
		ORDER BY created_at, id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*task.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// CompleteTask marks a task as completed.
func (s *SQLite) CompleteTask(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `UPDATE tasks SET completed = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("completing task: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return task.ErrTaskNotFound
	}
	return nil
}

// DeleteTask removes a task.
func (s *SQLite) DeleteTask(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return task.ErrTaskNotFound
	}
	return nil
}

// CreateCommitment adds a new commitment.
func (s *SQLite) CreateCommitment(ctx context.Context, c *task.Commitment) error {
	query := `
		INSERT INTO commitments (id, name, start_time, end_time, recurrence, days, date, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		c.ID,
		c.Name,
		c.StartTime,
		c.EndTime,
		c.Recurrence,
		joinDays(c.Days),
		c.Date,
		c.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting commitment: %w", err)
	}
	return nil
}

// ListCommitments returns all commitments ordered by creation time.
func (s *SQLite) ListCommitments(ctx context.Context) ([]*task.Commitment, error) {
	query := `
		SELECT id, name, start_time, end_time, recurrence, days, date, created_at
		FROM commitments
		ORDER BY created_at, id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying commitments: %w", err)
	}
	defer rows.Close()

	var commitments []*task.Commitment
	for rows.Next() {
		c, err := scanCommitment(rows)
		if err != nil {
			return nil, err
		}
		commitments = append(commitments, c)
	}
	return commitments, rows.Err()
}

// DeleteCommitment removes a commitment.
func (s *SQLite) DeleteCommitment(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM commitments WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting commitment: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return task.ErrCommitmentNotFound
	}
	return nil
}

// ClearCommitments removes every commitment.
func (s *SQLite) ClearCommitments(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM commitments`); err != nil {
		return fmt.Errorf("clearing commitments: %w", err)
	}
	return nil
}

// Settings returns the stored daily window, or defaults if none is saved.
func (s *SQLite) Settings(ctx context.Context) (task.DailySettings, error) {
	var settings task.DailySettings
	err := s.db.QueryRowContext(ctx,
		`SELECT wake_up_time, sleep_time FROM settings WHERE id = 1`,
	).Scan(&settings.WakeUpTime, &settings.SleepTime)
	if err == sql.ErrNoRows {
		return task.DefaultSettings(), nil
	}
	if err != nil {
		return task.DailySettings{}, fmt.Errorf("querying settings: %w", err)
	}
	return settings, nil
}

// SaveSettings stores the daily window.
func (s *SQLite) SaveSettings(ctx context.Context, settings task.DailySettings) error {
	query := `
		INSERT INTO settings (id, wake_up_time, sleep_time) VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET wake_up_time = excluded.wake_up_time, sleep_time = excluded.sleep_time
	`
	if _, err := s.db.ExecContext(ctx, query, settings.WakeUpTime, settings.SleepTime); err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}
	return nil
}

// Load returns a snapshot of the full state.
func (s *SQLite) Load(ctx context.Context) (*task.State, error) {
	tasks, err := s.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	commitments, err := s.ListCommitments(ctx)
	if err != nil {
		return nil, err
	}
	settings, err := s.Settings(ctx)
	if err != nil {
		return nil, err
	}
	return &task.State{
		Tasks:         tasks,
		Commitments:   commitments,
		DailySettings: settings,
	}, nil
}

// Save upserts the snapshot record by record, keyed by ID. Records already
// in storage but absent from the snapshot are left alone.
func (s *SQLite) Save(ctx context.Context, state *task.State) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	taskUpsert := `
		INSERT INTO tasks (
			id, name, duration, duration_unit, deadline, priority,
			recurrence, recurrence_days, completed, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			duration = excluded.duration,
			duration_unit = excluded.duration_unit,
			deadline = excluded.deadline,
			priority = excluded.priority,
			recurrence = excluded.recurrence,
			recurrence_days = excluded.recurrence_days,
			completed = excluded.completed
	`
	for _, t := range state.Tasks {
		_, err := tx.ExecContext(ctx, taskUpsert,
			t.ID, t.Name, t.Duration, t.DurationUnit,
			t.Deadline.Format(time.RFC3339), t.Priority,
			t.Recurrence, joinDays(t.RecurrenceDays),
			t.Completed, t.CreatedAt.Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("upserting task %s: %w", t.ID, err)
		}
	}

	commitmentUpsert := `
		INSERT INTO commitments (id, name, start_time, end_time, recurrence, days, date, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			start_time = excluded.start_time,
			end_time = excluded.end_time,
			recurrence = excluded.recurrence,
			days = excluded.days,
			date = excluded.date
	`
	for _, c := range state.Commitments {
		_, err := tx.ExecContext(ctx, commitmentUpsert,
			c.ID, c.Name, c.StartTime, c.EndTime,
			c.Recurrence, joinDays(c.Days), c.Date,
			c.CreatedAt.Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("upserting commitment %s: %w", c.ID, err)
		}
	}

	settingsUpsert := `
		INSERT INTO settings (id, wake_up_time, sleep_time) VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET wake_up_time = excluded.wake_up_time, sleep_time = excluded.sleep_time
	`
	if _, err := tx.ExecContext(ctx, settingsUpsert,
		state.DailySettings.WakeUpTime, state.DailySettings.SleepTime); err != nil {
		return fmt.Errorf("upserting settings: %w", err)
	}

	return tx.Commit()
}

// Close releases the underlying database handle.
func (s *SQLite) Close() error {
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*task.Task, error) {
	var (
		t        task.Task
		deadline string
		days     string
		created  string
	)
	err := row.Scan(
		&t.ID, &t.Name, &t.Duration, &t.DurationUnit,
		&deadline, &t.Priority, &t.Recurrence, &days,
		&t.Completed, &created,
	)
	if err != nil {
		return nil, fmt.Errorf("scanning task: %w", err)
	}

	t.Deadline, err = time.Parse(time.RFC3339, deadline)
	if err != nil {
		return nil, fmt.Errorf("parsing deadline: %w", err)
	}
	t.CreatedAt, err = time.Parse(time.RFC3339, created)
	if err != nil {
		return nil, fmt.Errorf("parsing created at: %w", err)
	}
	t.RecurrenceDays = splitDays(days)
	return &t, nil
}

func scanCommitment(row rowScanner) (*task.Commitment, error) {
	var (
		c       task.Commitment
		days    string
		created string
	)
	err := row.Scan(
		&c.ID, &c.Name, &c.StartTime, &c.EndTime,
		&c.Recurrence, &days, &c.Date, &created,
	)
	if err != nil {
		return nil, fmt.Errorf("scanning commitment: %w", err)
	}

	c.CreatedAt, err = time.Parse(time.RFC3339, created)
	if err != nil {
		return nil, fmt.Errorf("parsing created at: %w", err)
	}
	c.Days = splitDays(days)
	return &c, nil
}

// joinDays encodes a weekday set as a comma-separated string.
func joinDays(days []string) string {
	return strings.Join(days, ",")
}

// splitDays decodes a comma-separated weekday set.
func splitDays(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
