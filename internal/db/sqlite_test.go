package db

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"ritmo/internal/task"
)

func newTestRepo(t *testing.T) *SQLite {
	t.Helper()
	repo, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("creating repository: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestSQLite_TaskRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	deadline := time.Date(2026, 3, 10, 23, 59, 0, 0, time.Local)
	tk, err := task.New("Write report", 2, task.UnitHours, deadline, task.PriorityHigh)
	if err != nil {
		t.Fatalf("creating task: %v", err)
	}

	if err := repo.CreateTask(ctx, tk); err != nil {
		t.Fatalf("inserting task: %v", err)
	}

	tasks, err := repo.ListTasks(ctx)
	if err != nil {
		t.Fatalf("listing tasks: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}

	got := tasks[0]
	if got.ID != tk.ID || got.Name != "Write report" {
		t.Errorf("unexpected task %+v", got)
	}
	if !got.Deadline.Equal(deadline) {
		t.Errorf("expected deadline %v, got %v", deadline, got.Deadline)
	}
	if got.Priority != task.PriorityHigh || got.DurationUnit != task.UnitHours {
		t.Errorf("enum fields not preserved: %+v", got)
	}
	if got.Completed {
		t.Error("new task should not be completed")
	}
}

func TestSQLite_CompleteTask(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	tk, _ := task.New("Done soon", 30, task.UnitMinutes, time.Now().AddDate(0, 0, 1), task.PriorityLow)
	if err := repo.CreateTask(ctx, tk); err != nil {
		t.Fatalf("inserting task: %v", err)
	}

	if err := repo.CompleteTask(ctx, tk.ID); err != nil {
		t.Fatalf("completing task: %v", err)
	}

	tasks, _ := repo.ListTasks(ctx)
	if len(tasks) != 1 || !tasks[0].Completed {
		t.Error("completed flag not persisted")
	}

	if err := repo.CompleteTask(ctx, "missing"); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestSQLite_DeleteTask(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	tk, _ := task.New("Gone", 1, task.UnitHours, time.Now().AddDate(0, 0, 1), task.PriorityMedium)
	_ = repo.CreateTask(ctx, tk)

	if err := repo.DeleteTask(ctx, tk.ID); err != nil {
		t.Fatalf("deleting task: %v", err)
	}
	tasks, _ := repo.ListTasks(ctx)
	if len(tasks) != 0 {
		t.Errorf("expected empty list, got %d", len(tasks))
	}

	if err := repo.DeleteTask(ctx, tk.ID); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestSQLite_CommitmentRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	weekly, err := task.NewCommitment("Gym", "18:00", "19:30", task.RecurrenceWeekly, []string{"monday", "thursday"}, "")
	if err != nil {
		t.Fatalf("creating commitment: %v", err)
	}
	oneOff, err := task.NewCommitment("Dentist", "10:00", "11:00", task.RecurrenceNone, nil, "2026-03-12")
	if err != nil {
		t.Fatalf("creating commitment: %v", err)
	}

	for _, c := range []*task.Commitment{weekly, oneOff} {
		if err := repo.CreateCommitment(ctx, c); err != nil {
			t.Fatalf("inserting commitment: %v", err)
		}
	}

	commitments, err := repo.ListCommitments(ctx)
	if err != nil {
		t.Fatalf("listing commitments: %v", err)
	}
	if len(commitments) != 2 {
		t.Fatalf("expected 2 commitments, got %d", len(commitments))
	}

	got := commitments[0]
	if got.Name != "Gym" || len(got.Days) != 2 || got.Days[0] != "monday" {
		t.Errorf("weekday set not preserved: %+v", got)
	}
	if commitments[1].Date != "2026-03-12" {
		t.Errorf("one-off date not preserved: %+v", commitments[1])
	}
}

func TestSQLite_ClearCommitments(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	c, _ := task.NewCommitment("Standup", "09:00", "09:15", task.RecurrenceDaily, nil, "")
	_ = repo.CreateCommitment(ctx, c)

	if err := repo.ClearCommitments(ctx); err != nil {
		t.Fatalf("clearing commitments: %v", err)
	}
	commitments, _ := repo.ListCommitments(ctx)
	if len(commitments) != 0 {
		t.Errorf("expected no commitments, got %d", len(commitments))
	}
}

func TestSQLite_Settings(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	t.Run("defaults when unset", func(t *testing.T) {
		settings, err := repo.Settings(ctx)
		if err != nil {
			t.Fatalf("reading settings: %v", err)
		}
		if settings != task.DefaultSettings() {
			t.Errorf("expected defaults, got %+v", settings)
		}
	})

	t.Run("round trip", func(t *testing.T) {
		want := task.DailySettings{WakeUpTime: "06:30", SleepTime: "23:00"}
		if err := repo.SaveSettings(ctx, want); err != nil {
			t.Fatalf("saving settings: %v", err)
		}
		got, err := repo.Settings(ctx)
		if err != nil {
			t.Fatalf("reading settings: %v", err)
		}
		if got != want {
			t.Errorf("expected %+v, got %+v", want, got)
		}
	})
}

func TestSQLite_SaveUpserts(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	existing, _ := task.New("Keep me", 1, task.UnitHours, time.Now().AddDate(0, 0, 5), task.PriorityLow)
	_ = repo.CreateTask(ctx, existing)

	incoming, _ := task.New("New arrival", 45, task.UnitMinutes, time.Now().AddDate(0, 0, 2), task.PriorityHigh)
	updated := *existing
	updated.Name = "Renamed"

	state := &task.State{
		Tasks:         []*task.Task{&updated, incoming},
		DailySettings: task.DailySettings{WakeUpTime: "07:00", SleepTime: "21:00"},
	}
	if err := repo.Save(ctx, state); err != nil {
		t.Fatalf("saving state: %v", err)
	}

	loaded, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("loading state: %v", err)
	}
	if len(loaded.Tasks) != 2 {
		t.Fatalf("expected 2 tasks after upsert, got %d", len(loaded.Tasks))
	}

	byID := make(map[string]*task.Task)
	for _, tk := range loaded.Tasks {
		byID[tk.ID] = tk
	}
	if byID[existing.ID] == nil || byID[existing.ID].Name != "Renamed" {
		t.Error("existing task was not updated in place")
	}
	if byID[incoming.ID] == nil {
		t.Error("incoming task was not inserted")
	}
	if loaded.DailySettings.WakeUpTime != "07:00" {
		t.Errorf("settings not saved: %+v", loaded.DailySettings)
	}
}
