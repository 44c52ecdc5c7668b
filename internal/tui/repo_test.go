package tui

import (
	"context"

	"ritmo/internal/task"
)

// fakeRepo is an in-memory Repository for model tests.
type fakeRepo struct {
	tasks       []*task.Task
	commitments []*task.Commitment
	settings    task.DailySettings
}

func (f *fakeRepo) CreateTask(_ context.Context, t *task.Task) error {
	f.tasks = append(f.tasks, t)
	return nil
}

func (f *fakeRepo) ListTasks(context.Context) ([]*task.Task, error) {
	return f.tasks, nil
}

func (f *fakeRepo) CompleteTask(_ context.Context, id string) error {
	for _, t := range f.tasks {
		if t.ID == id {
			t.Completed = true
			return nil
		}
	}
	return task.ErrTaskNotFound
}

func (f *fakeRepo) DeleteTask(_ context.Context, id string) error {
	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return task.ErrTaskNotFound
}

func (f *fakeRepo) CreateCommitment(_ context.Context, c *task.Commitment) error {
	f.commitments = append(f.commitments, c)
	return nil
}

func (f *fakeRepo) ListCommitments(context.Context) ([]*task.Commitment, error) {
	return f.commitments, nil
}

func (f *fakeRepo) DeleteCommitment(_ context.Context, id string) error {
	for i, c := range f.commitments {
		if c.ID == id {
			f.commitments = append(f.commitments[:i], f.commitments[i+1:]...)
			return nil
		}
	}
	return task.ErrCommitmentNotFound
}

func (f *fakeRepo) ClearCommitments(context.Context) error {
	f.commitments = nil
	return nil
}

func (f *fakeRepo) Settings(context.Context) (task.DailySettings, error) {
	if f.settings == (task.DailySettings{}) {
		return task.DefaultSettings(), nil
	}
	return f.settings, nil
}

func (f *fakeRepo) SaveSettings(_ context.Context, s task.DailySettings) error {
	f.settings = s
	return nil
}

func (f *fakeRepo) Load(ctx context.Context) (*task.State, error) {
	settings, _ := f.Settings(ctx)
	return &task.State{
		Tasks:         f.tasks,
		Commitments:   f.commitments,
		DailySettings: settings,
	}, nil
}

func (f *fakeRepo) Save(ctx context.Context, s *task.State) error {
	f.tasks = s.Tasks
	f.commitments = s.Commitments
	f.settings = s.DailySettings
	return nil
}

func (f *fakeRepo) Close() error { return nil }
