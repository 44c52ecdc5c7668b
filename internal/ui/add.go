package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"ritmo/internal/dateutil"
	"ritmo/internal/task"
)

func (a *App) addCmd() *cobra.Command {
	var (
		duration float64
		unit     string
		deadline string
		priority string
	)

	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Add a new task",
		Long: `Add a new task to be scheduled.

Deadlines accept "YYYY-MM-DD", "YYYY-MM-DD HH:MM", or relative forms
like "tomorrow", "friday" and "next-week". A date without a time is
due at 23:59 that day.

Example:
  ritmo add "Write documentation" --duration=2 --deadline=friday --priority=high`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			due, err := dateutil.ParseDeadline(deadline, time.Now())
			if err != nil {
				return err
			}

			t, err := task.New(args[0], duration, task.DurationUnit(unit), due, task.Priority(priority))
			if err != nil {
				return err
			}

			if err := a.repo.CreateTask(context.Background(), t); err != nil {
				return fmt.Errorf("creating task: %w", err)
			}

			fmt.Printf("Created task %s: %s (%s, %s, due %s)\n",
				shortID(t.ID),
				t.Name,
				t.DurationLabel(),
				formatPriority(t.Priority),
				t.Deadline.Format("2006-01-02 15:04"),
			)
			return nil
		},
	}

	cmd.Flags().Float64Var(&duration, "duration", 1, "How long the task takes")
	cmd.Flags().StringVar(&unit, "unit", "hours", "Duration unit: hours or minutes")
	cmd.Flags().StringVar(&deadline, "deadline", "tomorrow", "When the task is due")
	cmd.Flags().StringVar(&priority, "priority", "medium", "Priority: high, medium or low")

	return cmd
}
