package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) completeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "complete [id]",
		Short: "Mark a task as completed",
		Long: `Mark a task as completed. Completed tasks are kept in the store but the
scheduler never places them again. IDs may be abbreviated to a unique
prefix.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := a.resolveTaskID(ctx, args[0])
			if err != nil {
				return err
			}
			if err := a.repo.CompleteTask(ctx, id); err != nil {
				return fmt.Errorf("completing task: %w", err)
			}
			fmt.Printf("Completed task %s\n", shortID(id))
			return nil
		},
	}
}

func (a *App) removeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove [id]",
		Aliases: []string{"rm"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := a.resolveTaskID(ctx, args[0])
			if err != nil {
				return err
			}
			if err := a.repo.DeleteTask(ctx, id); err != nil {
				return fmt.Errorf("deleting task: %w", err)
			}
			fmt.Printf("Deleted task %s\n", shortID(id))
			return nil
		},
	}
}

// resolveTaskID expands an ID prefix to the full task ID. Ambiguous or
// unknown prefixes are errors.
func (a *App) resolveTaskID(ctx context.Context, prefix string) (string, error) {
	tasks, err := a.repo.ListTasks(ctx)
	if err != nil {
		return "", fmt.Errorf("listing tasks: %w", err)
	}

	var match string
	for _, t := range tasks {
		if t.ID == prefix {
			return t.ID, nil
		}
		if len(prefix) >= 4 && len(t.ID) > len(prefix) && t.ID[:len(prefix)] == prefix {
			if match != "" {
				return "", fmt.Errorf("id prefix %q is ambiguous", prefix)
			}
			match = t.ID
		}
	}
	if match == "" {
		return "", fmt.Errorf("no task with id %q", prefix)
	}
	return match, nil
}
