package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"ritmo/internal/task"
)

func (a *App) listCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(_ *cobra.Command, _ []string) error {
			tasks, err := a.repo.ListTasks(context.Background())
			if err != nil {
				return fmt.Errorf("listing tasks: %w", err)
			}

			now := time.Now()
			shown := 0
			for _, t := range tasks {
				if t.Completed && !all {
					continue
				}
				printTaskRow(t, now)
				shown++
			}
			if shown == 0 {
				fmt.Println(formatMuted("No tasks. Add one with 'ritmo add'."))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include completed tasks")
	return cmd
}

func printTaskRow(t *task.Task, now time.Time) {
	symbol := "○"
	if t.Completed {
		symbol = formatMuted("✓")
	} else if t.Overdue(now) {
		symbol = formatOverdue("!")
	}

	deadline := t.Deadline.Format("2006-01-02 15:04")
	if t.Overdue(now) && !t.Completed {
		deadline = formatOverdue(deadline + " (overdue)")
	}

	width := nameWidth()
	fmt.Printf("  %s  %s  %s  %-*s  due %s\n",
		symbol,
		formatMuted(shortID(t.ID)),
		formatPriority(t.Priority),
		width, truncate(t.Name, width),
		deadline,
	)
}
