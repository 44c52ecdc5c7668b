package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"ritmo/internal/task"
)

func (a *App) commitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Manage fixed commitments",
		Long: `Commitments are fixed obligations the scheduler works around: meetings,
classes, gym slots. They occupy time; tasks fill what is left.`,
	}

	cmd.AddCommand(a.commitAddCmd())
	cmd.AddCommand(a.commitListCmd())
	cmd.AddCommand(a.commitRemoveCmd())
	cmd.AddCommand(a.commitClearCmd())
	return cmd
}

func (a *App) commitAddCmd() *cobra.Command {
	var (
		start      string
		end        string
		recurrence string
		days       []string
		date       string
	)

	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Add a commitment",
		Long: `Add a fixed commitment.

Recurrence is one of:
  daily   every day
  weekly  on the weekdays given with --days
  none    a single occurrence on --date

Example:
  ritmo commit add "Team standup" --start=09:00 --end=09:30 --recurrence=weekly --days=monday,wednesday,friday`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c, err := task.NewCommitment(args[0], start, end, task.Recurrence(recurrence), days, date)
			if err != nil {
				return err
			}

			if err := a.repo.CreateCommitment(context.Background(), c); err != nil {
				return fmt.Errorf("creating commitment: %w", err)
			}

			fmt.Printf("Created commitment %s: %s %s-%s (%s)\n",
				shortID(c.ID), c.Name, c.StartTime, c.EndTime, describeRecurrence(c))
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM, required)")
	cmd.Flags().StringVar(&end, "end", "", "End time (HH:MM, required)")
	cmd.Flags().StringVar(&recurrence, "recurrence", "daily", "Recurrence: daily, weekly or none")
	cmd.Flags().StringSliceVar(&days, "days", nil, "Weekdays for weekly recurrence (e.g. monday,friday)")
	cmd.Flags().StringVar(&date, "date", "", "Date for one-off commitments (YYYY-MM-DD)")

	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func (a *App) commitListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List commitments",
		RunE: func(_ *cobra.Command, _ []string) error {
			commitments, err := a.repo.ListCommitments(context.Background())
			if err != nil {
				return fmt.Errorf("listing commitments: %w", err)
			}
			if len(commitments) == 0 {
				fmt.Println(formatMuted("No commitments."))
				return nil
			}
			for _, c := range commitments {
				fmt.Printf("  %s  %s-%s  %-30s  %s\n",
					formatMuted(shortID(c.ID)),
					c.StartTime, c.EndTime,
					truncate(c.Name, 30),
					formatMuted(describeRecurrence(c)),
				)
			}
			return nil
		},
	}
}

func (a *App) commitRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove [id]",
		Aliases: []string{"rm"},
		Short:   "Delete a commitment",
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := a.resolveCommitmentID(ctx, args[0])
			if err != nil {
				return err
			}
			if err := a.repo.DeleteCommitment(ctx, id); err != nil {
				return fmt.Errorf("deleting commitment: %w", err)
			}
			fmt.Printf("Deleted commitment %s\n", shortID(id))
			return nil
		},
	}
}

func (a *App) commitClearCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every commitment",
		RunE: func(_ *cobra.Command, _ []string) error {
			if !yes {
				return fmt.Errorf("this deletes all commitments; pass --yes to confirm")
			}
			if err := a.repo.ClearCommitments(context.Background()); err != nil {
				return fmt.Errorf("clearing commitments: %w", err)
			}
			fmt.Println("Cleared all commitments")
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm deletion")
	return cmd
}

func (a *App) resolveCommitmentID(ctx context.Context, prefix string) (string, error) {
	commitments, err := a.repo.ListCommitments(ctx)
	if err != nil {
		return "", fmt.Errorf("listing commitments: %w", err)
	}

	var match string
	for _, c := range commitments {
		if c.ID == prefix {
			return c.ID, nil
		}
		if len(prefix) >= 4 && len(c.ID) > len(prefix) && c.ID[:len(prefix)] == prefix {
			if match != "" {
				return "", fmt.Errorf("id prefix %q is ambiguous", prefix)
			}
			match = c.ID
		}
	}
	if match == "" {
		return "", fmt.Errorf("no commitment with id %q", prefix)
	}
	return match, nil
}

func describeRecurrence(c *task.Commitment) string {
	switch c.Recurrence {
	case task.RecurrenceDaily:
		return "daily"
	case task.RecurrenceWeekly:
		return "weekly: " + strings.Join(c.Days, ", ")
	case task.RecurrenceNone:
		return "once on " + c.Date
	default:
		return string(c.Recurrence)
	}
}
