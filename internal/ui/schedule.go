package ui

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ritmo/internal/engine"
)

func (a *App) scheduleCmd() *cobra.Command {
	var (
		days            int
		asJSON          bool
		unscheduledOnly bool
	)

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Generate and show the schedule",
		Long: `Generate the schedule from the current tasks, commitments and daily
window. The schedule is recomputed from scratch on every run; nothing
is stored.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			state, err := a.repo.Load(context.Background())
			if err != nil {
				return fmt.Errorf("loading state: %w", err)
			}

			schedule := engine.Generate(state.Tasks, state.Commitments, state.DailySettings)

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(schedule)
			}
			if unscheduledOnly {
				printUnscheduled(schedule.Unscheduled)
				return nil
			}
			printSchedule(schedule, days)
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 7, "Days to display (0 = full horizon)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the full schedule as JSON")
	cmd.Flags().BoolVar(&unscheduledOnly, "unscheduled", false, "Show only tasks that did not fit")
	return cmd
}

func printSchedule(s *engine.Schedule, maxDays int) {
	shown := 0
	for _, key := range s.SortedKeys() {
		day := s.Days[key]
		if len(day.Tasks) == 0 && len(day.Commitments) == 0 {
			continue
		}
		if maxDays > 0 && shown >= maxDays {
			break
		}
		shown++

		fmt.Println(formatHeader(day.Date))
		for _, c := range day.Commitments {
			fmt.Printf("    %s-%s  %s\n", c.StartTime, c.EndTime, formatCommitment(c.Name))
		}
		for _, t := range day.Tasks {
			partial := ""
			if t.IsPartial {
				partial = formatMuted("  (continues)")
			}
			fmt.Printf("    %s-%s  %s  %s%s\n",
				t.StartTime, t.EndTime,
				formatPriority(t.Priority),
				truncate(t.Name, 40),
				partial,
			)
		}
		fmt.Println()
	}

	if shown == 0 {
		fmt.Println(formatMuted("Nothing scheduled. Add tasks with 'ritmo add'."))
	}
	printUnscheduled(s.Unscheduled)
}

func printUnscheduled(unscheduled []engine.UnscheduledTask) {
	if len(unscheduled) == 0 {
		return
	}
	fmt.Println(formatOverdue("Could not schedule:"))
	for _, u := range unscheduled {
		fmt.Printf("    %s  %s  %s of %s left, due %s\n",
			formatPriority(u.Priority),
			truncate(u.Name, 40),
			formatDuration(u.RemainingDuration),
			formatDuration(u.Duration),
			u.Deadline.Format("2006-01-02"),
		)
	}
}

func formatCommitment(name string) string {
	return formatMuted(name)
}
