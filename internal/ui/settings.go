package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"ritmo/internal/task"
)

func (a *App) settingsCmd() *cobra.Command {
	var (
		wake  string
		sleep string
	)

	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change the daily scheduling window",
		Long: `Show or change the daily window the scheduler may place work in.
Without flags the current window is printed.

A sleep time at or before the wake time means the window crosses
midnight: --wake=22:00 --sleep=06:00 schedules through the night.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx := context.Background()
			current, err := a.repo.Settings(ctx)
			if err != nil {
				return fmt.Errorf("loading settings: %w", err)
			}

			if wake == "" && sleep == "" {
				fmt.Printf("Wake: %s  Sleep: %s  (%s available per day)\n",
					current.WakeUpTime, current.SleepTime,
					formatDuration(current.WindowMinutes()))
				return nil
			}

			if wake != "" {
				if err := task.ValidateTimeFormat(wake); err != nil {
					return fmt.Errorf("wake time: %w", err)
				}
				current.WakeUpTime = wake
			}
			if sleep != "" {
				if err := task.ValidateTimeFormat(sleep); err != nil {
					return fmt.Errorf("sleep time: %w", err)
				}
				current.SleepTime = sleep
			}

			if err := a.repo.SaveSettings(ctx, current); err != nil {
				return fmt.Errorf("saving settings: %w", err)
			}
			fmt.Printf("Window set to %s-%s (%s available per day)\n",
				current.WakeUpTime, current.SleepTime,
				formatDuration(current.WindowMinutes()))
			return nil
		},
	}

	cmd.Flags().StringVar(&wake, "wake", "", "Wake-up time (HH:MM)")
	cmd.Flags().StringVar(&sleep, "sleep", "", "Sleep time (HH:MM)")
	return cmd
}
