package ui

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ritmo/internal/ics"
)

func (a *App) importCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import [file.ics]",
		Short: "Import commitments from an iCalendar file",
		Long: `Import timed events from an .ics file as one-off commitments.

Recurring, all-day and multi-day events are skipped; the scheduler only
works around concrete timed blocks.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening calendar: %w", err)
			}
			defer f.Close()

			result, err := ics.Import(f)
			if err != nil {
				return fmt.Errorf("importing calendar: %w", err)
			}

			if !dryRun {
				ctx := context.Background()
				for _, c := range result.Commitments {
					if err := a.repo.CreateCommitment(ctx, c); err != nil {
						return fmt.Errorf("saving commitment %q: %w", c.Name, err)
					}
				}
			}

			verb := "Imported"
			if dryRun {
				verb = "Would import"
			}
			fmt.Printf("%s %d commitment(s)\n", verb, len(result.Commitments))
			for _, c := range result.Commitments {
				fmt.Printf("    %s  %s-%s  %s\n", c.Date, c.StartTime, c.EndTime, truncate(c.Name, 40))
			}
			if skipped := result.Skipped(); skipped > 0 {
				fmt.Println(formatMuted(fmt.Sprintf(
					"Skipped %d event(s): %d recurring, %d all-day, %d multi-day, %d invalid",
					skipped, result.SkippedRecurring, result.SkippedAllDay,
					result.SkippedMultiDay, result.SkippedInvalid)))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be imported without saving")
	return cmd
}
