package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"ritmo/internal/capture"
	"ritmo/internal/llm"
)

func (a *App) captureCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "capture [text...]",
		Short: "Add tasks from natural language",
		Long: `Describe tasks in plain language and let the configured LLM extract
them. Each extracted task is validated before it is saved.

Example:
  ritmo capture "finish the quarterly report by friday, 3 hours, high priority"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			client, err := llm.NewClient(a.config.LLM.Provider, a.config.LLM.Model, a.config.LLM.BaseURL)
			if err != nil {
				return fmt.Errorf("creating LLM client: %w", err)
			}

			ctx := context.Background()
			result, err := capture.NewCapturer(client).Capture(ctx, strings.Join(args, " "), time.Now())
			if err != nil {
				return err
			}

			for _, t := range result.Tasks {
				if !dryRun {
					if err := a.repo.CreateTask(ctx, t); err != nil {
						return fmt.Errorf("saving task %q: %w", t.Name, err)
					}
				}
				fmt.Printf("  %s  %s  %-30s  due %s\n",
					formatPriority(t.Priority),
					t.DurationLabel(),
					truncate(t.Name, 30),
					t.Deadline.Format("2006-01-02 15:04"),
				)
			}
			for _, w := range result.Warnings {
				fmt.Println(formatMuted("  note: " + w))
			}
			if dryRun {
				fmt.Println(formatMuted("Dry run; nothing saved."))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show extracted tasks without saving")
	return cmd
}
