package ui

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ritmo/internal/backup"
)

func (a *App) backupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export or import the full state as JSON",
	}
	cmd.AddCommand(a.backupExportCmd())
	cmd.AddCommand(a.backupImportCmd())
	return cmd
}

func (a *App) backupExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Write tasks, commitments and settings to a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			state, err := a.repo.Load(context.Background())
			if err != nil {
				return fmt.Errorf("loading state: %w", err)
			}

			f, err := os.Create(args[0])
			if err != nil {
				return fmt.Errorf("creating backup file: %w", err)
			}
			defer f.Close()

			if err := backup.Export(f, state); err != nil {
				return err
			}
			fmt.Printf("Exported %d task(s) and %d commitment(s) to %s\n",
				len(state.Tasks), len(state.Commitments), args[0])
			return nil
		},
	}
}

func (a *App) backupImportCmd() *cobra.Command {
	var strategy string

	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Import a JSON backup",
		Long: `Import a previously exported backup.

With --strategy=merge (the default) imported records are upserted by ID
into the existing state; the import wins on conflicts. With
--strategy=overwrite the existing state is replaced entirely.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			strat, err := backup.ParseStrategy(strategy)
			if err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening backup file: %w", err)
			}
			defer f.Close()

			imported, err := backup.Read(f)
			if err != nil {
				return err
			}

			ctx := context.Background()
			existing, err := a.repo.Load(ctx)
			if err != nil {
				return fmt.Errorf("loading state: %w", err)
			}

			merged, err := backup.Merge(existing, imported, backup.NewSession(strat))
			if err != nil {
				return err
			}

			if strat == backup.StrategyOverwrite {
				if err := a.repo.ClearCommitments(ctx); err != nil {
					return fmt.Errorf("clearing commitments: %w", err)
				}
				for _, t := range existing.Tasks {
					if err := a.repo.DeleteTask(ctx, t.ID); err != nil {
						return fmt.Errorf("removing task %s: %w", t.ID, err)
					}
				}
			}
			if err := a.repo.Save(ctx, merged); err != nil {
				return fmt.Errorf("saving state: %w", err)
			}

			fmt.Printf("Imported %d task(s) and %d commitment(s) (%s)\n",
				len(imported.Tasks), len(imported.Commitments), strat)
			return nil
		},
	}

	cmd.Flags().StringVar(&strategy, "strategy", "merge", "Import strategy: merge or overwrite")
	return cmd
}
