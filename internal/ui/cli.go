package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"ritmo/internal/config"
	"ritmo/internal/task"
	"ritmo/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	repo   task.Repository
	config *config.Config
	root   *cobra.Command
	debug  bool
}

// NewApp creates the CLI application around a repository and config.
func NewApp(repo task.Repository, cfg *config.Config) *App {
	a := &App{repo: repo, config: cfg}

	a.root = &cobra.Command{
		Use:   "ritmo",
		Short: "Automatic task scheduling around your commitments",
		Long: `Ritmo plans your tasks for you. Describe what needs doing, when it is
due and how long it takes; ritmo fits the work into the free time left
between your fixed commitments, highest priority and nearest deadline
first, splitting tasks across days when a single day is not enough.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return tui.RunWithDebug(a.repo, a.debug)
		},
	}

	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to temp file)")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.addCmd())
	a.root.AddCommand(a.listCmd())
	a.root.AddCommand(a.completeCmd())
	a.root.AddCommand(a.removeCmd())
	a.root.AddCommand(a.commitCmd())
	a.root.AddCommand(a.settingsCmd())
	a.root.AddCommand(a.scheduleCmd())
	a.root.AddCommand(a.importCmd())
	a.root.AddCommand(a.backupCmd())
	a.root.AddCommand(a.captureCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("ritmo %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases the repository.
func (a *App) Close() error {
	if a.repo == nil {
		return nil
	}
	return a.repo.Close()
}
