package ui

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ritmo/internal/config"
)

func (a *App) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or initialize configuration",
		RunE: func(_ *cobra.Command, _ []string) error {
			fmt.Printf("Config file:  %s\n", config.DefaultConfigPath())
			fmt.Printf("Database:     %s\n", a.config.Storage.DBPath)
			fmt.Printf("LLM provider: %s (model %s)\n", a.config.LLM.Provider, a.config.LLM.Model)
			if a.config.LLM.BaseURL != "" {
				fmt.Printf("LLM base URL: %s\n", a.config.LLM.BaseURL)
			}
			fmt.Printf("Color:        %s\n", a.config.UI.Color)
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write a config file with the current settings",
		RunE: func(_ *cobra.Command, _ []string) error {
			path := config.DefaultConfigPath()
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("config file already exists at %s", path)
			}
			if err := a.config.Save(); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}
			fmt.Printf("Wrote %s\n", path)
			return nil
		},
	})

	return cmd
}
