package main

import (
	"fmt"
	"os"
	"path/filepath"

	"ritmo/internal/config"
	"ritmo/internal/db"
	"ritmo/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	ui.ConfigureColor(cfg.UI.Color)

	if err := os.MkdirAll(filepath.Dir(cfg.Storage.DBPath), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	repo, err := db.New(cfg.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}

	app := ui.NewApp(repo, cfg)
	defer func() { _ = app.Close() }()
	return app.Execute()
}
