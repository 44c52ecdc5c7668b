package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS tasks (
			id              TEXT PRIMARY KEY,
			name            TEXT NOT NULL,
			duration        REAL NOT NULL CHECK(duration > 0),
			duration_unit   TEXT NOT NULL CHECK(duration_unit IN ('hours', 'minutes')),
			deadline        DATETIME NOT NULL,
			priority        TEXT NOT NULL CHECK(priority IN ('high', 'medium', 'low')),
			recurrence      TEXT NOT NULL DEFAULT 'none' CHECK(recurrence IN ('none', 'daily', 'weekly')),
			recurrence_days TEXT NOT NULL DEFAULT '',
			completed       INTEGER NOT NULL DEFAULT 0,
			created_at      DATETIME NOT NULL
		);

		CREATE TABLE IF NOT EXISTS commitments (
			id         TEXT PRIMARY KEY,
			name       TEXT NOT NULL,
			start_time TIME NOT NULL,
			end_time   TIME NOT NULL,
			recurrence TEXT NOT NULL CHECK(recurrence IN ('none', 'daily', 'weekly')),
			days       TEXT NOT NULL DEFAULT '',
			date       TEXT NOT NULL DEFAULT '',
			created_at DATETIME NOT NULL
		);

		CREATE TABLE IF NOT EXISTS settings (
			id           INTEGER PRIMARY KEY CHECK(id = 1),
			wake_up_time TIME NOT NULL,
			sleep_time   TIME NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_tasks_deadline ON tasks(deadline);
		CREATE INDEX IF NOT EXISTS idx_tasks_completed ON tasks(completed);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating tables: %w", err)
	}

	return nil
}
