package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id                TEXT PRIMARY KEY,
		name              TEXT NOT NULL,
		start_date        TEXT NOT NULL,
		default_week      TEXT NOT NULL DEFAULT '{}',
		monthly_overrides TEXT NOT NULL DEFAULT '{}',
		exclude_weekends  INTEGER NOT NULL DEFAULT 1,
		created_at        TEXT NOT NULL,
		updated_at        TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS roles (
		project_id       TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		name             TEXT NOT NULL,
		availability_pct REAL NOT NULL DEFAULT 100,
		created_at       TEXT NOT NULL,
		updated_at       TEXT NOT NULL,
		PRIMARY KEY (project_id, name)
	)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		project_id   TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		id           INTEGER NOT NULL,
		phase        TEXT NOT NULL DEFAULT '',
		name         TEXT NOT NULL,
		effort_hours REAL NOT NULL DEFAULT 0,
		assignments  TEXT NOT NULL DEFAULT '[]',
		dependencies TEXT NOT NULL DEFAULT '[]',
		start_date   TEXT,
		end_date     TEXT,
		status       TEXT NOT NULL DEFAULT 'pending'
		             CHECK(status IN ('pending','scheduled','unresolved_dependency','resource_exhausted')),
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL,
		PRIMARY KEY (project_id, id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_status ON tasks(project_id, status)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_phase ON tasks(project_id, phase)`,

	// Billing rates came after the initial schema.
	`ALTER TABLE roles ADD COLUMN hourly_rate REAL NOT NULL DEFAULT 0`,
}
