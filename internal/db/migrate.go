package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Every statement is idempotent so the
// full list is replayed on each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN has no IF NOT EXISTS form in SQLite.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS clients (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		color      TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS projects (
		id             TEXT PRIMARY KEY,
		client_name    TEXT NOT NULL,
		client_color   TEXT NOT NULL DEFAULT '',
		name           TEXT NOT NULL,
		description    TEXT NOT NULL DEFAULT '',
		status         TEXT NOT NULL DEFAULT 'Planning'
		               CHECK(status IN ('Planning','In Progress','Review','Completed','On Hold')),
		deadline       TEXT NOT NULL DEFAULT '',
		budget         INTEGER NOT NULL DEFAULT 0 CHECK(budget >= 0),
		payment_status TEXT NOT NULL DEFAULT 'Pending'
		               CHECK(payment_status IN ('Pending','Paid','Overdue')),
		urgent         INTEGER NOT NULL DEFAULT 0,
		kind           TEXT NOT NULL DEFAULT 'single' CHECK(kind IN ('single','complex')),
		created_at     TEXT NOT NULL,
		updated_at     TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS tasks (
		id         TEXT PRIMARY KEY,
		project_id TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		seq        INTEGER NOT NULL,
		title      TEXT NOT NULL,
		due_date   TEXT NOT NULL DEFAULT '',
		completed  INTEGER NOT NULL DEFAULT 0,
		color      TEXT NOT NULL DEFAULT '',
		budget     INTEGER NOT NULL DEFAULT 0 CHECK(budget >= 0)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_project ON tasks(project_id, seq)`,
	`CREATE INDEX IF NOT EXISTS idx_projects_created ON projects(created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_clients_name ON clients(name COLLATE NOCASE)`,
}
