package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Every statement is idempotent so the
// whole list is replayed on each open.
func Migrate(db *sql.DB) error {
	for i, m := range migrations {
		if _, err := db.Exec(m.stmt); err != nil {
			// ALTER TABLE ADD COLUMN has no IF NOT EXISTS form.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
		if m.backfill == "" {
			continue
		}
		if _, err := db.Exec(m.backfill); err != nil {
			return fmt.Errorf("migration %d backfill: %w", i, err)
		}
	}
	return nil
}

// migration is one schema statement. backfill runs only when stmt actually
// changed the schema, so it sees rows written before the change.
type migration struct {
	stmt     string
	backfill string
}

var migrations = []migration{
	{stmt: `CREATE TABLE IF NOT EXISTS projects (
		id        INTEGER PRIMARY KEY AUTOINCREMENT,
		code      TEXT NOT NULL,
		directory TEXT,
		name      TEXT
	)`},
	{stmt: `CREATE UNIQUE INDEX IF NOT EXISTS idx_projects_code ON projects(code)`},

	{stmt: `CREATE TABLE IF NOT EXISTS tasks (
		id             INTEGER PRIMARY KEY AUTOINCREMENT,
		project_id     INTEGER NOT NULL REFERENCES projects(id),
		number         INTEGER NOT NULL,
		active_subtask INTEGER
	)`},
	{stmt: `CREATE UNIQUE INDEX IF NOT EXISTS idx_tasks_project_number ON tasks(project_id, number)`},

	{stmt: `CREATE TABLE IF NOT EXISTS subtasks (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		task_id     INTEGER NOT NULL REFERENCES tasks(id),
		branch      TEXT,
		description TEXT,
		active      INTEGER NOT NULL DEFAULT 1
	)`},

	// Subtasks were originally addressed by id only.
	{
		stmt: `ALTER TABLE subtasks ADD COLUMN number INTEGER NOT NULL DEFAULT 1`,
		// Number existing subtasks 1..n per task in creation order.
		backfill: `UPDATE subtasks SET number = (
			SELECT COUNT(*) FROM subtasks s2
			WHERE s2.task_id = subtasks.task_id AND s2.id <= subtasks.id
		)`,
	},
	{stmt: `CREATE UNIQUE INDEX IF NOT EXISTS idx_subtasks_task_number ON subtasks(task_id, number)`},

	{stmt: `CREATE TABLE IF NOT EXISTS stretches (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		subtask_id INTEGER NOT NULL REFERENCES subtasks(id),
		start      INTEGER NOT NULL,
		"end"      INTEGER
	)`},
	{stmt: `CREATE INDEX IF NOT EXISTS idx_stretches_subtask ON stretches(subtask_id)`},
	{stmt: `CREATE INDEX IF NOT EXISTS idx_stretches_start ON stretches(start)`},
	{stmt: `CREATE INDEX IF NOT EXISTS idx_stretches_end ON stretches("end")`},
}
