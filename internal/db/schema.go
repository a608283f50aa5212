package db

import "database/sql"

// SchemaSQL is the complete schema for fresh installs.
// It reflects the state after every migration in migrations.go.
//
// Boards are stored as whole JSON documents in boards.doc; the scalar columns
// next to it are copies used for listing and filtering.
//
// Tests load this through GetSchemaSQL() instead of declaring their own tables.
// When adding a column or table:
//  1. Add a migration in migrations.go
//  2. Update SchemaSQL here
const SchemaSQL = `
CREATE TABLE IF NOT EXISTS boards (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	is_template INTEGER NOT NULL DEFAULT 0,
	is_starred INTEGER NOT NULL DEFAULT 0,
	doc TEXT NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_boards_template ON boards(is_template);

-- Last-viewed board (single row)
CREATE TABLE IF NOT EXISTS current_board (
	slot INTEGER PRIMARY KEY CHECK (slot = 1),
	board_id TEXT NOT NULL,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (board_id) REFERENCES boards(id) ON DELETE CASCADE
);
`

// InitSchema brings the database up to date. Fresh databases get SchemaSQL
// directly and every migration is marked applied; existing databases run
// whatever migrations are pending.
func InitSchema(database *sql.DB) error {
	var tableCount int
	err := database.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'").Scan(&tableCount)
	if err != nil {
		return err
	}

	if tableCount > 0 {
		return RunMigrations(database)
	}

	if _, err := database.Exec(SchemaSQL); err != nil {
		return err
	}
	if err := createVersionTable(database); err != nil {
		return err
	}
	for _, m := range migrations {
		if _, err := database.Exec("INSERT INTO schema_version (version) VALUES (?)", m.Version); err != nil {
			return err
		}
	}
	return nil
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
func GetSchemaSQL() string {
	return SchemaSQL
}
