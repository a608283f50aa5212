package db

import (
	"database/sql"
	"fmt"

	log "github.com/sirupsen/logrus"
)

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	Up      func(*sql.Tx) error
}

// migrations is the list of all migrations in order
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_boards",
		Up:      migrationV1,
	},
	{
		Version: 2,
		Name:    "add_current_board",
		Up:      migrationV2,
	},
	{
		Version: 3,
		Name:    "add_is_starred_to_boards",
		Up:      migrationV3,
	},
}

func createVersionTable(database *sql.DB) error {
	_, err := database.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create schema_version table: %w", err)
	}
	return nil
}

// LatestVersion returns the version of the newest known migration.
func LatestVersion() int {
	return migrations[len(migrations)-1].Version
}

// SchemaVersion returns the highest migration applied to database, 0 when none.
func SchemaVersion(database *sql.DB) (int, error) {
	if err := createVersionTable(database); err != nil {
		return 0, err
	}
	var version int
	if err := database.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&version); err != nil {
		return 0, fmt.Errorf("failed to get current schema version: %w", err)
	}
	return version, nil
}

// RunMigrations executes all pending migrations
func RunMigrations(database *sql.DB) error {
	currentVersion, err := SchemaVersion(database)
	if err != nil {
		return err
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		logger := log.WithFields(log.Fields{"version": migration.Version, "name": migration.Name})
		logger.Info("running migration")

		tx, err := database.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin transaction for migration %d: %w", migration.Version, err)
		}

		if err := migration.Up(tx); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", migration.Version, err)
		}

		if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", migration.Version); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", migration.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, err)
		}

		logger.Info("migration completed")
	}

	return nil
}

// migrationV1 creates the boards table holding whole board documents.
func migrationV1(tx *sql.Tx) error {
	_, err := tx.Exec(`
		CREATE TABLE IF NOT EXISTS boards (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			is_template INTEGER NOT NULL DEFAULT 0,
			doc TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_boards_template ON boards(is_template);
	`)
	return err
}

// migrationV2 adds the single-row last-viewed board table.
func migrationV2(tx *sql.Tx) error {
	_, err := tx.Exec(`
		CREATE TABLE IF NOT EXISTS current_board (
			slot INTEGER PRIMARY KEY CHECK (slot = 1),
			board_id TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (board_id) REFERENCES boards(id) ON DELETE CASCADE
		)
	`)
	return err
}

// migrationV3 copies the starred flag out of the document for listing.
func migrationV3(tx *sql.Tx) error {
	if _, err := tx.Exec(`ALTER TABLE boards ADD COLUMN is_starred INTEGER NOT NULL DEFAULT 0`); err != nil {
		return err
	}
	_, err := tx.Exec(`UPDATE boards SET is_starred = COALESCE(json_extract(doc, '$.isStarred'), 0)`)
	return err
}
