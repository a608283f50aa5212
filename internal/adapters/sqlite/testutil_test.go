// Package sqlite_test contains integration tests for SQLite repositories.
//
// # Schema Protection
//
// This file is the single point where the database schema is loaded for tests.
// Setup uses db.GetSchemaSQL() so tests run against the authoritative schema.
package sqlite_test

import (
	"database/sql"
	"fmt"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/taskboard/internal/adapters/sqlite"
	"github.com/example/taskboard/internal/db"
	"github.com/example/taskboard/internal/models"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	testDB.SetMaxOpenConns(1)

	if _, err := testDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("failed to enable foreign keys: %v", err)
	}
	if _, err := testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seqIDs hands out BOARD-001, BOARD-002, ...
type seqIDs struct{ n int }

func (g *seqIDs) MakeID() string {
	g.n++
	return fmt.Sprintf("BOARD-%03d", g.n)
}

func setupRepo(t *testing.T) (*sqlite.BoardRepository, *sql.DB) {
	t.Helper()
	testDB := setupTestDB(t)
	return sqlite.NewBoardRepository(testDB, &seqIDs{}), testDB
}

// sampleBoard returns a valid board with one group and task.
func sampleBoard(id, title string) *models.Board {
	return &models.Board{
		ID:      id,
		Title:   title,
		Members: []models.Member{{ID: "m1", Fullname: "Ada"}},
		Labels:  []models.Label{{ID: "l1", Color: "#ff0000"}},
		Groups: []models.Group{
			{ID: "g1", Title: "Todo", Tasks: []models.Task{
				{ID: "t1", Title: "First", LabelIDs: []string{"l1"}, MemberIDs: []string{"m1"}},
			}},
		},
		Activities: []models.Activity{},
	}
}
