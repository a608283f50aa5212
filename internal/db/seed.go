package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/bytedance/sonic"

	"github.com/example/taskboard/internal/models"
)

// FixtureBoards returns the boards SeedFixtures inserts: one template and one
// regular board with enough content to exercise every view.
func FixtureBoards(now time.Time) []*models.Board {
	ms := now.UnixMilli()
	ada := models.Member{ID: "MEM-001", Username: "ada", Fullname: "Ada Lovelace"}
	bob := models.Member{ID: "MEM-002", Username: "bob", Fullname: "Bob Kahn"}
	labels := []models.Label{
		{ID: "LBL-001", Title: "bug", Color: "#e74c3c"},
		{ID: "LBL-002", Title: "feature", Color: "#2ecc71"},
		{ID: "LBL-003", Title: "chore", Color: "#95a5a6"},
	}

	template := &models.Board{
		ID:         "BOARD-TPL",
		Title:      "Kanban template",
		CreatedAt:  ms,
		IsTemplate: true,
		Labels:     labels,
		Groups: []models.Group{
			{ID: "GRP-T01", Title: "Backlog", Tasks: []models.Task{}},
			{ID: "GRP-T02", Title: "In progress", Tasks: []models.Task{}},
			{ID: "GRP-T03", Title: "Done", Tasks: []models.Task{}},
		},
	}

	demo := &models.Board{
		ID:        "BOARD-001",
		Title:     "Release 1.0",
		CreatedAt: ms,
		CreatedBy: &ada,
		Style:     models.Style{Background: "#0079bf"},
		Members:   []models.Member{ada, bob},
		Labels:    labels,
		Groups: []models.Group{
			{ID: "GRP-001", Title: "Backlog", Tasks: []models.Task{
				{ID: "TASK-001", Title: "Fix login bug", LabelIDs: []string{"LBL-001"}, MemberIDs: []string{"MEM-001"}, CreatedAt: ms},
				{ID: "TASK-002", Title: "Write release notes", LabelIDs: []string{"LBL-003"}, MemberIDs: []string{}, CreatedAt: ms + 1},
			}},
			{ID: "GRP-002", Title: "In progress", Tasks: []models.Task{
				{
					ID: "TASK-003", Title: "Board search", LabelIDs: []string{"LBL-002"}, MemberIDs: []string{"MEM-002"}, CreatedAt: ms + 2,
					TodoLists: []models.TodoList{{
						ID: "TDL-001", Title: "Checklist", Progress: "50%",
						Todos: []models.Todo{
							{ID: "TODO-001", Title: "Regex matching", IsDone: true},
							{ID: "TODO-002", Title: "Literal fallback"},
						},
					}},
				},
			}},
			{ID: "GRP-003", Title: "Done", Tasks: []models.Task{}},
		},
		Activities: []models.Activity{},
	}

	return []*models.Board{template, demo}
}

// SeedFixtures populates the database with development fixtures and marks the
// demo board as last viewed.
func SeedFixtures(database *sql.DB) error {
	boards := FixtureBoards(time.Now())
	for _, b := range boards {
		doc, err := sonic.Marshal(b)
		if err != nil {
			return fmt.Errorf("seed boards: %w", err)
		}
		if _, err := database.Exec(
			"INSERT INTO boards (id, title, is_template, is_starred, doc) VALUES (?, ?, ?, ?, ?)",
			b.ID, b.Title, b.IsTemplate, b.IsStarred, string(doc),
		); err != nil {
			return fmt.Errorf("seed boards: %w", err)
		}
	}

	if _, err := database.Exec("INSERT INTO current_board (slot, board_id) VALUES (1, ?)", boards[len(boards)-1].ID); err != nil {
		return fmt.Errorf("seed current board: %w", err)
	}
	return nil
}
