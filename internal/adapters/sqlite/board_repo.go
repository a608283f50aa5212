// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bytedance/sonic"

	"github.com/example/taskboard/internal/models"
	"github.com/example/taskboard/internal/ports/secondary"
)

// BoardRepository implements secondary.BoardRepository with SQLite.
// Each board is one JSON document in boards.doc.
type BoardRepository struct {
	db  *sql.DB
	ids secondary.IDGenerator
	now func() time.Time
}

// NewBoardRepository creates a new SQLite board repository.
// ids assigns the id of boards saved without one.
func NewBoardRepository(db *sql.DB, ids secondary.IDGenerator) *BoardRepository {
	return &BoardRepository{db: db, ids: ids, now: time.Now}
}

var _ secondary.BoardRepository = (*BoardRepository)(nil)

// Query retrieves every board in creation order.
func (r *BoardRepository) Query(ctx context.Context) ([]*models.Board, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT doc FROM boards ORDER BY created_at ASC, rowid ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to list boards: %w", err)
	}
	defer rows.Close()

	var boards []*models.Board
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("failed to scan board: %w", err)
		}
		b, err := decodeBoard(doc)
		if err != nil {
			return nil, err
		}
		boards = append(boards, b)
	}

	return boards, rows.Err()
}

// GetByID retrieves a board by its ID.
func (r *BoardRepository) GetByID(ctx context.Context, id string) (*models.Board, error) {
	return r.getByID(ctx, r.db, id)
}

type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (r *BoardRepository) getByID(ctx context.Context, q queryer, id string) (*models.Board, error) {
	var doc string
	err := q.QueryRowContext(ctx, "SELECT doc FROM boards WHERE id = ?", id).Scan(&doc)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("board %s: %w", id, secondary.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get board: %w", err)
	}
	return decodeBoard(doc)
}

// SaveBoard validates and upserts a board. Boards without an id get one, and
// a creation time when they have none.
func (r *BoardRepository) SaveBoard(ctx context.Context, board *models.Board) (*models.Board, error) {
	saved := board.Clone()
	if saved.ID == "" {
		saved.ID = r.ids.MakeID()
		if saved.CreatedAt == 0 {
			saved.CreatedAt = r.now().UnixMilli()
		}
	}

	if err := r.upsert(ctx, r.db, saved); err != nil {
		return nil, err
	}
	return saved, nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (r *BoardRepository) upsert(ctx context.Context, e execer, b *models.Board) error {
	if err := models.Validate(b); err != nil {
		return fmt.Errorf("invalid board: %w", err)
	}
	doc, err := sonic.MarshalString(b)
	if err != nil {
		return fmt.Errorf("failed to encode board: %w", err)
	}

	_, err = e.ExecContext(ctx, `
		INSERT INTO boards (id, title, is_template, is_starred, doc) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			is_template = excluded.is_template,
			is_starred = excluded.is_starred,
			doc = excluded.doc,
			updated_at = CURRENT_TIMESTAMP`,
		b.ID, b.Title, b.IsTemplate, b.IsStarred, doc,
	)
	if err != nil {
		return fmt.Errorf("failed to save board: %w", err)
	}
	return nil
}

// RemoveBoard deletes a board. The last-viewed marker goes with it.
func (r *BoardRepository) RemoveBoard(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM boards WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete board: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to verify delete: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("board %s: %w", id, secondary.ErrNotFound)
	}

	return nil
}

// UpdateGroups replaces the groups of the last-viewed board.
//
// Deprecated: use SaveBoard.
func (r *BoardRepository) UpdateGroups(ctx context.Context, groups []models.Group) (*models.Board, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	id, err := currentBoardID(ctx, tx)
	if err != nil {
		return nil, err
	}
	b, err := r.getByID(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	next := b.Clone()
	next.Groups = (&models.Board{Groups: groups}).Clone().Groups
	if err := r.upsert(ctx, tx, next); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit groups: %w", err)
	}
	return next, nil
}

// SetCurrBoard records the last-viewed board.
func (r *BoardRepository) SetCurrBoard(ctx context.Context, board *models.Board) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO current_board (slot, board_id) VALUES (1, ?)
		ON CONFLICT(slot) DO UPDATE SET board_id = excluded.board_id, updated_at = CURRENT_TIMESTAMP`,
		board.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to set current board: %w", err)
	}
	return nil
}

// GetCurrBoard returns the last-viewed board.
func (r *BoardRepository) GetCurrBoard(ctx context.Context) (*models.Board, error) {
	id, err := currentBoardID(ctx, r.db)
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func currentBoardID(ctx context.Context, q queryer) (string, error) {
	var id string
	err := q.QueryRowContext(ctx, "SELECT board_id FROM current_board WHERE slot = 1").Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("current board: %w", secondary.ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("failed to get current board: %w", err)
	}
	return id, nil
}

func decodeBoard(doc string) (*models.Board, error) {
	b := &models.Board{}
	if err := sonic.UnmarshalString(doc, b); err != nil {
		return nil, fmt.Errorf("failed to decode board: %w", err)
	}
	return b, nil
}
