// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import (
	"context"
	"errors"

	"github.com/example/taskboard/internal/models"
)

// ErrNotFound is returned (wrapped) when a board id does not exist.
var ErrNotFound = errors.New("not found")

// BoardRepository defines the secondary port for board persistence.
// Boards are persisted whole; the application never writes partial documents.
type BoardRepository interface {
	// Query retrieves every stored board.
	Query(ctx context.Context) ([]*models.Board, error)

	// GetByID retrieves a board by its ID. Missing boards wrap ErrNotFound.
	GetByID(ctx context.Context, id string) (*models.Board, error)

	// SaveBoard creates the board when it has no ID, otherwise updates it.
	// The returned board carries any server-assigned fields.
	SaveBoard(ctx context.Context, board *models.Board) (*models.Board, error)

	// RemoveBoard deletes a board.
	RemoveBoard(ctx context.Context, id string) error

	// UpdateGroups replaces the groups of the last-viewed board.
	// Deprecated: legacy path kept for older callers; use SaveBoard.
	UpdateGroups(ctx context.Context, groups []models.Group) (*models.Board, error)

	// SetCurrBoard records the last-viewed board.
	SetCurrBoard(ctx context.Context, board *models.Board) error

	// GetCurrBoard returns the last-viewed board, or ErrNotFound.
	GetCurrBoard(ctx context.Context) (*models.Board, error)
}

// IDGenerator produces ids for new groups, tasks, labels, todo lists, todos and activities.
type IDGenerator interface {
	MakeID() string
}
