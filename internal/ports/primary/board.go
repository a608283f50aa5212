package primary

import (
	"context"
	"errors"

	"github.com/example/taskboard/internal/core/board"
	"github.com/example/taskboard/internal/core/dnd"
	"github.com/example/taskboard/internal/models"
)

// ErrPersistence wraps every failure reported by the persistence collaborator.
var ErrPersistence = errors.New("persistence failed")

// BoardAction is a request against the board catalogue.
type BoardAction string

const (
	ActionSave   BoardAction = "save"
	ActionRemove BoardAction = "remove"
	ActionSet    BoardAction = "set"
)

// BoardChange is the local change dispatched after a board action succeeded.
type BoardChange string

const (
	ChangeAdd    BoardChange = "add"
	ChangeUpdate BoardChange = "update"
	ChangeRemove BoardChange = "remove"
	ChangeSet    BoardChange = "set"
)

// BoardStore defines the primary port for the board state container.
// Mutating calls apply locally first, then persist, and roll their own change
// back when persistence fails.
type BoardStore interface {
	// LoadBoards replaces the board list with what persistence returns.
	LoadBoards(ctx context.Context) error

	// ApplyBoardAction saves, removes or selects a board.
	ApplyBoardAction(ctx context.Context, action BoardAction, b *models.Board) (*models.Board, error)

	// RestoreLastBoard makes the last-viewed board current again.
	RestoreLastBoard(ctx context.Context) (*models.Board, error)

	// PersistCurrentBoard saves explicit, or the current board when explicit is nil.
	PersistCurrentBoard(ctx context.Context, explicit *models.Board) error

	// SetState applies one mutation to the current board and persists it.
	SetState(ctx context.Context, m board.Mutation) error

	// RecordActivity prepends an activity stamped with the acting member.
	RecordActivity(ctx context.Context, activity models.Activity) error

	// ToggleStarred stars or unstars a board; an empty id means the current board.
	ToggleStarred(ctx context.Context, boardID string) error

	// OnColumnDrop reorders the current board's groups.
	OnColumnDrop(ctx context.Context, drop dnd.DropResult[models.Group]) error

	// OnCardDrop reorders one group's tasks.
	OnCardDrop(ctx context.Context, groupID string, drop dnd.DropResult[models.Task]) error

	// UpdateGroups persists a new group list through the legacy path.
	UpdateGroups(ctx context.Context, groups []models.Group) error

	// ClearCurrentBoard drops the current board.
	ClearCurrentBoard()

	// SetCurrentTask focuses a task of the current board.
	SetCurrentTask(groupID, taskID string) error

	// Search records and returns tasks of the current board whose title matches query.
	Search(query string) []models.Task

	// SetMemberDrag records whether a member avatar is being dragged.
	SetMemberDrag(isDrag bool)

	// Boards returns all non-template boards.
	Boards() []*models.Board

	// TemplateBoards returns only template boards.
	TemplateBoards() []*models.Board

	// Board returns a copy of the current board, or nil.
	Board() *models.Board

	// CurrentTask resolves the focused task against the current board.
	CurrentTask() (*models.Group, *models.Task, bool)

	// SearchResults returns the last search result.
	SearchResults() []models.Task

	// IsMemberDrag reports the member drag flag.
	IsMemberDrag() bool
}
