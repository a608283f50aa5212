package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/example/taskboard/internal/core/board"
	"github.com/example/taskboard/internal/core/dnd"
	"github.com/example/taskboard/internal/ctxutil"
	"github.com/example/taskboard/internal/models"
	"github.com/example/taskboard/internal/ports/primary"
	"github.com/example/taskboard/internal/ports/secondary"
)

// ErrorReporter receives every failure the store surfaces to its UI.
type ErrorReporter func(err error)

// BoardStoreImpl implements the BoardStore interface.
//
// Every mutating call applies its change locally, persists the whole board and,
// if persistence fails, rolls back its own change. Rollback is skipped when a
// later change already replaced the board this call produced.
type BoardStoreImpl struct {
	state  *State
	repo   secondary.BoardRepository
	logger logrus.FieldLogger
	report ErrorReporter
}

// NewBoardStore creates a new BoardStore with injected dependencies.
// report may be nil.
func NewBoardStore(repo secondary.BoardRepository, ids secondary.IDGenerator, logger logrus.FieldLogger, report ErrorReporter) *BoardStoreImpl {
	if report == nil {
		report = func(error) {}
	}
	return &BoardStoreImpl{
		state:  NewState(board.Env{NewID: ids.MakeID, Now: time.Now}),
		repo:   repo,
		logger: logger,
		report: report,
	}
}

var _ primary.BoardStore = (*BoardStoreImpl)(nil)

// LoadBoards replaces the board list with what persistence returns.
func (s *BoardStoreImpl) LoadBoards(ctx context.Context) error {
	boards, err := s.repo.Query(ctx)
	if err != nil {
		return s.persistFailed("load_boards", "", err)
	}
	s.state.ReplaceBoardList(boards)
	s.logger.WithField("count", len(boards)).Debug("boards loaded")
	return nil
}

// ApplyBoardAction saves, removes or selects a board. Persistence runs first;
// the local change uses the board persistence returned.
func (s *BoardStoreImpl) ApplyBoardAction(ctx context.Context, action primary.BoardAction, b *models.Board) (*models.Board, error) {
	if b == nil {
		return nil, board.ErrNoBoard
	}

	switch action {
	case primary.ActionSave:
		change := primary.ChangeAdd
		if b.ID != "" {
			change = primary.ChangeUpdate
		}
		saved, err := s.repo.SaveBoard(ctx, b)
		if err != nil {
			return nil, s.persistFailed("save_board", b.ID, err)
		}
		if err := s.state.ApplyBoardChange(change, saved); err != nil {
			return nil, s.localFailed("save_board", saved.ID, err)
		}
		return saved, nil

	case primary.ActionRemove:
		if b.ID == "" {
			return nil, fmt.Errorf("cannot remove a board without id: %w", board.ErrInvalid)
		}
		if err := s.repo.RemoveBoard(ctx, b.ID); err != nil {
			return nil, s.persistFailed("remove_board", b.ID, err)
		}
		if err := s.state.ApplyBoardChange(primary.ChangeRemove, b); err != nil {
			return nil, s.localFailed("remove_board", b.ID, err)
		}
		return b, nil

	case primary.ActionSet:
		got, err := s.repo.GetByID(ctx, b.ID)
		if err != nil {
			return nil, s.persistFailed("set_board", b.ID, err)
		}
		if err := s.repo.SetCurrBoard(ctx, got); err != nil {
			return nil, s.persistFailed("set_board", b.ID, err)
		}
		if err := s.state.ApplyBoardChange(primary.ChangeSet, got); err != nil {
			return nil, s.localFailed("set_board", b.ID, err)
		}
		return got, nil
	}

	return nil, fmt.Errorf("unknown board action %q: %w", action, board.ErrInvalid)
}

// RestoreLastBoard makes the last-viewed board current again.
func (s *BoardStoreImpl) RestoreLastBoard(ctx context.Context) (*models.Board, error) {
	got, err := s.repo.GetCurrBoard(ctx)
	if err != nil {
		if errors.Is(err, secondary.ErrNotFound) {
			return nil, fmt.Errorf("no board selected: %w", err)
		}
		return nil, s.persistFailed("restore_board", "", err)
	}
	s.state.SetCurrentBoard(got)
	return got, nil
}

// PersistCurrentBoard saves explicit, or the current board when explicit is nil.
// On failure the snapshot slot is restored as the current board; callers
// capture it before they change anything.
func (s *BoardStoreImpl) PersistCurrentBoard(ctx context.Context, explicit *models.Board) error {
	target := explicit
	if target == nil {
		target = s.state.Board()
	}
	if target == nil {
		return board.ErrNoBoard
	}

	if _, err := s.repo.SaveBoard(ctx, target); err != nil {
		if s.state.RestoreSnapshot() {
			s.logger.WithField("board_id", target.ID).Warn("restored snapshot after failed save")
		}
		return s.persistFailed("persist_board", target.ID, err)
	}
	return nil
}

// SetState applies one mutation to the current board and persists it.
func (s *BoardStoreImpl) SetState(ctx context.Context, m board.Mutation) error {
	before, after, err := s.state.Dispatch(m)
	if err != nil {
		return fmt.Errorf("failed to apply %s: %w", m.Name(), err)
	}
	return s.commit(ctx, m.Name(), before, after)
}

// RecordActivity prepends an activity to the current board's feed. The acting
// member comes from the context when the activity does not name one.
func (s *BoardStoreImpl) RecordActivity(ctx context.Context, activity models.Activity) error {
	if activity.ByMember == nil {
		if actor := ctxutil.ActorFromContext(ctx); actor != "" {
			activity.ByMember = s.actorMember(actor)
		}
	}
	return s.SetState(ctx, board.RecordActivity{Activity: activity})
}

func (s *BoardStoreImpl) actorMember(actor string) *models.Member {
	for _, m := range s.state.Members() {
		if m.ID == actor || m.Username == actor {
			return &m
		}
	}
	return &models.Member{ID: actor, Username: actor, Fullname: actor}
}

// ToggleStarred stars or unstars a board. An empty id means the current board.
func (s *BoardStoreImpl) ToggleStarred(ctx context.Context, boardID string) error {
	if cur := s.state.Board(); cur != nil && (boardID == "" || boardID == cur.ID) {
		return s.SetState(ctx, board.ToggleStarred{})
	}

	listed, ok := s.state.FindBoard(boardID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrBoardNotFound, boardID)
	}
	listed.IsStarred = !listed.IsStarred

	s.state.CaptureSnapshot()
	if err := s.PersistCurrentBoard(ctx, listed); err != nil {
		return err
	}
	return s.state.ApplyBoardChange(primary.ChangeUpdate, listed)
}

// OnColumnDrop reorders the current board's groups.
func (s *BoardStoreImpl) OnColumnDrop(ctx context.Context, drop dnd.DropResult[models.Group]) error {
	if drop.IsNoop() {
		return nil
	}
	drop.Payload = drop.Payload.Clone()

	before, after, err := s.state.Replace(func(cur *models.Board) (*models.Board, error) {
		next := cur.Clone()
		groups, err := dnd.Apply(next.Groups, drop)
		if err != nil {
			return nil, dropFailed(err)
		}
		next.Groups = groups
		return next, nil
	})
	if err != nil {
		return fmt.Errorf("failed to reorder groups: %w", err)
	}
	return s.commit(ctx, "column_drop", before, after)
}

// OnCardDrop reorders one group's tasks. A drop that touches neither index is ignored.
//
// A move between groups arrives as two drops, one per group, and each is
// committed on its own. When the source drop has been saved and the
// destination save fails, only the destination is rolled back: the task stays
// removed from the source both locally and in persistence.
func (s *BoardStoreImpl) OnCardDrop(ctx context.Context, groupID string, drop dnd.DropResult[models.Task]) error {
	if drop.IsNoop() {
		return nil
	}
	drop.Payload = drop.Payload.Clone()

	before, after, err := s.state.Replace(func(cur *models.Board) (*models.Board, error) {
		idx := cur.GroupIndex(groupID)
		if idx < 0 {
			return nil, fmt.Errorf("%w: %s", board.ErrGroupNotFound, groupID)
		}
		group := cur.Groups[idx].Clone()
		tasks, err := dnd.Apply(group.Tasks, drop)
		if err != nil {
			return nil, dropFailed(err)
		}
		group.Tasks = tasks
		next, _, err := board.Apply(cur, board.ReplaceGroupAtIndex{Index: idx, Group: group}, board.Env{})
		return next, err
	})
	if err != nil {
		return fmt.Errorf("failed to reorder tasks: %w", err)
	}
	return s.commit(ctx, "card_drop", before, after)
}

// UpdateGroups persists a new group list through the legacy path and makes
// the returned board current.
func (s *BoardStoreImpl) UpdateGroups(ctx context.Context, groups []models.Group) error {
	saved, err := s.repo.UpdateGroups(ctx, groups)
	if err != nil {
		return s.persistFailed("update_groups", "", err)
	}
	s.state.SetCurrentBoard(saved)
	s.state.SyncListed(saved)
	return nil
}

// ClearCurrentBoard drops the current board.
func (s *BoardStoreImpl) ClearCurrentBoard() {
	s.state.ClearCurrentBoard()
}

// SetCurrentTask focuses a task of the current board.
func (s *BoardStoreImpl) SetCurrentTask(groupID, taskID string) error {
	return s.state.SetCurrentTask(groupID, taskID)
}

// Search records and returns tasks whose title matches query.
func (s *BoardStoreImpl) Search(query string) []models.Task {
	return s.state.Search(query)
}

// SetMemberDrag records whether a member avatar is being dragged.
func (s *BoardStoreImpl) SetMemberDrag(isDrag bool) {
	s.state.SetMemberDrag(isDrag)
}

// Boards returns all non-template boards.
func (s *BoardStoreImpl) Boards() []*models.Board { return s.state.Boards() }

// TemplateBoards returns only template boards.
func (s *BoardStoreImpl) TemplateBoards() []*models.Board { return s.state.TemplateBoards() }

// Board returns a copy of the current board, or nil.
func (s *BoardStoreImpl) Board() *models.Board { return s.state.Board() }

// CurrentTask resolves the focused task against the current board.
func (s *BoardStoreImpl) CurrentTask() (*models.Group, *models.Task, bool) {
	return s.state.CurrentTask()
}

// SearchResults returns the last search result.
func (s *BoardStoreImpl) SearchResults() []models.Task { return s.state.SearchResults() }

// IsMemberDrag reports the member drag flag.
func (s *BoardStoreImpl) IsMemberDrag() bool { return s.state.IsMemberDrag() }

// commit persists after and rolls back to before when persistence fails.
func (s *BoardStoreImpl) commit(ctx context.Context, action string, before, after *models.Board) error {
	if _, err := s.repo.SaveBoard(ctx, after); err != nil {
		log := s.logger.WithFields(logrus.Fields{"action": action, "board_id": after.ID})
		if s.state.RestoreIfCurrent(after, before) {
			log.Warn("rolled back after failed save")
		} else {
			log.Warn("rollback skipped: board changed since")
		}
		return s.persistFailed(action, after.ID, err)
	}
	s.state.SyncListed(after)
	return nil
}

// dropFailed maps reorder index errors into the board lookup errors.
func dropFailed(err error) error {
	if errors.Is(err, dnd.ErrIndexOutOfRange) {
		return fmt.Errorf("%w: %w", board.ErrIndexOutOfRange, err)
	}
	return err
}

func (s *BoardStoreImpl) persistFailed(action, boardID string, err error) error {
	wrapped := fmt.Errorf("failed to %s: %w: %w", action, primary.ErrPersistence, err)
	s.logger.WithFields(logrus.Fields{"action": action, "board_id": boardID}).WithError(err).Error("persistence failed")
	s.report(wrapped)
	return wrapped
}

func (s *BoardStoreImpl) localFailed(action, boardID string, err error) error {
	wrapped := fmt.Errorf("failed to %s: %w", action, err)
	s.logger.WithFields(logrus.Fields{"action": action, "board_id": boardID}).WithError(err).Error("local change failed")
	s.report(wrapped)
	return wrapped
}
