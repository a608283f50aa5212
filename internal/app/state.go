package app

import (
	"fmt"
	"slices"
	"sync"

	"github.com/example/taskboard/internal/core/board"
	"github.com/example/taskboard/internal/core/search"
	"github.com/example/taskboard/internal/models"
	"github.com/example/taskboard/internal/ports/primary"
)

// ErrBoardNotFound is returned when a board change names an unknown board.
var ErrBoardNotFound = fmt.Errorf("board not found: %w", board.ErrLookup)

// State holds the board list, the current board, the focused task, the
// single snapshot slot and a few view flags. Every method runs under one lock,
// so no caller can observe a half-applied change. Boards stored here are never
// modified in place; each change installs a new board value.
type State struct {
	mu sync.RWMutex

	env        board.Env
	boards     []*models.Board
	current    *models.Board
	focus      *board.Focus
	snapshot   *models.Board
	snapFocus  *board.Focus
	// swapFocus is the focus in effect before the last swap installed current.
	swapFocus  *board.Focus
	searchRes  []models.Task
	memberDrag bool
}

// NewState creates an empty state. env supplies ids and time to mutations.
func NewState(env board.Env) *State {
	return &State{env: env}
}

// ReplaceBoardList installs a new board list wholesale.
func (s *State) ReplaceBoardList(boards []*models.Board) {
	list := make([]*models.Board, len(boards))
	for i, b := range boards {
		list[i] = b.Clone()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.boards = list
}

// SetCurrentBoard makes b the current board.
func (s *State) SetCurrentBoard(b *models.Board) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = b.Clone()
}

// ClearCurrentBoard drops the current board and its focus.
func (s *State) ClearCurrentBoard() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	s.focus = nil
}

// ApplyBoardChange applies a board-level change to the board list.
// add appends and makes the board current; update replaces by id in place;
// remove deletes by id; set only moves the current pointer.
func (s *State) ApplyBoardChange(change primary.BoardChange, b *models.Board) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch change {
	case primary.ChangeAdd:
		s.boards = append(s.boards, b.Clone())
		s.current = b.Clone()
	case primary.ChangeUpdate:
		idx := s.boardIndex(b.ID)
		if idx < 0 {
			return fmt.Errorf("%w: %s", ErrBoardNotFound, b.ID)
		}
		s.boards[idx] = b.Clone()
		if s.current != nil && s.current.ID == b.ID {
			s.current = b.Clone()
		}
	case primary.ChangeRemove:
		idx := s.boardIndex(b.ID)
		if idx < 0 {
			return fmt.Errorf("%w: %s", ErrBoardNotFound, b.ID)
		}
		s.boards = slices.Delete(s.boards, idx, idx+1)
		if s.current != nil && s.current.ID == b.ID {
			s.current = nil
			s.focus = nil
		}
	case primary.ChangeSet:
		s.current = b.Clone()
	default:
		return fmt.Errorf("unknown board change %q: %w", change, board.ErrInvalid)
	}
	return nil
}

// SyncListed refreshes the board list entry sharing b's id, if any.
// The current board is left alone.
func (s *State) SyncListed(b *models.Board) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx := s.boardIndex(b.ID); idx >= 0 {
		s.boards[idx] = b.Clone()
	}
}

func (s *State) boardIndex(id string) int {
	return slices.IndexFunc(s.boards, func(b *models.Board) bool { return b.ID == id })
}

// CaptureSnapshot copies the current board into the snapshot slot.
func (s *State) CaptureSnapshot() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = s.current
	s.snapFocus = s.focus
}

// RestoreSnapshot puts the snapshot back as the current board, together with
// the focus captured with it.
// It reports false when nothing was captured.
func (s *State) RestoreSnapshot() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snapshot == nil {
		return false
	}
	s.current = s.snapshot
	s.focus = s.snapFocus
	return true
}

// Dispatch applies one mutation to the current board. It returns the board
// before and after the change; the pair is the caller's transaction token.
func (s *State) Dispatch(m board.Mutation) (before, after *models.Board, err error) {
	return s.swap(func(cur *models.Board) (*models.Board, *board.Focus, error) {
		return board.Apply(cur, m, s.env)
	})
}

// Replace installs the board computed by fn from the current board.
// fn receives the live current board and must not modify it.
func (s *State) Replace(fn func(cur *models.Board) (*models.Board, error)) (before, after *models.Board, err error) {
	return s.swap(func(cur *models.Board) (*models.Board, *board.Focus, error) {
		if cur == nil {
			return nil, nil, board.ErrNoBoard
		}
		next, err := fn(cur)
		return next, nil, err
	})
}

func (s *State) swap(fn func(cur *models.Board) (*models.Board, *board.Focus, error)) (*models.Board, *models.Board, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.current
	after, focus, err := fn(before)
	if err != nil {
		return nil, nil, err
	}
	s.snapshot = before
	s.snapFocus = s.focus
	s.swapFocus = s.focus
	s.current = after
	if focus != nil {
		s.focus = focus
	}
	return before, after, nil
}

// RestoreIfCurrent rolls back to prev, and to the focus held before expected
// was installed, only while expected is still the current board. It reports whether the rollback happened; false means a
// later change superseded expected.
func (s *State) RestoreIfCurrent(expected, prev *models.Board) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current != expected {
		return false
	}
	s.current = prev
	s.focus = s.swapFocus
	return true
}

// SetCurrentTask focuses a task of the current board.
func (s *State) SetCurrentTask(groupID, taskID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f := board.Focus{GroupID: groupID, TaskID: taskID}
	if _, _, err := board.Resolve(s.current, f); err != nil {
		return err
	}
	s.focus = &f
	return nil
}

// CurrentTask resolves the focus against the current board.
func (s *State) CurrentTask() (*models.Group, *models.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.focus == nil {
		return nil, nil, false
	}
	g, t, err := board.Resolve(s.current, *s.focus)
	if err != nil {
		return nil, nil, false
	}
	group := g.Clone()
	task := t.Clone()
	return &group, &task, true
}

// Focus returns the raw focus ids, if any.
func (s *State) Focus() (board.Focus, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.focus == nil {
		return board.Focus{}, false
	}
	return *s.focus, true
}

// Search records and returns the tasks of the current board matching query.
func (s *State) Search(query string) []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchRes = search.Titles(s.current, query)
	return cloneTasks(s.searchRes)
}

// SearchResults returns the last search result.
func (s *State) SearchResults() []models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneTasks(s.searchRes)
}

// SetMemberDrag records whether a member avatar is being dragged.
func (s *State) SetMemberDrag(isDrag bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.memberDrag = isDrag
}

// IsMemberDrag reports the member drag flag.
func (s *State) IsMemberDrag() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.memberDrag
}

// Boards returns copies of all non-template boards.
func (s *State) Boards() []*models.Board {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneBoards(models.NonTemplate(s.boards))
}

// TemplateBoards returns copies of the template boards.
func (s *State) TemplateBoards() []*models.Board {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneBoards(models.Templates(s.boards))
}

// FindBoard returns a copy of the listed board with the given id.
func (s *State) FindBoard(id string) (*models.Board, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx := s.boardIndex(id)
	if idx < 0 {
		return nil, false
	}
	return s.boards[idx].Clone(), true
}

// Board returns a copy of the current board, or nil.
func (s *State) Board() *models.Board {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Clone()
}

// Members returns the current board's members.
func (s *State) Members() []models.Member {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	return slices.Clone(s.current.Members)
}

// Labels returns the current board's label definitions.
func (s *State) Labels() []models.Label {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	return slices.Clone(s.current.Labels)
}

// Groups returns the current board's groups.
func (s *State) Groups() []models.Group {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	return s.current.Clone().Groups
}

// Activities returns the current board's activity feed, newest first.
func (s *State) Activities() []models.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	return s.current.Clone().Activities
}

// CreatedBy returns the member who created the current board.
func (s *State) CreatedBy() *models.Member {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil || s.current.CreatedBy == nil {
		return nil
	}
	m := *s.current.CreatedBy
	return &m
}

func cloneBoards(boards []*models.Board) []*models.Board {
	out := make([]*models.Board, len(boards))
	for i, b := range boards {
		out[i] = b.Clone()
	}
	return out
}

func cloneTasks(tasks []models.Task) []models.Task {
	if tasks == nil {
		return nil
	}
	out := make([]models.Task, len(tasks))
	for i, t := range tasks {
		out[i] = t.Clone()
	}
	return out
}
