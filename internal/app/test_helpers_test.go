package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/example/taskboard/internal/core/board"
	"github.com/example/taskboard/internal/models"
	"github.com/example/taskboard/internal/ports/secondary"
)

// ============================================================================
// Mock Implementations
// ============================================================================

// Ensure mockBoardRepository implements the interface
var _ secondary.BoardRepository = (*mockBoardRepository)(nil)

// mockBoardRepository implements secondary.BoardRepository for testing.
type mockBoardRepository struct {
	mu sync.Mutex

	boards    map[string]*models.Board
	currentID string
	saved     []*models.Board
	nextID    int

	queryErr        error
	getErr          error
	saveErr         error
	removeErr       error
	updateGroupsErr error
	setCurrErr      error

	// onSave runs inside SaveBoard before it answers.
	onSave func(b *models.Board)
}

func newMockBoardRepository(boards ...*models.Board) *mockBoardRepository {
	m := &mockBoardRepository{boards: make(map[string]*models.Board)}
	for _, b := range boards {
		m.boards[b.ID] = b.Clone()
	}
	return m
}

func (m *mockBoardRepository) Query(ctx context.Context) ([]*models.Board, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.queryErr != nil {
		return nil, m.queryErr
	}
	var result []*models.Board
	for _, b := range m.boards {
		result = append(result, b.Clone())
	}
	return result, nil
}

func (m *mockBoardRepository) GetByID(ctx context.Context, id string) (*models.Board, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	if b, ok := m.boards[id]; ok {
		return b.Clone(), nil
	}
	return nil, fmt.Errorf("board %s: %w", id, secondary.ErrNotFound)
}

func (m *mockBoardRepository) SaveBoard(ctx context.Context, b *models.Board) (*models.Board, error) {
	if m.onSave != nil {
		m.onSave(b)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return nil, m.saveErr
	}
	saved := b.Clone()
	if saved.ID == "" {
		m.nextID++
		saved.ID = fmt.Sprintf("BOARD-%03d", m.nextID)
	}
	m.boards[saved.ID] = saved
	m.saved = append(m.saved, saved.Clone())
	return saved.Clone(), nil
}

func (m *mockBoardRepository) RemoveBoard(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.removeErr != nil {
		return m.removeErr
	}
	delete(m.boards, id)
	return nil
}

func (m *mockBoardRepository) UpdateGroups(ctx context.Context, groups []models.Group) (*models.Board, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.updateGroupsErr != nil {
		return nil, m.updateGroupsErr
	}
	b, ok := m.boards[m.currentID]
	if !ok {
		return nil, secondary.ErrNotFound
	}
	next := b.Clone()
	next.Groups = groups
	m.boards[next.ID] = next
	return next.Clone(), nil
}

func (m *mockBoardRepository) SetCurrBoard(ctx context.Context, b *models.Board) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.setCurrErr != nil {
		return m.setCurrErr
	}
	m.currentID = b.ID
	return nil
}

func (m *mockBoardRepository) GetCurrBoard(ctx context.Context) (*models.Board, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.boards[m.currentID]
	if !ok {
		return nil, secondary.ErrNotFound
	}
	return b.Clone(), nil
}

func (m *mockBoardRepository) saveCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.saved)
}

// mockIDGenerator hands out sequential ids.
type mockIDGenerator struct {
	mu sync.Mutex
	n  int
}

func (g *mockIDGenerator) MakeID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

// ============================================================================
// Fixtures
// ============================================================================

func testEnv() board.Env {
	ids := &mockIDGenerator{}
	return board.Env{
		NewID: ids.MakeID,
		Now:   func() time.Time { return time.UnixMilli(1_700_000_000_000) },
	}
}

func newTestBoard() *models.Board {
	return &models.Board{
		ID:      "b1",
		Title:   "Board",
		Members: []models.Member{{ID: "m1", Username: "ada", Fullname: "Ada"}, {ID: "m2", Username: "bob", Fullname: "Bob"}},
		Labels:  []models.Label{{ID: "l1", Color: "#111111"}},
		Groups: []models.Group{
			{ID: "g1", Title: "Todo", Tasks: []models.Task{
				{ID: "t1", Title: "First", LabelIDs: []string{}, MemberIDs: []string{}},
				{ID: "t2", Title: "Second", LabelIDs: []string{}, MemberIDs: []string{}},
			}},
			{ID: "g2", Title: "Doing", Tasks: []models.Task{
				{ID: "t3", Title: "Third", LabelIDs: []string{}, MemberIDs: []string{}},
			}},
			{ID: "g3", Title: "Done", Tasks: []models.Task{}},
		},
	}
}
