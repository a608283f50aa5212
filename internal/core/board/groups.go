package board

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/example/taskboard/internal/models"
)

// SortBy selects the order used by SortGroupTasks.
type SortBy string

const (
	SortAlphabet SortBy = "alphabet"
	SortOldest   SortBy = "oldest"
	SortNewest   SortBy = "newest"
)

// UpsertGroup appends a group with a fresh id when it has none, otherwise
// replaces the group with the same id in place.
type UpsertGroup struct {
	Group models.Group
}

func (UpsertGroup) Name() string { return "upsert_group" }

func (m UpsertGroup) apply(b *models.Board, env Env) (*Focus, error) {
	group := m.Group.Clone()
	if group.ID == "" {
		group.ID = env.NewID()
		b.Groups = append(b.Groups, group)
		return nil, nil
	}

	idx := b.GroupIndex(group.ID)
	if idx < 0 {
		return nil, notFound(ErrGroupNotFound, group.ID)
	}
	b.Groups[idx] = group
	return nil, nil
}

// DuplicateGroup appends a copy of the group under a fresh id.
type DuplicateGroup struct {
	Group models.Group
}

func (DuplicateGroup) Name() string { return "duplicate_group" }

func (m DuplicateGroup) apply(b *models.Board, env Env) (*Focus, error) {
	group := m.Group.Clone()
	group.ID = env.NewID()
	b.Groups = append(b.Groups, group)
	return nil, nil
}

// ArchiveGroup removes a group.
type ArchiveGroup struct {
	GroupID string
}

func (ArchiveGroup) Name() string { return "archive_group" }

func (m ArchiveGroup) apply(b *models.Board, _ Env) (*Focus, error) {
	idx := b.GroupIndex(m.GroupID)
	if idx < 0 {
		return nil, notFound(ErrGroupNotFound, m.GroupID)
	}
	b.Groups = slices.Delete(b.Groups, idx, idx+1)
	return nil, nil
}

// SortGroupTasks reorders a group's tasks. Alphabet uses locale-aware
// collation of titles; oldest and newest order by creation time. The sort is
// stable so equal keys keep their relative order.
type SortGroupTasks struct {
	GroupID string
	SortBy  SortBy
}

func (SortGroupTasks) Name() string { return "sort_group" }

func (m SortGroupTasks) apply(b *models.Board, _ Env) (*Focus, error) {
	g := b.FindGroup(m.GroupID)
	if g == nil {
		return nil, notFound(ErrGroupNotFound, m.GroupID)
	}

	switch m.SortBy {
	case SortAlphabet:
		c := collate.New(language.Und)
		slices.SortStableFunc(g.Tasks, func(x, y models.Task) int {
			return c.CompareString(x.Title, y.Title)
		})
	case SortOldest:
		slices.SortStableFunc(g.Tasks, func(x, y models.Task) int {
			return cmp.Compare(x.CreatedAt, y.CreatedAt)
		})
	case SortNewest:
		slices.SortStableFunc(g.Tasks, func(x, y models.Task) int {
			return cmp.Compare(y.CreatedAt, x.CreatedAt)
		})
	default:
		return nil, ErrInvalidSort
	}
	return nil, nil
}

// ReplaceGroupAtIndex swaps in a group at a position; used after a card drag
// recomputes one group's task order.
type ReplaceGroupAtIndex struct {
	Index int
	Group models.Group
}

func (ReplaceGroupAtIndex) Name() string { return "replace_group_at_index" }

func (m ReplaceGroupAtIndex) apply(b *models.Board, _ Env) (*Focus, error) {
	if m.Index < 0 || m.Index >= len(b.Groups) {
		return nil, ErrIndexOutOfRange
	}
	b.Groups[m.Index] = m.Group.Clone()
	return nil, nil
}

// WatchTarget selects what ToggleWatch flips.
type WatchTarget string

const (
	WatchGroup WatchTarget = "group"
	WatchTask  WatchTarget = "task"
)

// ToggleWatch flips the watched flag of a group or a task.
// TaskID is ignored for group targets.
type ToggleWatch struct {
	Target  WatchTarget
	GroupID string
	TaskID  string
}

func (ToggleWatch) Name() string { return "toggle_watch" }

func (m ToggleWatch) apply(b *models.Board, _ Env) (*Focus, error) {
	switch m.Target {
	case WatchGroup:
		g := b.FindGroup(m.GroupID)
		if g == nil {
			return nil, notFound(ErrGroupNotFound, m.GroupID)
		}
		g.IsWatched = !g.IsWatched
		return nil, nil
	case WatchTask:
		ref := TaskRef{GroupID: m.GroupID, TaskID: m.TaskID}
		_, t, err := ref.locate(b)
		if err != nil {
			return nil, err
		}
		t.IsWatched = !t.IsWatched
		return ref.focus(), nil
	default:
		return nil, ErrInvalidWatch
	}
}
