// Package board contains the pure mutation catalogue for a single board.
// Mutations are data: each value describes one state transition, and Apply
// runs it against a deep copy so the input board is never modified.
package board

import (
	"time"

	"github.com/example/taskboard/internal/models"
)

// Mutation is one entry of the fixed mutation catalogue.
// The apply method is unexported so the catalogue cannot be extended outside this package.
type Mutation interface {
	// Name returns the stable action name used in logs and errors.
	Name() string

	apply(b *models.Board, env Env) (*Focus, error)
}

// Env carries the impure inputs a mutation may need.
type Env struct {
	NewID func() string
	Now   func() time.Time
}

func (e Env) now() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}

// Focus identifies the task shown in the detail view.
// It holds ids only and is re-resolved against the current board on every read.
type Focus struct {
	GroupID string
	TaskID  string
}

// Apply runs m against a copy of b.
// On success it returns the new board and, for task-targeting mutations, the
// focus to refresh. On failure it returns b itself and the error; nothing is
// partially applied.
func Apply(b *models.Board, m Mutation, env Env) (*models.Board, *Focus, error) {
	if b == nil {
		return nil, nil, ErrNoBoard
	}
	next := b.Clone()
	focus, err := m.apply(next, env)
	if err != nil {
		return b, nil, err
	}
	return next, focus, nil
}

// Resolve looks up the group and task a focus points at.
func Resolve(b *models.Board, f Focus) (*models.Group, *models.Task, error) {
	if b == nil {
		return nil, nil, ErrNoBoard
	}
	g := b.FindGroup(f.GroupID)
	if g == nil {
		return nil, nil, notFound(ErrGroupNotFound, f.GroupID)
	}
	t := g.FindTask(f.TaskID)
	if t == nil {
		return nil, nil, notFound(ErrTaskNotFound, f.TaskID)
	}
	return g, t, nil
}

// TaskRef addresses a task through its group.
type TaskRef struct {
	GroupID string
	TaskID  string
}

func (r TaskRef) locate(b *models.Board) (*models.Group, *models.Task, error) {
	return Resolve(b, Focus(r))
}

func (r TaskRef) focus() *Focus {
	f := Focus(r)
	return &f
}
