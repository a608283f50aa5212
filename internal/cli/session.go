package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/example/taskboard/internal/core/board"
	"github.com/example/taskboard/internal/ctxutil"
	"github.com/example/taskboard/internal/models"
	"github.com/example/taskboard/internal/ports/primary"
	"github.com/example/taskboard/internal/ports/secondary"
	"github.com/example/taskboard/internal/wire"
)

// commandContext returns the context every command runs with, carrying the
// configured member as the actor for activity entries.
func commandContext() context.Context {
	return ctxutil.WithActorID(context.Background(), wire.Config().Member)
}

// openBoard loads the board list and makes the last-viewed board current.
func openBoard(ctx context.Context, store primary.BoardStore) error {
	if err := store.LoadBoards(ctx); err != nil {
		return fmt.Errorf("failed to load boards: %w", err)
	}
	if store.Board() != nil {
		return nil
	}
	if _, err := store.RestoreLastBoard(ctx); err != nil {
		if errors.Is(err, secondary.ErrNotFound) {
			return fmt.Errorf("no board selected: run 'taskboard board use <id>'")
		}
		return fmt.Errorf("failed to open board: %w", err)
	}
	return nil
}

// locateTask finds the group holding taskID on the current board.
func locateTask(store primary.BoardStore, taskID string) (board.TaskRef, *models.Task, error) {
	b := store.Board()
	if b == nil {
		return board.TaskRef{}, nil, fmt.Errorf("no board selected")
	}
	for _, g := range b.Groups {
		if t := g.FindTask(taskID); t != nil {
			return board.TaskRef{GroupID: g.ID, TaskID: taskID}, t, nil
		}
	}
	return board.TaskRef{}, nil, fmt.Errorf("task %s not found on board %s", taskID, b.ID)
}

// mutate applies m to the current board and, when txt is set, records an
// activity entry for it.
func mutate(ctx context.Context, store primary.BoardStore, m board.Mutation, act *models.Activity) error {
	if err := store.SetState(ctx, m); err != nil {
		return fmt.Errorf("failed to %s: %w", m.Name(), err)
	}
	if act == nil {
		return nil
	}
	if err := store.RecordActivity(ctx, *act); err != nil {
		return fmt.Errorf("failed to record activity: %w", err)
	}
	return nil
}

// taskActivity builds the activity entry for a change made to task t.
func taskActivity(txt string, ref board.TaskRef, t *models.Task) *models.Activity {
	return &models.Activity{
		Txt:     txt,
		Task:    &models.TaskSummary{ID: t.ID, Title: t.Title},
		GroupID: ref.GroupID,
	}
}
