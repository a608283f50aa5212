package board

import (
	"fmt"
	"slices"

	"github.com/example/taskboard/internal/models"
)

// Progress returns the share of done todos as a floored percentage string.
// An empty list has no progress and yields "".
func Progress(l models.TodoList) string {
	total := len(l.Todos)
	if total == 0 {
		return ""
	}
	return fmt.Sprintf("%d%%", l.DoneCount()*100/total)
}

func (r TaskRef) locateList(b *models.Board, listID string) (*models.Task, *models.TodoList, error) {
	_, t, err := r.locate(b)
	if err != nil {
		return nil, nil, err
	}
	idx := t.TodoListIndex(listID)
	if idx < 0 {
		return nil, nil, notFound(ErrTodoListNotFound, listID)
	}
	return t, &t.TodoLists[idx], nil
}

// CreateTodoList appends an empty todo list to a task.
type CreateTodoList struct {
	TaskRef
	Title string
}

func (CreateTodoList) Name() string { return "create_todo_list" }

func (m CreateTodoList) apply(b *models.Board, env Env) (*Focus, error) {
	_, t, err := m.locate(b)
	if err != nil {
		return nil, err
	}
	t.TodoLists = append(t.TodoLists, models.TodoList{
		ID:    env.NewID(),
		Title: m.Title,
		Todos: []models.Todo{},
	})
	return m.focus(), nil
}

// AddTodo appends an undone todo to a list and refreshes its progress.
type AddTodo struct {
	TaskRef
	ListID string
	Title  string
}

func (AddTodo) Name() string { return "add_todo" }

func (m AddTodo) apply(b *models.Board, env Env) (*Focus, error) {
	_, list, err := m.locateList(b, m.ListID)
	if err != nil {
		return nil, err
	}
	list.Todos = append(list.Todos, models.Todo{ID: env.NewID(), Title: m.Title})
	list.Progress = Progress(*list)
	return m.focus(), nil
}

// ToggleTodo flips a todo and recomputes its list's progress.
type ToggleTodo struct {
	TaskRef
	ListID string
	TodoID string
}

func (ToggleTodo) Name() string { return "toggle_todo" }

func (m ToggleTodo) apply(b *models.Board, _ Env) (*Focus, error) {
	_, list, err := m.locateList(b, m.ListID)
	if err != nil {
		return nil, err
	}
	idx := slices.IndexFunc(list.Todos, func(td models.Todo) bool { return td.ID == m.TodoID })
	if idx < 0 {
		return nil, notFound(ErrTodoNotFound, m.TodoID)
	}
	list.Todos[idx].IsDone = !list.Todos[idx].IsDone
	list.Progress = Progress(*list)
	return m.focus(), nil
}

// DeleteTodoList removes a todo list from a task.
type DeleteTodoList struct {
	TaskRef
	ListID string
}

func (DeleteTodoList) Name() string { return "delete_todo_list" }

func (m DeleteTodoList) apply(b *models.Board, _ Env) (*Focus, error) {
	t, _, err := m.locateList(b, m.ListID)
	if err != nil {
		return nil, err
	}
	idx := t.TodoListIndex(m.ListID)
	t.TodoLists = slices.Delete(t.TodoLists, idx, idx+1)
	return m.focus(), nil
}

// ToggleHideChecked flips whether done todos are hidden.
type ToggleHideChecked struct {
	TaskRef
	ListID string
}

func (ToggleHideChecked) Name() string { return "toggle_hide_checked" }

func (m ToggleHideChecked) apply(b *models.Board, _ Env) (*Focus, error) {
	_, list, err := m.locateList(b, m.ListID)
	if err != nil {
		return nil, err
	}
	list.CheckedHidden = !list.CheckedHidden
	return m.focus(), nil
}
