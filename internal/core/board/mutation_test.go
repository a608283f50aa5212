package board

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/example/taskboard/internal/models"
)

func testEnv() Env {
	n := 0
	return Env{
		NewID: func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		},
		Now: func() time.Time { return time.UnixMilli(1_700_000_000_000) },
	}
}

func newTestBoard() *models.Board {
	return &models.Board{
		ID:      "b1",
		Title:   "Board",
		Members: []models.Member{{ID: "m1", Fullname: "Ada"}, {ID: "m2", Fullname: "Bob"}},
		Labels: []models.Label{
			{ID: "l1", Color: "#111111"},
			{ID: "l2", Color: "#222222"},
			{ID: "l3", Color: "#333333"},
			{ID: "l4", Color: "#444444"},
			{ID: "l5", Color: "#555555"},
		},
		Groups: []models.Group{
			{ID: "g1", Title: "Todo", Tasks: []models.Task{
				{ID: "t1", Title: "First", CreatedAt: 3, LabelIDs: []string{}, MemberIDs: []string{}},
				{ID: "t2", Title: "second", CreatedAt: 1, LabelIDs: []string{}, MemberIDs: []string{}},
			}},
			{ID: "g2", Title: "Doing", Tasks: []models.Task{
				{ID: "t3", Title: "Third", CreatedAt: 2, LabelIDs: []string{}, MemberIDs: []string{}},
			}},
		},
	}
}

func mustApply(t *testing.T, b *models.Board, m Mutation, env Env) (*models.Board, *Focus) {
	t.Helper()
	next, focus, err := Apply(b, m, env)
	if err != nil {
		t.Fatalf("%s failed: %v", m.Name(), err)
	}
	return next, focus
}

func taskIDs(g models.Group) []string {
	ids := make([]string, len(g.Tasks))
	for i, task := range g.Tasks {
		ids[i] = task.ID
	}
	return ids
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	b := newTestBoard()
	before := b.Clone()

	next, _ := mustApply(t, b, EditTaskTitle{TaskRef: TaskRef{GroupID: "g1", TaskID: "t1"}, Title: "renamed"}, testEnv())

	if !reflect.DeepEqual(b, before) {
		t.Error("input board was modified")
	}
	if next.Groups[0].Tasks[0].Title != "renamed" {
		t.Errorf("expected renamed task, got %q", next.Groups[0].Tasks[0].Title)
	}
}

func TestApply_NilBoard(t *testing.T) {
	_, _, err := Apply(nil, RenameBoard{Title: "x"}, testEnv())
	if !errors.Is(err, ErrNoBoard) {
		t.Errorf("expected ErrNoBoard, got %v", err)
	}
}

func TestApply_LookupFailuresLeaveBoardUntouched(t *testing.T) {
	ref := TaskRef{GroupID: "g1", TaskID: "missing"}
	tests := []struct {
		name    string
		m       Mutation
		wantErr error
	}{
		{"edit title unknown task", EditTaskTitle{TaskRef: ref}, ErrTaskNotFound},
		{"description unknown group", SetDescription{TaskRef: TaskRef{GroupID: "gx", TaskID: "t1"}}, ErrGroupNotFound},
		{"archive group unknown", ArchiveGroup{GroupID: "gx"}, ErrGroupNotFound},
		{"upsert group unknown id", UpsertGroup{Group: models.Group{ID: "gx"}}, ErrGroupNotFound},
		{"archive task unknown", ArchiveTask{TaskRef: ref}, ErrTaskNotFound},
		{"toggle member unknown member", ToggleMember{TaskRef: TaskRef{GroupID: "g1", TaskID: "t1"}, MemberID: "m9"}, ErrMemberNotFound},
		{"toggle label undefined", ToggleLabel{TaskRef: TaskRef{GroupID: "g1", TaskID: "t1"}, LabelID: "l9"}, ErrLabelNotFound},
		{"upsert label unknown id", UpsertLabel{Label: models.Label{ID: "l9"}}, ErrLabelNotFound},
		{"todo in unknown list", AddTodo{TaskRef: TaskRef{GroupID: "g1", TaskID: "t1"}, ListID: "x"}, ErrTodoListNotFound},
		{"remove attachment out of range", RemoveAttachment{TaskRef: TaskRef{GroupID: "g1", TaskID: "t1"}, Index: 0}, ErrAttachmentNotFound},
		{"replace group out of range", ReplaceGroupAtIndex{Index: 5}, ErrIndexOutOfRange},
		{"sort unknown order", SortGroupTasks{GroupID: "g1", SortBy: "random"}, ErrInvalidSort},
		{"watch unknown target", ToggleWatch{Target: "board"}, ErrInvalidWatch},
		{"background with number", SetBackground{Color: 42}, ErrInvalidColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBoard()
			got, focus, err := Apply(b, tt.m, testEnv())
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if got != b {
				t.Error("expected the original board back on failure")
			}
			if focus != nil {
				t.Error("expected no focus on failure")
			}
		})
	}
}

func TestLookupErrorsShareRoot(t *testing.T) {
	for _, err := range []error{ErrGroupNotFound, ErrTaskNotFound, ErrLabelNotFound, ErrMemberNotFound, ErrTodoListNotFound, ErrTodoNotFound, ErrAttachmentNotFound, ErrIndexOutOfRange} {
		if !errors.Is(err, ErrLookup) {
			t.Errorf("%v does not wrap ErrLookup", err)
		}
	}
}

func TestResolve(t *testing.T) {
	b := newTestBoard()
	g, task, err := Resolve(b, Focus{GroupID: "g2", TaskID: "t3"})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if g.ID != "g2" || task.ID != "t3" {
		t.Errorf("resolved %s/%s", g.ID, task.ID)
	}
	if _, _, err := Resolve(b, Focus{GroupID: "g2", TaskID: "t1"}); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}
