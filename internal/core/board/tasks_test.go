package board

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/example/taskboard/internal/models"
)

func TestAddTask(t *testing.T) {
	b, focus := mustApply(t, newTestBoard(), AddTask{GroupID: "g2", Task: models.Task{Title: "New"}}, testEnv())

	if focus != nil {
		t.Error("adding a task should not move focus")
	}
	tasks := b.Groups[1].Tasks
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	added := tasks[1]
	if added.ID != "id-1" || added.Title != "New" {
		t.Errorf("unexpected task %+v", added)
	}
	if added.CreatedAt != 1_700_000_000_000 {
		t.Errorf("CreatedAt = %d", added.CreatedAt)
	}
	if added.LabelIDs == nil || added.MemberIDs == nil {
		t.Error("expected empty, non-nil id slices")
	}
}

func TestTaskFieldEdits_RefreshFocus(t *testing.T) {
	ref := TaskRef{GroupID: "g1", TaskID: "t2"}
	due := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		m     Mutation
		check func(t *testing.T, task models.Task)
	}{
		{"title", EditTaskTitle{TaskRef: ref, Title: "T"}, func(t *testing.T, task models.Task) {
			if task.Title != "T" {
				t.Errorf("Title = %q", task.Title)
			}
		}},
		{"description", SetDescription{TaskRef: ref, Description: "D"}, func(t *testing.T, task models.Task) {
			if task.Description != "D" {
				t.Errorf("Description = %q", task.Description)
			}
		}},
		{"due date", SetDueDate{TaskRef: ref, DueDate: &due}, func(t *testing.T, task models.Task) {
			if task.DueDate == nil || !task.DueDate.Equal(due) {
				t.Errorf("DueDate = %v", task.DueDate)
			}
		}},
		{"cover", SetCover{TaskRef: ref, Cover: &models.Cover{Color: "green"}}, func(t *testing.T, task models.Task) {
			if task.Cover == nil || task.Cover.Color != "green" {
				t.Errorf("Cover = %+v", task.Cover)
			}
		}},
		{"attachment", AddAttachment{TaskRef: ref, Attachment: models.Attachment{URL: "http://x"}}, func(t *testing.T, task models.Task) {
			if len(task.Attachments) != 1 || task.Attachments[0].URL != "http://x" {
				t.Errorf("Attachments = %+v", task.Attachments)
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, focus := mustApply(t, newTestBoard(), tt.m, testEnv())
			if focus == nil || *focus != (Focus{GroupID: "g1", TaskID: "t2"}) {
				t.Errorf("focus = %+v", focus)
			}
			tt.check(t, b.Groups[0].Tasks[1])
		})
	}
}

func TestSetCover_Reset(t *testing.T) {
	env := testEnv()
	ref := TaskRef{GroupID: "g1", TaskID: "t1"}
	b, _ := mustApply(t, newTestBoard(), SetCover{TaskRef: ref, Cover: &models.Cover{Color: "red"}}, env)
	b, _ = mustApply(t, b, SetCover{TaskRef: ref, Cover: ResetCover}, env)

	if b.Groups[0].Tasks[0].Cover != nil {
		t.Errorf("expected cover cleared, got %+v", b.Groups[0].Tasks[0].Cover)
	}
}

func TestSetDueDate_Clear(t *testing.T) {
	env := testEnv()
	ref := TaskRef{GroupID: "g1", TaskID: "t1"}
	due := time.Now()
	b, _ := mustApply(t, newTestBoard(), SetDueDate{TaskRef: ref, DueDate: &due}, env)
	b, _ = mustApply(t, b, SetDueDate{TaskRef: ref}, env)

	if b.Groups[0].Tasks[0].DueDate != nil {
		t.Error("expected due date cleared")
	}
}

func TestRemoveAttachment(t *testing.T) {
	env := testEnv()
	ref := TaskRef{GroupID: "g1", TaskID: "t1"}
	b := newTestBoard()
	for _, url := range []string{"a", "b", "c"} {
		b, _ = mustApply(t, b, AddAttachment{TaskRef: ref, Attachment: models.Attachment{URL: url}}, env)
	}

	b, _ = mustApply(t, b, RemoveAttachment{TaskRef: ref, Index: 1}, env)

	atts := b.Groups[0].Tasks[0].Attachments
	if len(atts) != 2 || atts[0].URL != "a" || atts[1].URL != "c" {
		t.Errorf("Attachments = %+v", atts)
	}
}

func TestArchiveTask(t *testing.T) {
	b, _ := mustApply(t, newTestBoard(), ArchiveTask{TaskRef: TaskRef{GroupID: "g1", TaskID: "t1"}}, testEnv())
	if got := taskIDs(b.Groups[0]); !reflect.DeepEqual(got, []string{"t2"}) {
		t.Errorf("tasks = %v", got)
	}
}

func TestArchiveAllTasks(t *testing.T) {
	b, _ := mustApply(t, newTestBoard(), ArchiveAllTasks{GroupID: "g1"}, testEnv())
	if b.Groups[0].Tasks == nil || len(b.Groups[0].Tasks) != 0 {
		t.Errorf("expected empty task list, got %v", b.Groups[0].Tasks)
	}
	if len(b.Groups[1].Tasks) != 1 {
		t.Error("other groups must be untouched")
	}
}

func TestMoveTask(t *testing.T) {
	tests := []struct {
		name      string
		m         MoveTask
		wantG1    []string
		wantG2    []string
		wantFocus Focus
	}{
		{
			name:      "across groups to end",
			m:         MoveTask{From: TaskRef{GroupID: "g1", TaskID: "t1"}, ToGroup: "g2", Index: 1},
			wantG1:    []string{"t2"},
			wantG2:    []string{"t3", "t1"},
			wantFocus: Focus{GroupID: "g2", TaskID: "t1"},
		},
		{
			name:      "across groups to front",
			m:         MoveTask{From: TaskRef{GroupID: "g2", TaskID: "t3"}, ToGroup: "g1", Index: 0},
			wantG1:    []string{"t3", "t1", "t2"},
			wantG2:    []string{},
			wantFocus: Focus{GroupID: "g1", TaskID: "t3"},
		},
		{
			name:      "within a group",
			m:         MoveTask{From: TaskRef{GroupID: "g1", TaskID: "t1"}, ToGroup: "g1", Index: 1},
			wantG1:    []string{"t2", "t1"},
			wantG2:    []string{"t3"},
			wantFocus: Focus{GroupID: "g1", TaskID: "t1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, focus := mustApply(t, newTestBoard(), tt.m, testEnv())
			if got := taskIDs(b.Groups[0]); !reflect.DeepEqual(got, tt.wantG1) {
				t.Errorf("g1 = %v, want %v", got, tt.wantG1)
			}
			if got := taskIDs(b.Groups[1]); !reflect.DeepEqual(got, tt.wantG2) {
				t.Errorf("g2 = %v, want %v", got, tt.wantG2)
			}
			if focus == nil || *focus != tt.wantFocus {
				t.Errorf("focus = %+v, want %+v", focus, tt.wantFocus)
			}
		})
	}
}

func TestMoveTask_IndexOutOfRange(t *testing.T) {
	_, _, err := Apply(newTestBoard(), MoveTask{From: TaskRef{GroupID: "g1", TaskID: "t1"}, ToGroup: "g1", Index: 2}, testEnv())
	if !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange, got %v", err)
	}
}
