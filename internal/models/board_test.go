package models

import (
	"strings"
	"testing"
	"time"
)

func sampleBoard() *Board {
	due := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	return &Board{
		ID:        "b1",
		Title:     "Roadmap",
		CreatedBy: &Member{ID: "m1", Fullname: "Ada"},
		Style:     Style{Background: "#fff", AvgColor: &AvgColor{Hexa: "#ffffff"}},
		Members:   []Member{{ID: "m1", Fullname: "Ada"}},
		Labels:    []Label{{ID: "l1", Title: "bug", Color: "#ff0000"}},
		Groups: []Group{
			{
				ID:    "g1",
				Title: "Todo",
				Tasks: []Task{
					{
						ID:        "t1",
						Title:     "Fix bug",
						LabelIDs:  []string{"l1"},
						MemberIDs: []string{"m1"},
						TodoLists: []TodoList{{ID: "tl1", Todos: []Todo{{ID: "td1", Title: "a"}}}},
						DueDate:   &due,
						Cover:     &Cover{Color: "red"},
					},
				},
			},
		},
		Activities: []Activity{{ID: "a1", Txt: "created", Task: &TaskSummary{ID: "t1"}}},
	}
}

func TestBoardClone_IsDeep(t *testing.T) {
	orig := sampleBoard()
	c := orig.Clone()

	c.Title = "changed"
	c.CreatedBy.Fullname = "Bob"
	c.Style.AvgColor.Hexa = "#000000"
	c.Members[0].Fullname = "Bob"
	c.Labels[0].Color = "#00ff00"
	c.Groups[0].Title = "Done"
	task := &c.Groups[0].Tasks[0]
	task.Title = "other"
	task.LabelIDs[0] = "l2"
	task.MemberIDs[0] = "m2"
	task.TodoLists[0].Todos[0].IsDone = true
	*task.DueDate = task.DueDate.Add(time.Hour)
	task.Cover.Color = "blue"
	c.Activities[0].Task.Title = "x"

	if orig.Title != "Roadmap" {
		t.Errorf("title leaked into original")
	}
	if orig.CreatedBy.Fullname != "Ada" || orig.Members[0].Fullname != "Ada" {
		t.Errorf("member leaked into original")
	}
	if orig.Style.AvgColor.Hexa != "#ffffff" {
		t.Errorf("avg color leaked into original")
	}
	if orig.Labels[0].Color != "#ff0000" {
		t.Errorf("label leaked into original")
	}
	ot := orig.Groups[0].Tasks[0]
	if orig.Groups[0].Title != "Todo" || ot.Title != "Fix bug" {
		t.Errorf("group/task leaked into original")
	}
	if ot.LabelIDs[0] != "l1" || ot.MemberIDs[0] != "m1" {
		t.Errorf("task id slices leaked into original")
	}
	if ot.TodoLists[0].Todos[0].IsDone {
		t.Errorf("todo leaked into original")
	}
	if ot.DueDate.Hour() != 0 || ot.Cover.Color != "red" {
		t.Errorf("due date or cover leaked into original")
	}
	if orig.Activities[0].Task.Title != "" {
		t.Errorf("activity leaked into original")
	}
}

func TestBoardClone_Nil(t *testing.T) {
	var b *Board
	if b.Clone() != nil {
		t.Error("expected nil clone of nil board")
	}
}

func TestTemplateViews(t *testing.T) {
	boards := []*Board{
		{ID: "a"},
		{ID: "b", IsTemplate: true},
		{ID: "c"},
	}

	regular := NonTemplate(boards)
	if len(regular) != 2 || regular[0].ID != "a" || regular[1].ID != "c" {
		t.Errorf("NonTemplate = %v", regular)
	}

	templates := Templates(boards)
	if len(templates) != 1 || templates[0].ID != "b" {
		t.Errorf("Templates = %v", templates)
	}
}

func TestLookups(t *testing.T) {
	b := sampleBoard()

	g, task := b.FindTask("g1", "t1")
	if g == nil || task == nil {
		t.Fatal("expected task to be found")
	}
	if _, task := b.FindTask("g1", "missing"); task != nil {
		t.Error("expected missing task to be nil")
	}
	if g, _ := b.FindTask("nope", "t1"); g != nil {
		t.Error("expected missing group to be nil")
	}
	if b.LabelIndex("l1") != 0 || b.LabelIndex("zz") != -1 {
		t.Error("LabelIndex mismatch")
	}
	if b.FindMember("m1") == nil || b.FindMember("m9") != nil {
		t.Error("FindMember mismatch")
	}
	if task.TodoListIndex("tl1") != 0 {
		t.Error("TodoListIndex mismatch")
	}
	if b.TaskCount() != 1 {
		t.Errorf("TaskCount = %d, want 1", b.TaskCount())
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(sampleBoard()); err != nil {
		t.Fatalf("expected valid board, got %v", err)
	}

	b := sampleBoard()
	b.Title = ""
	err := Validate(b)
	if err == nil {
		t.Fatal("expected error for empty title")
	}
	if !strings.Contains(err.Error(), "Title") {
		t.Errorf("expected error to mention Title, got %v", err)
	}

	b = sampleBoard()
	b.Groups[0].Tasks[0].LabelIDs = []string{"a", "b", "c", "d", "e"}
	if err := Validate(b); err == nil {
		t.Error("expected error for five labels")
	}

	b = sampleBoard()
	b.Groups[0].Tasks[0].LabelIDs = []string{"a", "a"}
	if err := Validate(b); err == nil {
		t.Error("expected error for duplicate labels")
	}
}
