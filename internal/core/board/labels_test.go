package board

import (
	"reflect"
	"testing"

	"github.com/example/taskboard/internal/models"
)

func TestToggleLabel(t *testing.T) {
	env := testEnv()
	ref := TaskRef{GroupID: "g1", TaskID: "t1"}
	b := newTestBoard()

	b, focus := mustApply(t, b, ToggleLabel{TaskRef: ref, LabelID: "l1"}, env)
	if got := b.Groups[0].Tasks[0].LabelIDs; !reflect.DeepEqual(got, []string{"l1"}) {
		t.Errorf("LabelIDs = %v", got)
	}
	if focus == nil || focus.TaskID != "t1" {
		t.Errorf("focus = %+v", focus)
	}

	b, _ = mustApply(t, b, ToggleLabel{TaskRef: ref, LabelID: "l1"}, env)
	if got := b.Groups[0].Tasks[0].LabelIDs; len(got) != 0 {
		t.Errorf("expected label removed, got %v", got)
	}
}

func TestToggleLabel_CapIsSilentNoOp(t *testing.T) {
	env := testEnv()
	ref := TaskRef{GroupID: "g1", TaskID: "t1"}
	b := newTestBoard()

	for _, id := range []string{"l1", "l2", "l3", "l4", "l5"} {
		var err error
		b, _, err = Apply(b, ToggleLabel{TaskRef: ref, LabelID: id}, env)
		if err != nil {
			t.Fatalf("toggle %s returned error: %v", id, err)
		}
	}

	got := b.Groups[0].Tasks[0].LabelIDs
	if !reflect.DeepEqual(got, []string{"l1", "l2", "l3", "l4"}) {
		t.Errorf("LabelIDs = %v", got)
	}

	// removing still works at the cap
	b, _ = mustApply(t, b, ToggleLabel{TaskRef: ref, LabelID: "l2"}, env)
	b, _ = mustApply(t, b, ToggleLabel{TaskRef: ref, LabelID: "l5"}, env)
	got = b.Groups[0].Tasks[0].LabelIDs
	if !reflect.DeepEqual(got, []string{"l1", "l3", "l4", "l5"}) {
		t.Errorf("LabelIDs = %v", got)
	}
}

func TestUpsertLabel_EditsBoardWideDefinition(t *testing.T) {
	b, focus := mustApply(t, newTestBoard(), UpsertLabel{Label: models.Label{ID: "l2", Title: "urgent", Color: "#ff0000"}}, testEnv())

	if b.Labels[1].Title != "urgent" || b.Labels[1].Color != "#ff0000" {
		t.Errorf("label not replaced in place: %+v", b.Labels[1])
	}
	if len(b.Labels) != 5 {
		t.Errorf("expected 5 labels, got %d", len(b.Labels))
	}
	if focus != nil {
		t.Error("editing a definition should not move focus")
	}
}

func TestUpsertLabel_CreatesAndAttaches(t *testing.T) {
	ref := TaskRef{GroupID: "g2", TaskID: "t3"}
	b, focus := mustApply(t, newTestBoard(), UpsertLabel{TaskRef: ref, Label: models.Label{Title: "new", Color: "#00ff00"}}, testEnv())

	if len(b.Labels) != 6 || b.Labels[5].ID != "id-1" {
		t.Fatalf("expected label appended with fresh id, got %+v", b.Labels)
	}
	if got := b.Groups[1].Tasks[0].LabelIDs; !reflect.DeepEqual(got, []string{"id-1"}) {
		t.Errorf("LabelIDs = %v", got)
	}
	if focus == nil || *focus != (Focus{GroupID: "g2", TaskID: "t3"}) {
		t.Errorf("focus = %+v", focus)
	}
}

func TestUpsertLabel_AtCapChangesNothing(t *testing.T) {
	b := newTestBoard()
	b.Groups[0].Tasks[0].LabelIDs = []string{"l1", "l2", "l3", "l4"}
	before := b.Clone()

	next, _, err := Apply(b, UpsertLabel{TaskRef: TaskRef{GroupID: "g1", TaskID: "t1"}, Label: models.Label{Title: "fifth"}}, testEnv())
	if err != nil {
		t.Fatalf("expected silent no-op, got %v", err)
	}
	if !reflect.DeepEqual(next, before) {
		t.Error("expected board unchanged at the label cap")
	}
}

func TestToggleMember(t *testing.T) {
	env := testEnv()
	ref := TaskRef{GroupID: "g1", TaskID: "t1"}
	b := newTestBoard()

	b, _ = mustApply(t, b, ToggleMember{TaskRef: ref, MemberID: "m2"}, env)
	b, _ = mustApply(t, b, ToggleMember{TaskRef: ref, MemberID: "m1"}, env)
	if got := b.Groups[0].Tasks[0].MemberIDs; !reflect.DeepEqual(got, []string{"m2", "m1"}) {
		t.Errorf("MemberIDs = %v", got)
	}

	b, _ = mustApply(t, b, ToggleMember{TaskRef: ref, MemberID: "m2"}, env)
	if got := b.Groups[0].Tasks[0].MemberIDs; !reflect.DeepEqual(got, []string{"m1"}) {
		t.Errorf("MemberIDs = %v", got)
	}
}
