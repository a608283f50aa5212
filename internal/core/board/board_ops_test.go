package board

import (
	"testing"

	"github.com/example/taskboard/internal/models"
)

func TestRenameAndFlags(t *testing.T) {
	env := testEnv()
	b := newTestBoard()

	b, _ = mustApply(t, b, RenameBoard{Title: "Roadmap"}, env)
	b, _ = mustApply(t, b, ToggleStarred{}, env)
	b, _ = mustApply(t, b, ToggleLabelsText{}, env)

	if b.Title != "Roadmap" || !b.IsStarred || !b.IsLabelsTextShow {
		t.Errorf("unexpected board state: %+v", b)
	}

	b, _ = mustApply(t, b, ToggleStarred{}, env)
	if b.IsStarred {
		t.Error("expected second toggle to unstar")
	}
}

func TestAddMember_IsSetLike(t *testing.T) {
	env := testEnv()
	b := newTestBoard()

	b, _ = mustApply(t, b, AddMember{Member: models.Member{ID: "m3", Fullname: "Cy"}}, env)
	b, _ = mustApply(t, b, AddMember{Member: models.Member{ID: "m3", Fullname: "Cy"}}, env)

	if len(b.Members) != 3 || b.Members[2].ID != "m3" {
		t.Errorf("expected m3 appended once, got %+v", b.Members)
	}
}

func TestSetBackground(t *testing.T) {
	tests := []struct {
		name     string
		color    any
		wantHexa string
		wantAvg  bool
	}{
		{"direct hex", "#abcdef", "#abcdef", false},
		{"structured value", models.AvgColor{Hexa: "#123456", IsDark: true}, "#123456", true},
		{"structured pointer", &models.AvgColor{Hexa: "#654321"}, "#654321", true},
		{"cleared", nil, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, _ := mustApply(t, newTestBoard(), SetBackground{Background: "url(bg.jpg)", Color: tt.color}, testEnv())
			if b.Style.Background != "url(bg.jpg)" {
				t.Errorf("Background = %q", b.Style.Background)
			}
			if b.Style.ColorHexa != tt.wantHexa {
				t.Errorf("ColorHexa = %q, want %q", b.Style.ColorHexa, tt.wantHexa)
			}
			if (b.Style.AvgColor != nil) != tt.wantAvg {
				t.Errorf("AvgColor presence = %v, want %v", b.Style.AvgColor != nil, tt.wantAvg)
			}
		})
	}
}

func TestRecordActivity_PrependsWithID(t *testing.T) {
	env := testEnv()
	b := newTestBoard()

	b, _ = mustApply(t, b, RecordActivity{Activity: models.Activity{Txt: "first"}}, env)
	b, _ = mustApply(t, b, RecordActivity{Activity: models.Activity{Txt: "second"}}, env)

	if len(b.Activities) != 2 {
		t.Fatalf("expected 2 activities, got %d", len(b.Activities))
	}
	if b.Activities[0].Txt != "second" || b.Activities[1].Txt != "first" {
		t.Errorf("expected newest first, got %q, %q", b.Activities[0].Txt, b.Activities[1].Txt)
	}
	if b.Activities[0].ID == "" || b.Activities[0].ID == b.Activities[1].ID {
		t.Errorf("expected distinct ids, got %q and %q", b.Activities[0].ID, b.Activities[1].ID)
	}
	if b.Activities[0].CreatedAt == 0 {
		t.Error("expected CreatedAt to be stamped")
	}
}

func TestRecordActivity_CapBoundary(t *testing.T) {
	env := testEnv()
	b := newTestBoard()

	for i := 1; i <= models.ActivityCap+5; i++ {
		b, _ = mustApply(t, b, RecordActivity{Activity: models.Activity{Txt: "a"}}, env)

		want := i
		if want > models.ActivityCap {
			want = models.ActivityCap
		}
		if len(b.Activities) != want {
			t.Fatalf("after %d inserts: length %d, want %d", i, len(b.Activities), want)
		}
	}

	// the oldest entries are the ones dropped
	if b.Activities[len(b.Activities)-1].ID != "id-6" {
		t.Errorf("expected oldest surviving activity id-6, got %s", b.Activities[len(b.Activities)-1].ID)
	}
}
