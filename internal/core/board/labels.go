package board

import (
	"slices"

	"github.com/example/taskboard/internal/models"
)

// CanAddLabel reports whether a task has room for another label.
func CanAddLabel(t *models.Task) bool {
	return len(t.LabelIDs) < models.MaxTaskLabels
}

// ToggleLabel removes the label from the task when present, otherwise adds it.
// Adding past models.MaxTaskLabels is a silent no-op.
type ToggleLabel struct {
	TaskRef
	LabelID string
}

func (ToggleLabel) Name() string { return "toggle_label" }

func (m ToggleLabel) apply(b *models.Board, _ Env) (*Focus, error) {
	_, t, err := m.locate(b)
	if err != nil {
		return nil, err
	}

	if idx := slices.Index(t.LabelIDs, m.LabelID); idx >= 0 {
		t.LabelIDs = slices.Delete(t.LabelIDs, idx, idx+1)
		return m.focus(), nil
	}
	if b.LabelIndex(m.LabelID) < 0 {
		return nil, notFound(ErrLabelNotFound, m.LabelID)
	}
	if CanAddLabel(t) {
		t.LabelIDs = append(t.LabelIDs, m.LabelID)
	}
	return m.focus(), nil
}

// UpsertLabel edits a board-wide label when it carries an id. Without an id it
// creates the label under a fresh id and attaches it to the originating task;
// when that task is already at the label cap nothing changes at all.
type UpsertLabel struct {
	TaskRef
	Label models.Label
}

func (UpsertLabel) Name() string { return "upsert_label" }

func (m UpsertLabel) apply(b *models.Board, env Env) (*Focus, error) {
	if m.Label.ID != "" {
		idx := b.LabelIndex(m.Label.ID)
		if idx < 0 {
			return nil, notFound(ErrLabelNotFound, m.Label.ID)
		}
		b.Labels[idx] = m.Label
		return nil, nil
	}

	_, t, err := m.locate(b)
	if err != nil {
		return nil, err
	}
	if !CanAddLabel(t) {
		return nil, nil
	}
	label := m.Label
	label.ID = env.NewID()
	b.Labels = append(b.Labels, label)
	t.LabelIDs = append(t.LabelIDs, label.ID)
	return m.focus(), nil
}

// ToggleMember assigns a board member to a task or unassigns them.
type ToggleMember struct {
	TaskRef
	MemberID string
}

func (ToggleMember) Name() string { return "toggle_member" }

func (m ToggleMember) apply(b *models.Board, _ Env) (*Focus, error) {
	if b.FindMember(m.MemberID) == nil {
		return nil, notFound(ErrMemberNotFound, m.MemberID)
	}
	_, t, err := m.locate(b)
	if err != nil {
		return nil, err
	}

	if idx := slices.Index(t.MemberIDs, m.MemberID); idx >= 0 {
		t.MemberIDs = slices.Delete(t.MemberIDs, idx, idx+1)
	} else {
		t.MemberIDs = append(t.MemberIDs, m.MemberID)
	}
	return m.focus(), nil
}
