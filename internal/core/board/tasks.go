package board

import (
	"slices"
	"time"

	"github.com/example/taskboard/internal/models"
)

// AddTask appends a task to a group under a fresh id.
type AddTask struct {
	GroupID string
	Task    models.Task
}

func (AddTask) Name() string { return "add_task" }

func (m AddTask) apply(b *models.Board, env Env) (*Focus, error) {
	g := b.FindGroup(m.GroupID)
	if g == nil {
		return nil, notFound(ErrGroupNotFound, m.GroupID)
	}
	task := m.Task.Clone()
	task.ID = env.NewID()
	if task.CreatedAt == 0 {
		task.CreatedAt = env.now().UnixMilli()
	}
	if task.LabelIDs == nil {
		task.LabelIDs = []string{}
	}
	if task.MemberIDs == nil {
		task.MemberIDs = []string{}
	}
	g.Tasks = append(g.Tasks, task)
	return nil, nil
}

// EditTaskTitle renames a task.
type EditTaskTitle struct {
	TaskRef
	Title string
}

func (EditTaskTitle) Name() string { return "edit_task_title" }

func (m EditTaskTitle) apply(b *models.Board, _ Env) (*Focus, error) {
	_, t, err := m.locate(b)
	if err != nil {
		return nil, err
	}
	t.Title = m.Title
	return m.focus(), nil
}

// SetDescription replaces a task's description.
type SetDescription struct {
	TaskRef
	Description string
}

func (SetDescription) Name() string { return "set_description" }

func (m SetDescription) apply(b *models.Board, _ Env) (*Focus, error) {
	_, t, err := m.locate(b)
	if err != nil {
		return nil, err
	}
	t.Description = m.Description
	return m.focus(), nil
}

// ArchiveTask removes a task from its group.
type ArchiveTask struct {
	TaskRef
}

func (ArchiveTask) Name() string { return "archive_task" }

func (m ArchiveTask) apply(b *models.Board, _ Env) (*Focus, error) {
	g := b.FindGroup(m.GroupID)
	if g == nil {
		return nil, notFound(ErrGroupNotFound, m.GroupID)
	}
	idx := g.TaskIndex(m.TaskID)
	if idx < 0 {
		return nil, notFound(ErrTaskNotFound, m.TaskID)
	}
	g.Tasks = slices.Delete(g.Tasks, idx, idx+1)
	return nil, nil
}

// ArchiveAllTasks empties a group.
type ArchiveAllTasks struct {
	GroupID string
}

func (ArchiveAllTasks) Name() string { return "archive_all_tasks" }

func (m ArchiveAllTasks) apply(b *models.Board, _ Env) (*Focus, error) {
	g := b.FindGroup(m.GroupID)
	if g == nil {
		return nil, notFound(ErrGroupNotFound, m.GroupID)
	}
	g.Tasks = []models.Task{}
	return nil, nil
}

// MoveTask moves a task to a position in another (or the same) group.
// Index is a position in the destination group after the task was removed.
// The focus follows the moved task to its new location.
type MoveTask struct {
	From    TaskRef
	ToGroup string
	Index   int
}

func (MoveTask) Name() string { return "move_task" }

func (m MoveTask) apply(b *models.Board, _ Env) (*Focus, error) {
	origin := b.FindGroup(m.From.GroupID)
	if origin == nil {
		return nil, notFound(ErrGroupNotFound, m.From.GroupID)
	}
	idx := origin.TaskIndex(m.From.TaskID)
	if idx < 0 {
		return nil, notFound(ErrTaskNotFound, m.From.TaskID)
	}
	dest := b.FindGroup(m.ToGroup)
	if dest == nil {
		return nil, notFound(ErrGroupNotFound, m.ToGroup)
	}

	destLen := len(dest.Tasks)
	if dest == origin {
		destLen--
	}
	if m.Index < 0 || m.Index > destLen {
		return nil, ErrIndexOutOfRange
	}

	moved := origin.Tasks[idx]
	origin.Tasks = slices.Delete(origin.Tasks, idx, idx+1)
	dest.Tasks = slices.Insert(dest.Tasks, m.Index, moved)
	return &Focus{GroupID: dest.ID, TaskID: moved.ID}, nil
}

// AddAttachment appends an attachment to a task.
type AddAttachment struct {
	TaskRef
	Attachment models.Attachment
}

func (AddAttachment) Name() string { return "add_attachment" }

func (m AddAttachment) apply(b *models.Board, env Env) (*Focus, error) {
	_, t, err := m.locate(b)
	if err != nil {
		return nil, err
	}
	attachment := m.Attachment
	if attachment.CreatedAt == 0 {
		attachment.CreatedAt = env.now().UnixMilli()
	}
	t.Attachments = append(t.Attachments, attachment)
	return m.focus(), nil
}

// RemoveAttachment removes the attachment at Index.
type RemoveAttachment struct {
	TaskRef
	Index int
}

func (RemoveAttachment) Name() string { return "remove_attachment" }

func (m RemoveAttachment) apply(b *models.Board, _ Env) (*Focus, error) {
	_, t, err := m.locate(b)
	if err != nil {
		return nil, err
	}
	if m.Index < 0 || m.Index >= len(t.Attachments) {
		return nil, ErrAttachmentNotFound
	}
	t.Attachments = slices.Delete(t.Attachments, m.Index, m.Index+1)
	return m.focus(), nil
}

// SetDueDate sets or, when DueDate is nil, clears a task's due date.
type SetDueDate struct {
	TaskRef
	DueDate *time.Time
}

func (SetDueDate) Name() string { return "set_due_date" }

func (m SetDueDate) apply(b *models.Board, _ Env) (*Focus, error) {
	_, t, err := m.locate(b)
	if err != nil {
		return nil, err
	}
	t.DueDate = nil
	if m.DueDate != nil {
		due := *m.DueDate
		t.DueDate = &due
	}
	return m.focus(), nil
}

// ResetCover is the cover value that clears a task's cover.
var ResetCover *models.Cover

// SetCover sets a task's cover; ResetCover (nil) clears it.
type SetCover struct {
	TaskRef
	Cover *models.Cover
}

func (SetCover) Name() string { return "set_cover" }

func (m SetCover) apply(b *models.Board, _ Env) (*Focus, error) {
	_, t, err := m.locate(b)
	if err != nil {
		return nil, err
	}
	t.Cover = nil
	if m.Cover != ResetCover {
		cover := *m.Cover
		t.Cover = &cover
	}
	return m.focus(), nil
}
