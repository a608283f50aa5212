// Package models contains the domain types for boards and everything nested in them.
// A Board owns its groups, labels, members and activities; a Group owns its tasks;
// a Task owns its todo lists and attachments.
package models

import "time"

const (
	// MaxTaskLabels is the number of labels a single task may carry.
	MaxTaskLabels = 4

	// ActivityCap bounds the length of a board's activity feed.
	ActivityCap = 100
)

// Board is the top-level document.
type Board struct {
	ID               string     `json:"id"`
	Title            string     `json:"title" validate:"required,max=512"`
	CreatedAt        int64      `json:"createdAt"`
	CreatedBy        *Member    `json:"createdBy,omitempty"`
	Style            Style      `json:"style"`
	IsStarred        bool       `json:"isStarred"`
	IsTemplate       bool       `json:"isTemplate"`
	IsLabelsTextShow bool       `json:"isLabelsTextShow"`
	Members          []Member   `json:"members" validate:"dive"`
	Labels           []Label    `json:"labels" validate:"dive"`
	Groups           []Group    `json:"groups" validate:"dive"`
	Activities       []Activity `json:"activities" validate:"max=100"`
}

// Style holds the board background and the color derived from it.
type Style struct {
	Background string    `json:"background,omitempty"`
	ColorHexa  string    `json:"colorHexa,omitempty"`
	AvgColor   *AvgColor `json:"avgColor,omitempty"`
}

// AvgColor is the structured color produced by averaging a background image.
type AvgColor struct {
	Hexa   string `json:"hexa"`
	Rgba   string `json:"rgba,omitempty"`
	IsDark bool   `json:"isDark"`
}

// Group is an ordered column of tasks.
type Group struct {
	ID        string `json:"id" validate:"required"`
	Title     string `json:"title"`
	Tasks     []Task `json:"tasks" validate:"dive"`
	IsWatched bool   `json:"isWatched"`
}

// Task is a single card.
type Task struct {
	ID          string       `json:"id" validate:"required"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	LabelIDs    []string     `json:"labelIds" validate:"max=4,unique"`
	MemberIDs   []string     `json:"memberIds"`
	TodoLists   []TodoList   `json:"todoLists,omitempty" validate:"dive"`
	Attachments []Attachment `json:"attachments,omitempty"`
	DueDate     *time.Time   `json:"dueDate,omitempty"`
	Cover       *Cover       `json:"cover,omitempty"`
	IsWatched   bool         `json:"isWatched"`
	CreatedAt   int64        `json:"createdAt"`
}

// TodoList is a checklist attached to a task.
// Progress is empty until the list holds at least one todo.
type TodoList struct {
	ID            string `json:"id" validate:"required"`
	Title         string `json:"title"`
	Todos         []Todo `json:"todos"`
	CheckedHidden bool   `json:"checkedHidden"`
	Progress      string `json:"progress,omitempty"`
}

// Todo is a single checklist item.
type Todo struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	IsDone bool   `json:"isDone"`
}

// Label is a board-wide label definition; tasks reference labels by id.
type Label struct {
	ID    string `json:"id" validate:"required"`
	Title string `json:"title,omitempty"`
	Color string `json:"color" validate:"omitempty,hexcolor"`
}

// Member is a user that belongs to a board.
type Member struct {
	ID       string `json:"id" validate:"required"`
	Username string `json:"username,omitempty"`
	Fullname string `json:"fullname"`
	ImgURL   string `json:"imgUrl,omitempty"`
}

// Attachment is a link stored on a task.
type Attachment struct {
	URL       string `json:"url"`
	Name      string `json:"name,omitempty"`
	CreatedAt int64  `json:"createdAt"`
}

// Cover decorates a task card.
type Cover struct {
	Color  string `json:"color,omitempty"`
	ImgURL string `json:"imgUrl,omitempty"`
	IsFull bool   `json:"isFull"`
}

// Activity is one entry of the board feed, newest first.
type Activity struct {
	ID        string       `json:"id"`
	Txt       string       `json:"txt"`
	CreatedAt int64        `json:"createdAt"`
	ByMember  *Member      `json:"byMember,omitempty"`
	Task      *TaskSummary `json:"task,omitempty"`
	GroupID   string       `json:"groupId,omitempty"`
}

// TaskSummary is the small task reference embedded in activities.
type TaskSummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}
