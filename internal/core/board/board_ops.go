package board

import (
	"github.com/example/taskboard/internal/models"
)

// RenameBoard sets the board title.
type RenameBoard struct {
	Title string
}

func (RenameBoard) Name() string { return "rename_board" }

func (m RenameBoard) apply(b *models.Board, _ Env) (*Focus, error) {
	b.Title = m.Title
	return nil, nil
}

// AddMember appends a member to the board. Members form a set: adding an
// existing id is a no-op.
type AddMember struct {
	Member models.Member
}

func (AddMember) Name() string { return "add_member" }

func (m AddMember) apply(b *models.Board, _ Env) (*Focus, error) {
	if b.FindMember(m.Member.ID) != nil {
		return nil, nil
	}
	b.Members = append(b.Members, m.Member)
	return nil, nil
}

// ToggleStarred flips the board's starred flag.
type ToggleStarred struct{}

func (ToggleStarred) Name() string { return "toggle_starred" }

func (ToggleStarred) apply(b *models.Board, _ Env) (*Focus, error) {
	b.IsStarred = !b.IsStarred
	return nil, nil
}

// ToggleLabelsText flips whether label titles are shown on cards.
type ToggleLabelsText struct{}

func (ToggleLabelsText) Name() string { return "toggle_labels_text" }

func (ToggleLabelsText) apply(b *models.Board, _ Env) (*Focus, error) {
	b.IsLabelsTextShow = !b.IsLabelsTextShow
	return nil, nil
}

// SetBackground sets the board background and its derived color.
// Color is either a hex string or an averaged color (value or pointer);
// nil clears the stored color.
type SetBackground struct {
	Background string
	Color      any
}

func (SetBackground) Name() string { return "set_background" }

func (m SetBackground) apply(b *models.Board, _ Env) (*Focus, error) {
	var (
		hexa string
		avg  *models.AvgColor
	)
	switch c := m.Color.(type) {
	case nil:
	case string:
		hexa = c
	case models.AvgColor:
		hexa = c.Hexa
		avg = &c
	case *models.AvgColor:
		if c == nil {
			return nil, ErrInvalidColor
		}
		cp := *c
		hexa = cp.Hexa
		avg = &cp
	default:
		return nil, ErrInvalidColor
	}

	b.Style.Background = m.Background
	b.Style.ColorHexa = hexa
	b.Style.AvgColor = avg
	return nil, nil
}

// RecordActivity prepends an activity to the feed, assigning it an id, and
// trims the oldest entries so the feed never exceeds models.ActivityCap.
type RecordActivity struct {
	Activity models.Activity
}

func (RecordActivity) Name() string { return "record_activity" }

func (m RecordActivity) apply(b *models.Board, env Env) (*Focus, error) {
	activity := m.Activity.Clone()
	activity.ID = env.NewID()
	if activity.CreatedAt == 0 {
		activity.CreatedAt = env.now().UnixMilli()
	}

	feed := make([]models.Activity, 0, len(b.Activities)+1)
	feed = append(feed, activity)
	feed = append(feed, b.Activities...)
	if len(feed) > models.ActivityCap {
		feed = feed[:models.ActivityCap]
	}
	b.Activities = feed
	return nil, nil
}
