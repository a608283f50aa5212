package models

import "slices"

// Clone returns a deep copy of the board. Mutations are applied to clones so that
// a board value handed out earlier never changes underneath its holder.
func (b *Board) Clone() *Board {
	if b == nil {
		return nil
	}
	c := *b
	c.CreatedBy = cloneMember(b.CreatedBy)
	if b.Style.AvgColor != nil {
		avg := *b.Style.AvgColor
		c.Style.AvgColor = &avg
	}
	c.Members = slices.Clone(b.Members)
	c.Labels = slices.Clone(b.Labels)
	if b.Groups != nil {
		c.Groups = make([]Group, len(b.Groups))
		for i := range b.Groups {
			c.Groups[i] = b.Groups[i].Clone()
		}
	}
	if b.Activities != nil {
		c.Activities = make([]Activity, len(b.Activities))
		for i := range b.Activities {
			c.Activities[i] = b.Activities[i].Clone()
		}
	}
	return &c
}

// Clone returns a deep copy of the group.
func (g Group) Clone() Group {
	if g.Tasks != nil {
		tasks := make([]Task, len(g.Tasks))
		for i := range g.Tasks {
			tasks[i] = g.Tasks[i].Clone()
		}
		g.Tasks = tasks
	}
	return g
}

// Clone returns a deep copy of the task.
func (t Task) Clone() Task {
	t.LabelIDs = slices.Clone(t.LabelIDs)
	t.MemberIDs = slices.Clone(t.MemberIDs)
	t.Attachments = slices.Clone(t.Attachments)
	if t.TodoLists != nil {
		lists := make([]TodoList, len(t.TodoLists))
		for i := range t.TodoLists {
			lists[i] = t.TodoLists[i]
			lists[i].Todos = slices.Clone(t.TodoLists[i].Todos)
		}
		t.TodoLists = lists
	}
	if t.DueDate != nil {
		due := *t.DueDate
		t.DueDate = &due
	}
	if t.Cover != nil {
		cover := *t.Cover
		t.Cover = &cover
	}
	return t
}

// Clone returns a deep copy of the activity.
func (a Activity) Clone() Activity {
	a.ByMember = cloneMember(a.ByMember)
	if a.Task != nil {
		summary := *a.Task
		a.Task = &summary
	}
	return a
}

func cloneMember(m *Member) *Member {
	if m == nil {
		return nil
	}
	c := *m
	return &c
}
