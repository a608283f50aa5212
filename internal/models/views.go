package models

// NonTemplate returns the boards that are not templates, preserving order.
func NonTemplate(boards []*Board) []*Board {
	out := make([]*Board, 0, len(boards))
	for _, b := range boards {
		if !b.IsTemplate {
			out = append(out, b)
		}
	}
	return out
}

// Templates returns only the template boards, preserving order.
func Templates(boards []*Board) []*Board {
	out := make([]*Board, 0, len(boards))
	for _, b := range boards {
		if b.IsTemplate {
			out = append(out, b)
		}
	}
	return out
}

// GroupIndex returns the index of the group with the given id, or -1.
func (b *Board) GroupIndex(groupID string) int {
	for i := range b.Groups {
		if b.Groups[i].ID == groupID {
			return i
		}
	}
	return -1
}

// FindGroup returns a pointer into b.Groups, or nil.
func (b *Board) FindGroup(groupID string) *Group {
	if i := b.GroupIndex(groupID); i >= 0 {
		return &b.Groups[i]
	}
	return nil
}

// TaskIndex returns the index of the task with the given id, or -1.
func (g *Group) TaskIndex(taskID string) int {
	for i := range g.Tasks {
		if g.Tasks[i].ID == taskID {
			return i
		}
	}
	return -1
}

// FindTask returns a pointer into g.Tasks, or nil.
func (g *Group) FindTask(taskID string) *Task {
	if i := g.TaskIndex(taskID); i >= 0 {
		return &g.Tasks[i]
	}
	return nil
}

// FindTask resolves a task through its group.
func (b *Board) FindTask(groupID, taskID string) (*Group, *Task) {
	g := b.FindGroup(groupID)
	if g == nil {
		return nil, nil
	}
	return g, g.FindTask(taskID)
}

// LabelIndex returns the index of the board label with the given id, or -1.
func (b *Board) LabelIndex(labelID string) int {
	for i := range b.Labels {
		if b.Labels[i].ID == labelID {
			return i
		}
	}
	return -1
}

// FindMember returns the board member with the given id, or nil.
func (b *Board) FindMember(memberID string) *Member {
	for i := range b.Members {
		if b.Members[i].ID == memberID {
			return &b.Members[i]
		}
	}
	return nil
}

// TodoListIndex returns the index of the todo list with the given id, or -1.
func (t *Task) TodoListIndex(listID string) int {
	for i := range t.TodoLists {
		if t.TodoLists[i].ID == listID {
			return i
		}
	}
	return -1
}

// DoneCount returns how many todos in the list are done.
func (l *TodoList) DoneCount() int {
	n := 0
	for _, td := range l.Todos {
		if td.IsDone {
			n++
		}
	}
	return n
}

// TaskCount returns the number of tasks across all groups.
func (b *Board) TaskCount() int {
	n := 0
	for _, g := range b.Groups {
		n += len(g.Tasks)
	}
	return n
}
