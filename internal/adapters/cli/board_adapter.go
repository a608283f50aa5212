package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"

	"github.com/example/taskboard/internal/models"
	"github.com/example/taskboard/internal/ports/primary"
)

var (
	titleColor  = color.New(color.FgHiMagenta, color.Bold)
	groupColor  = color.New(color.FgCyan, color.Bold)
	idColor     = color.New(color.FgHiBlack)
	starColor   = color.New(color.FgYellow)
	labelColor  = color.New(color.FgGreen)
	memberColor = color.New(color.FgBlue)
)

// BoardAdapter renders board state for the terminal.
// It depends only on the BoardStore interface, enabling easy testing with mocks.
type BoardAdapter struct {
	store primary.BoardStore
	out   io.Writer
}

// NewBoardAdapter creates a new BoardAdapter with the given store.
func NewBoardAdapter(store primary.BoardStore, out io.Writer) *BoardAdapter {
	return &BoardAdapter{
		store: store,
		out:   out,
	}
}

// List loads and lists boards. templates selects template boards instead.
func (a *BoardAdapter) List(ctx context.Context, templates bool) ([]*models.Board, error) {
	if err := a.store.LoadBoards(ctx); err != nil {
		return nil, fmt.Errorf("failed to list boards: %w", err)
	}

	boards := a.store.Boards()
	if templates {
		boards = a.store.TemplateBoards()
	}

	if len(boards) == 0 {
		fmt.Fprintln(a.out, "No boards found.")
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "Create your first board:")
		fmt.Fprintln(a.out, "  taskboard board create \"My board\"")
		return boards, nil
	}

	current := a.store.Board()

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tGROUPS\tTASKS\t")
	fmt.Fprintln(w, "--\t-----\t------\t-----\t")
	for _, b := range boards {
		marks := ""
		if b.IsStarred {
			marks += starColor.Sprint("★")
		}
		if current != nil && current.ID == b.ID {
			marks += " (current)"
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n", b.ID, b.Title, len(b.Groups), b.TaskCount(), marks)
	}
	w.Flush()

	return boards, nil
}

// Show renders the current board with its groups and tasks.
func (a *BoardAdapter) Show() (*models.Board, error) {
	b := a.store.Board()
	if b == nil {
		return nil, fmt.Errorf("no board selected: run 'taskboard board use <id>'")
	}

	star := ""
	if b.IsStarred {
		star = " " + starColor.Sprint("★")
	}
	fmt.Fprintf(a.out, "\n%s%s %s\n", titleColor.Sprint(b.Title), star, idColor.Sprintf("(%s)", b.ID))
	if len(b.Members) > 0 {
		names := make([]string, len(b.Members))
		for i, m := range b.Members {
			names[i] = memberName(m)
		}
		fmt.Fprintf(a.out, "Members: %s\n", strings.Join(names, ", "))
	}

	if len(b.Groups) == 0 {
		fmt.Fprintln(a.out, "\nNo groups yet. Add one with: taskboard group add \"To do\"")
		return b, nil
	}

	for _, g := range b.Groups {
		watch := ""
		if g.IsWatched {
			watch = " 👁"
		}
		fmt.Fprintf(a.out, "\n%s%s %s\n", groupColor.Sprint(g.Title), watch, idColor.Sprintf("(%s, %d)", g.ID, len(g.Tasks)))
		for _, t := range g.Tasks {
			fmt.Fprintf(a.out, "  • %s %s%s\n", t.Title, idColor.Sprintf("[%s]", t.ID), a.taskBadges(b, t))
		}
	}
	fmt.Fprintln(a.out)

	return b, nil
}

func (a *BoardAdapter) taskBadges(b *models.Board, t models.Task) string {
	var parts []string
	for _, id := range t.LabelIDs {
		if idx := b.LabelIndex(id); idx >= 0 {
			parts = append(parts, labelColor.Sprint(labelName(b.Labels[idx])))
		}
	}
	for _, id := range t.MemberIDs {
		if m := b.FindMember(id); m != nil {
			parts = append(parts, memberColor.Sprint("@"+m.Username))
		}
	}
	for _, l := range t.TodoLists {
		if l.Progress != "" {
			parts = append(parts, fmt.Sprintf("☑ %s", l.Progress))
		}
	}
	if t.DueDate != nil {
		parts = append(parts, "due "+t.DueDate.Format("2006-01-02"))
	}
	if len(parts) == 0 {
		return ""
	}
	return "  " + strings.Join(parts, " ")
}

// ShowTask renders the focused task.
func (a *BoardAdapter) ShowTask() (*models.Task, error) {
	g, t, ok := a.store.CurrentTask()
	if !ok {
		return nil, fmt.Errorf("no task selected: run 'taskboard task open <group> <task>'")
	}
	b := a.store.Board()

	fmt.Fprintf(a.out, "\nTask: %s %s\n", titleColor.Sprint(t.Title), idColor.Sprintf("(%s)", t.ID))
	fmt.Fprintf(a.out, "Group: %s\n", g.Title)
	if t.Description != "" {
		fmt.Fprintf(a.out, "Description: %s\n", t.Description)
	}
	if badges := a.taskBadges(b, *t); badges != "" {
		fmt.Fprintf(a.out, "Tags:%s\n", badges)
	}
	if t.Cover != nil {
		fmt.Fprintf(a.out, "Cover: %s%s\n", t.Cover.Color, t.Cover.ImgURL)
	}

	for _, l := range t.TodoLists {
		progress := l.Progress
		if progress == "" {
			progress = "-"
		}
		fmt.Fprintf(a.out, "\n%s %s %s\n", groupColor.Sprint(l.Title), progress, idColor.Sprintf("(%s)", l.ID))
		for _, todo := range l.Todos {
			if todo.IsDone && l.CheckedHidden {
				continue
			}
			box := "[ ]"
			if todo.IsDone {
				box = "[x]"
			}
			fmt.Fprintf(a.out, "  %s %s %s\n", box, todo.Title, idColor.Sprintf("(%s)", todo.ID))
		}
	}

	if len(t.Attachments) > 0 {
		fmt.Fprintln(a.out, "\nAttachments:")
		for i, att := range t.Attachments {
			fmt.Fprintf(a.out, "  %d. %s %s\n", i, att.Name, att.URL)
		}
	}
	fmt.Fprintln(a.out)

	return t, nil
}

// Activities renders the newest limit activities of the current board.
// limit <= 0 shows them all.
func (a *BoardAdapter) Activities(limit int) ([]models.Activity, error) {
	b := a.store.Board()
	if b == nil {
		return nil, fmt.Errorf("no board selected: run 'taskboard board use <id>'")
	}

	acts := b.Activities
	if limit > 0 && len(acts) > limit {
		acts = acts[:limit]
	}
	if len(acts) == 0 {
		fmt.Fprintln(a.out, "No activity yet.")
		return acts, nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "WHEN\tWHO\tWHAT")
	fmt.Fprintln(w, "----\t---\t----")
	for _, act := range acts {
		who := "-"
		if act.ByMember != nil {
			who = memberName(*act.ByMember)
		}
		what := act.Txt
		if act.Task != nil {
			what = fmt.Sprintf("%s (%s)", act.Txt, act.Task.Title)
		}
		when := time.UnixMilli(act.CreatedAt).Format("2006-01-02 15:04")
		fmt.Fprintf(w, "%s\t%s\t%s\n", when, who, what)
	}
	w.Flush()

	return acts, nil
}

// Search runs a title search on the current board and lists the matches.
func (a *BoardAdapter) Search(query string) ([]models.Task, error) {
	b := a.store.Board()
	if b == nil {
		return nil, fmt.Errorf("no board selected: run 'taskboard board use <id>'")
	}

	res := a.store.Search(query)
	if len(res) == 0 {
		fmt.Fprintf(a.out, "No tasks match %q.\n", query)
		return res, nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE")
	fmt.Fprintln(w, "--\t-----")
	for _, t := range res {
		fmt.Fprintf(w, "%s\t%s\n", t.ID, t.Title)
	}
	w.Flush()

	return res, nil
}

func memberName(m models.Member) string {
	if m.Fullname != "" {
		return m.Fullname
	}
	return m.Username
}

func labelName(l models.Label) string {
	if l.Title != "" {
		return "#" + l.Title
	}
	return l.Color
}
