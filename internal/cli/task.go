package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/taskboard/internal/core/board"
	"github.com/example/taskboard/internal/core/dnd"
	"github.com/example/taskboard/internal/models"
	"github.com/example/taskboard/internal/ports/primary"
	"github.com/example/taskboard/internal/wire"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage tasks (cards) of the current board",
	Long:  "Add, edit, move and decorate tasks. Tasks are addressed by ID; the group is found on the current board.",
}

var taskAddCmd = &cobra.Command{
	Use:   "add [group-id] [title]",
	Short: "Add a task to the end of a group",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := commandContext()
		store := wire.BoardStore()
		if err := openBoard(ctx, store); err != nil {
			return err
		}

		if err := store.SetState(ctx, board.AddTask{GroupID: args[0], Task: models.Task{Title: args[1]}}); err != nil {
			return fmt.Errorf("failed to add task: %w", err)
		}

		g := store.Board().FindGroup(args[0])
		t := g.Tasks[len(g.Tasks)-1]
		act := taskActivity(fmt.Sprintf("added this card to %s", g.Title), board.TaskRef{GroupID: g.ID, TaskID: t.ID}, &t)
		if err := store.RecordActivity(ctx, *act); err != nil {
			return fmt.Errorf("failed to record activity: %w", err)
		}

		fmt.Printf("✓ Added task %s: %s\n", t.ID, t.Title)
		return nil
	},
}

var taskShowCmd = &cobra.Command{
	Use:   "show [task-id]",
	Short: "Show task details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := commandContext()
		store := wire.BoardStore()
		if err := openBoard(ctx, store); err != nil {
			return err
		}

		ref, _, err := locateTask(store, args[0])
		if err != nil {
			return err
		}
		if err := store.SetCurrentTask(ref.GroupID, ref.TaskID); err != nil {
			return fmt.Errorf("failed to open task: %w", err)
		}

		_, err = wire.BoardAdapter().ShowTask()
		return err
	},
}

var taskRenameCmd = &cobra.Command{
	Use:   "rename [task-id] [title]",
	Short: "Change a task title",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTaskMutation(args[0], func(ref board.TaskRef, t *models.Task) (board.Mutation, *models.Activity) {
			return board.EditTaskTitle{TaskRef: ref, Title: args[1]}, nil
		}, "✓ Task %s renamed")
	},
}

var taskDescribeCmd = &cobra.Command{
	Use:   "describe [task-id] [description]",
	Short: "Set a task description",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTaskMutation(args[0], func(ref board.TaskRef, t *models.Task) (board.Mutation, *models.Activity) {
			return board.SetDescription{TaskRef: ref, Description: args[1]}, nil
		}, "✓ Description of %s updated")
	},
}

var taskArchiveCmd = &cobra.Command{
	Use:   "archive [task-id]",
	Short: "Remove a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTaskMutation(args[0], func(ref board.TaskRef, t *models.Task) (board.Mutation, *models.Activity) {
			return board.ArchiveTask{TaskRef: ref}, taskActivity("archived this card", ref, t)
		}, "✓ Archived task %s")
	},
}

var taskMoveCmd = &cobra.Command{
	Use:   "move [task-id] [to-group-id] [index]",
	Short: "Move a task to a position in another group",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("invalid index %q", args[2])
		}
		return runTaskMutation(args[0], func(ref board.TaskRef, t *models.Task) (board.Mutation, *models.Activity) {
			return board.MoveTask{From: ref, ToGroup: args[1], Index: index},
				taskActivity(fmt.Sprintf("moved this card to %s", args[1]), board.TaskRef{GroupID: args[1], TaskID: t.ID}, t)
		}, "✓ Moved task %s")
	},
}

var taskReorderCmd = &cobra.Command{
	Use:   "reorder [group-id] [from-index] [to-index]",
	Short: "Move a task to another position within its group",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := commandContext()
		from, to, err := parsePositions(args[1], args[2])
		if err != nil {
			return err
		}

		store := wire.BoardStore()
		if err := openBoard(ctx, store); err != nil {
			return err
		}

		if err := store.OnCardDrop(ctx, args[0], dnd.Move[models.Task](from, to)); err != nil {
			return fmt.Errorf("failed to reorder tasks: %w", err)
		}

		fmt.Printf("✓ Moved task at %d to %d in %s\n", from, to, args[0])
		return nil
	},
}

var taskDueCmd = &cobra.Command{
	Use:   "due [task-id] [YYYY-MM-DD|none]",
	Short: "Set or clear a task due date",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var due *time.Time
		if args[1] != "none" {
			d, err := time.ParseInLocation("2006-01-02", args[1], time.Local)
			if err != nil {
				return fmt.Errorf("invalid date %q: expected YYYY-MM-DD or none", args[1])
			}
			due = &d
		}
		return runTaskMutation(args[0], func(ref board.TaskRef, t *models.Task) (board.Mutation, *models.Activity) {
			txt := "removed the due date"
			if due != nil {
				txt = fmt.Sprintf("set the due date to %s", args[1])
			}
			return board.SetDueDate{TaskRef: ref, DueDate: due}, taskActivity(txt, ref, t)
		}, "✓ Due date of %s updated")
	},
}

var taskCoverCmd = &cobra.Command{
	Use:   "cover [task-id]",
	Short: "Set or remove a task cover",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		colorHex, _ := cmd.Flags().GetString("color")
		img, _ := cmd.Flags().GetString("image")
		full, _ := cmd.Flags().GetBool("full")
		reset, _ := cmd.Flags().GetBool("reset")

		var cover *models.Cover
		if !reset {
			if colorHex == "" && img == "" {
				return fmt.Errorf("--color or --image is required (or --reset)")
			}
			cover = &models.Cover{Color: colorHex, ImgURL: img, IsFull: full}
		}
		return runTaskMutation(args[0], func(ref board.TaskRef, t *models.Task) (board.Mutation, *models.Activity) {
			return board.SetCover{TaskRef: ref, Cover: cover}, nil
		}, "✓ Cover of %s updated")
	},
}

var taskAttachCmd = &cobra.Command{
	Use:   "attach [task-id] [url]",
	Short: "Attach a link to a task",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		return runTaskMutation(args[0], func(ref board.TaskRef, t *models.Task) (board.Mutation, *models.Activity) {
			att := models.Attachment{URL: args[1], Name: name}
			return board.AddAttachment{TaskRef: ref, Attachment: att}, taskActivity("attached a link", ref, t)
		}, "✓ Attached link to %s")
	},
}

var taskDetachCmd = &cobra.Command{
	Use:   "detach [task-id] [index]",
	Short: "Remove an attachment by position",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid index %q", args[1])
		}
		return runTaskMutation(args[0], func(ref board.TaskRef, t *models.Task) (board.Mutation, *models.Activity) {
			return board.RemoveAttachment{TaskRef: ref, Index: index}, nil
		}, "✓ Removed attachment from %s")
	},
}

var taskLabelCmd = &cobra.Command{
	Use:   "label [task-id] [label-id]",
	Short: "Add or remove a label on a task",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTaskMutation(args[0], func(ref board.TaskRef, t *models.Task) (board.Mutation, *models.Activity) {
			return board.ToggleLabel{TaskRef: ref, LabelID: args[1]}, nil
		}, "✓ Labels of %s updated")
	},
}

var taskMemberCmd = &cobra.Command{
	Use:   "member [task-id] [member-id]",
	Short: "Add or remove a member on a task",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTaskMutation(args[0], func(ref board.TaskRef, t *models.Task) (board.Mutation, *models.Activity) {
			return board.ToggleMember{TaskRef: ref, MemberID: args[1]}, nil
		}, "✓ Members of %s updated")
	},
}

var taskWatchCmd = &cobra.Command{
	Use:   "watch [task-id]",
	Short: "Watch or unwatch a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTaskMutation(args[0], func(ref board.TaskRef, t *models.Task) (board.Mutation, *models.Activity) {
			return board.ToggleWatch{Target: board.WatchTask, GroupID: ref.GroupID, TaskID: ref.TaskID}, nil
		}, "✓ Watch toggled on %s")
	},
}

// taskMutation builds the mutation for a located task. A nil mutation means
// there is nothing to do.
type taskMutation func(board.TaskRef, *models.Task) (board.Mutation, *models.Activity)

// runTaskMutation opens the current board, resolves taskID and applies the
// mutation build returns. done is printed with the task id when something changed.
func runTaskMutation(taskID string, build taskMutation, done string) error {
	ctx := commandContext()
	store := wire.BoardStore()
	if err := openBoard(ctx, store); err != nil {
		return err
	}

	changed, err := applyTaskMutation(ctx, store, taskID, build)
	if err != nil || !changed {
		return err
	}

	fmt.Printf(done+"\n", taskID)
	return nil
}

// applyTaskMutation resolves taskID on the current board and applies the
// mutation build returns. It reports false when build returned none.
func applyTaskMutation(ctx context.Context, store primary.BoardStore, taskID string, build taskMutation) (bool, error) {
	ref, t, err := locateTask(store, taskID)
	if err != nil {
		return false, err
	}
	m, act := build(ref, t)
	if m == nil {
		return false, nil
	}
	if err := mutate(ctx, store, m, act); err != nil {
		return false, err
	}
	return true, nil
}

func init() {
	taskCoverCmd.Flags().String("color", "", "Cover color (hex)")
	taskCoverCmd.Flags().String("image", "", "Cover image URL")
	taskCoverCmd.Flags().Bool("full", false, "Fill the whole card")
	taskCoverCmd.Flags().Bool("reset", false, "Remove the cover")
	taskAttachCmd.Flags().String("name", "", "Attachment name")

	taskCmd.AddCommand(taskAddCmd)
	taskCmd.AddCommand(taskShowCmd)
	taskCmd.AddCommand(taskRenameCmd)
	taskCmd.AddCommand(taskDescribeCmd)
	taskCmd.AddCommand(taskArchiveCmd)
	taskCmd.AddCommand(taskMoveCmd)
	taskCmd.AddCommand(taskReorderCmd)
	taskCmd.AddCommand(taskDueCmd)
	taskCmd.AddCommand(taskCoverCmd)
	taskCmd.AddCommand(taskAttachCmd)
	taskCmd.AddCommand(taskDetachCmd)
	taskCmd.AddCommand(taskLabelCmd)
	taskCmd.AddCommand(taskMemberCmd)
	taskCmd.AddCommand(taskWatchCmd)
}

// TaskCmd returns the task command
func TaskCmd() *cobra.Command {
	return taskCmd
}
