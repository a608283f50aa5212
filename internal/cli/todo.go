package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/taskboard/internal/core/board"
	"github.com/example/taskboard/internal/models"
)

var todoCmd = &cobra.Command{
	Use:   "todo",
	Short: "Manage task checklists",
}

var todoListCreateCmd = &cobra.Command{
	Use:   "list-create [task-id] [title]",
	Short: "Add a checklist to a task",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTaskMutation(args[0], func(ref board.TaskRef, t *models.Task) (board.Mutation, *models.Activity) {
			return board.CreateTodoList{TaskRef: ref, Title: args[1]}, taskActivity("added a checklist", ref, t)
		}, "✓ Checklist added to %s")
	},
}

var todoListDeleteCmd = &cobra.Command{
	Use:   "list-delete [task-id] [list-id]",
	Short: "Remove a checklist from a task",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTaskMutation(args[0], func(ref board.TaskRef, t *models.Task) (board.Mutation, *models.Activity) {
			return board.DeleteTodoList{TaskRef: ref, ListID: args[1]}, nil
		}, "✓ Checklist removed from %s")
	},
}

var todoAddCmd = &cobra.Command{
	Use:   "add [task-id] [list-id] [title]",
	Short: "Add an item to a checklist",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTaskMutation(args[0], func(ref board.TaskRef, t *models.Task) (board.Mutation, *models.Activity) {
			return board.AddTodo{TaskRef: ref, ListID: args[1], Title: args[2]}, nil
		}, "✓ Item added to %s")
	},
}

var todoToggleCmd = &cobra.Command{
	Use:   "toggle [task-id] [list-id] [todo-id]",
	Short: "Check or uncheck a checklist item",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTaskMutation(args[0], func(ref board.TaskRef, t *models.Task) (board.Mutation, *models.Activity) {
			return board.ToggleTodo{TaskRef: ref, ListID: args[1], TodoID: args[2]}, nil
		}, "✓ Item toggled on %s")
	},
}

var todoHideCheckedCmd = &cobra.Command{
	Use:   "hide-checked [task-id] [list-id]",
	Short: "Hide or show checked items of a checklist",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTaskMutation(args[0], func(ref board.TaskRef, t *models.Task) (board.Mutation, *models.Activity) {
			return board.ToggleHideChecked{TaskRef: ref, ListID: args[1]}, nil
		}, "✓ Checked items toggled on %s")
	},
}

func init() {
	todoCmd.AddCommand(todoListCreateCmd)
	todoCmd.AddCommand(todoListDeleteCmd)
	todoCmd.AddCommand(todoAddCmd)
	todoCmd.AddCommand(todoToggleCmd)
	todoCmd.AddCommand(todoHideCheckedCmd)
}

// TodoCmd returns the todo command
func TodoCmd() *cobra.Command {
	return todoCmd
}
