package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/taskboard/internal/core/board"
	"github.com/example/taskboard/internal/models"
	"github.com/example/taskboard/internal/wire"
)

var labelCmd = &cobra.Command{
	Use:   "label",
	Short: "Manage board labels",
}

var labelListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the labels of the current board",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := commandContext()
		store := wire.BoardStore()
		if err := openBoard(ctx, store); err != nil {
			return err
		}

		labels := store.Board().Labels
		if len(labels) == 0 {
			fmt.Println("No labels found")
			return nil
		}
		for _, l := range labels {
			fmt.Printf("%-12s %-8s %s\n", l.ID, l.Color, l.Title)
		}
		return nil
	},
}

var labelCreateCmd = &cobra.Command{
	Use:   "create [task-id]",
	Short: "Create a label and attach it to a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title, _ := cmd.Flags().GetString("title")
		colorHex, _ := cmd.Flags().GetString("color")

		return runTaskMutation(args[0], createLabel(models.Label{Title: title, Color: colorHex}), "✓ Label added to %s")
	},
}

var labelEditCmd = &cobra.Command{
	Use:   "edit [label-id]",
	Short: "Change a label's title or color",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := commandContext()
		store := wire.BoardStore()
		if err := openBoard(ctx, store); err != nil {
			return err
		}

		b := store.Board()
		idx := b.LabelIndex(args[0])
		if idx < 0 {
			return fmt.Errorf("label %s not found", args[0])
		}
		label := b.Labels[idx]
		if cmd.Flags().Changed("title") {
			label.Title, _ = cmd.Flags().GetString("title")
		}
		if cmd.Flags().Changed("color") {
			label.Color, _ = cmd.Flags().GetString("color")
		}

		if err := mutate(ctx, store, board.UpsertLabel{Label: label}, nil); err != nil {
			return err
		}

		fmt.Printf("✓ Label %s updated\n", label.ID)
		return nil
	},
}

// createLabel attaches a new label to a task. A task already at the label cap
// is left alone.
func createLabel(label models.Label) taskMutation {
	return func(ref board.TaskRef, t *models.Task) (board.Mutation, *models.Activity) {
		if !board.CanAddLabel(t) {
			fmt.Printf("Task %s already has %d labels; nothing added\n", t.ID, models.MaxTaskLabels)
			return nil, nil
		}
		return board.UpsertLabel{TaskRef: ref, Label: label}, nil
	}
}

func init() {
	labelCreateCmd.Flags().String("title", "", "Label title")
	labelCreateCmd.Flags().String("color", "", "Label color (hex)")
	labelEditCmd.Flags().String("title", "", "New label title")
	labelEditCmd.Flags().String("color", "", "New label color (hex)")

	labelCmd.AddCommand(labelListCmd)
	labelCmd.AddCommand(labelCreateCmd)
	labelCmd.AddCommand(labelEditCmd)
}

// LabelCmd returns the label command
func LabelCmd() *cobra.Command {
	return labelCmd
}
