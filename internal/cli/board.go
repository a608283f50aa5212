package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/taskboard/internal/core/board"
	"github.com/example/taskboard/internal/models"
	"github.com/example/taskboard/internal/ports/primary"
	"github.com/example/taskboard/internal/wire"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Manage boards",
	Long:  "Create, select, show, star and delete boards",
}

var boardListCmd = &cobra.Command{
	Use:   "list",
	Short: "List boards",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := commandContext()
		templates, _ := cmd.Flags().GetBool("templates")

		store := wire.BoardStore()
		if err := store.LoadBoards(ctx); err == nil && store.Board() == nil {
			// Mark the last-viewed board in the listing; nothing selected is fine.
			_, _ = store.RestoreLastBoard(ctx)
		}

		_, err := wire.BoardAdapter().List(ctx, templates)
		return err
	},
}

var boardCreateCmd = &cobra.Command{
	Use:   "create [title]",
	Short: "Create a board and make it current",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := commandContext()
		templateID, _ := cmd.Flags().GetString("template")

		store := wire.BoardStore()
		if err := store.LoadBoards(ctx); err != nil {
			return fmt.Errorf("failed to load boards: %w", err)
		}

		b := &models.Board{Title: args[0]}
		if templateID != "" {
			tpl := findBoard(store.TemplateBoards(), templateID)
			if tpl == nil {
				return fmt.Errorf("template %s not found", templateID)
			}
			b = fromTemplate(tpl, args[0])
		}
		if member := wire.Config().Member; member != "" {
			creator := models.Member{ID: member, Username: member, Fullname: member}
			b.CreatedBy = &creator
			if b.FindMember(member) == nil {
				b.Members = append(b.Members, creator)
			}
		}

		saved, err := store.ApplyBoardAction(ctx, primary.ActionSave, b)
		if err != nil {
			return fmt.Errorf("failed to create board: %w", err)
		}
		if _, err := store.ApplyBoardAction(ctx, primary.ActionSet, saved); err != nil {
			return fmt.Errorf("failed to select board: %w", err)
		}
		if err := store.RecordActivity(ctx, models.Activity{Txt: "created the board"}); err != nil {
			return fmt.Errorf("failed to record activity: %w", err)
		}

		fmt.Printf("✓ Created board %s: %s\n", saved.ID, saved.Title)
		if templateID != "" {
			fmt.Printf("  From template: %s\n", templateID)
		}
		return nil
	},
}

var boardUseCmd = &cobra.Command{
	Use:   "use [board-id]",
	Short: "Make a board current",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := commandContext()
		store := wire.BoardStore()
		if err := store.LoadBoards(ctx); err != nil {
			return fmt.Errorf("failed to load boards: %w", err)
		}

		b, err := store.ApplyBoardAction(ctx, primary.ActionSet, &models.Board{ID: args[0]})
		if err != nil {
			return fmt.Errorf("failed to select board: %w", err)
		}

		fmt.Printf("✓ Now on board %s: %s\n", b.ID, b.Title)
		return nil
	},
}

var boardShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current board",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := commandContext()
		if err := openBoard(ctx, wire.BoardStore()); err != nil {
			return err
		}
		_, err := wire.BoardAdapter().Show()
		return err
	},
}

var boardRenameCmd = &cobra.Command{
	Use:   "rename [title]",
	Short: "Rename the current board",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := commandContext()
		store := wire.BoardStore()
		if err := openBoard(ctx, store); err != nil {
			return err
		}

		act := &models.Activity{Txt: fmt.Sprintf("renamed the board to %s", args[0])}
		if err := mutate(ctx, store, board.RenameBoard{Title: args[0]}, act); err != nil {
			return err
		}

		fmt.Printf("✓ Board renamed to %s\n", args[0])
		return nil
	},
}

var boardStarCmd = &cobra.Command{
	Use:   "star [board-id]",
	Short: "Star or unstar a board (defaults to the current board)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := commandContext()
		store := wire.BoardStore()

		id := ""
		if len(args) == 1 {
			id = args[0]
			if err := store.LoadBoards(ctx); err != nil {
				return fmt.Errorf("failed to load boards: %w", err)
			}
		} else if err := openBoard(ctx, store); err != nil {
			return err
		}

		if err := store.ToggleStarred(ctx, id); err != nil {
			return fmt.Errorf("failed to toggle star: %w", err)
		}

		if id == "" && store.Board() != nil {
			id = store.Board().ID
		}
		b := listedBoard(store, id)
		if b != nil && b.IsStarred {
			fmt.Printf("✓ Starred board %s\n", id)
		} else {
			fmt.Printf("✓ Unstarred board %s\n", id)
		}
		return nil
	},
}

var boardDeleteCmd = &cobra.Command{
	Use:   "delete [board-id]",
	Short: "Delete a board",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := commandContext()
		store := wire.BoardStore()
		if err := store.LoadBoards(ctx); err != nil {
			return fmt.Errorf("failed to load boards: %w", err)
		}

		if _, err := store.ApplyBoardAction(ctx, primary.ActionRemove, &models.Board{ID: args[0]}); err != nil {
			return fmt.Errorf("failed to delete board: %w", err)
		}

		fmt.Printf("✓ Deleted board %s\n", args[0])
		return nil
	},
}

var boardBackgroundCmd = &cobra.Command{
	Use:   "background [image-url-or-color]",
	Short: "Set the current board background",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := commandContext()
		hexa, _ := cmd.Flags().GetString("color")

		store := wire.BoardStore()
		if err := openBoard(ctx, store); err != nil {
			return err
		}

		var derived any
		if hexa != "" {
			derived = hexa
		}
		act := &models.Activity{Txt: "changed the board background"}
		if err := mutate(ctx, store, board.SetBackground{Background: args[0], Color: derived}, act); err != nil {
			return err
		}

		fmt.Printf("✓ Background set to %s\n", args[0])
		return nil
	},
}

var boardLabelsTextCmd = &cobra.Command{
	Use:   "labels-text",
	Short: "Toggle showing label titles on cards",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := commandContext()
		store := wire.BoardStore()
		if err := openBoard(ctx, store); err != nil {
			return err
		}

		if err := mutate(ctx, store, board.ToggleLabelsText{}, nil); err != nil {
			return err
		}

		if store.Board().IsLabelsTextShow {
			fmt.Println("✓ Label titles shown")
		} else {
			fmt.Println("✓ Label titles hidden")
		}
		return nil
	},
}

var boardMemberCmd = &cobra.Command{
	Use:   "member [username]",
	Short: "Add a member to the current board",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := commandContext()
		id, _ := cmd.Flags().GetString("id")
		fullname, _ := cmd.Flags().GetString("fullname")
		if id == "" {
			id = args[0]
		}
		if fullname == "" {
			fullname = args[0]
		}

		store := wire.BoardStore()
		if err := openBoard(ctx, store); err != nil {
			return err
		}

		m := models.Member{ID: id, Username: args[0], Fullname: fullname}
		act := &models.Activity{Txt: fmt.Sprintf("added %s to the board", fullname)}
		if err := mutate(ctx, store, board.AddMember{Member: m}, act); err != nil {
			return err
		}

		fmt.Printf("✓ Added member %s (%s)\n", m.Username, m.ID)
		return nil
	},
}

func findBoard(boards []*models.Board, id string) *models.Board {
	for _, b := range boards {
		if b.ID == id {
			return b
		}
	}
	return nil
}

// listedBoard finds a board or template board by id.
func listedBoard(store primary.BoardStore, id string) *models.Board {
	if b := findBoard(store.Boards(), id); b != nil {
		return b
	}
	return findBoard(store.TemplateBoards(), id)
}

// fromTemplate copies a template board into a new, unsaved board.
func fromTemplate(tpl *models.Board, title string) *models.Board {
	b := tpl.Clone()
	b.ID = ""
	b.Title = title
	b.CreatedAt = 0
	b.CreatedBy = nil
	b.IsTemplate = false
	b.IsStarred = false
	b.Activities = nil
	return b
}

func init() {
	boardListCmd.Flags().Bool("templates", false, "List template boards instead")
	boardCreateCmd.Flags().String("template", "", "Template board ID to copy")
	boardBackgroundCmd.Flags().String("color", "", "Hex color derived from the background")
	boardMemberCmd.Flags().String("id", "", "Member ID (defaults to the username)")
	boardMemberCmd.Flags().String("fullname", "", "Display name (defaults to the username)")

	boardCmd.AddCommand(boardListCmd)
	boardCmd.AddCommand(boardCreateCmd)
	boardCmd.AddCommand(boardUseCmd)
	boardCmd.AddCommand(boardShowCmd)
	boardCmd.AddCommand(boardRenameCmd)
	boardCmd.AddCommand(boardStarCmd)
	boardCmd.AddCommand(boardDeleteCmd)
	boardCmd.AddCommand(boardBackgroundCmd)
	boardCmd.AddCommand(boardLabelsTextCmd)
	boardCmd.AddCommand(boardMemberCmd)
}

// BoardCmd returns the board command
func BoardCmd() *cobra.Command {
	return boardCmd
}
