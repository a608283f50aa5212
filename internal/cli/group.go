package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"github.com/example/taskboard/internal/core/board"
	"github.com/example/taskboard/internal/core/dnd"
	"github.com/example/taskboard/internal/models"
	"github.com/example/taskboard/internal/wire"
)

var groupCmd = &cobra.Command{
	Use:   "group",
	Short: "Manage groups (columns) of the current board",
}

var groupAddCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Append a group",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := commandContext()
		store := wire.BoardStore()
		if err := openBoard(ctx, store); err != nil {
			return err
		}

		act := &models.Activity{Txt: fmt.Sprintf("added list %s", args[0])}
		if err := mutate(ctx, store, board.UpsertGroup{Group: models.Group{Title: args[0]}}, act); err != nil {
			return err
		}

		groups := store.Board().Groups
		g := groups[len(groups)-1]
		fmt.Printf("✓ Added group %s: %s\n", g.ID, g.Title)
		return nil
	},
}

var groupRenameCmd = &cobra.Command{
	Use:   "rename [group-id] [title]",
	Short: "Rename a group",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := commandContext()
		store := wire.BoardStore()
		if err := openBoard(ctx, store); err != nil {
			return err
		}

		g := store.Board().FindGroup(args[0])
		if g == nil {
			return fmt.Errorf("group %s not found", args[0])
		}
		g.Title = args[1]
		if err := mutate(ctx, store, board.UpsertGroup{Group: *g}, nil); err != nil {
			return err
		}

		fmt.Printf("✓ Group %s renamed to %s\n", g.ID, g.Title)
		return nil
	},
}

var groupDuplicateCmd = &cobra.Command{
	Use:   "duplicate [group-id]",
	Short: "Copy a group and its tasks next to the original",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := commandContext()
		store := wire.BoardStore()
		if err := openBoard(ctx, store); err != nil {
			return err
		}

		g := store.Board().FindGroup(args[0])
		if g == nil {
			return fmt.Errorf("group %s not found", args[0])
		}
		act := &models.Activity{Txt: fmt.Sprintf("copied list %s", g.Title)}
		if err := mutate(ctx, store, board.DuplicateGroup{Group: *g}, act); err != nil {
			return err
		}

		fmt.Printf("✓ Duplicated group %s\n", g.ID)
		return nil
	},
}

var groupArchiveCmd = &cobra.Command{
	Use:   "archive [group-id]",
	Short: "Remove a group and its tasks",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := commandContext()
		store := wire.BoardStore()
		if err := openBoard(ctx, store); err != nil {
			return err
		}

		g := store.Board().FindGroup(args[0])
		if g == nil {
			return fmt.Errorf("group %s not found", args[0])
		}
		act := &models.Activity{Txt: fmt.Sprintf("archived list %s", g.Title)}
		if err := mutate(ctx, store, board.ArchiveGroup{GroupID: g.ID}, act); err != nil {
			return err
		}

		fmt.Printf("✓ Archived group %s\n", g.ID)
		return nil
	},
}

var groupClearCmd = &cobra.Command{
	Use:   "clear [group-id]",
	Short: "Archive every task of a group",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := commandContext()
		store := wire.BoardStore()
		if err := openBoard(ctx, store); err != nil {
			return err
		}

		g := store.Board().FindGroup(args[0])
		if g == nil {
			return fmt.Errorf("group %s not found", args[0])
		}
		act := &models.Activity{Txt: fmt.Sprintf("archived all cards in %s", g.Title), GroupID: g.ID}
		if err := mutate(ctx, store, board.ArchiveAllTasks{GroupID: g.ID}, act); err != nil {
			return err
		}

		fmt.Printf("✓ Archived %d task(s) from %s\n", len(g.Tasks), g.ID)
		return nil
	},
}

var groupWatchCmd = &cobra.Command{
	Use:   "watch [group-id]",
	Short: "Watch or unwatch a group",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := commandContext()
		store := wire.BoardStore()
		if err := openBoard(ctx, store); err != nil {
			return err
		}

		if err := mutate(ctx, store, board.ToggleWatch{Target: board.WatchGroup, GroupID: args[0]}, nil); err != nil {
			return err
		}

		if g := store.Board().FindGroup(args[0]); g != nil && g.IsWatched {
			fmt.Printf("✓ Watching group %s\n", args[0])
		} else {
			fmt.Printf("✓ Stopped watching group %s\n", args[0])
		}
		return nil
	},
}

var groupSortCmd = &cobra.Command{
	Use:   "sort [group-id] [alphabet|oldest|newest]",
	Short: "Sort the tasks of a group",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := commandContext()
		store := wire.BoardStore()
		if err := openBoard(ctx, store); err != nil {
			return err
		}

		if err := mutate(ctx, store, board.SortGroupTasks{GroupID: args[0], SortBy: board.SortBy(args[1])}, nil); err != nil {
			return err
		}

		fmt.Printf("✓ Sorted group %s by %s\n", args[0], args[1])
		return nil
	},
}

var groupMoveCmd = &cobra.Command{
	Use:   "move [from-index] [to-index]",
	Short: "Move a group to another position",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := commandContext()
		from, to, err := parsePositions(args[0], args[1])
		if err != nil {
			return err
		}

		store := wire.BoardStore()
		if err := openBoard(ctx, store); err != nil {
			return err
		}

		groups := store.Board().Groups
		if from >= len(groups) {
			return fmt.Errorf("no group at position %d", from)
		}
		if err := store.OnColumnDrop(ctx, dnd.Move[models.Group](from, to)); err != nil {
			return fmt.Errorf("failed to move group: %w", err)
		}

		fmt.Printf("✓ Moved group %s to position %d\n", groups[from].ID, to)
		return nil
	},
}

var groupImportCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Replace the current board's groups with a JSON group list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := commandContext()
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		var groups []models.Group
		if err := sonic.Unmarshal(data, &groups); err != nil {
			return fmt.Errorf("failed to parse %s: %w", args[0], err)
		}

		store := wire.BoardStore()
		if err := openBoard(ctx, store); err != nil {
			return err
		}
		if err := store.UpdateGroups(ctx, groups); err != nil {
			return fmt.Errorf("failed to import groups: %w", err)
		}

		fmt.Printf("✓ Imported %d group(s)\n", len(groups))
		return nil
	},
}

func parsePositions(fromArg, toArg string) (int, int, error) {
	from, err := strconv.Atoi(fromArg)
	if err != nil || from < 0 {
		return 0, 0, fmt.Errorf("invalid position %q", fromArg)
	}
	to, err := strconv.Atoi(toArg)
	if err != nil || to < 0 {
		return 0, 0, fmt.Errorf("invalid position %q", toArg)
	}
	return from, to, nil
}

func init() {
	groupCmd.AddCommand(groupAddCmd)
	groupCmd.AddCommand(groupRenameCmd)
	groupCmd.AddCommand(groupDuplicateCmd)
	groupCmd.AddCommand(groupArchiveCmd)
	groupCmd.AddCommand(groupClearCmd)
	groupCmd.AddCommand(groupWatchCmd)
	groupCmd.AddCommand(groupSortCmd)
	groupCmd.AddCommand(groupMoveCmd)
	groupCmd.AddCommand(groupImportCmd)
}

// GroupCmd returns the group command
func GroupCmd() *cobra.Command {
	return groupCmd
}
