package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/taskboard/internal/cli"
	"github.com/example/taskboard/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "taskboard",
		Short:   "Taskboard - kanban boards in the terminal",
		Version: version.String(),
		Long: `Taskboard manages kanban boards: groups of tasks with labels, members,
checklists and an activity feed. Boards live in a local SQLite database,
optionally fronted by a Redis cache.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(cli.InitCmd())

	// Board commands
	rootCmd.AddCommand(cli.BoardCmd())
	rootCmd.AddCommand(cli.GroupCmd())
	rootCmd.AddCommand(cli.TaskCmd())
	rootCmd.AddCommand(cli.LabelCmd())
	rootCmd.AddCommand(cli.TodoCmd())
	rootCmd.AddCommand(cli.SearchCmd())
	rootCmd.AddCommand(cli.ActivityCmd())

	// Developer tools
	rootCmd.AddCommand(cli.DevCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
