package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/taskboard/internal/wire"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search task titles on the current board",
	Long: `Search task titles on the current board.

The query is a case-insensitive regular expression; an invalid pattern
is matched literally.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := commandContext()
		if err := openBoard(ctx, wire.BoardStore()); err != nil {
			return err
		}
		_, err := wire.BoardAdapter().Search(strings.Join(args, " "))
		return err
	},
}

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Show the activity feed of the current board",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := commandContext()
		limit, _ := cmd.Flags().GetInt("limit")
		if err := openBoard(ctx, wire.BoardStore()); err != nil {
			return err
		}
		_, err := wire.BoardAdapter().Activities(limit)
		return err
	},
}

func init() {
	activityCmd.Flags().IntP("limit", "n", 20, "Number of entries to show (0 for all)")
}

// SearchCmd returns the search command
func SearchCmd() *cobra.Command {
	return searchCmd
}

// ActivityCmd returns the activity command
func ActivityCmd() *cobra.Command {
	return activityCmd
}
