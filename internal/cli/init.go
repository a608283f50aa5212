package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/taskboard/internal/config"
	"github.com/example/taskboard/internal/db"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize taskboard in the current directory",
		Long: `Create .taskboard/config.json and the board database in the current directory.

An existing config.json is kept unless --force is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			member, _ := cmd.Flags().GetString("member")
			redisURL, _ := cmd.Flags().GetString("redis")
			force, _ := cmd.Flags().GetBool("force")

			wd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}

			if _, err := os.Stat(config.Path(wd)); err == nil && !force {
				fmt.Printf("Config already exists at %s (use --force to overwrite)\n", config.Path(wd))
			} else {
				cfg, err := config.LoadConfig(wd)
				if err != nil {
					return err
				}
				cfg.Member = member
				cfg.RedisURL = redisURL
				if err := config.SaveConfig(wd, cfg); err != nil {
					return fmt.Errorf("failed to save config: %w", err)
				}
				fmt.Printf("✓ Config written to %s\n", config.Path(wd))
			}

			cfg, err := config.LoadConfig(wd)
			if err != nil {
				return err
			}
			if _, err := db.GetDB(cfg.DBPath); err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}
			fmt.Printf("✓ Database initialized at %s\n", cfg.DBPath)

			fmt.Println()
			fmt.Println("Next steps:")
			fmt.Println("  taskboard board create \"My board\"")
			fmt.Println("  taskboard group add \"To do\"")

			return nil
		},
	}

	cmd.Flags().String("member", "", "Member recorded as the actor of your changes")
	cmd.Flags().String("redis", "", "Redis URL for the board cache")
	cmd.Flags().BoolP("force", "f", false, "Overwrite an existing config")
	return cmd
}
