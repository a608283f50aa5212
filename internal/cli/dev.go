package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/example/taskboard/internal/config"
	"github.com/example/taskboard/internal/db"
	"github.com/example/taskboard/internal/wire"
)

// DevCmd returns the dev command group for development utilities.
func DevCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dev",
		Short: "Development utilities",
		Long: `Development utilities for working with a local taskboard database.

reset refuses to run unless TASKBOARD_DB_PATH is set, so the database of a
real project is never wiped by accident.`,
	}

	cmd.AddCommand(devResetCmd())
	cmd.AddCommand(devDoctorCmd())
	return cmd
}

func devResetCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset the database with fixture boards",
		Long: `Delete the database and recreate it with fixture data.

This command:
1. Deletes the existing database file
2. Creates a fresh database with the current schema
3. Seeds a template board and a demo board, and selects the demo board`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if os.Getenv(config.EnvPrefix+"_DB_PATH") == "" {
				return fmt.Errorf("%s_DB_PATH not set\n\nThis safety check prevents accidental reset of a real board database", config.EnvPrefix)
			}
			dbPath := wire.Config().DBPath

			if !force {
				fmt.Printf("This will delete and recreate: %s\n", dbPath)
				fmt.Print("Continue? [y/N] ")
				var response string
				fmt.Scanln(&response)
				if response != "y" && response != "Y" {
					fmt.Println("Aborted.")
					return nil
				}
			}

			db.Close()

			if err := os.Remove(dbPath); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("failed to delete database: %w", err)
			}
			fmt.Printf("✓ Deleted %s\n", dbPath)

			database, err := db.GetDB(dbPath)
			if err != nil {
				return fmt.Errorf("failed to create database: %w", err)
			}
			fmt.Println("✓ Created fresh database with schema")

			if err := db.SeedFixtures(database); err != nil {
				return fmt.Errorf("failed to seed fixtures: %w", err)
			}
			fmt.Println("✓ Seeded fixture data")

			fmt.Println("\nDev database reset complete!")
			fmt.Println("\nSeeded boards:")
			fmt.Println("  - 1 template board")
			fmt.Println("  - 1 demo board (current)")

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompt")
	return cmd
}

func devDoctorCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check environment health",
		Long: `Check the health of the taskboard environment.

Verifies:
- The database opens and its schema is current
- Redis answers when redis_url is configured`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := wire.Config()
			issues := 0
			report := func(ok bool, okMsg, failMsg string) {
				if !ok {
					issues++
				}
				if quiet {
					return
				}
				if ok {
					fmt.Printf("   ✓ %s\n", okMsg)
				} else {
					fmt.Printf("   ✗ %s\n", failMsg)
				}
			}

			if !quiet {
				fmt.Println("=== Taskboard Health Check ===")
				fmt.Println()
				fmt.Println("1. Database")
			}
			database, err := db.GetDB(cfg.DBPath)
			report(err == nil, cfg.DBPath, fmt.Sprintf("cannot open %s: %v", cfg.DBPath, err))
			if err == nil {
				version, err := db.SchemaVersion(database)
				report(err == nil && version == db.LatestVersion(),
					fmt.Sprintf("schema at version %d", version),
					fmt.Sprintf("schema at version %d, want %d (%v)", version, db.LatestVersion(), err))
			}

			if !quiet {
				fmt.Println()
				fmt.Println("2. Cache")
			}
			if cfg.RedisURL == "" {
				if !quiet {
					fmt.Println("   - disabled (redis_url not set)")
				}
			} else {
				opts, err := redis.ParseURL(cfg.RedisURL)
				if err == nil {
					client := redis.NewClient(opts)
					err = client.Ping(context.Background()).Err()
					client.Close()
				}
				report(err == nil, "redis reachable", fmt.Sprintf("redis unavailable: %v", err))
			}

			if !quiet {
				fmt.Println()
			}
			if issues > 0 {
				return fmt.Errorf("%d issue(s) found", issues)
			}
			if !quiet {
				fmt.Println("All checks passed.")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only report through the exit code")
	return cmd
}
