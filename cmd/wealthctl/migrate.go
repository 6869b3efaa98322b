package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/SscSPs/wealth_tracker/internal/platform/config"
	"github.com/SscSPs/wealth_tracker/pkg/database"
	"github.com/google/subcommands"
)

// migrateCmd applies, rolls back or reports the schema migrations.
type migrateCmd struct {
	steps int
}

func (*migrateCmd) Name() string     { return "migrate" }
func (*migrateCmd) Synopsis() string { return "apply, roll back or inspect database migrations" }
func (*migrateCmd) Usage() string {
	return `wealthctl migrate up|down|version [-steps <n>]

  up       applies every pending migration
  down     rolls back -steps migrations (default 1)
  version  prints the current schema version

  PGSQL_URL and MIGRATIONS_PATH are read from the environment or .env.
`
}

func (c *migrateCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.steps, "steps", 1, "Number of migrations to roll back with 'down'")
}

func (c *migrateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one of up, down or version.")
		return subcommands.ExitUsageError
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return subcommands.ExitFailure
	}

	switch f.Arg(0) {
	case "up":
		applied, err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error applying migrations: %v\n", err)
			return subcommands.ExitFailure
		}
		if applied {
			fmt.Println("migrations applied")
		} else {
			fmt.Println("no change")
		}
	case "down":
		if c.steps < 1 {
			fmt.Fprintln(os.Stderr, "Error: -steps must be at least 1.")
			return subcommands.ExitUsageError
		}
		if err := database.RollbackMigrations(cfg.DatabaseURL, cfg.MigrationsPath, c.steps); err != nil {
			fmt.Fprintf(os.Stderr, "Error rolling back migrations: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("rolled back %d migration(s)\n", c.steps)
	case "version":
		version, dirty, err := database.MigrationVersion(cfg.DatabaseURL, cfg.MigrationsPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading migration version: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("version %d (dirty=%t)\n", version, dirty)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown migrate action %q.\n", f.Arg(0))
		return subcommands.ExitUsageError
	}
	return subcommands.ExitSuccess
}
