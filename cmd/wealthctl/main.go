// Command wealthctl runs maintenance tasks against the wealth tracker database:
// migrations, CSV imports, net worth reports and API tokens.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path"

	portssvc "github.com/SscSPs/wealth_tracker/internal/core/ports/services"
	"github.com/SscSPs/wealth_tracker/internal/core/services"
	"github.com/SscSPs/wealth_tracker/internal/platform/config"
	"github.com/SscSPs/wealth_tracker/internal/repositories/database/pgsql"
	"github.com/SscSPs/wealth_tracker/pkg/database"
	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")

	commander.Register(&migrateCmd{}, "database")
	commander.Register(&importCSVCmd{}, "ledger")
	commander.Register(&netWorthCmd{}, "reports")
	commander.Register(&tokenCmd{}, "auth")

	flag.Parse()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))
	os.Exit(int(commander.Execute(context.Background())))
}

// openServices connects to the configured database and builds the services.
// The returned func closes the pool.
func openServices(ctx context.Context) (*portssvc.ServiceContainer, func(), error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	if cfg.StorageDriver != config.StorageDriverPostgres {
		return nil, nil, fmt.Errorf("wealthctl needs STORAGE_DRIVER=%s, got %q", config.StorageDriverPostgres, cfg.StorageDriver)
	}
	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, database.PoolOptions{Ping: true, MaxConns: 4, ApplicationName: "wealthctl"})
	if err != nil {
		return nil, nil, err
	}
	container, err := services.NewServiceContainer(cfg, pgsql.NewRepositoryProvider(pool), nil)
	if err != nil {
		database.ClosePgxPool(pool)
		return nil, nil, err
	}
	return container, func() { database.ClosePgxPool(pool) }, nil
}
