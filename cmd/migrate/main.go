package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/osse101/ClanWarsBot_Go/internal/bootstrap"
	"github.com/osse101/ClanWarsBot_Go/internal/config"
	"github.com/osse101/ClanWarsBot_Go/internal/database"
)

// Applies all pending schema migrations and exits. Intended for
// deployments that do not enable DB_AUTO_MIGRATE.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	bootstrap.SetupLogger(cfg)

	if err := database.Migrate(context.Background(), cfg.GetDBConnString()); err != nil {
		slog.Error("Migration failed", "error", err)
		os.Exit(1)
	}

	slog.Info("Migrations complete")
}
