package main

// Run database migrations:
//   go run ./cmd/migrate            # up
//   go run ./cmd/migrate down
//   go run ./cmd/migrate status

import (
	"context"
	"fmt"
	"os"

	"resume-feedback/internal/shared/config"
	"resume-feedback/internal/shared/storage/db"
	"resume-feedback/internal/shared/telemetry"
)

func main() {
	cmd := "up"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}
	if err := run(context.Background(), cmd); err != nil {
		telemetry.Error("migrate.failed", map[string]any{"command": cmd, "error": err})
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd string) error {
	cfg := config.Load()

	opts := db.OptionsFromEnv(db.DefaultMigrateOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer sqlDB.Close()

	switch cmd {
	case "up":
		err = db.RunMigrations(ctx, sqlDB)
	case "down":
		err = db.RollbackMigration(ctx, sqlDB)
	case "status":
		err = db.MigrationStatus(ctx, sqlDB)
	default:
		return fmt.Errorf("unknown command %q (want up, down or status)", cmd)
	}
	if err != nil {
		return err
	}
	telemetry.Info("migrate.done", map[string]any{"command": cmd})
	return nil
}
