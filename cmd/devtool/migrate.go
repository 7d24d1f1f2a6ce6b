package main

import (
	"context"
	"fmt"
	"time"

	"github.com/pressly/goose/v3"

	"github.com/osse101/QuestBoard_Go/internal/config"
	"github.com/osse101/QuestBoard_Go/internal/database"
	"github.com/osse101/QuestBoard_Go/migrations"
)

const migrateTimeout = 2 * time.Minute

type MigrateCommand struct{}

func (c *MigrateCommand) Name() string {
	return "migrate"
}

func (c *MigrateCommand) Description() string {
	return "Apply or list the embedded database migrations"
}

func (c *MigrateCommand) Usage() string {
	return "<up|status>"
}

func (c *MigrateCommand) Run(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: subcommand required", errUsage)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	pool, err := database.NewPool(cfg.DBConnString(), 2, time.Minute, 5*time.Minute)
	if err != nil {
		return err
	}
	defer pool.Close()

	ctx, cancel := context.WithTimeout(context.Background(), migrateTimeout)
	defer cancel()

	switch args[0] {
	case "up":
		PrintHeader("Applying migrations")
		if err := database.Migrate(ctx, pool, migrations.FS); err != nil {
			return err
		}
		PrintSuccess("Database schema is up to date")
		return nil

	case "status":
		PrintHeader("Migration status")
		statuses, err := database.MigrationStatus(ctx, pool, migrations.FS)
		if err != nil {
			return err
		}
		for _, st := range statuses {
			if st.State == goose.StateApplied {
				PrintSuccess("%-28s applied %s", st.Source.Path, st.AppliedAt.Format(time.RFC3339))
			} else {
				PrintInfo("%-28s pending", st.Source.Path)
			}
		}
		return nil

	default:
		return fmt.Errorf("%w: unknown subcommand %q", errUsage, args[0])
	}
}
