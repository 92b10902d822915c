package main

import (
	"context"
	"fmt"
	"os"

	"github.com/wichananm65/willson-financial/internal/cli"
	"github.com/wichananm65/willson-financial/internal/config"
	"github.com/wichananm65/willson-financial/internal/database"
	"github.com/wichananm65/willson-financial/internal/report"
	"github.com/wichananm65/willson-financial/internal/schema"
)

func main() {
	os.Exit(cli.Main(run))
}

func run(ctx context.Context) error {
	cfg, err := config.Load(config.DefaultEnvFile)
	if err != nil {
		return err
	}
	cfg = cfg.WithWarnings(false)
	if err := cfg.ValidateDatabaseName(); err != nil {
		return err
	}

	if err := createDatabase(ctx, cfg); err != nil {
		return err
	}

	return database.WithDB(ctx, cfg, func(db *database.DB) error {
		if err := schema.Initialize(ctx, db); err != nil {
			return err
		}
		if err := schema.ShowAll(ctx, report.NewRunner(db, os.Stdout)); err != nil {
			return err
		}
		return cli.Pause(os.Stdin, os.Stdout, "\n  Press Enter to continue...")
	})
}

func createDatabase(ctx context.Context, cfg config.Config) error {
	db, err := database.OpenMaintenance(ctx, cfg)
	if err != nil {
		return err
	}

	return database.Use(db, func(db *database.DB) error {
		created, err := schema.EnsureDatabase(ctx, db, cfg.Database)
		if err != nil {
			return err
		}
		if created {
			fmt.Printf("  Created database %s\n", cfg.Database)
		}
		return nil
	})
}
