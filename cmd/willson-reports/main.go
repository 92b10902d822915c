package main

import (
	"context"
	"os"
	"time"

	"github.com/wichananm65/willson-financial/internal/cli"
	"github.com/wichananm65/willson-financial/internal/config"
	"github.com/wichananm65/willson-financial/internal/database"
	"github.com/wichananm65/willson-financial/internal/report"
)

func main() {
	os.Exit(cli.Main(run))
}

func run(ctx context.Context) error {
	cfg, err := config.Load(config.DefaultEnvFile)
	if err != nil {
		return err
	}

	return database.WithDB(ctx, cfg, func(db *database.DB) error {
		if err := report.NewRunner(db, os.Stdout).RunAll(ctx, time.Now()); err != nil {
			return err
		}
		return cli.Pause(os.Stdin, os.Stdout, "\n  "+cli.PressAnyKey)
	})
}
