package main

import (
	"context"
	"os"

	"github.com/wichananm65/willson-financial/internal/cli"
	"github.com/wichananm65/willson-financial/internal/config"
	"github.com/wichananm65/willson-financial/internal/database"
	"github.com/wichananm65/willson-financial/internal/film"
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
		if err := cli.Banner(os.Stdout, db.Config()); err != nil {
			return err
		}
		if err := cli.Pause(os.Stdin, os.Stdout, "\n\n  "+cli.PressAnyKey); err != nil {
			return err
		}
		return film.UpdateAndDelete(ctx, os.Stdout, film.NewPostgresRepository(db))
	})
}
