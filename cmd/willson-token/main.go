package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/wichananm65/willson-financial/internal/auth"
	"github.com/wichananm65/willson-financial/internal/cli"
	"github.com/wichananm65/willson-financial/internal/config"
	"github.com/wichananm65/willson-financial/internal/database"
	"github.com/wichananm65/willson-financial/internal/employee"
)

func main() {
	os.Exit(cli.Main(run))
}

// run prints a bearer token for the employee named by the only argument.
// With -hash it prints the bcrypt hash of a password instead.
func run(ctx context.Context) error {
	if len(os.Args) == 3 && os.Args[1] == "-hash" {
		hash, err := auth.HashPassword(os.Args[2])
		if err != nil {
			return err
		}
		fmt.Println(hash)
		return nil
	}
	if len(os.Args) != 2 {
		return fmt.Errorf("usage: %s <employee-id> | -hash <password>", os.Args[0])
	}
	id, err := strconv.Atoi(os.Args[1])
	if err != nil {
		return fmt.Errorf("invalid employee id %q", os.Args[1])
	}

	cfg, err := config.Load(config.DefaultEnvFile)
	if err != nil {
		return err
	}

	return database.WithDB(ctx, cfg, func(db *database.DB) error {
		e, err := employee.NewService(employee.NewPostgresRepository(db.DB)).GetByID(ctx, id)
		if err != nil {
			return err
		}
		token, err := auth.IssueToken(e.ID, cfg.JWTSecret, auth.TokenTTL)
		if err != nil {
			return err
		}
		fmt.Println(token)
		return nil
	})
}
