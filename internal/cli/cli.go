package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/wichananm65/willson-financial/internal/config"
	"github.com/wichananm65/willson-financial/internal/database"
)

// PressAnyKey is the prompt shown before a script continues or exits.
const PressAnyKey = "Press any key to continue..."

// Pause prints msg and waits for one line on in. End of input counts as an answer.
func Pause(in io.Reader, out io.Writer, msg string) error {
	if _, err := fmt.Fprint(out, msg); err != nil {
		return err
	}
	_, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Banner prints which user, host and database the script is connected to.
func Banner(out io.Writer, cfg config.Config) error {
	_, err := fmt.Fprintf(out, "\n  Database user %s connected to host %s with database %s\n", cfg.User, cfg.Host, cfg.Database)
	return err
}

// Run calls fn and turns its error into a message on out and an exit code.
func Run(ctx context.Context, out io.Writer, fn func(ctx context.Context) error) int {
	if err := fn(ctx); err != nil {
		fmt.Fprintf(out, "  %s\n", database.Describe(err))
		return 1
	}
	return 0
}

// Main runs fn with a context cancelled on interrupt, printing to stdout.
func Main(fn func(ctx context.Context) error) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return Run(ctx, os.Stdout, fn)
}
