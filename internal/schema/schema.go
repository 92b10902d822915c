package schema

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/wichananm65/willson-financial/internal/report"
)

type txBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

type rowQuerier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// ResetStatements drops the four tables, children first.
func ResetStatements() []string { return clone(resetStatements) }

// CreateStatements creates client, employee, client_transaction and appointment.
func CreateStatements() []string { return clone(createStatements) }

// SeedStatements inserts the sample rows.
func SeedStatements() []string { return clone(seedStatements) }

// InitStatements is the full reset, create and seed sequence.
func InitStatements() []string {
	out := make([]string, 0, len(resetStatements)+len(createStatements)+len(seedStatements))
	out = append(out, resetStatements...)
	out = append(out, createStatements...)
	return append(out, seedStatements...)
}

// DisplayTables lists the tables shown after initialization.
func DisplayTables() []DisplayTable {
	out := make([]DisplayTable, len(displayTables))
	copy(out, displayTables)
	return out
}

// Initialize runs InitStatements in one transaction and commits. It works on
// an empty database as well as on one initialized before.
func Initialize(ctx context.Context, db txBeginner) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for i, stmt := range InitStatements() {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init statement %d: %w", i+1, err)
		}
	}
	return tx.Commit()
}

// EnsureDatabase creates the named database when the server does not have it.
// db must be connected to a different database, usually postgres.
func EnsureDatabase(ctx context.Context, db rowQuerier, name string) (bool, error) {
	var exists bool
	if err := db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = $1)`, name).Scan(&exists); err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}
	// CREATE DATABASE takes no bind parameters
	if _, err := db.ExecContext(ctx, "CREATE DATABASE "+pq.QuoteIdentifier(name)); err != nil {
		return false, err
	}
	return true, nil
}

// ShowTable prints every row of t ordered by its key column.
func ShowTable(ctx context.Context, r *report.Runner, t DisplayTable) error {
	if err := report.Title(r.Out(), t.Title); err != nil {
		return err
	}
	query := fmt.Sprintf("SELECT * FROM %s ORDER BY %s", pq.QuoteIdentifier(t.Table), pq.QuoteIdentifier(t.OrderColumn))
	p := report.Printer{Layout: report.Records, Empty: report.NoRecords}
	return r.Show(ctx, p, query, nil)
}

// ShowAll prints each of DisplayTables in order.
func ShowAll(ctx context.Context, r *report.Runner) error {
	for _, t := range displayTables {
		if err := ShowTable(ctx, r, t); err != nil {
			return err
		}
	}
	return nil
}

func clone(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
