package database

import (
	"context"
	"database/sql"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/wichananm65/willson-financial/internal/config"
)

// DB is a single database connection plus the server warnings seen on it.
type DB struct {
	*sql.DB
	cfg     config.Config
	notices *noticeLog
}

// Open connects to cfg.Database and verifies the connection with a ping.
func Open(ctx context.Context, cfg config.Config) (*DB, error) {
	return open(ctx, cfg, cfg.DSN())
}

// OpenMaintenance connects to the server's postgres database. It is used to
// create cfg.Database before the schema is initialized.
func OpenMaintenance(ctx context.Context, cfg config.Config) (*DB, error) {
	return open(ctx, cfg, cfg.MaintenanceDSN())
}

func open(ctx context.Context, cfg config.Config, dsn string) (*DB, error) {
	connCfg, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}

	notices := &noticeLog{}
	connCfg.OnNotice = func(_ *pgconn.PgConn, n *pgconn.Notice) {
		notices.record(n.Severity, n.Message)
	}

	sqlDB := stdlib.OpenDB(*connCfg)
	// scripts run one statement at a time over one session
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, Classify(err)
	}

	return &DB{DB: sqlDB, cfg: cfg, notices: notices}, nil
}

// Wrap adopts an already opened *sql.DB, for callers that bring their own driver.
func Wrap(db *sql.DB, cfg config.Config) *DB {
	return &DB{DB: db, cfg: cfg, notices: &noticeLog{}}
}

// WithDB opens a connection, hands it to fn and closes it whether fn fails or not.
func WithDB(ctx context.Context, cfg config.Config, fn func(*DB) error) error {
	db, err := Open(ctx, cfg)
	if err != nil {
		return err
	}
	return Use(db, fn)
}

// Use hands db to fn and closes db afterwards.
func Use(db *DB, fn func(*DB) error) error {
	defer db.Close()

	return Classify(fn(db))
}

// Config returns the settings the connection was opened with.
func (d *DB) Config() config.Config {
	return d.cfg
}

// CheckWarnings reports warnings raised since the last call. With warnings
// disabled in the config the recorded warnings are discarded.
func (d *DB) CheckWarnings() error {
	warnings := d.notices.drain()
	if len(warnings) == 0 || !d.cfg.RaiseOnWarnings {
		return nil
	}
	return &WarningError{Messages: warnings}
}
