package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"

	"github.com/wichananm65/willson-financial/internal/config"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind error
	}{
		{"pgx bad password", &pgconn.PgError{Code: "28P01", Message: "password authentication failed"}, ErrAccessDenied},
		{"pgx bad authorization", &pgconn.PgError{Code: "28000"}, ErrAccessDenied},
		{"pgx missing database", &pgconn.PgError{Code: "3D000"}, ErrBadDatabase},
		{"pq bad password", &pq.Error{Code: "28P01"}, ErrAccessDenied},
		{"pq missing database", &pq.Error{Code: "3D000"}, ErrBadDatabase},
		{"wrapped", fmt.Errorf("connect: %w", &pgconn.PgError{Code: "3D000"}), ErrBadDatabase},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.err)
			if !errors.Is(got, tt.kind) {
				t.Fatalf("expected %v, got %v", tt.kind, got)
			}
			if got.Error() != tt.err.Error() {
				t.Errorf("message changed: %q vs %q", got.Error(), tt.err.Error())
			}
		})
	}
}

func TestClassifyPassThrough(t *testing.T) {
	if Classify(nil) != nil {
		t.Fatalf("nil must stay nil")
	}
	syntax := &pgconn.PgError{Code: "42601", Message: "syntax error"}
	if got := Classify(syntax); got != error(syntax) {
		t.Fatalf("expected unchanged error, got %v", got)
	}
}

func TestDescribe(t *testing.T) {
	if got := Describe(Classify(&pgconn.PgError{Code: "28P01"})); got != "Invalid username or password." {
		t.Errorf("unexpected %q", got)
	}
	if got := Describe(Classify(&pq.Error{Code: "3D000"})); got != "Database does not exist." {
		t.Errorf("unexpected %q", got)
	}
	if got := Describe(errors.New("connection reset by peer")); got != "connection reset by peer" {
		t.Errorf("unexpected %q", got)
	}
}

func TestIsUniqueViolation(t *testing.T) {
	if !IsUniqueViolation(&pgconn.PgError{Code: "23505"}) {
		t.Errorf("expected unique violation")
	}
	if IsUniqueViolation(errors.New("boom")) {
		t.Errorf("plain error is not a unique violation")
	}
}

func TestCheckWarnings(t *testing.T) {
	sqlDB, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer sqlDB.Close()

	db := Wrap(sqlDB, config.Config{RaiseOnWarnings: true})
	db.notices.record("NOTICE", "table \"client\" does not exist, skipping")
	if err := db.CheckWarnings(); err != nil {
		t.Fatalf("notices must not raise: %v", err)
	}

	db.notices.record("WARNING", "there is no transaction in progress")
	var warn *WarningError
	if err := db.CheckWarnings(); !errors.As(err, &warn) {
		t.Fatalf("expected WarningError, got %v", err)
	}
	if len(warn.Messages) != 1 {
		t.Fatalf("expected one warning, got %v", warn.Messages)
	}
	if err := db.CheckWarnings(); err != nil {
		t.Fatalf("warnings should be drained, got %v", err)
	}

	quiet := Wrap(sqlDB, config.Config{RaiseOnWarnings: false})
	quiet.notices.record("WARNING", "ignored")
	if err := quiet.CheckWarnings(); err != nil {
		t.Fatalf("expected warnings ignored, got %v", err)
	}
}

func TestUseClosesOnBothPaths(t *testing.T) {
	for _, fail := range []bool{false, true} {
		sqlDB, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("sqlmock: %v", err)
		}
		mock.ExpectClose()

		err = Use(Wrap(sqlDB, config.Config{}), func(db *DB) error {
			if fail {
				return &pgconn.PgError{Code: "3D000"}
			}
			return nil
		})
		if fail && !errors.Is(err, ErrBadDatabase) {
			t.Fatalf("expected classified error, got %v", err)
		}
		if !fail && err != nil {
			t.Fatalf("unexpected error %v", err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("fail=%v: connection not closed: %v", fail, err)
		}
	}
}
