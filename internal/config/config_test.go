package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeEnv(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write env: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeEnv(t, "USER=willson\nPASSWORD=secret\nHOST=db.local\nDATABASE=willson_financial\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.User != "willson" || cfg.Password != "secret" || cfg.Host != "db.local" || cfg.Database != "willson_financial" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Port != "5432" || cfg.SSLMode != "disable" || cfg.Addr != ":8080" {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
	if !cfg.RaiseOnWarnings {
		t.Fatalf("expected warnings to raise by default")
	}
}

func TestLoadMissingKey(t *testing.T) {
	tests := []struct {
		name string
		body string
		key  string
	}{
		{"no user", "PASSWORD=p\nHOST=h\nDATABASE=d\n", "USER"},
		{"no password", "USER=u\nHOST=h\nDATABASE=d\n", "PASSWORD"},
		{"no host", "USER=u\nPASSWORD=p\nDATABASE=d\n", "HOST"},
		{"empty database", "USER=u\nPASSWORD=p\nHOST=h\nDATABASE=\n", "DATABASE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeEnv(t, tt.body))
			var missing *MissingKeyError
			if !errors.As(err, &missing) {
				t.Fatalf("expected MissingKeyError, got %v", err)
			}
			if missing.Key != tt.key {
				t.Errorf("expected key %s, got %s", tt.key, missing.Key)
			}
			if err.Error() != "Missing .env key: "+tt.key {
				t.Errorf("unexpected message %q", err.Error())
			}
		})
	}
}

func TestLoadNoFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	var missing *MissingKeyError
	if !errors.As(err, &missing) || missing.Key != "USER" {
		t.Fatalf("expected missing USER, got %v", err)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("WILLSON_HOST", "override.local")
	path := writeEnv(t, "USER=u\nPASSWORD=p\nHOST=h\nDATABASE=d\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Host != "override.local" {
		t.Fatalf("expected env override, got %s", cfg.Host)
	}
}

func TestValidateDatabaseName(t *testing.T) {
	for _, name := range []string{"willson_financial", "_db", "Movies2"} {
		if err := (Config{Database: name}).ValidateDatabaseName(); err != nil {
			t.Errorf("%s: unexpected error %v", name, err)
		}
	}
	for _, name := range []string{"2db", "willson-financial", "db; DROP TABLE client", ""} {
		if err := (Config{Database: name}).ValidateDatabaseName(); !errors.Is(err, ErrInvalidDatabaseName) {
			t.Errorf("%s: expected ErrInvalidDatabaseName, got %v", name, err)
		}
	}
}

func TestDSN(t *testing.T) {
	cfg := Config{User: "u", Password: "p@ss", Host: "h", Port: "5433", Database: "d", SSLMode: "disable"}

	dsn := cfg.DSN()
	if !strings.HasPrefix(dsn, "postgres://u:p%40ss@h:5433/d") {
		t.Fatalf("unexpected dsn %s", dsn)
	}
	if !strings.Contains(dsn, "sslmode=disable") {
		t.Fatalf("sslmode missing from %s", dsn)
	}
	if !strings.Contains(cfg.MaintenanceDSN(), "@h:5433/postgres") {
		t.Fatalf("unexpected maintenance dsn %s", cfg.MaintenanceDSN())
	}
}

func TestWithWarnings(t *testing.T) {
	cfg := Config{RaiseOnWarnings: true}
	if cfg.WithWarnings(false).RaiseOnWarnings {
		t.Fatalf("expected warnings disabled")
	}
	if !cfg.RaiseOnWarnings {
		t.Fatalf("copy must leave the receiver unchanged")
	}
}

func TestMovies(t *testing.T) {
	path := writeEnv(t, "USER=u\nPASSWORD=p\nHOST=h\nDATABASE=willson_financial\nMOVIES_DATABASE=movies\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := cfg.Movies().Database; got != "movies" {
		t.Fatalf("expected movies database, got %s", got)
	}
	if cfg.Database != "willson_financial" {
		t.Fatalf("copy must leave the receiver unchanged")
	}
}
