package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"regexp"

	"github.com/joho/godotenv"
)

// DefaultEnvFile is where the scripts look for credentials.
const DefaultEnvFile = ".env"

// Config holds the connection settings read from the env file.
type Config struct {
	User     string
	Password string
	Host     string
	Port     string
	Database string
	SSLMode  string

	// RaiseOnWarnings turns server warnings into statement errors.
	RaiseOnWarnings bool

	Addr      string
	JWTSecret string

	// OperatorPasswordHash is the bcrypt hash accepted by the login route.
	OperatorPasswordHash string

	// MoviesDatabase names the movies database served by the API. Empty
	// disables the film routes.
	MoviesDatabase string
}

// MissingKeyError reports a required key absent from the env file.
type MissingKeyError struct {
	Key string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("Missing .env key: %s", e.Key)
}

var ErrInvalidDatabaseName = errors.New("DATABASE in .env must be a valid identifier")

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

var requiredKeys = []string{"USER", "PASSWORD", "HOST", "DATABASE"}

// Load reads key/value pairs from path. Variables already set in the process
// environment win over the file so CI can inject credentials.
func Load(path string) (Config, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return Config{}, err
		}
		values = map[string]string{}
	}
	return FromMap(values)
}

// FromMap builds a Config from raw key/value pairs.
func FromMap(values map[string]string) (Config, error) {
	get := func(key string) string {
		if v := os.Getenv("WILLSON_" + key); v != "" {
			return v
		}
		return values[key]
	}

	for _, key := range requiredKeys {
		if get(key) == "" {
			return Config{}, &MissingKeyError{Key: key}
		}
	}

	return Config{
		User:            get("USER"),
		Password:        get("PASSWORD"),
		Host:            get("HOST"),
		Port:            fallback(get("PORT"), "5432"),
		Database:        get("DATABASE"),
		SSLMode:         fallback(get("SSLMODE"), "disable"),
		RaiseOnWarnings: true,
		Addr:            fallback(get("ADDR"), ":8080"),
		JWTSecret:       get("JWT_SECRET"),
		MoviesDatabase:  get("MOVIES_DATABASE"),

		OperatorPasswordHash: get("OPERATOR_PASSWORD_HASH"),
	}, nil
}

// WithWarnings returns a copy of c using the given warning policy.
func (c Config) WithWarnings(raise bool) Config {
	c.RaiseOnWarnings = raise
	return c
}

// ValidateDatabaseName rejects names that cannot be used as a bare identifier.
func (c Config) ValidateDatabaseName() error {
	if !identifierPattern.MatchString(c.Database) {
		return ErrInvalidDatabaseName
	}
	return nil
}

// DSN is the connection URL for the configured database.
func (c Config) DSN() string {
	return c.dsn(c.Database)
}

// Movies returns a copy of c pointed at the movies database.
func (c Config) Movies() Config {
	c.Database = c.MoviesDatabase
	return c
}

// MaintenanceDSN targets the postgres database, used to create c.Database.
func (c Config) MaintenanceDSN() string {
	return c.dsn("postgres")
}

func (c Config) dsn(database string) string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.User, c.Password),
		Host:   net.JoinHostPort(c.Host, c.Port),
		Path:   "/" + database,
	}
	q := u.Query()
	q.Set("sslmode", c.SSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}

func fallback(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
