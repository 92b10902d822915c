package database

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

var (
	ErrAccessDenied = errors.New("access denied")
	ErrBadDatabase  = errors.New("database does not exist")
)

// SQLSTATE codes the scripts react to.
const (
	codeInvalidAuthorization = "28000"
	codeInvalidPassword      = "28P01"
	codeInvalidCatalogName   = "3D000"
	codeUniqueViolation      = "23505"
)

type classifiedError struct {
	kind error
	err  error
}

func (e *classifiedError) Error() string { return e.err.Error() }

func (e *classifiedError) Unwrap() []error { return []error{e.kind, e.err} }

// Classify tags authentication and missing-database failures with
// ErrAccessDenied or ErrBadDatabase. Other errors are returned unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrAccessDenied) || errors.Is(err, ErrBadDatabase) {
		return err
	}
	switch SQLState(err) {
	case codeInvalidAuthorization, codeInvalidPassword:
		return &classifiedError{kind: ErrAccessDenied, err: err}
	case codeInvalidCatalogName:
		return &classifiedError{kind: ErrBadDatabase, err: err}
	}
	return err
}

// SQLState extracts the server error code from either driver's error type.
func SQLState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

// IsUniqueViolation reports whether err is a unique constraint failure.
func IsUniqueViolation(err error) bool {
	return SQLState(err) == codeUniqueViolation
}

// Describe is the message printed by a script when it stops on err.
func Describe(err error) string {
	switch {
	case errors.Is(err, ErrAccessDenied):
		return "Invalid username or password."
	case errors.Is(err, ErrBadDatabase):
		return "Database does not exist."
	default:
		return err.Error()
	}
}
