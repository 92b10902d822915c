package report

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"strconv"
	"time"
)

// Querier is satisfied by *sql.DB, *sql.Tx and *database.DB.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// warningChecker is implemented by connections that track server warnings.
type warningChecker interface {
	CheckWarnings() error
}

// Runner executes statements and prints their results.
type Runner struct {
	db      Querier
	out     io.Writer
	printer Printer
}

func NewRunner(db Querier, out io.Writer) *Runner {
	return &Runner{db: db, out: out, printer: NewPrinter()}
}

// Out is the writer results are printed to.
func (r *Runner) Out() io.Writer {
	return r.out
}

// Exec runs a statement that returns no rows.
func (r *Runner) Exec(ctx context.Context, query string, args ...any) error {
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return err
	}
	return r.checkWarnings()
}

// Query executes query once and fetches every row as text.
func (r *Runner) Query(ctx context.Context, query string, args ...any) (Table, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return Table{}, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return Table{}, err
	}

	t := Table{Headers: cols, Rows: [][]string{}}
	values := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range values {
		ptrs[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return Table{}, err
		}
		row := make([]string, len(values))
		for i, v := range values {
			row[i] = FormatValue(v)
		}
		t.Rows = append(t.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return Table{}, err
	}
	if err := r.checkWarnings(); err != nil {
		return Table{}, err
	}
	return t, nil
}

// Run executes query and prints the rows in the Columns layout. headers may
// be nil, in which case no header line is printed.
func (r *Runner) Run(ctx context.Context, query string, headers []string, args ...any) error {
	return r.Show(ctx, r.printer, query, headers, args...)
}

// Show is Run with an explicit printer.
func (r *Runner) Show(ctx context.Context, p Printer, query string, headers []string, args ...any) error {
	t, err := r.Query(ctx, query, args...)
	if err != nil {
		return err
	}
	t.Headers = headers
	return p.Print(r.out, t)
}

// Section prints a title, then the result of query.
func (r *Runner) Section(ctx context.Context, title, query string, headers []string, args ...any) error {
	if err := Title(r.out, title); err != nil {
		return err
	}
	return r.Run(ctx, query, headers, args...)
}

func (r *Runner) checkWarnings() error {
	if wc, ok := r.db.(warningChecker); ok {
		return wc.CheckWarnings()
	}
	return nil
}

// FormatValue renders a scanned column value.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "NULL"
	case []byte:
		return string(x)
	case string:
		return x
	case time.Time:
		if x.Hour() == 0 && x.Minute() == 0 && x.Second() == 0 && x.Nanosecond() == 0 {
			return x.Format("2006-01-02")
		}
		return x.Format("2006-01-02 15:04:05")
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	default:
		return fmt.Sprint(x)
	}
}
