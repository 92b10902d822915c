package report

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
)

func TestRunEmptyResult(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT client_id FROM client").WillReturnRows(sqlmock.NewRows([]string{"client_id"}))

	var buf bytes.Buffer
	r := NewRunner(db, &buf)
	if err := r.Run(context.Background(), "SELECT client_id FROM client", []string{"client_id"}); err != nil {
		t.Fatalf("run: %v", err)
	}
	if buf.String() != "  (no results found)\n" {
		t.Fatalf("expected only the no results message, got %q", buf.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRunKeepsQueryOrder(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows([]string{"b", "a"}).
		AddRow("z", int64(3)).
		AddRow("a", int64(1)).
		AddRow("m", nil)
	mock.ExpectQuery("SELECT b, a FROM t").WillReturnRows(rows)

	var buf bytes.Buffer
	if err := NewRunner(db, &buf).Run(context.Background(), "SELECT b, a FROM t", []string{"b", "a"}); err != nil {
		t.Fatalf("run: %v", err)
	}
	want := "  b | a\n  -----\n  z | 3\n  a | 1\n  m | NULL\n"
	if buf.String() != want {
		t.Fatalf("unexpected output\n%q\nwant\n%q", buf.String(), want)
	}
}

func TestRunPropagatesDriverError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	boom := errors.New("syntax error at or near \"SELEC\"")
	mock.ExpectQuery("SELEC").WillReturnError(boom)

	var buf bytes.Buffer
	err = NewRunner(db, &buf).Run(context.Background(), "SELEC 1", nil)
	if !errors.Is(err, boom) {
		t.Fatalf("expected driver error, got %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("nothing should be printed on failure, got %q", buf.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("query must run exactly once: %v", err)
	}
}

func TestSection(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT 1").WillReturnRows(sqlmock.NewRows([]string{"x"}).AddRow(int64(1)))

	var buf bytes.Buffer
	if err := NewRunner(db, &buf).Section(context.Background(), "ONE", "SELECT 1", nil); err != nil {
		t.Fatalf("section: %v", err)
	}
	if buf.String() != "\n  -- ONE --\n  1\n" {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestExec(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("DELETE FROM film WHERE film_name = \\$1").WithArgs("Gladiator").WillReturnResult(sqlmock.NewResult(0, 1))

	if err := NewRunner(db, io.Discard).Exec(context.Background(), "DELETE FROM film WHERE film_name = $1", "Gladiator"); err != nil {
		t.Fatalf("exec: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRunAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	now := time.Date(2026, 3, 28, 15, 4, 0, 0, time.UTC)
	mock.ExpectQuery("FROM client\\s+WHERE client_created_date >= \\$1").
		WithArgs(time.Date(2025, 9, 28, 0, 0, 0, 0, time.UTC)).
		WillReturnRows(sqlmock.NewRows([]string{"month_added", "clients_added"}).
			AddRow("2025-10", int64(1)).
			AddRow("2025-11", int64(1)))
	mock.ExpectQuery(regexp.QuoteMeta("ROUND(AVG(client_total), 2)")).
		WillReturnRows(sqlmock.NewRows([]string{"avg_total_assets"}).AddRow([]byte("2275.00")))
	mock.ExpectQuery(regexp.QuoteMeta("HAVING COUNT(*) > $1")).
		WithArgs(BusyThreshold).
		WillReturnRows(sqlmock.NewRows([]string{"client_id", "client_name", "txn_month", "transaction_count"}).
			AddRow(int64(1), "Ava Martinez", "2026-01", int64(11)))

	var buf bytes.Buffer
	if err := NewRunner(db, &buf).RunAll(context.Background(), now); err != nil {
		t.Fatalf("run all: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"  -- REPORT 1: CLIENTS ADDED (LAST 6 MONTHS) --\n  month_added | clients_added\n",
		"  2025-10 | 1\n  2025-11 | 1\n",
		"  -- REPORT 2: AVERAGE TOTAL ASSETS (ALL CLIENTS) --\n  avg_total_assets\n  ----------------\n  2275.00\n",
		"  1 | Ava Martinez | 2026-01 | 11\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSixMonthsBefore(t *testing.T) {
	got := SixMonthsBefore(time.Date(2026, 2, 20, 18, 30, 0, 0, time.UTC))
	if !got.Equal(time.Date(2025, 8, 20, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected cutoff %v", got)
	}
}

func TestFind(t *testing.T) {
	rep, err := Find(2)
	if err != nil || rep.Title != "REPORT 2: AVERAGE TOTAL ASSETS (ALL CLIENTS)" {
		t.Fatalf("unexpected report %+v, %v", rep, err)
	}
	if _, err := Find(4); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestReportRoutes(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("ROUND(AVG(client_total), 2)")).
		WillReturnRows(sqlmock.NewRows([]string{"avg_total_assets"}).AddRow("2275.00"))

	app := fiber.New()
	NewHandler(NewService(db)).RegisterPublicRoutes(app)

	res, err := app.Test(httptest.NewRequest("GET", "/api/v1/reports/2", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(b), `"rows":[["2275.00"]]`) || !strings.Contains(string(b), `"headers":["avg_total_assets"]`) {
		t.Fatalf("unexpected body %s", b)
	}

	res, _ = app.Test(httptest.NewRequest("GET", "/api/v1/reports/9", nil))
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", res.StatusCode)
	}
	res, _ = app.Test(httptest.NewRequest("GET", "/api/v1/reports/abc", nil))
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.StatusCode)
	}
	res, _ = app.Test(httptest.NewRequest("GET", "/api/v1/reports", nil))
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for list, got %d", res.StatusCode)
	}
}
