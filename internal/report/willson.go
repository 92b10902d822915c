package report

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("report not found")

// Report is a fixed analytic query over the Willson Financial schema.
type Report struct {
	Number  int      `json:"number"`
	Title   string   `json:"title"`
	Headers []string `json:"headers"`
	Query   string   `json:"-"`
	// Args returns the bind parameters for a run at now.
	Args func(now time.Time) []any `json:"-"`
}

const clientsAddedQuery = `
	SELECT
	  to_char(client_created_date, 'YYYY-MM') AS month_added,
	  COUNT(*) AS clients_added
	FROM client
	WHERE client_created_date >= $1
	GROUP BY month_added
	ORDER BY month_added
`

// deposits add to a client's total, withdrawals subtract; clients without
// transactions count as zero
const averageAssetsQuery = `
	SELECT
	  ROUND(AVG(client_total), 2) AS avg_total_assets
	FROM (
	  SELECT
	    c.client_id,
	    COALESCE(SUM(
	      CASE
	        WHEN ct.transaction_type = 'Deposit' THEN ct.transaction_amount
	        WHEN ct.transaction_type = 'Withdrawal' THEN -ct.transaction_amount
	        ELSE 0
	      END
	    ), 0) AS client_total
	  FROM client c
	  LEFT JOIN client_transaction ct
	    ON c.client_id = ct.client_id
	  GROUP BY c.client_id
	) totals
`

const busyClientsQuery = `
	SELECT
	  c.client_id,
	  CONCAT(c.client_first_name, ' ', c.client_last_name) AS client_name,
	  to_char(ct.transaction_date, 'YYYY-MM') AS txn_month,
	  COUNT(*) AS transaction_count
	FROM client_transaction ct
	JOIN client c ON ct.client_id = c.client_id
	GROUP BY c.client_id, client_name, txn_month
	HAVING COUNT(*) > $1
	ORDER BY transaction_count DESC
`

// BusyThreshold is the monthly transaction count report 3 looks for.
const BusyThreshold = 10

// WillsonReports returns the three business reports in order.
func WillsonReports() []Report {
	return []Report{
		{
			Number:  1,
			Title:   "REPORT 1: CLIENTS ADDED (LAST 6 MONTHS)",
			Headers: []string{"month_added", "clients_added"},
			Query:   clientsAddedQuery,
			Args: func(now time.Time) []any {
				return []any{SixMonthsBefore(now)}
			},
		},
		{
			Number:  2,
			Title:   "REPORT 2: AVERAGE TOTAL ASSETS (ALL CLIENTS)",
			Headers: []string{"avg_total_assets"},
			Query:   averageAssetsQuery,
		},
		{
			Number:  3,
			Title:   "REPORT 3: CLIENTS WITH >10 TRANSACTIONS IN A MONTH",
			Headers: []string{"client_id", "client_name", "txn_month", "transaction_count"},
			Query:   busyClientsQuery,
			Args: func(time.Time) []any {
				return []any{BusyThreshold}
			},
		},
	}
}

// SixMonthsBefore is the report 1 cutoff: the calendar date six months before now.
func SixMonthsBefore(now time.Time) time.Time {
	y, m, d := now.AddDate(0, -6, 0).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Find returns the report with the given number.
func Find(number int) (Report, error) {
	for _, r := range WillsonReports() {
		if r.Number == number {
			return r, nil
		}
	}
	return Report{}, ErrNotFound
}

func (rep Report) args(now time.Time) []any {
	if rep.Args == nil {
		return nil
	}
	return rep.Args(now)
}

// Fetch runs rep and returns its rows with the report's headers.
func (r *Runner) Fetch(ctx context.Context, rep Report, now time.Time) (Table, error) {
	t, err := r.Query(ctx, rep.Query, rep.args(now)...)
	if err != nil {
		return Table{}, err
	}
	t.Headers = rep.Headers
	return t, nil
}

// RunReport prints rep as a titled section.
func (r *Runner) RunReport(ctx context.Context, rep Report, now time.Time) error {
	return r.Section(ctx, rep.Title, rep.Query, rep.Headers, rep.args(now)...)
}

// RunAll prints every report in order and stops at the first failure.
func (r *Runner) RunAll(ctx context.Context, now time.Time) error {
	for _, rep := range WillsonReports() {
		if err := r.RunReport(ctx, rep, now); err != nil {
			return err
		}
	}
	return nil
}
