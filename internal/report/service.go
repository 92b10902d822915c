package report

import (
	"context"
	"io"
	"time"
)

// Result is a report run returned by the API.
type Result struct {
	Number int    `json:"number"`
	Title  string `json:"title"`
	Table
}

// Service runs the Willson reports for the HTTP API.
type Service struct {
	runner *Runner
	now    func() time.Time
}

func NewService(db Querier) *Service {
	return &Service{runner: NewRunner(db, io.Discard), now: time.Now}
}

// List returns the available reports.
func (s *Service) List() []Report {
	return WillsonReports()
}

// Run executes report number and returns its rows.
func (s *Service) Run(ctx context.Context, number int) (Result, error) {
	rep, err := Find(number)
	if err != nil {
		return Result{}, err
	}
	t, err := s.runner.Fetch(ctx, rep, s.now())
	if err != nil {
		return Result{}, err
	}
	return Result{Number: rep.Number, Title: rep.Title, Table: t}, nil
}
