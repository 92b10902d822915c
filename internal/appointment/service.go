package appointment

import (
	"context"
	"errors"
)

var (
	ErrMissingDate   = errors.New("date is required")
	ErrUnknownClient = errors.New("client not found")
	ErrUnknownStaff  = errors.New("employee not found")
)

// Lookup confirms that a referenced row exists.
type Lookup func(ctx context.Context, id int) (bool, error)

type Service struct {
	repo           Repository
	clientExists   Lookup
	employeeExists Lookup
}

func NewService(repo Repository, clientExists, employeeExists Lookup) *Service {
	return &Service{repo: repo, clientExists: clientExists, employeeExists: employeeExists}
}

func (s *Service) List(ctx context.Context) ([]Appointment, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByClient(ctx context.Context, clientID int) ([]Appointment, error) {
	return s.repo.ListByClient(ctx, clientID)
}

// Book stores a after checking the client and employee it refers to.
func (s *Service) Book(ctx context.Context, a Appointment) (Appointment, error) {
	if a.Date.IsZero() {
		return Appointment{}, ErrMissingDate
	}
	if err := check(ctx, s.clientExists, a.ClientID, ErrUnknownClient); err != nil {
		return Appointment{}, err
	}
	if err := check(ctx, s.employeeExists, a.EmployeeID, ErrUnknownStaff); err != nil {
		return Appointment{}, err
	}
	return s.repo.Create(ctx, a)
}

func check(ctx context.Context, exists Lookup, id int, missing error) error {
	if exists == nil {
		return nil
	}
	ok, err := exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return missing
	}
	return nil
}
