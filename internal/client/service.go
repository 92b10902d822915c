package client

import (
	"context"
	"errors"
	"strings"
	"time"
)

var ErrMissingFields = errors.New("firstName, lastName and email are required")

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) List(ctx context.Context) ([]Client, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByIDs(ctx context.Context, ids []int) ([]Client, error) {
	return s.repo.ListByIDs(ctx, ids)
}

func (s *Service) GetByID(ctx context.Context, id int) (Client, error) {
	return s.repo.GetByID(ctx, id)
}

// Create stores a new client, dated today unless a created date is given.
func (s *Service) Create(ctx context.Context, c Client) (Client, error) {
	c = normalize(c)
	if c.FirstName == "" || c.LastName == "" || c.Email == "" {
		return Client{}, ErrMissingFields
	}
	if c.CreatedDate.IsZero() {
		y, m, d := s.now().Date()
		c.CreatedDate = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	return s.repo.Create(ctx, c)
}

// Update replaces the name and email fields that are set in c.
func (s *Service) Update(ctx context.Context, id int, c Client) (Client, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Client{}, err
	}

	c = normalize(c)
	if c.FirstName != "" {
		existing.FirstName = c.FirstName
	}
	if c.LastName != "" {
		existing.LastName = c.LastName
	}
	if c.Email != "" {
		existing.Email = c.Email
	}
	return s.repo.Update(ctx, id, existing)
}

func (s *Service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func normalize(c Client) Client {
	c.FirstName = strings.TrimSpace(c.FirstName)
	c.LastName = strings.TrimSpace(c.LastName)
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	return c
}

// Exists reports whether a client with id is stored.
func (s *Service) Exists(ctx context.Context, id int) (bool, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
