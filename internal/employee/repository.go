package employee

import (
	"context"
	"errors"
	"sync"
)

var ErrNotFound = errors.New("employee not found")

type Repository interface {
	List(ctx context.Context) ([]Employee, error)
	GetByID(ctx context.Context, id int) (Employee, error)
}

type InMemoryRepository struct {
	mu        sync.RWMutex
	employees []Employee
}

func NewInMemoryRepository(seed []Employee) *InMemoryRepository {
	out := make([]Employee, len(seed))
	copy(out, seed)
	return &InMemoryRepository{employees: out}
}

func (r *InMemoryRepository) List(ctx context.Context) ([]Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Employee, len(r.employees))
	copy(out, r.employees)
	return out, nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id int) (Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return Employee{}, ErrNotFound
}
