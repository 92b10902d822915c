package client

import (
	"context"
	"errors"
	"strings"
	"sync"
)

var (
	ErrNotFound    = errors.New("client not found")
	ErrEmailExists = errors.New("email already exists")
)

type Repository interface {
	List(ctx context.Context) ([]Client, error)
	ListByIDs(ctx context.Context, ids []int) ([]Client, error)
	GetByID(ctx context.Context, id int) (Client, error)
	Create(ctx context.Context, c Client) (Client, error)
	Update(ctx context.Context, id int, c Client) (Client, error)
	// Delete removes the client; transactions and appointments go with it.
	Delete(ctx context.Context, id int) error
}

// InMemoryRepository is used by handler tests.
type InMemoryRepository struct {
	mu      sync.RWMutex
	clients []Client
	nextID  int
}

func NewInMemoryRepository(seed []Client) *InMemoryRepository {
	repo := &InMemoryRepository{
		clients: make([]Client, 0, len(seed)),
		nextID:  1,
	}

	maxID := 0
	for _, c := range seed {
		repo.clients = append(repo.clients, c)
		if c.ID > maxID {
			maxID = c.ID
		}
	}

	repo.nextID = maxID + 1
	return repo
}

func (r *InMemoryRepository) List(ctx context.Context) ([]Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Client, len(r.clients))
	copy(out, r.clients)
	return out, nil
}

func (r *InMemoryRepository) ListByIDs(ctx context.Context, ids []int) ([]Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Client, 0, len(ids))
	for _, id := range ids {
		for _, c := range r.clients {
			if c.ID == id {
				out = append(out, c)
				break
			}
		}
	}
	return out, nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id int) (Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.clients {
		if c.ID == id {
			return c, nil
		}
	}
	return Client{}, ErrNotFound
}

func (r *InMemoryRepository) Create(ctx context.Context, c Client) (Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.emailTaken(c.Email, 0) {
		return Client{}, ErrEmailExists
	}
	c.ID = r.nextID
	r.nextID++
	r.clients = append(r.clients, c)
	return c, nil
}

func (r *InMemoryRepository) Update(ctx context.Context, id int, update Client) (Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.clients {
		if r.clients[i].ID != id {
			continue
		}
		if r.emailTaken(update.Email, id) {
			return Client{}, ErrEmailExists
		}
		update.ID = id
		if update.CreatedDate.IsZero() {
			update.CreatedDate = r.clients[i].CreatedDate
		}
		r.clients[i] = update
		return update, nil
	}
	return Client{}, ErrNotFound
}

func (r *InMemoryRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.clients {
		if r.clients[i].ID == id {
			r.clients = append(r.clients[:i], r.clients[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (r *InMemoryRepository) emailTaken(email string, exceptID int) bool {
	for _, c := range r.clients {
		if c.ID != exceptID && strings.EqualFold(c.Email, email) {
			return true
		}
	}
	return false
}
