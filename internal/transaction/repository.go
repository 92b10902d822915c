package transaction

import (
	"context"
	"sync"
)

type Repository interface {
	ListByClient(ctx context.Context, clientID int) ([]Transaction, error)
	Create(ctx context.Context, t Transaction) (Transaction, error)
}

type InMemoryRepository struct {
	mu     sync.RWMutex
	txs    []Transaction
	nextID int
}

func NewInMemoryRepository(seed []Transaction) *InMemoryRepository {
	r := &InMemoryRepository{txs: make([]Transaction, 0, len(seed)), nextID: 1}
	for _, t := range seed {
		r.txs = append(r.txs, t)
		if t.ID >= r.nextID {
			r.nextID = t.ID + 1
		}
	}
	return r
}

func (r *InMemoryRepository) ListByClient(ctx context.Context, clientID int) ([]Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Transaction, 0)
	for _, t := range r.txs {
		if t.ClientID == clientID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) Create(ctx context.Context, t Transaction) (Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t.ID = r.nextID
	r.nextID++
	r.txs = append(r.txs, t)
	return t, nil
}
