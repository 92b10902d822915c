package appointment

import (
	"context"
	"sort"
	"sync"
)

type Repository interface {
	List(ctx context.Context) ([]Appointment, error)
	ListByClient(ctx context.Context, clientID int) ([]Appointment, error)
	Create(ctx context.Context, a Appointment) (Appointment, error)
}

type InMemoryRepository struct {
	mu     sync.RWMutex
	appts  []Appointment
	nextID int
}

func NewInMemoryRepository(seed []Appointment) *InMemoryRepository {
	r := &InMemoryRepository{appts: make([]Appointment, 0, len(seed)), nextID: 1}
	for _, a := range seed {
		r.appts = append(r.appts, a)
		if a.ID >= r.nextID {
			r.nextID = a.ID + 1
		}
	}
	return r
}

func (r *InMemoryRepository) List(ctx context.Context) ([]Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Appointment, len(r.appts))
	copy(out, r.appts)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (r *InMemoryRepository) ListByClient(ctx context.Context, clientID int) ([]Appointment, error) {
	all, _ := r.List(ctx)
	out := make([]Appointment, 0)
	for _, a := range all {
		if a.ClientID == clientID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) Create(ctx context.Context, a Appointment) (Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a.ID = r.nextID
	r.nextID++
	r.appts = append(r.appts, a)
	return a, nil
}
