package fitment

import (
	"sync"

	"github.com/google/uuid"
)

type Repository interface {
	List() []Fitment
	Create(f Fitment) (Fitment, error)
}

// InMemoryRepository holds the fitment records seeded at process start.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Fitment
}

func NewInMemoryRepository(seed []Fitment) *InMemoryRepository {
	r := &InMemoryRepository{storage: make([]Fitment, 0, len(seed))}
	r.storage = append(r.storage, seed...)
	return r
}

func (r *InMemoryRepository) List() []Fitment {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Fitment, len(r.storage))
	copy(out, r.storage)
	return out
}

func (r *InMemoryRepository) Create(f Fitment) (Fitment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	r.storage = append(r.storage, f)
	return f, nil
}
