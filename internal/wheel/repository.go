package wheel

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("wheel not found")
)

type Repository interface {
	List() []Wheel
	GetByID(id string) (Wheel, error)
	Create(w Wheel) (Wheel, error)
}

// InMemoryRepository holds the wheel catalog seeded at process start.
// Filtering happens in the service; the repository only returns the full set.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Wheel
}

func NewInMemoryRepository(seed []Wheel) *InMemoryRepository {
	r := &InMemoryRepository{storage: make([]Wheel, 0, len(seed))}
	r.storage = append(r.storage, seed...)
	return r
}

func (r *InMemoryRepository) List() []Wheel {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Wheel, len(r.storage))
	copy(out, r.storage)
	return out
}

func (r *InMemoryRepository) GetByID(id string) (Wheel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, w := range r.storage {
		if w.ID == id {
			return w, nil
		}
	}
	return Wheel{}, ErrNotFound
}

func (r *InMemoryRepository) Create(w Wheel) (Wheel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	r.storage = append(r.storage, w)
	return w, nil
}
