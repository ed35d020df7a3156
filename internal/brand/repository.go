package brand

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("brand not found")
)

type Repository interface {
	List() []Brand
	GetByID(id string) (Brand, error)
	Create(b Brand) (Brand, error)
}

// InMemoryRepository holds the brand catalog seeded at process start.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Brand
}

func NewInMemoryRepository(seed []Brand) *InMemoryRepository {
	r := &InMemoryRepository{storage: make([]Brand, 0, len(seed))}
	r.storage = append(r.storage, seed...)
	return r
}

func (r *InMemoryRepository) List() []Brand {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Brand, len(r.storage))
	copy(out, r.storage)
	return out
}

func (r *InMemoryRepository) GetByID(id string) (Brand, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, b := range r.storage {
		if b.ID == id {
			return b, nil
		}
	}
	return Brand{}, ErrNotFound
}

func (r *InMemoryRepository) Create(b Brand) (Brand, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	r.storage = append(r.storage, b)
	return b, nil
}
