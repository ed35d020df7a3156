package testimonial

import (
	"sync"

	"github.com/google/uuid"
)

type Repository interface {
	List() []Testimonial
	Create(t Testimonial) (Testimonial, error)
}

// InMemoryRepository holds testimonials; seeded at start, appended by the
// create endpoint.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Testimonial
}

func NewInMemoryRepository(seed []Testimonial) *InMemoryRepository {
	r := &InMemoryRepository{storage: make([]Testimonial, 0, len(seed))}
	r.storage = append(r.storage, seed...)
	return r
}

func (r *InMemoryRepository) List() []Testimonial {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Testimonial, len(r.storage))
	copy(out, r.storage)
	return out
}

func (r *InMemoryRepository) Create(t Testimonial) (Testimonial, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	r.storage = append(r.storage, t)
	return t, nil
}
