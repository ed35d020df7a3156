package gallery

import (
	"sync"

	"github.com/google/uuid"
)

type Repository interface {
	List() []Image
	Create(img Image) (Image, error)
}

// InMemoryRepository holds the gallery images seeded at process start.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Image
}

func NewInMemoryRepository(seed []Image) *InMemoryRepository {
	r := &InMemoryRepository{storage: make([]Image, 0, len(seed))}
	r.storage = append(r.storage, seed...)
	return r
}

func (r *InMemoryRepository) List() []Image {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Image, len(r.storage))
	copy(out, r.storage)
	return out
}

func (r *InMemoryRepository) Create(img Image) (Image, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if img.ID == "" {
		img.ID = uuid.NewString()
	}
	r.storage = append(r.storage, img)
	return img, nil
}
