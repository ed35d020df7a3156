package basket

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
)

var (
	ErrNotFound = errors.New("basket item not found")
)

// Repository stores raw line items. The merge-on-identical-selection rule
// lives in the service so both implementations share it.
type Repository interface {
	BySession(sessionID string) []Item
	GetByID(id string) (Item, error)
	Insert(item Item) (Item, error)
	UpdateQuantity(id string, quantity int) (Item, error)
	Remove(id string) error
	Clear(sessionID string) error
}

// InMemoryRepository keeps baskets in memory, optionally mirrored to a JSON
// snapshot file so they survive restarts. The snapshot is loaded once at
// construction and rewritten after every mutation.
type InMemoryRepository struct {
	mu       sync.RWMutex
	storage  []Item
	snapshot string
}

func NewInMemoryRepository(snapshotPath string) *InMemoryRepository {
	r := &InMemoryRepository{storage: make([]Item, 0), snapshot: snapshotPath}
	r.load()
	return r
}

func (r *InMemoryRepository) BySession(sessionID string) []Item {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Item, 0)
	for _, it := range r.storage {
		if it.SessionID == sessionID {
			out = append(out, it)
		}
	}
	return out
}

func (r *InMemoryRepository) GetByID(id string) (Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, it := range r.storage {
		if it.ID == id {
			return it, nil
		}
	}
	return Item{}, ErrNotFound
}

func (r *InMemoryRepository) Insert(item Item) (Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.storage = append(r.storage, item)
	r.save()
	return item, nil
}

func (r *InMemoryRepository) UpdateQuantity(id string, quantity int) (Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].ID == id {
			r.storage[i].Quantity = quantity
			r.save()
			return r.storage[i], nil
		}
	}
	return Item{}, ErrNotFound
}

// Remove deletes the line item if present; absent ids are not an error.
func (r *InMemoryRepository) Remove(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].ID == id {
			r.storage = append(r.storage[:i], r.storage[i+1:]...)
			r.save()
			return nil
		}
	}
	return nil
}

func (r *InMemoryRepository) Clear(sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.storage[:0]
	for _, it := range r.storage {
		if it.SessionID != sessionID {
			kept = append(kept, it)
		}
	}
	r.storage = kept
	r.save()
	return nil
}

func (r *InMemoryRepository) load() {
	if r.snapshot == "" {
		return
	}
	data, err := os.ReadFile(r.snapshot)
	if err != nil {
		// a missing snapshot just means a fresh basket store
		return
	}
	if err := json.Unmarshal(data, &r.storage); err != nil {
		fmt.Printf("warning: could not parse basket snapshot %s: %v\n", r.snapshot, err)
		r.storage = make([]Item, 0)
	}
}

// save must be called with the write lock held.
func (r *InMemoryRepository) save() {
	if r.snapshot == "" {
		return
	}
	data, err := json.Marshal(r.storage)
	if err != nil {
		fmt.Printf("warning: could not encode basket snapshot: %v\n", err)
		return
	}
	if err := os.WriteFile(r.snapshot, data, 0o644); err != nil {
		fmt.Printf("warning: could not write basket snapshot %s: %v\n", r.snapshot, err)
	}
}
