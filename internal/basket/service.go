package basket

import "github.com/google/uuid"

// Service orchestrates basket operations.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Items(sessionID string) []Item {
	return s.repo.BySession(sessionID)
}

// Add puts a selection into the basket. A line with the same wheel, size and
// finish already in the session absorbs the new quantity instead of creating
// a duplicate; its id stays the same.
func (s *Service) Add(sessionID, wheelID, size, finish string, quantity int, unitPrice float64) (Item, error) {
	for _, it := range s.repo.BySession(sessionID) {
		if it.WheelID == wheelID && it.Size == size && it.Finish == finish {
			return s.repo.UpdateQuantity(it.ID, it.Quantity+quantity)
		}
	}

	item := Item{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		WheelID:   wheelID,
		Size:      size,
		Finish:    finish,
		Quantity:  quantity,
		UnitPrice: unitPrice,
	}
	return s.repo.Insert(item)
}

// SetQuantity replaces a line's quantity. Zero or below is a removal, never a
// zero-quantity record.
func (s *Service) SetQuantity(id string, quantity int) (Item, error) {
	if quantity <= 0 {
		return Item{}, s.repo.Remove(id)
	}
	return s.repo.UpdateQuantity(id, quantity)
}

// Remove deletes a line item; removing an absent id is a no-op.
func (s *Service) Remove(id string) error {
	return s.repo.Remove(id)
}

func (s *Service) Clear(sessionID string) error {
	return s.repo.Clear(sessionID)
}

// Summary derives the totals from the current line items.
func (s *Service) Summary(sessionID string) Summary {
	var sum Summary
	for _, it := range s.repo.BySession(sessionID) {
		sum.TotalItems += it.Quantity
		sum.TotalPrice += float64(it.Quantity) * it.UnitPrice
	}
	return sum
}
