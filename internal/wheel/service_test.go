package wheel

import (
	"testing"
)

func testCatalog() []Wheel {
	return []Wheel{
		{ID: "w1", BrandID: "b1", Name: "CH-R II", Sizes: []string{"18x8", "19x8.5"}, Finishes: []string{"Satin Black", "Silver"}, Price: 485, Stock: 12, Rating: 4.8, IsNew: true},
		{ID: "w2", BrandID: "b2", Name: "Superturismo GT", Sizes: []string{"17x7.5", "18x8"}, Finishes: []string{"Race White"}, Price: 325, Stock: 3, Rating: 4.6},
		{ID: "w3", BrandID: "b3", Name: "P111SC", Sizes: []string{"20x9"}, Finishes: []string{"Satin Charcoal"}, Price: 1240, Stock: 0, Rating: 5.0},
		{ID: "w4", BrandID: "b3", Name: "RPF1", Sizes: []string{"17x9", "18x9.5"}, Finishes: []string{"Matte Black", "Silver"}, Price: 225, Stock: 15, Rating: 4.7},
	}
}

func newTestService() *Service {
	return NewService(NewInMemoryRepository(testCatalog()))
}

func TestList_NoFilterReturnsAll(t *testing.T) {
	got := newTestService().List(Filter{})
	if len(got) != 4 {
		t.Fatalf("expected all 4 wheels, got %d", len(got))
	}
}

func TestList_BrandFilterMatchesAny(t *testing.T) {
	got := newTestService().List(Filter{BrandIDs: []string{"b1", "b2"}})
	if len(got) != 2 {
		t.Fatalf("expected 2 wheels, got %d", len(got))
	}
	for _, w := range got {
		if w.BrandID != "b1" && w.BrandID != "b2" {
			t.Fatalf("wheel %s has brand %s outside the filter set", w.ID, w.BrandID)
		}
	}
}

func TestList_SizeIntersection(t *testing.T) {
	// "18x8" appears on w1 and w2 only
	got := newTestService().List(Filter{Sizes: []string{"18x8"}})
	if len(got) != 2 {
		t.Fatalf("expected 2 wheels with size 18x8, got %d", len(got))
	}
}

func TestList_FinishIntersection(t *testing.T) {
	got := newTestService().List(Filter{Finishes: []string{"Silver"}})
	if len(got) != 2 {
		t.Fatalf("expected 2 wheels with a Silver finish, got %d", len(got))
	}
}

func TestList_PriceBoundsInclusive(t *testing.T) {
	min, max := 325.0, 485.0
	got := newTestService().List(Filter{MinPrice: &min, MaxPrice: &max})
	if len(got) != 2 {
		t.Fatalf("expected 2 wheels in [325,485], got %d", len(got))
	}
	for _, w := range got {
		if w.Price < min || w.Price > max {
			t.Fatalf("wheel %s price %v outside [%v,%v]", w.ID, w.Price, min, max)
		}
	}
}

func TestList_InStockOnly(t *testing.T) {
	got := newTestService().List(Filter{InStockOnly: true})
	for _, w := range got {
		if w.Stock <= 0 {
			t.Fatalf("wheel %s has no stock but passed inStockOnly", w.ID)
		}
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 in-stock wheels, got %d", len(got))
	}
}

func TestList_CombinedPredicates(t *testing.T) {
	min := 300.0
	got := newTestService().List(Filter{BrandIDs: []string{"b1", "b3"}, MinPrice: &min, InStockOnly: true})
	if len(got) != 1 || got[0].ID != "w1" {
		t.Fatalf("expected only w1, got %+v", got)
	}
}

func TestList_EmptyResultIsNotAnError(t *testing.T) {
	got := newTestService().List(Filter{Sizes: []string{"22x12"}})
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", got)
	}
}

func TestList_SortPriceAsc(t *testing.T) {
	got := newTestService().List(Filter{SortBy: SortPriceAsc})
	for i := 1; i < len(got); i++ {
		if got[i-1].Price > got[i].Price {
			t.Fatalf("prices not non-decreasing at %d: %v > %v", i, got[i-1].Price, got[i].Price)
		}
	}
}

func TestList_SortPriceDesc(t *testing.T) {
	got := newTestService().List(Filter{SortBy: SortPriceDesc})
	for i := 1; i < len(got); i++ {
		if got[i-1].Price < got[i].Price {
			t.Fatalf("prices not non-increasing at %d: %v < %v", i, got[i-1].Price, got[i].Price)
		}
	}
}

func TestList_SortNewestPutsNewFirst(t *testing.T) {
	got := newTestService().List(Filter{SortBy: SortNewest})
	seenOld := false
	for _, w := range got {
		if !w.IsNew {
			seenOld = true
		} else if seenOld {
			t.Fatalf("new wheel %s sorted after an old one", w.ID)
		}
	}
}

func TestList_DefaultAndUnknownSortIsRatingDesc(t *testing.T) {
	for _, key := range []string{"", "bogus", SortRating} {
		got := newTestService().List(Filter{SortBy: key})
		for i := 1; i < len(got); i++ {
			if got[i-1].Rating < got[i].Rating {
				t.Fatalf("sortBy=%q: ratings not descending at %d", key, i)
			}
		}
	}
}

func TestGetByID(t *testing.T) {
	s := newTestService()
	w, err := s.GetByID("w2")
	if err != nil {
		t.Fatalf("expected wheel, got error %v", err)
	}
	if w.Name != "Superturismo GT" {
		t.Fatalf("unexpected wheel %+v", w)
	}

	if _, err := s.GetByID("nope"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
