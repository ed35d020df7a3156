package wheel

import "sort"

// Sort keys accepted by the wheel listing. Anything else falls back to
// SortRating.
const (
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortRating    = "rating"
	SortNewest    = "newest"
)

// Filter describes the constraints applied to a wheel listing. Zero-value
// fields impose no constraint; all set fields must match.
type Filter struct {
	BrandIDs    []string
	Sizes       []string
	Finishes    []string
	MinPrice    *float64
	MaxPrice    *float64
	InStockOnly bool
	SortBy      string
}

// Matches reports whether the wheel satisfies every active predicate.
// List-valued predicates use any-intersection: the wheel matches when at
// least one of its sizes/finishes appears in the filter set.
func (f Filter) Matches(w Wheel) bool {
	if len(f.BrandIDs) > 0 && !contains(f.BrandIDs, w.BrandID) {
		return false
	}
	if len(f.Sizes) > 0 && !intersects(w.Sizes, f.Sizes) {
		return false
	}
	if len(f.Finishes) > 0 && !intersects(w.Finishes, f.Finishes) {
		return false
	}
	if f.MinPrice != nil && w.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && w.Price > *f.MaxPrice {
		return false
	}
	if f.InStockOnly && w.Stock <= 0 {
		return false
	}
	return true
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func intersects(values, set []string) bool {
	for _, v := range values {
		if contains(set, v) {
			return true
		}
	}
	return false
}

// sortWheels orders the slice in place. "newest" only promises that new
// wheels come before the rest; tie order among equals is whatever the
// repository returned.
func sortWheels(ws []Wheel, key string) {
	switch key {
	case SortPriceAsc:
		sort.SliceStable(ws, func(i, j int) bool { return ws[i].Price < ws[j].Price })
	case SortPriceDesc:
		sort.SliceStable(ws, func(i, j int) bool { return ws[i].Price > ws[j].Price })
	case SortNewest:
		sort.SliceStable(ws, func(i, j int) bool { return ws[i].IsNew && !ws[j].IsNew })
	default:
		// rating descending is both the explicit key and the fallback
		sort.SliceStable(ws, func(i, j int) bool { return ws[i].Rating > ws[j].Rating })
	}
}
