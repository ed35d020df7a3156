package wheel

// Wheel represents a catalog wheel. JSON tags follow the camelCase convention
// used by the frontend. BrandID is a reference, not ownership; a dangling id
// simply renders as "brand unknown" client-side.
type Wheel struct {
	ID               string   `json:"id"`
	BrandID          string   `json:"brandId"`
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	Images           []string `json:"images"`
	Finishes         []string `json:"finishes"`
	Sizes            []string `json:"sizes"`
	Price            float64  `json:"price"`
	PCD              string   `json:"pcd"`
	OffsetMin        int      `json:"offsetMin"`
	OffsetMax        int      `json:"offsetMax"`
	CenterBore       float64  `json:"centerBore"`
	Stock            int      `json:"stock"`
	Rating           float64  `json:"rating"`
	ReviewCount      int      `json:"reviewCount"`
	IsNew            bool     `json:"isNew"`
	FinanceAvailable bool     `json:"financeAvailable"`
}
