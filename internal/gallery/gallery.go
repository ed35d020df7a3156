package gallery

// Image is a fitted-vehicle photo shown in the gallery, tagged with a
// category ("sports", "luxury", "offroad", ...).
type Image struct {
	ID        string  `json:"id"`
	Vehicle   string  `json:"vehicle"`
	WheelInfo *string `json:"wheelInfo,omitempty"`
	URL       string  `json:"image"`
	Category  string  `json:"category"`
}
