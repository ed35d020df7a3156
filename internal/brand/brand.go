package brand

// Brand represents a wheel manufacturer in the catalog. Logo and description
// are optional and omitted from JSON when absent.
type Brand struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Logo        *string `json:"logo,omitempty"`
	Description *string `json:"description,omitempty"`
}
