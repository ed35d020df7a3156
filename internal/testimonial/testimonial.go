package testimonial

// Testimonial is a customer review shown on the storefront.
type Testimonial struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Location *string `json:"location,omitempty"`
	Rating   int     `json:"rating"`
	Comment  string  `json:"comment"`
	Avatar   *string `json:"avatar,omitempty"`
	Vehicle  *string `json:"vehicle,omitempty"`
}
