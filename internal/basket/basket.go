package basket

// Item is one line of a visitor's basket. UnitPrice is a snapshot of the
// wheel price at the time the line was added; it is not re-read from the
// catalog afterwards.
type Item struct {
	ID        string  `json:"id"`
	SessionID string  `json:"sessionId"`
	WheelID   string  `json:"wheelId"`
	Size      string  `json:"selectedSize"`
	Finish    string  `json:"selectedFinish"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

// Summary holds the derived basket totals. Both values are recomputed on
// demand and never stored.
type Summary struct {
	TotalItems int     `json:"totalItems"`
	TotalPrice float64 `json:"totalPrice"`
}
