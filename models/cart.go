package models

// CartItem is one cart line. Line identity is (ID, Note) — the same dish
// added with different special instructions produces distinct lines.
type CartItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Image    string  `json:"image"`
	Venue    string  `json:"venue"`
	Note     string  `json:"note,omitempty"`
}
