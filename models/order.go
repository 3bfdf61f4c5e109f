package models

// OrderItem is a line snapshot inside an order record — name and price
// are copied at checkout time, not referenced
type OrderItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Image    string  `json:"image"`
}

// Order is an immutable order-history snapshot. It is created once at
// checkout completion and never mutated or removed afterwards.
type Order struct {
	ID     string      `json:"id"`
	Date   string      `json:"date"`
	Time   string      `json:"time"`
	Status string      `json:"status"`
	Items  []OrderItem `json:"items"`
	Total  float64     `json:"total"`
	Venue  string      `json:"venue"`
	Image  string      `json:"image"`
}
