package models

// PromoCode describes one entry in the seeded promo catalog. Exactly one
// of Percent, Amount or FreeDelivery is meaningful per code.
type PromoCode struct {
	Code         string  `json:"code"`
	Description  string  `json:"description"`
	Discount     string  `json:"discount"`
	ValidUntil   string  `json:"valid_until"`
	MinSpend     float64 `json:"min_spend,omitempty"`
	IsActive     bool    `json:"is_active"`
	StudentsOnly bool    `json:"students_only,omitempty"`
	Percent      float64 `json:"-"`
	Amount       float64 `json:"-"`
	FreeDelivery bool    `json:"-"`
}
