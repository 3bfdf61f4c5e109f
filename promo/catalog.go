// Package promo holds the seeded promo-code catalog and eligibility
// checks.
package promo

import (
	"errors"
	"strings"

	"campus-eats-api/models"
)

var (
	ErrUnknownCode    = errors.New("invalid promo code")
	ErrMinSpendNotMet = errors.New("minimum spend not met for this code")
	ErrStudentsOnly   = errors.New("this code is for student accounts only")
)

// Discount is the result of applying a code to a subtotal.
type Discount struct {
	Code         string  `json:"code"`
	Amount       float64 `json:"amount"`
	FreeDelivery bool    `json:"free_delivery"`
}

type Catalog struct {
	codes []models.PromoCode
}

// NewCatalog seeds the demo catalog.
func NewCatalog() *Catalog {
	return &Catalog{codes: []models.PromoCode{
		{
			Code:        "SAVE20",
			Description: "20% off your order",
			Discount:    "20% OFF",
			ValidUntil:  "Dec 31, 2026",
			MinSpend:    15,
			IsActive:    true,
			Percent:     0.20,
		},
		{
			Code:         "STUDENT5",
			Description:  "Special discount for students",
			Discount:     "RM 5 OFF",
			ValidUntil:   "Dec 31, 2026",
			MinSpend:     20,
			IsActive:     true,
			StudentsOnly: true,
			Amount:       5,
		},
		{
			Code:         "FREEDEL",
			Description:  "Free delivery on any order",
			Discount:     "FREE DELIVERY",
			ValidUntil:   "Dec 31, 2026",
			IsActive:     true,
			FreeDelivery: true,
		},
	}}
}

// List returns the full catalog.
func (c *Catalog) List() []models.PromoCode {
	out := make([]models.PromoCode, len(c.codes))
	copy(out, c.codes)
	return out
}

// Find looks a code up case-insensitively.
func (c *Catalog) Find(code string) (models.PromoCode, bool) {
	for _, p := range c.codes {
		if strings.EqualFold(p.Code, code) {
			return p, true
		}
	}
	return models.PromoCode{}, false
}

// Apply validates eligibility and returns the discount for a subtotal.
func (c *Catalog) Apply(code string, subtotal float64, accountType models.AccountType) (Discount, error) {
	p, ok := c.Find(code)
	if !ok || !p.IsActive {
		return Discount{}, ErrUnknownCode
	}
	if p.StudentsOnly && accountType != models.TypeStudent {
		return Discount{}, ErrStudentsOnly
	}
	if p.MinSpend > 0 && subtotal < p.MinSpend {
		return Discount{}, ErrMinSpendNotMet
	}

	d := Discount{Code: p.Code, FreeDelivery: p.FreeDelivery}
	switch {
	case p.Percent > 0:
		d.Amount = subtotal * p.Percent
	case p.Amount > 0:
		d.Amount = p.Amount
	}
	if d.Amount > subtotal {
		d.Amount = subtotal
	}
	return d, nil
}
