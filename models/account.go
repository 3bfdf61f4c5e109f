package models

import (
	"time"
)

// AccountType classifies an account and drives email-domain validation
// and promo-code eligibility
type AccountType string

const (
	TypeStudent AccountType = "student"
	TypeStaff   AccountType = "staff"
	TypeGuest   AccountType = "guest"
)

type Account struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	Email           string      `json:"email"`
	Phone           string      `json:"phone"`
	PasswordHash    string      `json:"password_hash"`
	Type            AccountType `json:"type"`
	IsVerified      bool        `json:"is_verified"`
	DefaultLocation string      `json:"default_location,omitempty"`
	Avatar          string      `json:"avatar,omitempty"`
	Allergies       []string    `json:"allergies,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
}

// Public returns the account shape safe to hand to clients — everything
// except the password hash.
func (a Account) Public() map[string]any {
	out := map[string]any{
		"id":          a.ID,
		"name":        a.Name,
		"email":       a.Email,
		"phone":       a.Phone,
		"type":        a.Type,
		"is_verified": a.IsVerified,
		"created_at":  a.CreatedAt,
	}
	if a.DefaultLocation != "" {
		out["default_location"] = a.DefaultLocation
	}
	if a.Avatar != "" {
		out["avatar"] = a.Avatar
	}
	if a.Allergies != nil {
		out["allergies"] = a.Allergies
	}
	return out
}
