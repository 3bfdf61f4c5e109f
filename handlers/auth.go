package handlers

import (
	"errors"
	"net/http"
	"strings"
	"unicode"

	"campus-eats-api/middleware"
	"campus-eats-api/models"
	"campus-eats-api/session"

	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	Name     string             `json:"name" binding:"required"`
	Email    string             `json:"email" binding:"required,email"`
	Phone    string             `json:"phone" binding:"required"`
	Password string             `json:"password" binding:"required,min=8"`
	Type     models.AccountType `json:"type" binding:"required,oneof=student staff guest"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}

type VerifyEmailRequest struct {
	Code string `json:"code" binding:"required"`
}

type ProfileEditRequest struct {
	Name            *string   `json:"name"`
	Phone           *string   `json:"phone"`
	DefaultLocation *string   `json:"default_location"`
	Avatar          *string   `json:"avatar"`
	Allergies       *[]string `json:"allergies"`
}

// Register creates a new account. A student signup also arms the
// first-login flag so onboarding fires after the signup-driven login.
func (a *App) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		a.reject(c, http.StatusBadRequest, err.Error())
		return
	}
	if msg, ok := passwordComplexity(req.Password); !ok {
		a.reject(c, http.StatusBadRequest, msg)
		return
	}
	if !validPhone(req.Phone) {
		a.reject(c, http.StatusBadRequest, "Please enter a valid phone number")
		return
	}

	account, needsVerification, err := a.Sessions.Register(session.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
		Type:     req.Type,
	})
	switch {
	case errors.Is(err, session.ErrDuplicateEmail):
		a.reject(c, http.StatusConflict, "Email already registered")
		return
	case errors.Is(err, session.ErrDomainMismatch):
		a.reject(c, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		return
	}

	a.Prefs.MarkFirstLogin(account.ID)
	a.Toasts.Success("Account created successfully")
	c.JSON(http.StatusCreated, gin.H{
		"message":            "Account created successfully",
		"needs_verification": needsVerification,
		"account":            account.Public(),
	})
}

// Login authenticates, sets the session pointer and returns a token.
func (a *App) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		a.reject(c, http.StatusBadRequest, err.Error())
		return
	}

	account, err := a.Sessions.Authenticate(req.Email, req.Password)
	if err != nil {
		a.reject(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := middleware.GenerateToken(&account)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":         "Login successful",
		"token":           token,
		"account":         account.Public(),
		"show_onboarding": a.Prefs.ShouldShowOnboarding(account.ID),
	})
}

// Logout clears the session pointer.
func (a *App) Logout(c *gin.Context) {
	if err := a.Sessions.EndSession(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log out"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// GetProfile returns the active account.
func (a *App) GetProfile(c *gin.Context) {
	account, ok := a.Sessions.Current()
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session is no longer active"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"account": account.Public()})
}

// UpdateProfile merges the submitted fields into the active account.
func (a *App) UpdateProfile(c *gin.Context) {
	var req ProfileEditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		a.reject(c, http.StatusBadRequest, err.Error())
		return
	}
	if req.Phone != nil && !validPhone(*req.Phone) {
		a.reject(c, http.StatusBadRequest, "Please enter a valid phone number")
		return
	}

	if err := a.Sessions.ApplyProfileEdit(session.ProfileEdit{
		Name:            req.Name,
		Phone:           req.Phone,
		DefaultLocation: req.DefaultLocation,
		Avatar:          req.Avatar,
		Allergies:       req.Allergies,
	}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	account, _ := a.Sessions.Current()
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated", "account": account.Public()})
}

// ChangePassword re-verifies the current password before overwriting.
func (a *App) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		a.reject(c, http.StatusBadRequest, err.Error())
		return
	}
	if msg, ok := passwordComplexity(req.NewPassword); !ok {
		a.reject(c, http.StatusBadRequest, msg)
		return
	}

	err := a.Sessions.ChangePassword(req.CurrentPassword, req.NewPassword)
	switch {
	case errors.Is(err, session.ErrWrongPassword):
		a.reject(c, http.StatusBadRequest, "Current password is incorrect")
		return
	case errors.Is(err, session.ErrNoSession):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session is no longer active"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to change password"})
		return
	}

	a.Toasts.Success("Password changed successfully")
	c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
}

// VerifyEmail accepts the fixed demo code and flips the verified flag.
func (a *App) VerifyEmail(c *gin.Context) {
	var req VerifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		a.reject(c, http.StatusBadRequest, err.Error())
		return
	}

	err := a.Sessions.VerifyEmail(req.Code)
	switch {
	case errors.Is(err, session.ErrInvalidCode):
		a.reject(c, http.StatusBadRequest, "Invalid verification code")
		return
	case errors.Is(err, session.ErrNoSession):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session is no longer active"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify email"})
		return
	}

	a.Toasts.Success("Email verified successfully")
	c.JSON(http.StatusOK, gin.H{"message": "Email verified successfully"})
}

// DeleteAccount clears the session pointer only — the account record
// stays in the directory, matching the demo's "delete account" action.
func (a *App) DeleteAccount(c *gin.Context) {
	if err := a.Sessions.EndSession(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete account"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Account deleted"})
}

// reject surfaces a user-correctable failure both as the JSON response
// and as an error toast.
func (a *App) reject(c *gin.Context, status int, message string) {
	a.Toasts.Error(message)
	c.JSON(status, gin.H{"error": message})
}

// passwordComplexity mirrors the signup form rule: at least one
// uppercase, one lowercase and one digit.
func passwordComplexity(password string) (string, bool) {
	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit {
		return "Password must contain uppercase, lowercase, and number", false
	}
	return "", true
}

// validPhone accepts 10-11 digits after stripping separators.
func validPhone(phone string) bool {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)
	return len(digits) >= 10 && len(digits) <= 11
}
