package handlers

import (
	"net/http"

	"campus-eats-api/middleware"

	"github.com/gin-gonic/gin"
)

type DarkModeRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// GetDarkMode reads the process-wide dark-mode preference (public — it
// is not per-account).
func (a *App) GetDarkMode(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"dark_mode": a.Prefs.DarkMode()})
}

// SetDarkMode flips the process-wide dark-mode preference.
func (a *App) SetDarkMode(c *gin.Context) {
	var req DarkModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		a.reject(c, http.StatusBadRequest, err.Error())
		return
	}
	a.Prefs.SetDarkMode(*req.Enabled)
	c.JSON(http.StatusOK, gin.H{"dark_mode": *req.Enabled})
}

// GetOnboarding reports whether the account has completed onboarding.
func (a *App) GetOnboarding(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"seen": a.Prefs.OnboardingSeen(middleware.GetAccountID(c)),
	})
}

// CompleteOnboarding records that the guide has been seen; it will not
// be shown again for this account.
func (a *App) CompleteOnboarding(c *gin.Context) {
	a.Prefs.MarkOnboardingSeen(middleware.GetAccountID(c))
	c.JSON(http.StatusOK, gin.H{"message": "Onboarding completed"})
}
