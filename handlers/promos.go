package handlers

import (
	"errors"
	"net/http"

	"campus-eats-api/middleware"
	"campus-eats-api/promo"

	"github.com/gin-gonic/gin"
)

type ApplyPromoRequest struct {
	Code     string  `json:"code" binding:"required"`
	Subtotal float64 `json:"subtotal" binding:"min=0"`
}

// ListPromos returns the seeded catalog (public).
func (a *App) ListPromos(c *gin.Context) {
	codes := a.Promos.List()
	c.JSON(http.StatusOK, gin.H{"count": len(codes), "promos": codes})
}

// ApplyPromo previews the discount a code yields for a subtotal,
// checking min spend and student-only eligibility.
func (a *App) ApplyPromo(c *gin.Context) {
	var req ApplyPromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		a.reject(c, http.StatusBadRequest, err.Error())
		return
	}

	discount, err := a.Promos.Apply(req.Code, req.Subtotal, middleware.GetAccountType(c))
	switch {
	case errors.Is(err, promo.ErrUnknownCode):
		a.reject(c, http.StatusBadRequest, "Invalid promo code")
		return
	case errors.Is(err, promo.ErrMinSpendNotMet), errors.Is(err, promo.ErrStudentsOnly):
		a.reject(c, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to apply promo code"})
		return
	}

	a.Toasts.Success("Promo code " + discount.Code + " applied!")
	c.JSON(http.StatusOK, gin.H{"discount": discount})
}
