package handlers

import (
	"errors"
	"net/http"

	"campus-eats-api/checkout"
	"campus-eats-api/promo"
	"campus-eats-api/session"

	"github.com/gin-gonic/gin"
)

type CheckoutRequest struct {
	Venue                string  `json:"venue" binding:"required"`
	DeliveryInstructions string  `json:"delivery_instructions"`
	ScheduledTime        string  `json:"scheduled_time"`
	ContactFree          bool    `json:"contact_free"`
	DriverTip            float64 `json:"driver_tip" binding:"min=0"`
	PromoCode            string  `json:"promo_code"`
}

// ListOrders returns the active account's order history, newest first.
func (a *App) ListOrders(c *gin.Context) {
	orders := a.Sessions.ListOrders()
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// CheckoutSummary prices one venue's cart lines without mutating
// anything.
func (a *App) CheckoutSummary(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		a.reject(c, http.StatusBadRequest, err.Error())
		return
	}

	sum, err := a.Checkout.Summarize(checkoutRequest(req))
	if err != nil {
		a.rejectCheckout(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"summary":    sum,
		"time_slots": checkout.TimeSlots,
		"tips":       checkout.TipOptions,
	})
}

// CompleteCheckout finishes the flow: records the order snapshot and
// clears only the just-ordered venue's cart lines.
func (a *App) CompleteCheckout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		a.reject(c, http.StatusBadRequest, err.Error())
		return
	}

	order, err := a.Checkout.Complete(checkoutRequest(req))
	if err != nil {
		a.rejectCheckout(c, err)
		return
	}

	a.Toasts.Success("Order " + order.ID + " placed successfully!")
	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"order":   order,
	})
}

func (a *App) rejectCheckout(c *gin.Context, err error) {
	switch {
	case errors.Is(err, session.ErrNoSession):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session is no longer active"})
	case errors.Is(err, checkout.ErrEmptyCart):
		a.reject(c, http.StatusBadRequest, "Your basket for this venue is empty")
	case errors.Is(err, promo.ErrUnknownCode),
		errors.Is(err, promo.ErrMinSpendNotMet),
		errors.Is(err, promo.ErrStudentsOnly):
		a.reject(c, http.StatusBadRequest, err.Error())
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete checkout"})
	}
}

func checkoutRequest(req CheckoutRequest) checkout.Request {
	return checkout.Request{
		Venue:                req.Venue,
		DeliveryInstructions: req.DeliveryInstructions,
		ScheduledTime:        req.ScheduledTime,
		ContactFree:          req.ContactFree,
		DriverTip:            req.DriverTip,
		PromoCode:            req.PromoCode,
	}
}
