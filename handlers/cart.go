package handlers

import (
	"net/http"

	"campus-eats-api/middleware"
	"campus-eats-api/models"

	"github.com/gin-gonic/gin"
)

type AddCartItemRequest struct {
	ID       string  `json:"id" binding:"required"`
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price" binding:"min=0"`
	Image    string  `json:"image"`
	Venue    string  `json:"venue" binding:"required"`
	Note     string  `json:"note"`
	Quantity int     `json:"quantity" binding:"min=0"`
}

type UpdateCartItemRequest struct {
	ID       string `json:"id" binding:"required"`
	Note     string `json:"note"`
	Quantity *int   `json:"quantity" binding:"required"`
}

// GetCart returns the cart with its derived views.
func (a *App) GetCart(c *gin.Context) {
	accountID := middleware.GetAccountID(c)
	c.JSON(http.StatusOK, gin.H{
		"items":  a.Carts.Items(accountID),
		"count":  a.Carts.Count(accountID),
		"total":  a.Carts.Total(accountID),
		"venues": a.Carts.Venues(accountID),
	})
}

// GetVenueCart returns only one venue's lines.
func (a *App) GetVenueCart(c *gin.Context) {
	accountID := middleware.GetAccountID(c)
	venue := c.Param("venue")
	c.JSON(http.StatusOK, gin.H{
		"venue": venue,
		"items": a.Carts.VenueItems(accountID, venue),
	})
}

// AddCartItem merges into an existing (id, note) line or appends.
func (a *App) AddCartItem(c *gin.Context) {
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		a.reject(c, http.StatusBadRequest, err.Error())
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	accountID := middleware.GetAccountID(c)
	a.Carts.Add(accountID, models.CartItem{
		ID:    req.ID,
		Name:  req.Name,
		Price: req.Price,
		Image: req.Image,
		Venue: req.Venue,
		Note:  req.Note,
	}, req.Quantity)

	a.Toasts.Success("Added to basket")
	c.JSON(http.StatusOK, gin.H{
		"message": "Added to cart",
		"count":   a.Carts.Count(accountID),
		"total":   a.Carts.Total(accountID),
	})
}

// UpdateCartItem overwrites a line's quantity; zero removes the line.
func (a *App) UpdateCartItem(c *gin.Context) {
	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		a.reject(c, http.StatusBadRequest, err.Error())
		return
	}

	accountID := middleware.GetAccountID(c)
	a.Carts.UpdateQuantity(accountID, req.ID, req.Note, *req.Quantity)
	c.JSON(http.StatusOK, gin.H{
		"message": "Cart updated",
		"items":   a.Carts.Items(accountID),
	})
}

// RemoveCartItem drops one line. The note travels as a query parameter
// because it is part of the line identity.
func (a *App) RemoveCartItem(c *gin.Context) {
	accountID := middleware.GetAccountID(c)
	a.Carts.Remove(accountID, c.Param("id"), c.Query("note"))
	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed",
		"items":   a.Carts.Items(accountID),
	})
}

// ClearCart empties everything.
func (a *App) ClearCart(c *gin.Context) {
	a.Carts.Clear(middleware.GetAccountID(c))
	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}

// ClearVenueCart drops only one venue's lines.
func (a *App) ClearVenueCart(c *gin.Context) {
	accountID := middleware.GetAccountID(c)
	a.Carts.ClearVenue(accountID, c.Param("venue"))
	c.JSON(http.StatusOK, gin.H{
		"message": "Venue items cleared",
		"items":   a.Carts.Items(accountID),
	})
}
