package handlers

import (
	"net/http"

	"campus-eats-api/middleware"
	"campus-eats-api/models"

	"github.com/gin-gonic/gin"
)

type AddFavoriteRequest struct {
	ID           string              `json:"id" binding:"required"`
	Kind         models.FavoriteKind `json:"kind" binding:"required,oneof=dish venue"`
	Name         string              `json:"name" binding:"required"`
	Image        string              `json:"image"`
	Venue        string              `json:"venue"`
	Price        float64             `json:"price"`
	Category     string              `json:"category"`
	Rating       float64             `json:"rating"`
	TimeEstimate string              `json:"time_estimate"`
	Distance     float64             `json:"distance"`
}

// ListFavorites returns all favorites, optionally filtered by kind.
func (a *App) ListFavorites(c *gin.Context) {
	accountID := middleware.GetAccountID(c)
	var favs []models.Favorite
	switch models.FavoriteKind(c.Query("kind")) {
	case models.FavoriteDish:
		favs = a.Favorites.Dishes(accountID)
	case models.FavoriteVenue:
		favs = a.Favorites.Venues(accountID)
	default:
		favs = a.Favorites.All(accountID)
	}
	c.JSON(http.StatusOK, gin.H{"count": len(favs), "favorites": favs})
}

// AddFavorite appends unless the same (id, kind) already exists.
func (a *App) AddFavorite(c *gin.Context) {
	var req AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		a.reject(c, http.StatusBadRequest, err.Error())
		return
	}

	accountID := middleware.GetAccountID(c)
	a.Favorites.Add(accountID, models.Favorite{
		ID:           req.ID,
		Kind:         req.Kind,
		Name:         req.Name,
		Image:        req.Image,
		Venue:        req.Venue,
		Price:        req.Price,
		Category:     req.Category,
		Rating:       req.Rating,
		TimeEstimate: req.TimeEstimate,
		Distance:     req.Distance,
	})
	c.JSON(http.StatusOK, gin.H{"message": "Added to favorites"})
}

// RemoveFavorite filters by id within the matching kind only.
func (a *App) RemoveFavorite(c *gin.Context) {
	kind := models.FavoriteKind(c.Param("kind"))
	if kind != models.FavoriteDish && kind != models.FavoriteVenue {
		a.reject(c, http.StatusBadRequest, "Favorite kind must be dish or venue")
		return
	}
	accountID := middleware.GetAccountID(c)
	a.Favorites.Remove(accountID, c.Param("id"), kind)
	c.JSON(http.StatusOK, gin.H{"message": "Removed from favorites"})
}

// CheckFavorite is the membership test scoped by kind.
func (a *App) CheckFavorite(c *gin.Context) {
	kind := models.FavoriteKind(c.Param("kind"))
	if kind != models.FavoriteDish && kind != models.FavoriteVenue {
		a.reject(c, http.StatusBadRequest, "Favorite kind must be dish or venue")
		return
	}
	accountID := middleware.GetAccountID(c)
	c.JSON(http.StatusOK, gin.H{
		"is_favorite": a.Favorites.IsFavorite(accountID, c.Param("id"), kind),
	})
}
