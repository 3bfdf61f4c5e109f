package handlers

import (
	"net/http"

	"campus-eats-api/middleware"
	"campus-eats-api/models"

	"github.com/gin-gonic/gin"
)

type AddNotificationRequest struct {
	Kind    models.NotificationKind `json:"kind" binding:"required,oneof=order promotion system delivery"`
	Title   string                  `json:"title" binding:"required"`
	Message string                  `json:"message" binding:"required"`
	Image   string                  `json:"image"`
}

// ListNotifications returns the inbox, newest first, with the unread
// count. A first-time account sees the seeded welcome entry.
func (a *App) ListNotifications(c *gin.Context) {
	accountID := middleware.GetAccountID(c)
	c.JSON(http.StatusOK, gin.H{
		"notifications": a.Inbox.List(accountID),
		"unread_count":  a.Inbox.UnreadCount(accountID),
	})
}

// AddNotification appends an entry with a generated id and timestamp.
func (a *App) AddNotification(c *gin.Context) {
	var req AddNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		a.reject(c, http.StatusBadRequest, err.Error())
		return
	}

	accountID := middleware.GetAccountID(c)
	n := a.Inbox.Append(accountID, models.Notification{
		Kind:    req.Kind,
		Title:   req.Title,
		Message: req.Message,
		Image:   req.Image,
	})
	c.JSON(http.StatusCreated, gin.H{"notification": n})
}

// MarkNotificationRead flips one entry's read flag.
func (a *App) MarkNotificationRead(c *gin.Context) {
	accountID := middleware.GetAccountID(c)
	a.Inbox.MarkRead(accountID, c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"unread_count": a.Inbox.UnreadCount(accountID)})
}

// MarkAllNotificationsRead flips every entry's read flag.
func (a *App) MarkAllNotificationsRead(c *gin.Context) {
	accountID := middleware.GetAccountID(c)
	a.Inbox.MarkAllRead(accountID)
	c.JSON(http.StatusOK, gin.H{"unread_count": 0})
}

// ClearNotifications empties the inbox and removes its storage entry.
func (a *App) ClearNotifications(c *gin.Context) {
	a.Inbox.ClearAll(middleware.GetAccountID(c))
	c.JSON(http.StatusOK, gin.H{"message": "Notifications cleared"})
}
