package handlers

import (
	"net/http"
	"time"

	"campus-eats-api/models"
	"campus-eats-api/toast"

	"github.com/gin-gonic/gin"
)

type ShowToastRequest struct {
	Severity   models.ToastSeverity `json:"severity" binding:"required,oneof=success error info warning"`
	Message    string               `json:"message" binding:"required"`
	DurationMS *int64               `json:"duration_ms"`
}

// ListToasts returns the currently visible toasts.
func (a *App) ListToasts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"toasts": a.Toasts.Active()})
}

// ShowToast creates a toast; omitting duration_ms uses the 3 s default
// and 0 makes it sticky until dismissed.
func (a *App) ShowToast(c *gin.Context) {
	var req ShowToastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	duration := toast.DefaultDuration
	if req.DurationMS != nil {
		duration = time.Duration(*req.DurationMS) * time.Millisecond
	}
	t := a.Toasts.Show(req.Severity, req.Message, duration)
	c.JSON(http.StatusCreated, gin.H{"toast": t})
}

// DismissToast removes a toast immediately.
func (a *App) DismissToast(c *gin.Context) {
	a.Toasts.Dismiss(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"message": "Toast dismissed"})
}
