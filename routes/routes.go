package routes

import (
	"campus-eats-api/handlers"
	"campus-eats-api/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, app *handlers.App) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/auth/register", app.Register)
		public.POST("/auth/login", app.Login)

		// Promo catalog is browsable without an account
		public.GET("/promos", app.ListPromos)

		// Toasts and dark mode are process-wide, not per-account
		public.GET("/toasts", app.ListToasts)
		public.POST("/toasts", app.ShowToast)
		public.DELETE("/toasts/:id", app.DismissToast)
		public.GET("/preferences/dark-mode", app.GetDarkMode)
		public.PUT("/preferences/dark-mode", app.SetDarkMode)
	}

	// ── Session routes ─────────────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired(app.Sessions))
	{
		auth.POST("/auth/logout", app.Logout)
		auth.POST("/auth/password", app.ChangePassword)
		auth.POST("/auth/verify", app.VerifyEmail)

		auth.GET("/profile", app.GetProfile)
		auth.PUT("/profile", app.UpdateProfile)
		auth.DELETE("/account", app.DeleteAccount)

		auth.GET("/onboarding", app.GetOnboarding)
		auth.POST("/onboarding/complete", app.CompleteOnboarding)

		// Cart
		auth.GET("/cart", app.GetCart)
		auth.GET("/cart/venues/:venue", app.GetVenueCart)
		auth.POST("/cart/items", app.AddCartItem)
		auth.PUT("/cart/items", app.UpdateCartItem)
		auth.DELETE("/cart/items/:id", app.RemoveCartItem)
		auth.DELETE("/cart", app.ClearCart)
		auth.DELETE("/cart/venues/:venue", app.ClearVenueCart)

		// Favorites
		auth.GET("/favorites", app.ListFavorites)
		auth.POST("/favorites", app.AddFavorite)
		auth.GET("/favorites/:kind/:id", app.CheckFavorite)
		auth.DELETE("/favorites/:kind/:id", app.RemoveFavorite)

		// Notification inbox
		auth.GET("/notifications", app.ListNotifications)
		auth.POST("/notifications", app.AddNotification)
		auth.PUT("/notifications/:id/read", app.MarkNotificationRead)
		auth.PUT("/notifications/read-all", app.MarkAllNotificationsRead)
		auth.DELETE("/notifications", app.ClearNotifications)

		// Orders & checkout
		auth.GET("/orders", app.ListOrders)
		auth.POST("/checkout/summary", app.CheckoutSummary)
		auth.POST("/checkout", app.CompleteCheckout)
		auth.POST("/promos/apply", app.ApplyPromo)
	}
}
