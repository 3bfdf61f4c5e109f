package handlers

import (
	"go.uber.org/zap"

	"campus-eats-api/cart"
	"campus-eats-api/checkout"
	"campus-eats-api/favorites"
	"campus-eats-api/inbox"
	"campus-eats-api/prefs"
	"campus-eats-api/promo"
	"campus-eats-api/session"
	"campus-eats-api/toast"
)

// App bundles the shared store instances every handler works against.
type App struct {
	Sessions  *session.Store
	Carts     *cart.Store
	Favorites *favorites.Store
	Inbox     *inbox.Store
	Toasts    *toast.Manager
	Prefs     *prefs.Store
	Promos    *promo.Catalog
	Checkout  *checkout.Service
	Log       *zap.Logger
}
