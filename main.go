package main

import (
	"net/http"
	"os"

	"campus-eats-api/cart"
	"campus-eats-api/checkout"
	"campus-eats-api/config"
	"campus-eats-api/favorites"
	"campus-eats-api/handlers"
	"campus-eats-api/inbox"
	"campus-eats-api/logger"
	"campus-eats-api/prefs"
	"campus-eats-api/promo"
	"campus-eats-api/routes"
	"campus-eats-api/session"
	"campus-eats-api/storage"
	"campus-eats-api/toast"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// .env is optional — env vars win either way
	_ = godotenv.Load()

	log := logger.New()
	defer log.Sync()

	// Set Gin mode
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		gin.SetMode(gin.DebugMode)
	}

	// The local key-value store is the whole backend
	kv, err := storage.OpenSQLite(config.DBPath())
	if err != nil {
		log.Fatal("failed to open storage", zap.Error(err))
	}

	sessions := session.NewStore(kv, log)
	carts := cart.NewStore(kv, log)
	favs := favorites.NewStore(kv, log)
	in := inbox.NewStore(kv, log)
	toasts := toast.NewManager()
	defer toasts.Close()
	preferences := prefs.NewStore(kv, log)
	promos := promo.NewCatalog()

	app := &handlers.App{
		Sessions:  sessions,
		Carts:     carts,
		Favorites: favs,
		Inbox:     in,
		Toasts:    toasts,
		Prefs:     preferences,
		Promos:    promos,
		Checkout:  checkout.NewService(sessions, carts, in, promos, log),
		Log:       log,
	}

	unsubscribe := sessions.Subscribe(func() {
		if account, ok := sessions.Current(); ok {
			log.Info("session changed", zap.String("account", account.ID))
		} else {
			log.Info("session ended")
		}
	})
	defer unsubscribe()

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Campus Eats API",
			"version": "1.0.0",
		})
	})

	// Welcome
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "🍜 Welcome to the Campus Eats API",
			"health":  "/health",
		})
	})

	// Register all routes
	routes.SetupRoutes(r, app)

	port := config.Port()
	log.Info("server running", zap.String("addr", "http://localhost:"+port))
	if err := r.Run(":" + port); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
