package main

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/boetepot/boetepot-backend/auth"
	"github.com/boetepot/boetepot-backend/config"
	"github.com/boetepot/boetepot-backend/controllers"
	"github.com/boetepot/boetepot-backend/routes"
	"github.com/boetepot/boetepot-backend/services"
	"github.com/boetepot/boetepot-backend/store"
	"github.com/boetepot/boetepot-backend/utils/logger"
)

// setupRouter initializes Gin routes and middleware
func setupRouter(cfg *config.Config, api *controllers.API, authService *auth.Service, feed *services.Feed) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	// CORS for the SPA client
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Wrong method on a known path is 405, not 404
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})

	// Setup REST routes
	routes.SetupRoutes(r, api, authService)

	// Health check endpoint
	r.GET("/health", api.Health)

	// Live fine feed
	r.GET("/ws", feed.HandleWebSocket)

	return r
}

func main() {
	// Load env config
	cfg, err := config.Load()
	if err != nil {
		logger.Log.Fatalf("config: %v", err)
	}

	// Connect to database, migrate, seed admin credential
	db, err := config.SetupDatabase(cfg)
	if err != nil {
		logger.Log.Fatalf("database: %v", err)
	}

	st := store.New(db)
	authService := auth.New(st, cfg.TokenSecret, cfg.TokenTTL)
	feed := services.NewFeed()
	api := controllers.New(st, authService, feed)

	router := setupRouter(cfg, api, authService, feed)

	logger.Infof("Boetepot backend starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Log.Fatalf("Failed to start server: %v", err)
	}
}
