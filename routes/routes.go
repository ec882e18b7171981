package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/boetepot/boetepot-backend/auth"
	"github.com/boetepot/boetepot-backend/controllers"
	"github.com/boetepot/boetepot-backend/middleware"
)

func SetupRoutes(r *gin.Engine, api *controllers.API, authService *auth.Service) {
	requireAdmin := middleware.RequireAdmin(authService)

	apiGroup := r.Group("/api")

	// ----------------------
	// Public reads
	// ----------------------
	apiGroup.GET("/players", api.ListPlayers())
	apiGroup.GET("/reasons", api.ListReasons())
	apiGroup.GET("/fines", api.ListFines)
	apiGroup.GET("/leaderboard", api.Leaderboard)
	apiGroup.GET("/player-fines", api.PlayerHistory)
	apiGroup.GET("/total-amount", api.TotalAmount)
	apiGroup.GET("/recent-fines", api.RecentFines)

	// ----------------------
	// Mutations (bearer token required)
	// ----------------------
	apiGroup.POST("/players", requireAdmin, api.CreatePlayer())
	apiGroup.POST("/reasons", requireAdmin, api.CreateReason())
	apiGroup.POST("/fines", requireAdmin, api.CreateFine)
	apiGroup.DELETE("/fines/:id", requireAdmin, api.DeleteFine)

	// ----------------------
	// Admin panel
	// ----------------------
	admin := apiGroup.Group("/admin")
	admin.POST("/login", api.Login)

	guarded := admin.Group("")
	guarded.Use(requireAdmin)
	guarded.GET("/players", api.ListPlayers())
	guarded.POST("/players", api.CreatePlayer())
	guarded.GET("/reasons", api.ListReasons())
	guarded.POST("/reasons", api.CreateReason())
	guarded.GET("/fines", api.ListFines)
	guarded.POST("/fines", api.CreateFine)
	guarded.DELETE("/fines/:id", api.DeleteFine)
	guarded.POST("/reset", api.Reset)
	guarded.GET("/audit", api.ListAudit)
}
