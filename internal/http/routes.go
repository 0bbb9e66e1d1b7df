package http

import (
	"auto360_server/internal/db"
	"auto360_server/internal/http/controllers"
	"auto360_server/internal/http/middleware"
	"auto360_server/internal/models"
	"auto360_server/internal/services"
	"auto360_server/internal/storage"

	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, blobs storage.BlobStore) {
	authController := controllers.NewAuthController()
	catalogController := controllers.NewCatalogController()
	deviceController := controllers.NewDeviceController()
	intakeController := controllers.NewIntakeController()
	hubController := controllers.NewHubController()
	settingController := controllers.NewSettingController()
	dashboardController := controllers.NewDashboardController()

	deviceService := services.NewDeviceService(db.GetDB())
	intakeService := services.NewIntakeService(db.GetDB(), blobs)
	agentController := controllers.NewAgentController(deviceService, intakeService, func(file *models.IntakeFile, duplicate bool) {
		WSHub.BroadcastIntakeFile(file, duplicate)
	})

	// WebSocket endpoint for live intake monitor updates
	router.GET("/ws", HandleWebSocket)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API version 1
	v1 := router.Group("/api/v1")
	{
		// Public authentication routes (no middleware)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", authController.Login)
		}

		// Protected authentication routes (require auth)
		authProtected := v1.Group("/auth")
		authProtected.Use(middleware.AuthMiddleware())
		{
			authProtected.POST("/logout", authController.Logout)
			authProtected.GET("/me", authController.Me)
		}

		// Console routes (session-authenticated, store-scoped)
		console := v1.Group("")
		console.Use(middleware.AuthMiddleware())
		{
			console.GET("/dashboard", dashboardController.GetDashboard)

			console.POST("/catalog/upload", catalogController.Upload)
			console.GET("/catalog/search", catalogController.Search)

			console.GET("/devices", deviceController.GetDevices)
			console.POST("/devices", deviceController.CreateDevice)

			console.GET("/intake-files", intakeController.GetIntakeFiles)

			console.GET("/hub-items", hubController.GetHubItems)
			console.POST("/hub-items", hubController.CreateHubItem)

			console.GET("/settings", settingController.GetSettings)
			console.PUT("/settings", settingController.UpdateSettings)
		}

		// Agent routes (device-key authenticated, no session)
		agent := v1.Group("/agent")
		{
			agent.POST("/ping", agentController.Ping)
			agent.GET("/settings", agentController.Settings)
			agent.POST("/ingest-file", agentController.IngestFile)
		}
	}
}
