package main

import (
	"log"
	"net/http"

	"github.com/care2you/care2you-api/config"
	"github.com/care2you/care2you-api/controllers"
	"github.com/care2you/care2you-api/middleware"
	"github.com/care2you/care2you-api/models"
	"github.com/care2you/care2you-api/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Basic logging
	log.Println("Starting Care2You API server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database models
	db := config.GetDB()
	if err := db.AutoMigrate(&models.ServiceListing{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed successfully")

	// Initialize external service clients
	services.InitUserStoreService(cfg)
	services.InitEmailService(cfg)
	if _, err := services.InitStorageService(); err != nil {
		log.Fatalf("Failed to initialize file store: %v", err)
	}

	router := setupRouter(cfg)

	// Start server
	port := ":" + cfg.Port
	log.Printf("Server is running on http://localhost%s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// setupRouter builds the Gin engine with all routes and middleware attached
func setupRouter(cfg *config.Config) *gin.Engine {
	router := gin.Default()

	// CORS for the web client
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.PublicAppURL}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	api := router.Group("/api")
	{
		api.GET("/health", healthCheck)
		api.GET("/database/status", databaseStatus)

		// User record store endpoints
		api.POST("/update-data-service", controllers.UpdateDataService)
		api.POST("/update-data-care", controllers.UpdateDataCare)
		api.POST("/change-user-status", controllers.ChangeUserStatus)
		api.POST("/delete-user", controllers.DeleteUser)

		// Credit endpoints
		api.POST("/addCredits", controllers.AddCredits)
		api.POST("/decrease-credit", controllers.DecreaseCredit)

		// Listing endpoints
		api.POST("/addNewService", controllers.AddNewService)
		api.PATCH("/update-status", controllers.UpdateListingStatus)
		api.GET("/services", controllers.ListServices)

		// File store endpoints
		api.POST("/bunny-upload", controllers.BunnyUpload)
		api.POST("/caregiver-file-management", controllers.CaregiverFileUpload)
		api.DELETE("/caregiver-file-management", controllers.CaregiverFileDelete)

		// Email endpoints
		api.POST("/send-email-signup", controllers.SendEmailSignup)
		api.POST("/send-email-service-request", controllers.SendEmailServiceRequest)

		// Onboarding reducer; finish needs the caller's identity
		api.POST("/onboarding/transition", controllers.OnboardingTransition)
		api.POST("/onboarding/finish", middleware.EnsureValidToken(cfg), controllers.OnboardingFinish)

		// Admin panel, gated server-side by the role claim
		adminGroup := api.Group("/admin", middleware.EnsureValidToken(cfg), middleware.RequireRole(models.RoleAdmin))
		{
			adminGroup.GET("/users", controllers.AdminListUsers)
			adminGroup.POST("/bulk", controllers.AdminBulk)
		}
	}

	return router
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Care2You API is running",
	})
}

// databaseStatus checks database connectivity and returns table information
func databaseStatus(c *gin.Context) {
	db := config.GetDB()

	// Get the underlying SQL database to check connection
	sqlDB, err := db.DB()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to get database instance",
			},
		})
		return
	}

	// Ping the database to verify connection
	if err := sqlDB.Ping(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_CONNECTION_ERROR",
				"message": "Database connection failed",
			},
		})
		return
	}

	// Get list of tables
	var tables []string
	if err := db.Raw("SELECT tablename FROM pg_tables WHERE schemaname = 'public'").Scan(&tables).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_QUERY_ERROR",
				"message": "Failed to query tables",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Database connected",
		"tables":  tables,
	})
}
