// @title Biz Analysis API
// @version 1.0
// @description Strategic analysis backend: BCG computation, snapshots, bulk import, SWOT suggestions
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/afrazja/bizanalysis-backend/config"
	"github.com/afrazja/bizanalysis-backend/controllers/analysis/swot_controller"
	"github.com/afrazja/bizanalysis-backend/middleware"
	"github.com/afrazja/bizanalysis-backend/models"
	"github.com/afrazja/bizanalysis-backend/routes/analysis_routes"
	"github.com/afrazja/bizanalysis-backend/routes/catalog_routes"
	"github.com/afrazja/bizanalysis-backend/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Connect to DB (nil handle = computed-only mode, still serves)
	config.InitDB()
	defer config.CloseDB()

	// Redis connection (nil client = rate limiting disabled)
	config.ConnectRedis()

	if config.DB != nil {
		if err := config.DB.AutoMigrate(&models.Market{}, &models.Product{}, &models.Snapshot{}); err != nil {
			log.Fatalf("❌ Migration failed: %v", err)
		}
		log.Println("✅ Migrations applied")
	}

	// ✅ Initialize SWOT suggestion client
	swot_controller.InitSuggest(services.NewSuggestClient())
	log.Println("✅ Suggestion client initialized")

	// ✅ Configure CORS for the dashboard, exposing download headers
	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length"}, // Expose these headers for downloads
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Health endpoint the dashboard polls before anything else
	router.GET("/health", healthCheck)

	// Register API routes
	api := router.Group("/api/v1")
	api.Use(middleware.RateLimiter(100, time.Minute))

	analysis_routes.SetupBCGRoutes(api)
	analysis_routes.SetupSnapshotRoutes(api)
	analysis_routes.SetupSWOTRoutes(api)
	catalog_routes.SetupMarketRoutes(api)
	catalog_routes.SetupProductRoutes(api)
	log.Println("✅ Routes registered")

	fmt.Println("🚀 Server is running on http://localhost:8081")
	router.Run(":8081")
}

// healthCheck reports overall status plus the reachability of each backing
// store, so a degraded boot is visible to the dashboard.
func healthCheck(c *gin.Context) {
	dbOK := false
	if config.DB != nil {
		if sqlDB, err := config.DB.DB(); err == nil && sqlDB.Ping() == nil {
			dbOK = true
		}
	}
	redisOK := false
	if config.RedisClient != nil {
		if err := config.RedisClient.Ping(config.Ctx).Err(); err == nil {
			redisOK = true
		}
	}

	status := "ok"
	if !dbOK {
		status = "degraded"
	}
	c.JSON(http.StatusOK, gin.H{
		"status": status,
		"db":     dbOK,
		"redis":  redisOK,
	})
}
