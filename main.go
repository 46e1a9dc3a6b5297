// @title Sales Analytics API
// @version 1.0
// @description Aggregation API behind the sales analytics dashboard
// @BasePath /api
// @schemes http
package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/bachu154/sales-analytics-dashboard-assignment/config"
	"github.com/bachu154/sales-analytics-dashboard-assignment/controllers/health_controller"
	"github.com/bachu154/sales-analytics-dashboard-assignment/middleware"
	"github.com/bachu154/sales-analytics-dashboard-assignment/models"
	"github.com/bachu154/sales-analytics-dashboard-assignment/routes"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	_ = godotenv.Load()
}

func allowedOrigins() []string {
	if raw := os.Getenv("FRONTEND_URL"); raw != "" {
		return strings.Split(raw, ",")
	}
	return []string{"http://localhost:3000", "http://localhost:3001"}
}

func main() {
	// Connect to DB
	config.InitDB()
	defer config.CloseDB()

	// Redis connection (rate limiter)
	config.ConnectRedis()

	if err := models.Migrate(config.Gorm); err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}
	log.Println("✅ Schema migrated")

	corsCfg := cors.Config{
		AllowOrigins:     allowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if os.Getenv("APP_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Register API routes
	api := router.Group("/api")
	api.GET("/health", health_controller.HealthCheck)

	limited := api.Group("")
	limited.Use(middleware.RateLimiter(100, time.Minute))
	routes.SetupAnalyticsRoutes(limited)
	routes.SetupReportRoutes(limited)
	log.Println("✅ Analytics routes registered")

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	fmt.Printf("🚀 Server is running on http://localhost:%s\n", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("❌ Server exited: %v", err)
	}
}
