package main

import (
	"log"
	"net/http"

	"restaurant-orders-api/cache"
	"restaurant-orders-api/config"
	"restaurant-orders-api/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	config.Load()

	if config.C.GinMode != "" {
		gin.SetMode(config.C.GinMode)
	}

	// Initialize database
	config.InitDB()

	// Catalog cache is optional, the site serves from the DB without it
	if err := cache.Connect(config.C.RedisAddr, config.C.RedisPassword); err != nil {
		log.Println("Catalog cache unavailable, serving listings from the database:", err)
	}

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
			"service": "Restaurant Orders API",
			"version": "1.0.0",
		})
	})

	// Register all routes
	routes.SetupRoutes(r)

	// Start server
	log.Printf("Server running on http://localhost:%s", config.C.Port)
	if err := r.Run(":" + config.C.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
