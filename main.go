package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	v1 "github.com/volunhub/api/v1"
	"github.com/volunhub/cache"
	"github.com/volunhub/config"
	"github.com/volunhub/database"
)

func main() {
	config.LoadEnv()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	db, err := database.NewConnection(config.GetEnv("DATABASE_URL", ""))
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		logrus.Fatalf("Failed to migrate database: %v", err)
	}

	// Redis is optional; without it matching results are computed per request
	var cacheClient *cache.Client
	if addr := config.GetEnv("REDIS_ADDR", ""); addr != "" {
		cacheClient = cache.New(addr, config.GetEnv("REDIS_PASSWORD", ""))
		logrus.Infof("matching cache enabled at %s", addr)
	}

	// Set Gin mode
	gin.SetMode(config.GetEnv("GIN_MODE", gin.ReleaseMode))

	// Initialize router
	router := gin.Default()

	// CORS configuration
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	api := router.Group("/api/v1")
	v1.RegisterRoutes(api, db, cacheClient)

	port := config.GetEnv("PORT", "8080")
	logrus.Infof("volunhub API starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatalf("Failed to start server: %v", err)
	}
}
