package main

import (
	"context" // context package is needed for Redis operations
	"log"     // log package is needed for logging
	"time"    // CORS max age

	"athar_commerce/internal/api"        // Custom package for API handlers
	"athar_commerce/internal/config"     // Custom package for configuration
	"athar_commerce/internal/middleware" // Custom package for middleware
	"athar_commerce/internal/repository" // Custom package for data access
	"athar_commerce/internal/service"    // Custom package for business logic
	"athar_commerce/internal/storage"    // Custom package for image storage
	"athar_commerce/internal/utils"      // Redis cache wrapper

	"github.com/gin-contrib/cors"  // CORS middleware
	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
	"gorm.io/driver/mysql"         // MySQL driver for GORM
	"gorm.io/gorm"                 // GORM ORM library
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Connect to the database
	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err)
	}

	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})

	// Test Redis connection
	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Image file storage
	files, err := storage.NewDiskStore(cfg.UploadDir)
	if err != nil {
		logrus.Fatalf("failed to create upload directory: %v", err)
	}

	// Wire data access and services
	store := repository.NewStore(db)
	cache := utils.NewCache(redisClient)
	authSvc := service.NewAuthService(store.Users(), cfg.JWTSecret)
	catalogSvc := service.NewCatalogService(store.Categories(), store.Products(), store.Images(), files)
	orderSvc := service.NewOrderService(store.Orders(), store)

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// CORS for browser clients
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	apiGroup := r.Group("/api")
	apiGroup.GET("/health", api.HealthHandler())
	apiGroup.Static("/uploads", cfg.UploadDir) // Serve uploaded images

	// Auth routes
	authGroup := apiGroup.Group("/auth")
	authGroup.POST("/register", api.RegisterHandler(authSvc))
	authGroup.POST("/login", api.LoginHandler(authSvc))
	authGroup.GET("/me", middleware.JWTAuthMiddleware(cfg.JWTSecret), api.MeHandler(authSvc))

	// Public catalog routes
	apiGroup.GET("/categories", api.ListCategoriesHandler(catalogSvc, cache))
	apiGroup.GET("/products", api.ListProductsHandler(catalogSvc))
	apiGroup.GET("/products/:id", api.GetProductHandler(catalogSvc, cache))

	// Admin catalog routes (protected by JWT and AdminOnly middleware)
	adminGroup := apiGroup.Group("")
	adminGroup.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret), middleware.AdminOnlyMiddleware(store.Users()))
	adminGroup.POST("/categories", api.CreateCategoryHandler(catalogSvc, cache))
	adminGroup.POST("/products", api.CreateProductHandler(catalogSvc))
	adminGroup.PUT("/products/:id", api.UpdateProductHandler(catalogSvc, cache))
	adminGroup.DELETE("/products/:id", api.DeleteProductHandler(catalogSvc, cache))
	adminGroup.POST("/products/:id/images", api.UploadProductImageHandler(catalogSvc, cache))
	adminGroup.DELETE("/products/:id/images/:imageId", api.DeleteProductImageHandler(catalogSvc, cache))

	// Order routes (protected by JWT)
	orderGroup := apiGroup.Group("/orders")
	orderGroup.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	orderGroup.POST("", api.CreateOrderHandler(orderSvc))
	orderGroup.GET("/my", api.MyOrdersHandler(orderSvc))
	// Admin-only order routes
	orderGroup.GET("", middleware.AdminOnlyMiddleware(store.Users()), api.ListOrdersHandler(orderSvc))
	orderGroup.PUT("/:id/status", middleware.AdminOnlyMiddleware(store.Users()), api.UpdateOrderStatusHandler(orderSvc))

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
