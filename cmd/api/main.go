package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"io.lumenworks.contenthub/internal/db"
	firebaseutil "io.lumenworks.contenthub/internal/firebase"
	"io.lumenworks.contenthub/internal/handlers"
	"io.lumenworks.contenthub/internal/middleware"
	"io.lumenworks.contenthub/internal/search"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()
	logger := zapLogger.Sugar()

	// Firebase is optional; without credentials admin auth runs on sessions only
	firebaseApp, err := firebaseutil.InitFirebase()
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	// Initialize PostgreSQL
	postgresDB, err := db.InitPostgres()
	if err != nil {
		log.Fatalf("Failed to initialize PostgreSQL: %v", err)
	}
	defer postgresDB.Close()

	// Initialize Redis
	redisClient, err := db.InitRedis()
	if err != nil {
		log.Fatalf("Failed to initialize Redis: %v", err)
	}
	defer redisClient.Close()

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "./uploads"
	}
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}

	// Initialize Gin router
	router := gin.New()
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RequestLoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	// Add CORS middleware for the web frontend
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Initialize handlers
	store := search.NewPostgresStore(postgresDB)
	searchHandler := handlers.NewSearchHandler(store, logger)
	authHandler := handlers.NewAuthHandler(firebaseApp, postgresDB, redisClient, logger)
	eventHandler := handlers.NewEventHandler(postgresDB, redisClient, logger)
	postHandler := handlers.NewPostHandler(postgresDB, redisClient, logger)
	categoryHandler := handlers.NewCategoryHandler(postgresDB, redisClient, logger)
	mediaHandler := handlers.NewMediaHandler(postgresDB, redisClient, logger, uploadDir)
	analyticsHandler := handlers.NewAnalyticsHandler(postgresDB, redisClient, logger)
	defer analyticsHandler.Stop()

	// Define routes
	v1 := router.Group("/api/v1")
	{
		// Public routes
		v1.GET("/search", searchHandler.Search)
		v1.GET("/search/autocomplete", searchHandler.Autocomplete)
		v1.POST("/track", analyticsHandler.Track)

		// Protected admin routes
		admin := v1.Group("/admin")
		admin.POST("/auth/login", authHandler.Login)
		admin.Use(middleware.AdminAuthMiddleware(firebaseApp, postgresDB, redisClient))
		{
			admin.POST("/auth/logout", authHandler.Logout)

			admin.GET("/events", eventHandler.ListEvents)
			admin.POST("/events", eventHandler.CreateEvent)
			admin.PUT("/events/:id", eventHandler.UpdateEvent)
			admin.DELETE("/events/:id", eventHandler.DeleteEvent)

			admin.GET("/posts", postHandler.ListPosts)
			admin.POST("/posts", postHandler.CreatePost)
			admin.PUT("/posts/:id", postHandler.UpdatePost)
			admin.DELETE("/posts/:id", postHandler.DeletePost)

			admin.GET("/categories", categoryHandler.ListCategories)
			admin.POST("/categories", categoryHandler.CreateCategory)
			admin.DELETE("/categories/:id", categoryHandler.DeleteCategory)

			admin.GET("/media", mediaHandler.ListMedia)
			admin.POST("/media", mediaHandler.UploadMedia)
			admin.DELETE("/media/:id", mediaHandler.DeleteMedia)

			admin.GET("/dashboard", analyticsHandler.DashboardStats)
		}
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Serve uploaded media files
	router.Static("/uploads", uploadDir)

	port := os.Getenv("PORT")
	if port == "" {
		port = "9091"
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on port %s...", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Give a 5 second timeout for graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
