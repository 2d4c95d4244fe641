package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shopbot/internal/config"
	"shopbot/internal/handler"
	"shopbot/internal/repository"
	"shopbot/internal/service"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	logger.Info("shopbot catalog assistant",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
		zap.String("git_commit", GitCommit),
	)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Initialize database connection
	repo, err := repository.NewPostgresRepository(
		cfg.GetPostgreSQLDSN(),
		cfg.PostgreSQL.MaxConnections,
		cfg.PostgreSQL.MaxIdleConnections,
	)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer repo.Close()

	logger.Info("Connected to PostgreSQL database")

	// Resolve the configured user. The process serves exactly one user;
	// failing to resolve them is fatal.
	startupCtx, cancel := context.WithTimeout(context.Background(), cfg.Chat.QueryTimeout)
	user, err := repo.GetUser(startupCtx, cfg.Chat.UserID)
	cancel()
	if err != nil {
		logger.Fatal("Failed to look up user", zap.Int64("user_id", cfg.Chat.UserID), zap.Error(err))
	}
	if user == nil {
		logger.Fatal("User not found in database", zap.Int64("user_id", cfg.Chat.UserID))
	}

	logger.Info("Serving user",
		zap.Int64("user_id", user.ID),
		zap.String("gender", user.Gender),
		zap.Bool("has_location", user.HasLocation()),
	)

	// Initialize services
	sessions := service.NewSessionStore()
	resolver := service.NewResolver(sessions, cfg.Chat.StoreLimitMax, logger)
	chatService := service.NewChatService(
		repo,
		repo,
		resolver,
		user,
		cfg.Chat.ProductLimit,
		cfg.Chat.QueryTimeout,
		logger,
	)

	// Initialize handlers
	chatHandler := handler.NewChatHandler(chatService, logger)
	cartHandler := handler.NewCartHandler()

	// Setup Gin router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.AllowedOrigins}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization"}
	router.Use(cors.New(corsConfig))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Version endpoint
	router.GET("/version", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// Chat API
	router.GET("/chat", chatHandler.Chat)
	router.POST("/cart", cartHandler.ShowCart)
	router.POST("/checkout", cartHandler.Checkout)

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Starting server", zap.String("addr", addr))

	go func() {
		if err := router.Run(addr); err != nil {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")
}
