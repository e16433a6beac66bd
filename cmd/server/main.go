package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Kashikuroni/YP-Blogicum/internal/config"
	"github.com/Kashikuroni/YP-Blogicum/internal/handler"
	"github.com/Kashikuroni/YP-Blogicum/internal/infrastructure/database"
	"github.com/Kashikuroni/YP-Blogicum/internal/logger"
	"github.com/Kashikuroni/YP-Blogicum/internal/metrics"
	"github.com/Kashikuroni/YP-Blogicum/internal/middleware"
	"github.com/Kashikuroni/YP-Blogicum/internal/repository"
	"github.com/Kashikuroni/YP-Blogicum/internal/service"
	"github.com/Kashikuroni/YP-Blogicum/internal/storage"
	"github.com/Kashikuroni/YP-Blogicum/internal/validator"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}
	logger.SetLevel(config.ParseLogLevel(cfg.LogLevel))

	dbConfig := database.PoolConfig{
		Host:              cfg.DBHost,
		Port:              cfg.DBPort,
		User:              cfg.DBUser,
		Password:          cfg.DBPassword,
		Database:          cfg.DBName,
		SSLMode:           cfg.DBSSLMode,
		MaxConns:          cfg.DBMaxConns,
		MinConns:          cfg.DBMinConns,
		MaxConnLifetime:   cfg.DBMaxConnLifetime,
		MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
		HealthCheckPeriod: cfg.DBHealthCheckPeriod,
	}

	if err := database.Migrate(dbConfig, cfg.MigrationsPath); err != nil {
		logger.Fatal("Failed to apply migrations",
			slog.String("error", err.Error()))
	}

	pool, err := database.NewPostgres(context.Background(), dbConfig)
	if err != nil {
		logger.Fatal("Failed to connect to database",
			slog.String("error", err.Error()))
	}
	defer pool.Close()

	// Start database pool metrics collector
	poolStatsCollector := metrics.NewPoolStatsCollector(pool)
	poolStatsCollector.Start(15 * time.Second)
	defer poolStatsCollector.Stop()

	images, err := storage.NewMinIOClient(context.Background(), cfg)
	if err != nil {
		logger.Fatal("Failed to connect to image storage",
			slog.String("error", err.Error()))
	}

	// Initialize repositories
	userRepo := repository.NewPostgresUserRepository(pool)
	categoryRepo := repository.NewPostgresCategoryRepository(pool)
	locationRepo := repository.NewPostgresLocationRepository(pool)
	postRepo := repository.NewPostgresPostRepository(pool)
	commentRepo := repository.NewPostgresCommentRepository(pool)

	v := validator.NewValidator()

	// Initialize services
	listingService := service.NewListingService(postRepo, commentRepo, categoryRepo, userRepo)
	mutationService := service.NewMutationService(postRepo, commentRepo, categoryRepo, locationRepo, images, v)
	profileService := service.NewProfileService(userRepo, v)

	// Initialize handlers
	feedHandler := handler.NewFeedHandler(listingService)
	postHandler := handler.NewPostHandler(mutationService)
	commentHandler := handler.NewCommentHandler(mutationService)
	profileHandler := handler.NewProfileHandler(profileService)
	healthHandler := handler.NewHealthHandler(pool)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(middleware.Identity(cfg.JWTSecret))
	router.Use(gin.Logger())

	// Health and metrics endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		posts := v1.Group("/posts")
		{
			posts.GET("", feedHandler.Feed)
			posts.POST("", postHandler.CreatePost)
			posts.GET("/:id", feedHandler.GetPost)
			posts.PUT("/:id", postHandler.UpdatePost)
			posts.DELETE("/:id", postHandler.DeletePost)
			posts.POST("/:id/image", postHandler.UploadImage)
			posts.POST("/:id/comments", commentHandler.CreateComment)
			posts.PUT("/:id/comments/:commentID", commentHandler.UpdateComment)
			posts.DELETE("/:id/comments/:commentID", commentHandler.DeleteComment)
		}

		v1.GET("/categories/:slug/posts", feedHandler.CategoryFeed)

		v1.GET("/profiles/:username", profileHandler.GetProfile)
		v1.GET("/profiles/:username/posts", feedHandler.AuthorFeed)

		v1.GET("/profile", profileHandler.GetOwnProfile)
		v1.PUT("/profile", profileHandler.UpdateProfile)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}
