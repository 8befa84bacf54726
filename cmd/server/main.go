package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bayanlink/service-fares/internal/application"
	"github.com/bayanlink/service-fares/internal/config"
	"github.com/bayanlink/service-fares/internal/database"
	"github.com/bayanlink/service-fares/internal/events"
	"github.com/bayanlink/service-fares/internal/handler"
	"github.com/bayanlink/service-fares/internal/logger"
	"github.com/bayanlink/service-fares/internal/middleware"
	"github.com/bayanlink/service-fares/internal/repository"
	"github.com/bayanlink/service-fares/internal/routing"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.NewNamed(cfg.AppEnv, "service-fares")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting service-fares",
		zap.String("port", cfg.Port),
	)

	// Connect to database
	db, err := database.Connect(cfg.DB.DSN(), log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	// Run database migrations
	if cfg.AppEnv == "development" {
		if err := db.AutoMigrate(&repository.ListingModel{}); err != nil {
			log.Fatal("failed to run auto-migration", zap.Error(err))
		}
		log.Info("database migration completed (dev auto-migrate)")
	}

	// Initialize Kafka producer
	producer := events.NewProducer(cfg.Kafka.Brokers, log)
	defer func() { _ = producer.Close() }()

	// Initialize routing provider and resolver
	routesClient := routing.NewGoogleRoutesClient(cfg.Routing.BaseURL, cfg.Routing.APIKey, nil)
	resolver := routing.NewResolver(routesClient)

	// Initialize application services
	fareService := application.NewFareService(resolver, producer, log)

	listingRepo := repository.NewGormListingRepository(db)
	directoryService := application.NewDirectoryService(listingRepo, log)

	// Initialize HTTP handlers
	fareHandler := handler.NewFareHandler(fareService)
	directoryHandler := handler.NewDirectoryHandler(directoryService)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	// Apply global middleware
	router.Use(middleware.RecoveryMiddleware(log))
	router.Use(middleware.LoggerMiddleware(log))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())

	// Register health check routes
	healthHandler := handler.NewHealthHandler(db, "service-fares")
	healthHandler.RegisterRoutes(router)

	// Register routes
	fareHandler.RegisterRoutes(&router.RouterGroup)
	directoryHandler.RegisterRoutes(&router.RouterGroup)

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down service-fares...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server forced shutdown", zap.Error(err))
	}

	log.Info("service-fares stopped")
}
