package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jteo/listify-backend/config"
	"github.com/jteo/listify-backend/internal/app/controller"
	"github.com/jteo/listify-backend/internal/app/repository"
	"github.com/jteo/listify-backend/internal/app/service"
	"github.com/jteo/listify-backend/internal/db"
	"github.com/jteo/listify-backend/internal/middleware"
	"github.com/jteo/listify-backend/internal/router"
	"github.com/jteo/listify-backend/internal/scheduler"
	"github.com/jteo/listify-backend/internal/storage"
	"github.com/jteo/listify-backend/internal/websocket"
	"github.com/jteo/listify-backend/pkg/directory"
	"github.com/jteo/listify-backend/pkg/logger"
	"github.com/jteo/listify-backend/pkg/redis"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting LISTIFY Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Initialize database
	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err, nil)
		}
	}()

	// Run migrations
	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Draft store: Redis when enabled, in-memory otherwise
	var draftRepo repository.DraftRepository
	if cfg.Redis.Enabled {
		if err := redis.Init(&cfg.Redis); err != nil {
			logger.Fatal("Failed to connect to Redis", err)
		}
		defer redis.Close()
		draftRepo = repository.NewRedisDraftRepository(redis.GetClient(), cfg.Session.DraftTTL)
	} else {
		logger.Warn("Redis disabled, using in-memory draft store", nil)
		draftRepo = repository.NewMemoryDraftRepository(cfg.Session.DraftTTL)
	}

	listingRepo := repository.NewListingRepository(db.GetDB())

	// Directory client for the final submission
	directoryClient, err := directory.NewClient(directory.Config{
		BaseURL: cfg.Directory.BaseURL,
		APIKey:  cfg.Directory.APIKey,
		Timeout: cfg.Directory.Timeout,
	})
	if err != nil {
		logger.Fatal("Failed to create directory client", err)
	}

	// Optional S3 archive of accepted submissions
	var archiver service.Archiver
	if cfg.Archive.Enabled {
		archiver = storage.NewS3Archive(
			cfg.Archive.Region,
			cfg.Archive.Bucket,
			cfg.Archive.AccessKeyID,
			cfg.Archive.SecretAccessKey,
		)
	}

	// Progress feed hub
	hub := websocket.NewHub()
	go hub.Run()

	// Initialize services
	wizardService := service.NewWizardService(draftRepo, hub)
	submitService := service.NewSubmitService(draftRepo, listingRepo, directoryClient, archiver)
	exportService := service.NewExportService(listingRepo)

	// Initialize controllers
	wizardController := controller.NewWizardController(wizardService, cfg.Geocode.BaseURL)
	submitController := controller.NewSubmitController(submitService)
	listingController := controller.NewListingController(listingRepo, exportService)
	progressController := controller.NewProgressController(hub)

	// Initialize middleware
	sessionMiddleware := middleware.NewSessionMiddleware(
		cfg.Session.Secret,
		cfg.Session.CookieName,
		cfg.Session.TTL,
	)
	stepGuard := middleware.NewStepGuardMiddleware(wizardService)

	// Draft sweeper for the in-memory store
	sweeper := scheduler.NewDraftSweeper(draftRepo)
	if err := sweeper.Start(); err != nil {
		logger.Fatal("Failed to start draft sweeper", err)
	}
	defer sweeper.Stop()

	// Setup router
	r := router.NewRouter(
		wizardController,
		submitController,
		listingController,
		progressController,
		sessionMiddleware,
		stepGuard,
		cfg,
	)
	engine := r.Setup()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...", nil)
	logger.Info("Server stopped successfully", nil)
}
