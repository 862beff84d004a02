package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/newrayan/leads-service/environments"
	"github.com/newrayan/leads-service/handlers"
	"github.com/newrayan/leads-service/internal/relay"
	"github.com/newrayan/leads-service/internal/repository"
	"github.com/newrayan/leads-service/internal/service"
	"github.com/newrayan/leads-service/pkg/database"
	"github.com/newrayan/leads-service/pkg/logger"
	"github.com/newrayan/leads-service/pkg/redis"
	"github.com/newrayan/leads-service/pkg/validator"
	"github.com/newrayan/leads-service/routes"

	_ "github.com/newrayan/leads-service/docs" // swagger docs
)

// @title New Rayan Dental Leads API
// @version 1.0
// @description Contact-submission lifecycle and conversion-event relay for the clinic's marketing site

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

// @schemes http https
func main() {
	logger.Init()

	// Load config
	cfg := environments.Load()

	// Hard-fail if required secrets are missing
	if cfg.Auth.AdminAPIKey == "" {
		logger.Fatalf("ADMIN_API_KEY is required but not set")
	}

	logger.Infof("Starting clinic leads service...")

	// Init DB
	db, err := database.NewMySQLDB(cfg.Database)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.RunMigrations(db); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed data
	if os.Getenv("SEED_DATA") == "true" {
		if err := database.SeedTestData(db); err != nil {
			logger.Warnf("Failed to seed test data: %v", err)
		}
	}

	// Init redis
	var redisClient *redis.Client
	redisClient, err = redis.NewRedisClient(cfg.Redis)
	if err != nil {
		logger.Warnf("Redis not available, delivery cache disabled: %v", err)
		redisClient = nil
	}

	// Relay sinks are optional: an unconfigured destination is skipped,
	// not an error, because the relay is best-effort telemetry.
	var sinks []relay.Sink
	var metaSinks []relay.Sink
	if cfg.Meta.PixelID != "" && cfg.Meta.AccessToken != "" {
		metaSink := relay.NewMetaSink(cfg.Meta)
		sinks = append(sinks, metaSink)
		metaSinks = append(metaSinks, metaSink)
		logger.Infof("Meta Conversions API sink configured (pixel %s)", cfg.Meta.PixelID)
	} else {
		logger.Warnf("Meta Conversions API sink not configured")
	}
	if cfg.CRM.WebhookURL != "" {
		sinks = append(sinks, relay.NewCRMSink(cfg.CRM))
		logger.Infof("CRM webhook sink configured: %s", cfg.CRM.WebhookURL)
	}

	eventRelay := newRelay(redisClient, sinks)
	// CRM-inbound batches must not echo back to the CRM webhook.
	metaRelay := newRelay(redisClient, metaSinks)

	// Initialize repository and service
	submissionRepo := repository.NewSubmissionRepository(db)
	submissionService := service.NewSubmissionService(submissionRepo, eventRelay, cfg.WhatsApp)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, redisClient)
	submissionHandler := handlers.NewSubmissionHandler(submissionService)
	conversionHandler := handlers.NewConversionHandler(eventRelay, metaRelay, redisClient)

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.RequestID())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
		AllowHeaders: []string{
			echo.HeaderOrigin,
			echo.HeaderContentType,
			echo.HeaderAccept,
			echo.HeaderAuthorization,
			"x-admin-api-key",
		},
	}))

	// Setup routes
	routes.RegisterRoutes(e, healthHandler, submissionHandler, conversionHandler, cfg)

	// Start server in goroutine
	go func() {
		addr := ":" + cfg.Server.Port
		logger.Infof("Server starting on http://localhost%s", addr)
		logger.Infof("Swagger docs available at http://localhost%s/swagger/index.html", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Infof("Shutting down gracefully...")

	// Shutdown HTTP server (with timeout)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	logger.Infof("Shutting down HTTP server...")
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	} else {
		logger.Infof("HTTP server stopped successfully")
	}

	// Close database connection
	logger.Infof("Closing database connection...")
	if err := db.Close(); err != nil {
		logger.Errorf("Error closing database: %v", err)
	}

	// Close Redis connection
	if redisClient != nil {
		logger.Infof("Closing Redis connection...")
		if err := redisClient.Close(); err != nil {
			logger.Errorf("Error closing Redis: %v", err)
		}
	}

	logger.Infof("Graceful shutdown completed")
}

// newRelay keeps the typed-nil cache out of the relay when Redis is
// unavailable.
func newRelay(cache *redis.Client, sinks []relay.Sink) *relay.Relay {
	if cache == nil {
		return relay.New(nil, sinks...)
	}
	return relay.New(cache, sinks...)
}
