package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/ajharbinger/answer-eval-api/internal/api"
	"github.com/ajharbinger/answer-eval-api/internal/logger"
	"github.com/ajharbinger/answer-eval-api/internal/middleware"
	"github.com/ajharbinger/answer-eval-api/pkg/config"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize configuration
	cfg := config.New()
	if !cfg.HasScoringEndpoint() {
		log.Fatal("SCORING_API_URL must be configured")
	}

	appLogger := logger.NewSimpleLogger()

	// Set Gin mode based on environment
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	r := gin.New()

	// Middleware order: recovery first so it wraps everything else
	r.Use(middleware.RecoveryMiddleware(appLogger))
	r.Use(middleware.LoggingMiddleware())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.CORSMiddleware(cfg))
	r.Use(middleware.InputValidationMiddleware(cfg))

	// Setup API routes; a malformed threshold profile fails startup here
	if err := api.SetupRoutes(r, cfg, appLogger); err != nil {
		log.Fatal("Failed to setup API routes: ", err)
	}

	appLogger.Info("Server starting", "port", cfg.Port, "env", cfg.Environment)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
