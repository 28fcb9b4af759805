package main

import (
	"log"

	"github.com/ideacreators/backend/internal/router"
	"github.com/ideacreators/backend/pkg/config"
	"github.com/ideacreators/backend/pkg/logger"
	"github.com/ideacreators/backend/validators"
	"github.com/labstack/echo/v4"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Structured logger
	zl := logger.New(cfg.LogLevel)
	defer zl.Sync()

	// Initialize database connection
	db, err := config.InitDB()
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.CloseDB()

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Validator
	e.Validator = validators.NewValidator()

	// Setup routes and dependencies
	router.SetupRoutes(e, db.Postgres, cfg, zl)

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
