package router

import (
	"log"

	"github.com/ideacreators/backend/internal/handlers"
	"github.com/ideacreators/backend/internal/mailer"
	"github.com/ideacreators/backend/internal/middleware"
	"github.com/ideacreators/backend/internal/models"
	"github.com/ideacreators/backend/internal/repositories"
	"github.com/ideacreators/backend/internal/services"
	"github.com/ideacreators/backend/pkg/config"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, pgdb *gorm.DB, cfg *config.Config, zl *zap.Logger) {
	// AutoMigrate PostgreSQL models
	err := pgdb.AutoMigrate(
		&models.User{},
		&models.Idea{},
		&models.Follow{},
		&models.FollowRequest{},
		&models.Notification{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize repositories ---
	userRepo := repositories.NewPostgresUserRepository(pgdb)
	ideaRepo := repositories.NewPostgresIdeaRepository(pgdb)
	followRepo := repositories.NewPostgresFollowRepository(pgdb)
	requestRepo := repositories.NewPostgresFollowRequestRepository(pgdb)
	notificationRepo := repositories.NewPostgresNotificationRepository(pgdb)

	// --- Initialize services ---
	smtpMailer := mailer.NewSMTPMailer(mailer.Config{
		Host:       cfg.SMTPHost,
		Port:       cfg.SMTPPort,
		Username:   cfg.SMTPUser,
		Password:   cfg.SMTPPass,
		From:       cfg.MailFrom,
		DomainName: cfg.DomainName,
	}, zl)
	userService := services.NewUserService(userRepo, smtpMailer, cfg.JWTSecret, zl)
	ideaService := services.NewIdeaService(ideaRepo, followRepo, userRepo, zl)
	followService := services.NewFollowService(requestRepo, followRepo, userRepo, notificationRepo, zl)

	// --- Unprotected routes ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(userService)
	authHandler.RegisterAuthRoutes(authGroup)

	userHandler := handlers.NewUserHandler(userService)
	e.GET("/api/v1/users", userHandler.ListUsers)

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))

	userHandler.RegisterUserRoutes(api)

	ideaHandler := handlers.NewIdeaHandler(ideaService)
	ideaHandler.RegisterIdeaRoutes(api)

	followHandler := handlers.NewFollowHandler(followService)
	followHandler.RegisterFollowRoutes(api)

	notificationHandler := handlers.NewNotificationHandler(notificationRepo)
	notificationHandler.RegisterNotificationRoutes(api)

	zl.Info("all routes configured")
}
