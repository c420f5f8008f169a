package app

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"taskhub_backend/database"
	"taskhub_backend/internal/auth"
	"taskhub_backend/internal/config"
	"taskhub_backend/internal/email"
	"taskhub_backend/internal/handlers"
	"taskhub_backend/internal/logger"
	"taskhub_backend/internal/middleware"
	"taskhub_backend/internal/models"
	"taskhub_backend/internal/repositories"
	"taskhub_backend/internal/routes"
	"taskhub_backend/internal/services"
	"taskhub_backend/internal/validator"
)

// Run boots the whole application: config, logger, database, schema,
// first-admin seed, router, HTTP listener.
func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(); err != nil {
		logger.Fatal("Failed to migrate schema", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter assembles the gin engine with all middleware and routes.
// Tests call it directly with their own config and database handle.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.TTL)

	serviceContainer := initializeServices(cfg, tokens)
	appHandlers := handlers.NewAppHandlers(serviceContainer, validator.New())

	ginRouter := initializeGinRouter(gormDB)
	routes.SetupRoutes(ginRouter, appHandlers, tokens)

	return ginRouter
}

func initializeServices(cfg *config.Config, tokens *auth.TokenManager) *services.ServiceContainer {
	var emailProvider email.Provider
	if cfg.Email.SMTPHost == "" {
		logger.Warn("SMTP is not configured, using mock email provider")
		emailProvider = &MockEmailProvider{}
	} else {
		provider, err := email.NewSMTPProvider(email.Config{
			Host:      cfg.Email.SMTPHost,
			Port:      cfg.Email.SMTPPort,
			Username:  cfg.Email.SMTPUsername,
			Password:  cfg.Email.SMTPPassword,
			FromEmail: cfg.Email.FromEmail,
			FromName:  cfg.Email.FromName,
		})
		if err != nil {
			logger.Fatal("Failed to initialize SMTP provider", "error", err)
		}
		emailProvider = provider
	}

	userRepo := repositories.NewUserRepository()
	taskRepo := repositories.NewTaskRepository()

	return &services.ServiceContainer{
		AuthService:   services.NewAuthService(userRepo, emailProvider, tokens, cfg.App.PublicURL),
		UserService:   services.NewUserService(userRepo),
		TaskService:   services.NewTaskService(taskRepo, userRepo),
		ReportService: services.NewReportService(taskRepo, userRepo),
	}
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}

// seedFirstAdmin guarantees one active admin account on a fresh install.
// Controlled by FIRST_ADMIN_EMAIL / FIRST_ADMIN_PASSWORD; a no-op when
// unset or when the account already exists.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := services.NormalizeEmail(cfg.FirstAdminEmail)
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	var adminUser models.User
	result := db.Where("email = ?", adminEmail).First(&adminUser)
	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	logger.Warn("No admin user found. Creating first admin.", "email", adminEmail)

	hashedPassword, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	newAdmin := &models.User{
		Name:         "Administrator",
		Email:        adminEmail,
		PasswordHash: hashedPassword,
		Role:         models.UserRoleAdmin,
		IsActive:     true,
	}
	if err := db.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}
	return nil
}
