package app

import (
	"fmt"

	"maintdesk_backend/internal/config"
	"maintdesk_backend/internal/database"
	"maintdesk_backend/internal/email"
	"maintdesk_backend/internal/handlers"
	"maintdesk_backend/internal/logger"
	"maintdesk_backend/internal/middleware"
	"maintdesk_backend/internal/refdata"
	"maintdesk_backend/internal/repositories"
	"maintdesk_backend/internal/routes"
	"maintdesk_backend/internal/services"
	"maintdesk_backend/internal/storage"
	"maintdesk_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...", "driver", cfg.Database.Driver)
	gormDB, err := database.Connect(cfg)
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

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}
	if err := database.Seed(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed reference data", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	resolver, err := refdata.Load(gormDB)
	if err != nil {
		logger.Fatal("Failed to load reference data", "error", err)
	}

	storageInstance, err := storage.NewStorage(storage.Config{
		BasePath: cfg.Storage.BasePath,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "base_path", cfg.Storage.BasePath)

	serviceContainer := initializeServices(cfg, gormDB, resolver, storageInstance)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter()
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB, resolver *refdata.Resolver, storageInstance storage.Storage) *services.ServiceContainer {
	var emailProvider email.Provider
	if cfg.Email.Enabled {
		smtp, err := email.NewSMTPProvider(email.SMTPConfig{
			Host:      cfg.Email.SMTPHost,
			Port:      cfg.Email.SMTPPort,
			Username:  cfg.Email.Username,
			Password:  cfg.Email.Password,
			FromEmail: cfg.Email.FromEmail,
			FromName:  cfg.Email.FromName,
		})
		if err != nil {
			logger.Fatal("Failed to initialize SMTP provider", "error", err)
		}
		emailProvider = smtp
		logger.Info("Email notifications enabled", "host", cfg.Email.SMTPHost)
	} else {
		emailProvider = email.NoopProvider{}
		logger.Warn("Email notifications disabled; notifications stay in-app only")
	}

	userRepo := repositories.NewUserRepository(gormDB)
	customerRepo := repositories.NewCustomerRepository(gormDB)
	tradeRepo := repositories.NewTradeRepository(gormDB)
	categoryRepo := repositories.NewCategoryRepository(gormDB)
	jobRepo := repositories.NewJobRepository(gormDB)
	quoteRepo := repositories.NewQuoteRepository(gormDB)
	notificationRepo := repositories.NewNotificationRepository(gormDB)
	reportRepo := repositories.NewReportRepository(gormDB)

	notifier := services.NewNotifier(userRepo, notificationRepo, emailProvider, cfg.Email.Enabled)

	return &services.ServiceContainer{
		AuthService: services.NewAuthService(gormDB, userRepo, customerRepo),
		JobService: services.NewJobService(
			gormDB, jobRepo, quoteRepo, customerRepo, tradeRepo,
			notificationRepo, resolver, storageInstance, notifier),
		QuoteService: services.NewQuoteService(
			gormDB, quoteRepo, jobRepo, tradeRepo, userRepo,
			notificationRepo, resolver, notifier),
		NotificationService: services.NewNotificationService(notificationRepo),
		DataService: services.NewDataService(
			gormDB, categoryRepo, tradeRepo, customerRepo, userRepo,
			jobRepo, resolver),
		ReportService: services.NewReportService(reportRepo, resolver),
	}
}

func initializeHandlers(serviceContainer *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:         handlers.NewAuthHandler(baseHandler, serviceContainer.AuthService),
		JobHandler:          handlers.NewJobHandler(baseHandler, serviceContainer.JobService),
		QuoteHandler:        handlers.NewQuoteHandler(baseHandler, serviceContainer.QuoteService),
		DataHandler:         handlers.NewDataHandler(baseHandler, serviceContainer.DataService),
		NotificationHandler: handlers.NewNotificationHandler(baseHandler, serviceContainer.NotificationService),
		ReportHandler:       handlers.NewReportHandler(baseHandler, serviceContainer.ReportService),
	}
}

func initializeGinRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}
