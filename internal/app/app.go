package app

import (
	"context"
	"fmt"

	"membrostotal_backend/internal/auth"
	"membrostotal_backend/internal/config"
	"membrostotal_backend/internal/database"
	"membrostotal_backend/internal/email"
	"membrostotal_backend/internal/handlers"
	"membrostotal_backend/internal/logger"
	"membrostotal_backend/internal/middleware"
	"membrostotal_backend/internal/repositories"
	"membrostotal_backend/internal/routes"
	"membrostotal_backend/internal/services"
	"membrostotal_backend/internal/storage"
	"membrostotal_backend/internal/validator"
	"membrostotal_backend/internal/workers"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Run boots the whole application: config, database, seeding, workers
// and the HTTP server. Blocks until the server exits.
func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.GetLogger().Info("logger initialized", "env", cfg.Server.Env)

	auth.Init(cfg.JWT.Secret, cfg.JWT.TTL)

	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("database unavailable", "error", err)
	}
	logger.GetLogger().Info("database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("migration failed", "error", err)
	}
	if err := database.Seed(gormDB, cfg.FirstAdminEmail, cfg.FirstAdminPassword); err != nil {
		logger.Fatal("seeding failed", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	startWorkers(ctx, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.GetLogger().Info("server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("server startup error", "error", err)
	}
}

// SetupRouter wires storage, services, handlers and routes into a gin
// engine. Shared with the integration test helpers.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:      cfg.Storage.Type,
		BasePath:  cfg.Storage.BasePath,
		Bucket:    cfg.Storage.Bucket,
		Endpoint:  cfg.Storage.Endpoint,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		UseSSL:    cfg.Storage.UseSSL,
	})
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	logger.GetLogger().Info("storage initialized", "type", cfg.Storage.Type)

	mailer := email.NewSender(cfg)
	serviceContainer := services.NewServiceContainer(gormDB, storageInstance, mailer)
	appHandlers := handlers.NewAppHandlers(serviceContainer, validator.New())

	ginRouter := initializeGinRouter(cfg)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ginRouter := gin.New()
	ginRouter.Use(gin.Recovery())
	ginRouter.Use(middleware.RequestIDMiddleware())
	ginRouter.Use(middleware.LoggingMiddleware())
	ginRouter.Use(middleware.CORSMiddleware())
	return ginRouter
}

func startWorkers(ctx context.Context, gormDB *gorm.DB) {
	meetingWorker := workers.NewMeetingWorker(repositories.NewMeetingRepository(gormDB))
	notificationWorker := workers.NewNotificationWorker(repositories.NewNotificationRepository(gormDB))

	go meetingWorker.Run(ctx)
	go notificationWorker.Run(ctx)
}
