package app

import (
	"errors"
	"fmt"

	"workreg_backend/internal/config"
	"workreg_backend/internal/database"
	"workreg_backend/internal/handlers"
	"workreg_backend/internal/logger"
	"workreg_backend/internal/middleware"
	"workreg_backend/internal/models"
	"workreg_backend/internal/oauth"
	"workreg_backend/internal/repositories"
	"workreg_backend/internal/routes"
	"workreg_backend/internal/services"
	"workreg_backend/internal/storage"
	"workreg_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
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

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := seedOwnerAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed owner admin", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:       cfg.Storage.Type,
		BasePath:   cfg.Storage.BasePath,
		BaseURL:    cfg.Storage.BaseURL,
		Bucket:     cfg.Storage.Bucket,
		Region:     cfg.Storage.Region,
		AccessKey:  cfg.Storage.AccessKey,
		SecretKey:  cfg.Storage.SecretKey,
		Endpoint:   cfg.Storage.Endpoint,
		UseSSL:     cfg.Storage.UseSSL,
		PublicRead: cfg.Storage.PublicRead,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	userRepo := repositories.NewUserRepository()
	serviceContainer := initializeServices(cfg, userRepo, storageInstance)
	appHandlers := initializeHandlers(serviceContainer, storageInstance)

	ginRouter := initializeGinRouter(gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers, userRepo)

	return ginRouter
}

func initializeServices(cfg *config.Config, userRepo repositories.UserRepository, storageInstance storage.Storage) *services.ServiceContainer {
	employerRepo := repositories.NewEmployerRepository()
	workerRepo := repositories.NewWorkerRepository()
	uploadRepo := repositories.NewUploadRepository()

	provider := oauth.NewProvider(cfg)

	return &services.ServiceContainer{
		AuthService:     services.NewAuthService(userRepo, provider, cfg),
		UserService:     services.NewUserService(userRepo, cfg),
		EmployerService: services.NewEmployerService(employerRepo, workerRepo),
		WorkerService:   services.NewWorkerService(workerRepo, employerRepo),
		UploadService:   services.NewUploadService(uploadRepo, storageInstance, cfg),
	}
}

func initializeHandlers(container *services.ServiceContainer, storageInstance storage.Storage) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	uploadRepo := repositories.NewUploadRepository()

	return &handlers.AppHandlers{
		AuthHandler:     handlers.NewAuthHandler(baseHandler, container.AuthService),
		UserHandler:     handlers.NewUserHandler(baseHandler, container.UserService),
		EmployerHandler: handlers.NewEmployerHandler(baseHandler, container.EmployerService, container.WorkerService),
		WorkerHandler:   handlers.NewWorkerHandler(baseHandler, container.WorkerService),
		UploadHandler:   handlers.NewUploadHandler(baseHandler, container.UploadService),
		FileHandler:     handlers.NewFileHandler(baseHandler, storageInstance, uploadRepo),
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

// seedOwnerAdmin promotes a pre-registered owner row to admin before the
// server starts taking traffic. The usual path is promotion at first login,
// so a missing row is fine. Promotion touches only the role column: an owner
// whose account is still pending keeps that status, which is harmless since
// admins bypass the approval gate.
func seedOwnerAdmin(db *gorm.DB, cfg *config.Config) error {
	ownerOpenID := cfg.OAuth.OwnerOpenID
	if ownerOpenID == "" {
		logger.Warn("oauth.owner_open_id is not set. No account will be promoted to admin.")
		return nil
	}

	var owner models.User
	err := db.Where("open_id = ?", ownerOpenID).First(&owner).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Info("Owner has not signed in yet; promotion will happen at first login", "open_id", ownerOpenID)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to look up owner user: %w", err)
	}

	if owner.Role == models.UserRoleAdmin {
		return nil
	}

	if err := db.Model(&owner).Update("role", models.UserRoleAdmin).Error; err != nil {
		return fmt.Errorf("failed to promote owner to admin: %w", err)
	}
	if owner.ApprovalStatus != models.ApprovalStatusApproved {
		logger.Warn("Owner promoted to admin with non-approved status; role grants access regardless",
			"open_id", ownerOpenID, "approval_status", owner.ApprovalStatus)
	}
	logger.Info("Owner promoted to admin", "open_id", ownerOpenID, "user_id", owner.ID)
	return nil
}
