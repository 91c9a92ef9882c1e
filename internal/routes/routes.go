package routes

import (
	"workreg_backend/internal/handlers"
	"workreg_backend/internal/middleware"
	"workreg_backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the HTTP API under /api/v1. Session resolution runs
// for the whole group; per-handler groups add the approval or admin gate.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers, userRepo repositories.UserRepository) {
	api := ginRouter.Group("/api/v1")
	api.Use(middleware.CurrentUserMiddleware(userRepo))
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.UserHandler.RegisterRoutes(api)
		appHandlers.EmployerHandler.RegisterRoutes(api)
		appHandlers.WorkerHandler.RegisterRoutes(api)
		appHandlers.UploadHandler.RegisterRoutes(api)
		appHandlers.FileHandler.RegisterRoutes(api)
	}
}
