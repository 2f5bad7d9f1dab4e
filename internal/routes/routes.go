package routes

import (
	"github.com/gin-gonic/gin"

	"jobboard_backend/internal/handlers"
)

// RegisterRoutes binds every HTTP route onto the engine. The API surface is
// flat (/auth, /jobs, /healthz), matching the public contract.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	root := ginRouter.Group("")
	{
		appHandlers.HealthHandler.RegisterRoutes(root)
		appHandlers.AuthHandler.RegisterRoutes(root)
		appHandlers.JobHandler.RegisterRoutes(root)
	}
}
