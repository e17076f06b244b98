package routes

import (
	"membrostotal_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts every handler under the /api/v1 prefix.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	api := ginRouter.Group("/api/v1")

	appHandlers.AuthHandler.RegisterRoutes(api)
	appHandlers.UserHandler.RegisterRoutes(api)
	appHandlers.TrainingHandler.RegisterRoutes(api)
	appHandlers.ModuleHandler.RegisterRoutes(api)
	appHandlers.SubModuleHandler.RegisterRoutes(api)
	appHandlers.LessonHandler.RegisterRoutes(api)
	appHandlers.PaymentHandler.RegisterRoutes(api)
	appHandlers.PaymentRequestHandler.RegisterRoutes(api)
	appHandlers.RefundHandler.RegisterRoutes(api)
	appHandlers.NotificationHandler.RegisterRoutes(api)
	appHandlers.MeetingHandler.RegisterRoutes(api)
	appHandlers.ExpertRequestHandler.RegisterRoutes(api)
	appHandlers.UtmHandler.RegisterRoutes(api)
	appHandlers.AutocompleteHandler.RegisterRoutes(api)
}
