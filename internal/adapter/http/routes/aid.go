package routes

import (
	"auxilio_propg/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathRequests      = "/requests"
	PathNotifications = "/notifications"
	PathConfig        = "/config"
	PathAudit         = "/audit"
)

func addAidRoutes(rg *gin.RouterGroup, aidHandler *handlers.AidRequestHandler, notificationHandler *handlers.NotificationHandler, auditHandler *handlers.AuditLogHandler) {
	requests := rg.Group(PathRequests)
	{
		requests.POST("", aidHandler.CreateRequest)
		requests.GET("", aidHandler.Query)
		requests.GET("/:id", aidHandler.GetByID)
		requests.PATCH("/:id/status", aidHandler.Transition)
		requests.PATCH("/:id/observations", aidHandler.UpdateObservations)
		requests.GET("/history/:cpf", aidHandler.GetHistory)
	}

	notifications := rg.Group(PathNotifications)
	{
		notifications.POST("/send", notificationHandler.Send)
	}

	config := rg.Group(PathConfig)
	{
		// Admin-only (role A5); hot-editable without a restart.
		config.GET("/recipients/:event_key", notificationHandler.GetRecipients)
		config.PUT("/recipients/:event_key", notificationHandler.SetRecipients)
		config.GET("/templates/:name", notificationHandler.GetTemplate)
		config.PUT("/templates/:name", notificationHandler.SetTemplate)
		config.GET("/labels", notificationHandler.GetLabels)
		config.PUT("/labels", notificationHandler.SetLabels)
	}

	audit := rg.Group(PathAudit)
	{
		audit.GET("", auditHandler.Query)
		audit.POST("/auth", auditHandler.RecordAuth)
	}
}
