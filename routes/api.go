package routes

import (
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/newrayan/leads-service/environments"
	"github.com/newrayan/leads-service/handlers"
	"github.com/newrayan/leads-service/internal/middlewares"
)

// RegisterRoutes registers all API routes with middleware
func RegisterRoutes(
	e *echo.Echo,
	healthHandler *handlers.HealthHandler,
	submissionHandler *handlers.SubmissionHandler,
	conversionHandler *handlers.ConversionHandler,
	cfg *environments.Config,
) {
	e.GET("/health", healthHandler.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// API v1 base group
	v1 := e.Group("/api/v1")

	// Public endpoints: the contact form and the relay are hit by the
	// marketing site and the CRM without a session.
	v1.POST("/submissions", submissionHandler.CreateSubmission)
	v1.POST("/conversion-events", conversionHandler.ForwardEvent)
	v1.GET("/crm-webhook", conversionHandler.CRMWebhookInfo)
	v1.POST("/crm-webhook", conversionHandler.CRMWebhook)

	// Admin endpoints behind the dashboard API key.
	admin := v1.Group("", middlewares.APIKeyAuth(cfg.Auth.AdminAPIKey))

	admin.GET("/submissions", submissionHandler.ListSubmissions)
	admin.GET("/submissions/stats", submissionHandler.GetStats)
	admin.PATCH("/submissions/:id/contacted", submissionHandler.MarkContacted)
	admin.POST("/submissions/:id/whatsapp", submissionHandler.OpenWhatsApp)
	admin.GET("/conversion-events/recent", conversionHandler.RecentDeliveries)
}
