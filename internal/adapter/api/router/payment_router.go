package router

import (
	"github.com/labstack/echo/v4"

	"familymarket/internal/adapter/api/handler"
	"familymarket/internal/adapter/api/middleware"
)

func SetupPaymentRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	paymentHandler := handler.GetPaymentHandler()

	// The gateway calls this endpoint; it carries no bearer token.
	e.POST("/v1/pagos/webhook", paymentHandler.Webhook, middleware.WebhookRateLimit())

	protected := e.Group("/v1/pagos", middleware.PaymentRateLimit())
	protected.Use(authMiddleware.Authenticate)
	protected.POST("/featured", paymentHandler.CreateFeaturePreference)
	protected.GET("/:id", paymentHandler.Get)
}
