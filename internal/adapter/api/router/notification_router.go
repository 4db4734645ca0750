package router

import (
	"github.com/labstack/echo/v4"

	"familymarket/internal/adapter/api/handler"
	"familymarket/internal/adapter/api/middleware"
)

func SetupNotificationRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	notificationHandler := handler.GetNotificationHandler()

	notifications := e.Group("/v1/notificaciones")
	notifications.Use(authMiddleware.Authenticate)
	notifications.GET("", notificationHandler.ListMine)
	notifications.PATCH("/:id/read", notificationHandler.MarkRead)
	notifications.PATCH("/read-all", notificationHandler.MarkAllRead)
	notifications.DELETE("", notificationHandler.DeleteAll)
	notifications.POST("/device-tokens", notificationHandler.RegisterDeviceToken)
	notifications.DELETE("/device-tokens", notificationHandler.UnregisterDeviceToken)
}
