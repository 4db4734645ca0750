package router

import (
	"github.com/labstack/echo/v4"

	"familymarket/internal/adapter/api/handler"
	"familymarket/internal/adapter/api/middleware"
)

func SetupServiceRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	serviceHandler := handler.GetServiceHandler()

	e.GET("/v1/servicios/:id", serviceHandler.Get)
	e.GET("/v1/tiendas/:slug/servicios", serviceHandler.ListByStore)

	protected := e.Group("/v1/servicios")
	protected.Use(authMiddleware.Authenticate)
	protected.POST("", serviceHandler.Create)
	protected.PATCH("/:id", serviceHandler.Update)
	protected.DELETE("/:id", serviceHandler.Delete)
}
