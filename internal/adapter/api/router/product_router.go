package router

import (
	"github.com/labstack/echo/v4"

	"familymarket/internal/adapter/api/handler"
	"familymarket/internal/adapter/api/middleware"
)

func SetupProductRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	productHandler := handler.GetProductHandler()

	e.GET("/v1/productos/:id", productHandler.Get)
	e.GET("/v1/tiendas/:slug/productos", productHandler.ListByStore)

	protected := e.Group("/v1/productos")
	protected.Use(authMiddleware.Authenticate)
	protected.POST("", productHandler.Create)
	protected.PATCH("/:id", productHandler.Update)
	protected.DELETE("/:id", productHandler.Delete)
}
