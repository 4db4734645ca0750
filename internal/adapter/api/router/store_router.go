package router

import (
	"github.com/labstack/echo/v4"

	"familymarket/internal/adapter/api/handler"
	"familymarket/internal/adapter/api/middleware"
)

func SetupStoreRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	storeHandler := handler.GetStoreHandler()

	e.GET("/v1/tiendas/:slug", storeHandler.GetBySlug)
	e.GET("/v1/search", storeHandler.Search)

	protected := e.Group("/v1/tiendas")
	protected.Use(authMiddleware.Authenticate)
	protected.POST("", storeHandler.Create)
	protected.GET("/me", storeHandler.GetMine)
	protected.PATCH("/:slug", storeHandler.Update)
}
