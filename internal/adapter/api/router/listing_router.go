package router

import (
	"github.com/labstack/echo/v4"

	"familymarket/internal/adapter/api/handler"
	"familymarket/internal/adapter/api/middleware"
)

func SetupListingRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	listingHandler := handler.GetListingHandler()

	e.GET("/v1/empleos", listingHandler.List)
	// Optional auth so the owner's own visits don't count as views.
	e.GET("/v1/empleos/:id", listingHandler.Get, authMiddleware.OptionalAuthenticate)

	protected := e.Group("/v1/empleos")
	protected.Use(authMiddleware.Authenticate)
	protected.GET("/mine", listingHandler.ListMine)
	protected.POST("", listingHandler.Create)
	protected.PATCH("/:id", listingHandler.Update)
	protected.POST("/:id/pausar", listingHandler.Pause)
	protected.POST("/:id/reanudar", listingHandler.Resume)
	protected.POST("/:id/duplicar", listingHandler.Duplicate)
	protected.DELETE("/:id", listingHandler.Delete)
}
