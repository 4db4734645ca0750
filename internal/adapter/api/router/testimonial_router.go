package router

import (
	"github.com/labstack/echo/v4"

	"familymarket/internal/adapter/api/handler"
	"familymarket/internal/adapter/api/middleware"
)

func SetupTestimonialRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	testimonialHandler := handler.GetTestimonialHandler()

	e.GET("/v1/testimonios", testimonialHandler.ListPublic)

	protected := e.Group("/v1/testimonios")
	protected.Use(authMiddleware.Authenticate)
	protected.POST("", testimonialHandler.Create)
	protected.DELETE("/:id", testimonialHandler.Delete)
}
