package router

import (
	"github.com/labstack/echo/v4"

	"familymarket/internal/adapter/api/handler"
	"familymarket/internal/adapter/api/middleware"
)

func SetupCommentRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	commentHandler := handler.GetCommentHandler()

	e.GET("/v1/comentarios/:itemType/:itemId", commentHandler.ListForItem)

	protected := e.Group("/v1/comentarios")
	protected.Use(authMiddleware.Authenticate)
	protected.POST("", commentHandler.Create)
	protected.GET("/mine/made", commentHandler.ListMade)
	protected.GET("/mine/received", commentHandler.ListReceived)
	protected.DELETE("/:itemType/:id", commentHandler.Delete)
}
