package router

import (
	"github.com/labstack/echo/v4"

	"familymarket/internal/adapter/api/handler"
	"familymarket/internal/adapter/api/middleware"
)

func SetupUploadRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	uploadHandler := handler.GetUploadHandler()

	uploads := e.Group("/v1/uploads")
	uploads.Use(authMiddleware.Authenticate)
	uploads.POST("/image", uploadHandler.UploadImage)
	uploads.POST("/cv", uploadHandler.UploadRaw)
}
