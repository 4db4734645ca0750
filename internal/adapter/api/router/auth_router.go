package router

import (
	"github.com/labstack/echo/v4"

	"familymarket/internal/adapter/api/handler"
	"familymarket/internal/adapter/api/middleware"
)

func SetupAuthRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	authHandler := handler.GetAuthHandler()

	public := e.Group("/v1/auth", middleware.AuthRateLimit())
	public.POST("/register", authHandler.Register)
	public.POST("/login", authHandler.Login)
	public.POST("/google", authHandler.GoogleSignIn)
	public.POST("/refresh", authHandler.RefreshToken)

	protected := e.Group("/v1/auth")
	protected.Use(authMiddleware.Authenticate)
	protected.POST("/logout", authHandler.Logout)
	protected.POST("/change-password", authHandler.ChangePassword)
	protected.POST("/change-email", authHandler.ChangeEmail)
}
