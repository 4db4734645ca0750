package router

import (
	"github.com/labstack/echo/v4"

	"familymarket/internal/adapter/api/handler"
	"familymarket/internal/adapter/api/middleware"
)

func SetupAdminRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	adminHandler := handler.GetAdminHandler()
	testimonialHandler := handler.GetTestimonialHandler()
	notificationHandler := handler.GetNotificationHandler()
	listingHandler := handler.GetListingHandler()
	productHandler := handler.GetProductHandler()
	serviceHandler := handler.GetServiceHandler()
	commentHandler := handler.GetCommentHandler()

	admin := e.Group("/v1/admin")
	admin.Use(authMiddleware.Authenticate, adminMiddleware.AdminOnly)

	admin.GET("/users", adminHandler.ListUsers)
	admin.PATCH("/users/:id/status", adminHandler.ChangeAccountStatus)

	admin.GET("/testimonios", testimonialHandler.ListAll)
	admin.PATCH("/testimonios/:id/status", testimonialHandler.SetStatus)
	admin.DELETE("/testimonios/:id", testimonialHandler.Delete)

	admin.POST("/notificaciones/broadcast", notificationHandler.Broadcast)

	// Moderation: admins can remove any published content.
	admin.DELETE("/empleos/:id", listingHandler.Delete)
	admin.DELETE("/productos/:id", productHandler.Delete)
	admin.DELETE("/servicios/:id", serviceHandler.Delete)
	admin.DELETE("/comentarios/:itemType/:id", commentHandler.Delete)
}
