package router

import (
	"github.com/labstack/echo/v4"

	"familymarket/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	SetupAuthRouter(e, authMiddleware)
	SetupUserRouter(e, authMiddleware)
	SetupAdminRouter(e, authMiddleware, adminMiddleware)
	SetupStoreRouter(e, authMiddleware)
	SetupProductRouter(e, authMiddleware)
	SetupServiceRouter(e, authMiddleware)
	SetupListingRouter(e, authMiddleware)
	SetupCommentRouter(e, authMiddleware)
	SetupNotificationRouter(e, authMiddleware)
	SetupTestimonialRouter(e, authMiddleware)
	SetupPaymentRouter(e, authMiddleware)
	SetupUploadRouter(e, authMiddleware)
	SetupWebSocketRouter(e)
	SetupHealthRouter(e)
}
