package handler

import (
	"github.com/labstack/echo/v4"

	"familymarket/internal/usecase"
)

var (
	authHandler         *AuthHandler
	userHandler         *UserHandler
	adminHandler        *AdminHandler
	storeHandler        *StoreHandler
	productHandler      *ProductHandler
	serviceHandler      *ServiceHandler
	listingHandler      *ListingHandler
	commentHandler      *CommentHandler
	notificationHandler *NotificationHandler
	testimonialHandler  *TestimonialHandler
	paymentHandler      *PaymentHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	userUseCase *usecase.UserUseCase,
	adminUseCase *usecase.AdminUseCase,
	storeUseCase *usecase.StoreUseCase,
	productUseCase *usecase.ProductUseCase,
	serviceUseCase *usecase.ServiceUseCase,
	listingUseCase *usecase.ListingUseCase,
	commentUseCase *usecase.CommentUseCase,
	notificationUseCase *usecase.NotificationUseCase,
	testimonialUseCase *usecase.TestimonialUseCase,
	paymentUseCase *usecase.PaymentUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	userHandler = NewUserHandler(userUseCase)
	adminHandler = NewAdminHandler(adminUseCase)
	storeHandler = NewStoreHandler(storeUseCase)
	productHandler = NewProductHandler(productUseCase)
	serviceHandler = NewServiceHandler(serviceUseCase)
	listingHandler = NewListingHandler(listingUseCase)
	commentHandler = NewCommentHandler(commentUseCase)
	notificationHandler = NewNotificationHandler(notificationUseCase, userUseCase)
	testimonialHandler = NewTestimonialHandler(testimonialUseCase)
	paymentHandler = NewPaymentHandler(paymentUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetAdminHandler() *AdminHandler {
	return adminHandler
}

func GetStoreHandler() *StoreHandler {
	return storeHandler
}

func GetProductHandler() *ProductHandler {
	return productHandler
}

func GetServiceHandler() *ServiceHandler {
	return serviceHandler
}

func GetListingHandler() *ListingHandler {
	return listingHandler
}

func GetCommentHandler() *CommentHandler {
	return commentHandler
}

func GetNotificationHandler() *NotificationHandler {
	return notificationHandler
}

func GetTestimonialHandler() *TestimonialHandler {
	return testimonialHandler
}

func GetPaymentHandler() *PaymentHandler {
	return paymentHandler
}

// uid returns the authenticated user id set by the auth middleware.
func uid(c echo.Context) string {
	v, _ := c.Get("uid").(string)
	return v
}

// isAdmin reports whether the admin middleware vouched for this request.
func isAdmin(c echo.Context) bool {
	v, _ := c.Get("isAdmin").(bool)
	return v
}
