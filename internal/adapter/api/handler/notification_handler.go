package handler

import (
	"github.com/labstack/echo/v4"

	"familymarket/internal/usecase"
	"familymarket/pkg/errors"
	"familymarket/pkg/response"
	"familymarket/pkg/utils"
)

type NotificationHandler struct {
	notificationUseCase *usecase.NotificationUseCase
	userUseCase         *usecase.UserUseCase
}

func NewNotificationHandler(notificationUseCase *usecase.NotificationUseCase, userUseCase *usecase.UserUseCase) *NotificationHandler {
	return &NotificationHandler{
		notificationUseCase: notificationUseCase,
		userUseCase:         userUseCase,
	}
}

func (h *NotificationHandler) ListMine(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	notifications, total, err := h.notificationUseCase.ListMine(c.Request().Context(), uid(c), params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Paginated(c, notifications, total, params.Page, params.PageSize)
}

func (h *NotificationHandler) MarkRead(c echo.Context) error {
	if err := h.notificationUseCase.MarkRead(c.Request().Context(), uid(c), c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{
		"message": "Notification marked as read",
	})
}

func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	if err := h.notificationUseCase.MarkAllRead(c.Request().Context(), uid(c)); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{
		"message": "All notifications marked as read",
	})
}

func (h *NotificationHandler) DeleteAll(c echo.Context) error {
	if err := h.notificationUseCase.DeleteAll(c.Request().Context(), uid(c)); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{
		"message": "All notifications deleted",
	})
}

// Broadcast lets admins push an announcement to every user.
func (h *NotificationHandler) Broadcast(c echo.Context) error {
	var req struct {
		Title string            `json:"titulo" validate:"required,min=1"`
		Body  string            `json:"mensaje" validate:"required,min=1"`
		Data  map[string]string `json:"data"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	count, err := h.notificationUseCase.Broadcast(c.Request().Context(), req.Title, req.Body, req.Data)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]int{
		"delivered": count,
	})
}

func (h *NotificationHandler) RegisterDeviceToken(c echo.Context) error {
	var req struct {
		Token string `json:"token" validate:"required"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.userUseCase.RegisterDeviceToken(c.Request().Context(), uid(c), req.Token); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{
		"message": "Device token registered",
	})
}

func (h *NotificationHandler) UnregisterDeviceToken(c echo.Context) error {
	var req struct {
		Token string `json:"token" validate:"required"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.userUseCase.UnregisterDeviceToken(c.Request().Context(), uid(c), req.Token); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{
		"message": "Device token removed",
	})
}
