package handler

import (
	"github.com/labstack/echo/v4"

	"familymarket/internal/usecase"
	"familymarket/pkg/errors"
	"familymarket/pkg/response"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

func (h *UserHandler) GetProfile(c echo.Context) error {
	user, err := h.userUseCase.GetProfile(c.Request().Context(), uid(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, user)
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var req struct {
		DisplayName *string `json:"displayName" validate:"omitempty,min=3"`
		Phone       *string `json:"phone"`
		PhotoURL    *string `json:"photoURL" validate:"omitempty,url"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.userUseCase.UpdateProfile(c.Request().Context(), uid(c), usecase.UpdateProfileInput{
		DisplayName: req.DisplayName,
		Phone:       req.Phone,
		PhotoURL:    req.PhotoURL,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, user)
}
