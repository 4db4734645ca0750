package handler

import (
	"github.com/labstack/echo/v4"

	"familymarket/internal/usecase"
	"familymarket/pkg/errors"
	"familymarket/pkg/response"
	"familymarket/pkg/utils"
)

type AdminHandler struct {
	adminUseCase *usecase.AdminUseCase
}

func NewAdminHandler(adminUseCase *usecase.AdminUseCase) *AdminHandler {
	return &AdminHandler{
		adminUseCase: adminUseCase,
	}
}

func (h *AdminHandler) ListUsers(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	users, total, err := h.adminUseCase.ListUsers(c.Request().Context(), usecase.ListUsersInput{
		AccountStatus: c.QueryParam("accountStatus"),
		Role:          c.QueryParam("role"),
		Email:         c.QueryParam("email"),
		Limit:         params.PageSize,
		Offset:        params.Offset,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, users, total, params.Page, params.PageSize)
}

func (h *AdminHandler) ChangeAccountStatus(c echo.Context) error {
	var req struct {
		AccountStatus string `json:"accountStatus" validate:"required,oneof=pending approved suspended"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.adminUseCase.ChangeAccountStatus(c.Request().Context(), c.Param("id"), req.AccountStatus)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, user)
}
