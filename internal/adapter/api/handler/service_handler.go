package handler

import (
	"github.com/labstack/echo/v4"

	"familymarket/internal/domain/entity"
	"familymarket/internal/usecase"
	"familymarket/pkg/errors"
	"familymarket/pkg/response"
	"familymarket/pkg/utils"
)

type ServiceHandler struct {
	serviceUseCase *usecase.ServiceUseCase
}

func NewServiceHandler(serviceUseCase *usecase.ServiceUseCase) *ServiceHandler {
	return &ServiceHandler{
		serviceUseCase: serviceUseCase,
	}
}

func (h *ServiceHandler) Create(c echo.Context) error {
	var req struct {
		Title       string               `json:"titulo" validate:"required,min=3"`
		Description string               `json:"descripcion"`
		Rate        entity.RateStructure `json:"tarifa"`
		Category    string               `json:"categoria"`
		Images      []string             `json:"imagenes" validate:"omitempty,dive,url"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	service, err := h.serviceUseCase.Create(c.Request().Context(), uid(c), usecase.CreateServiceInput{
		Title:       req.Title,
		Description: req.Description,
		Rate:        req.Rate,
		Category:    req.Category,
		Images:      req.Images,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, service)
}

func (h *ServiceHandler) Get(c echo.Context) error {
	service, err := h.serviceUseCase.Get(c.Request().Context(), c.Param("id"), true)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, service)
}

func (h *ServiceHandler) ListByStore(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	services, total, err := h.serviceUseCase.ListByStore(c.Request().Context(), c.Param("slug"), params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Paginated(c, services, total, params.Page, params.PageSize)
}

func (h *ServiceHandler) Update(c echo.Context) error {
	var req struct {
		Title       *string               `json:"titulo" validate:"omitempty,min=3"`
		Description *string               `json:"descripcion"`
		Rate        *entity.RateStructure `json:"tarifa"`
		Category    *string               `json:"categoria"`
		Images      []string              `json:"imagenes" validate:"omitempty,dive,url"`
		Status      *string               `json:"estado" validate:"omitempty,oneof=activo pausado"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	service, err := h.serviceUseCase.Update(c.Request().Context(), uid(c), c.Param("id"), usecase.UpdateServiceInput{
		Title:       req.Title,
		Description: req.Description,
		Rate:        req.Rate,
		Category:    req.Category,
		Images:      req.Images,
		Status:      req.Status,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, service)
}

func (h *ServiceHandler) Delete(c echo.Context) error {
	if err := h.serviceUseCase.Delete(c.Request().Context(), uid(c), isAdmin(c), c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{
		"message": "Service deleted",
	})
}
