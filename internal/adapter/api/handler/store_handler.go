package handler

import (
	"github.com/labstack/echo/v4"

	"familymarket/internal/domain/entity"
	"familymarket/internal/usecase"
	"familymarket/pkg/errors"
	"familymarket/pkg/response"
)

type StoreHandler struct {
	storeUseCase *usecase.StoreUseCase
}

func NewStoreHandler(storeUseCase *usecase.StoreUseCase) *StoreHandler {
	return &StoreHandler{
		storeUseCase: storeUseCase,
	}
}

type createStoreRequest struct {
	Name        string            `json:"nombre" validate:"required,min=3"`
	Description string            `json:"descripcion"`
	Phone       string            `json:"telefono"`
	WhatsApp    string            `json:"whatsapp"`
	Address     string            `json:"direccion"`
	Theme       entity.StoreTheme `json:"tema"`
}

func (h *StoreHandler) Create(c echo.Context) error {
	var req createStoreRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	store, err := h.storeUseCase.Create(c.Request().Context(), uid(c), usecase.CreateStoreInput{
		Name:        req.Name,
		Description: req.Description,
		Phone:       req.Phone,
		WhatsApp:    req.WhatsApp,
		Address:     req.Address,
		Theme:       req.Theme,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, store)
}

func (h *StoreHandler) GetBySlug(c echo.Context) error {
	store, err := h.storeUseCase.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, store)
}

func (h *StoreHandler) GetMine(c echo.Context) error {
	store, err := h.storeUseCase.GetMine(c.Request().Context(), uid(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, store)
}

type updateStoreRequest struct {
	Name        *string            `json:"nombre" validate:"omitempty,min=3"`
	Description *string            `json:"descripcion"`
	Phone       *string            `json:"telefono"`
	WhatsApp    *string            `json:"whatsapp"`
	Address     *string            `json:"direccion"`
	LogoURL     *string            `json:"logo" validate:"omitempty,url"`
	BannerURL   *string            `json:"banner" validate:"omitempty,url"`
	Theme       *entity.StoreTheme `json:"tema"`
	Active      *bool              `json:"activa"`
}

func (h *StoreHandler) Update(c echo.Context) error {
	var req updateStoreRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	store, err := h.storeUseCase.Update(c.Request().Context(), uid(c), c.Param("slug"), usecase.UpdateStoreInput{
		Name:        req.Name,
		Description: req.Description,
		Phone:       req.Phone,
		WhatsApp:    req.WhatsApp,
		Address:     req.Address,
		LogoURL:     req.LogoURL,
		BannerURL:   req.BannerURL,
		Theme:       req.Theme,
		Active:      req.Active,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, store)
}

// Search runs the cross-type search, optionally scoped to one store via
// the store query parameter.
func (h *StoreHandler) Search(c echo.Context) error {
	result, err := h.storeUseCase.Search(c.Request().Context(), c.QueryParam("q"), c.QueryParam("store"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, result)
}
