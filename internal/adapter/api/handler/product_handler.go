package handler

import (
	"github.com/labstack/echo/v4"

	"familymarket/internal/usecase"
	"familymarket/pkg/errors"
	"familymarket/pkg/response"
	"familymarket/pkg/utils"
)

type ProductHandler struct {
	productUseCase *usecase.ProductUseCase
}

func NewProductHandler(productUseCase *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{
		productUseCase: productUseCase,
	}
}

type productRequest struct {
	Title       string   `json:"titulo" validate:"required,min=3"`
	Description string   `json:"descripcion"`
	Price       float64  `json:"precio" validate:"gte=0"`
	Category    string   `json:"categoria"`
	Images      []string `json:"imagenes" validate:"omitempty,dive,url"`
}

func (h *ProductHandler) Create(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.Create(c.Request().Context(), uid(c), usecase.CreateProductInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Images:      req.Images,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, product)
}

func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.productUseCase.Get(c.Request().Context(), c.Param("id"), true)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, product)
}

func (h *ProductHandler) ListByStore(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	products, total, err := h.productUseCase.ListByStore(c.Request().Context(), c.Param("slug"), params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Paginated(c, products, total, params.Page, params.PageSize)
}

func (h *ProductHandler) Update(c echo.Context) error {
	var req struct {
		Title       *string  `json:"titulo" validate:"omitempty,min=3"`
		Description *string  `json:"descripcion"`
		Price       *float64 `json:"precio" validate:"omitempty,gte=0"`
		Category    *string  `json:"categoria"`
		Images      []string `json:"imagenes" validate:"omitempty,dive,url"`
		Status      *string  `json:"estado" validate:"omitempty,oneof=activo pausado"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.Update(c.Request().Context(), uid(c), c.Param("id"), usecase.UpdateProductInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Images:      req.Images,
		Status:      req.Status,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, product)
}

func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.productUseCase.Delete(c.Request().Context(), uid(c), isAdmin(c), c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{
		"message": "Product deleted",
	})
}
