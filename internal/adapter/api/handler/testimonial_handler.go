package handler

import (
	"github.com/labstack/echo/v4"

	"familymarket/internal/usecase"
	"familymarket/pkg/errors"
	"familymarket/pkg/response"
	"familymarket/pkg/utils"
)

type TestimonialHandler struct {
	testimonialUseCase *usecase.TestimonialUseCase
}

func NewTestimonialHandler(testimonialUseCase *usecase.TestimonialUseCase) *TestimonialHandler {
	return &TestimonialHandler{
		testimonialUseCase: testimonialUseCase,
	}
}

func (h *TestimonialHandler) Create(c echo.Context) error {
	var req struct {
		Content string `json:"contenido" validate:"required,min=1,max=1000"`
		Rating  int    `json:"puntuacion" validate:"required,min=1,max=5"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	testimonial, err := h.testimonialUseCase.Create(c.Request().Context(), uid(c), req.Content, req.Rating)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, testimonial)
}

func (h *TestimonialHandler) ListPublic(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	testimonials, total, err := h.testimonialUseCase.ListPublic(c.Request().Context(), params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Paginated(c, testimonials, total, params.Page, params.PageSize)
}

func (h *TestimonialHandler) ListAll(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	testimonials, total, err := h.testimonialUseCase.ListAll(c.Request().Context(), c.QueryParam("estado"), params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Paginated(c, testimonials, total, params.Page, params.PageSize)
}

func (h *TestimonialHandler) SetStatus(c echo.Context) error {
	var req struct {
		Status string `json:"estado" validate:"required,oneof=pending approved hidden"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	testimonial, err := h.testimonialUseCase.SetStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, testimonial)
}

func (h *TestimonialHandler) Delete(c echo.Context) error {
	if err := h.testimonialUseCase.Delete(c.Request().Context(), uid(c), isAdmin(c), c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{
		"message": "Testimonial deleted",
	})
}
