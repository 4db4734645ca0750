package handler

import (
	"github.com/labstack/echo/v4"

	"familymarket/internal/usecase"
	"familymarket/pkg/errors"
	"familymarket/pkg/response"
)

type CommentHandler struct {
	commentUseCase *usecase.CommentUseCase
}

func NewCommentHandler(commentUseCase *usecase.CommentUseCase) *CommentHandler {
	return &CommentHandler{
		commentUseCase: commentUseCase,
	}
}

func (h *CommentHandler) Create(c echo.Context) error {
	var req struct {
		ItemType string `json:"itemType" validate:"required,oneof=producto servicio empleo"`
		ItemID   string `json:"itemId" validate:"required"`
		Content  string `json:"contenido" validate:"required,min=1,max=1000"`
		Rating   int    `json:"puntuacion" validate:"omitempty,min=0,max=5"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	comment, err := h.commentUseCase.Create(c.Request().Context(), uid(c), usecase.CreateCommentInput{
		ItemType: req.ItemType,
		ItemID:   req.ItemID,
		Content:  req.Content,
		Rating:   req.Rating,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, comment)
}

func (h *CommentHandler) ListForItem(c echo.Context) error {
	comments, err := h.commentUseCase.ListForItem(c.Request().Context(), c.Param("itemType"), c.Param("itemId"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, comments)
}

func (h *CommentHandler) ListMade(c echo.Context) error {
	comments, err := h.commentUseCase.ListMade(c.Request().Context(), uid(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, comments)
}

func (h *CommentHandler) ListReceived(c echo.Context) error {
	comments, err := h.commentUseCase.ListReceived(c.Request().Context(), uid(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, comments)
}

func (h *CommentHandler) Delete(c echo.Context) error {
	if err := h.commentUseCase.Delete(c.Request().Context(), uid(c), isAdmin(c), c.Param("itemType"), c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{
		"message": "Comment deleted",
	})
}
