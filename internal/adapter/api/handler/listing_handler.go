package handler

import (
	"github.com/labstack/echo/v4"

	"familymarket/internal/domain/entity"
	"familymarket/internal/usecase"
	"familymarket/pkg/errors"
	"familymarket/pkg/response"
	"familymarket/pkg/utils"
)

type ListingHandler struct {
	listingUseCase *usecase.ListingUseCase
}

func NewListingHandler(listingUseCase *usecase.ListingUseCase) *ListingHandler {
	return &ListingHandler{
		listingUseCase: listingUseCase,
	}
}

type createListingRequest struct {
	Type        string             `json:"tipoPublicacion" validate:"required,oneof=OFERTA_EMPLEO BUSQUEDA_EMPLEO SERVICIO_PROFESIONAL"`
	Title       string             `json:"titulo" validate:"required,min=3"`
	Description string             `json:"descripcion"`
	Category    string             `json:"categoria" validate:"required"`
	Subcategory string             `json:"subcategoria"`
	Contact     entity.ContactInfo `json:"contacto"`

	JobOffer            *entity.JobOfferDetails            `json:"ofertaEmpleo"`
	JobSeeker           *entity.JobSeekerDetails           `json:"busquedaEmpleo"`
	ProfessionalService *entity.ProfessionalServiceDetails `json:"servicioProfesional"`
}

func (h *ListingHandler) Create(c echo.Context) error {
	var req createListingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	listing, err := h.listingUseCase.Create(c.Request().Context(), uid(c), usecase.CreateListingInput{
		Type:                req.Type,
		Title:               req.Title,
		Description:         req.Description,
		Category:            req.Category,
		Subcategory:         req.Subcategory,
		Contact:             req.Contact,
		JobOffer:            req.JobOffer,
		JobSeeker:           req.JobSeeker,
		ProfessionalService: req.ProfessionalService,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, listing)
}

func (h *ListingHandler) List(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	listings, total, err := h.listingUseCase.List(c.Request().Context(), usecase.ListListingsInput{
		Type:      c.QueryParam("tipo"),
		StoreSlug: c.QueryParam("tienda"),
		Term:      c.QueryParam("q"),
		Sort:      c.QueryParam("sort"),
		Limit:     params.PageSize,
		Offset:    params.Offset,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Paginated(c, listings, total, params.Page, params.PageSize)
}

func (h *ListingHandler) ListMine(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	listings, total, err := h.listingUseCase.ListMine(c.Request().Context(), uid(c), c.QueryParam("estado"), params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Paginated(c, listings, total, params.Page, params.PageSize)
}

func (h *ListingHandler) Get(c echo.Context) error {
	listing, err := h.listingUseCase.Get(c.Request().Context(), c.Param("id"), uid(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, listing)
}

type updateListingRequest struct {
	Title       *string             `json:"titulo" validate:"omitempty,min=3"`
	Description *string             `json:"descripcion"`
	Category    *string             `json:"categoria"`
	Subcategory *string             `json:"subcategoria"`
	Contact     *entity.ContactInfo `json:"contacto"`

	JobOffer            *entity.JobOfferDetails            `json:"ofertaEmpleo"`
	JobSeeker           *entity.JobSeekerDetails           `json:"busquedaEmpleo"`
	ProfessionalService *entity.ProfessionalServiceDetails `json:"servicioProfesional"`
}

func (h *ListingHandler) Update(c echo.Context) error {
	var req updateListingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	listing, err := h.listingUseCase.Update(c.Request().Context(), uid(c), c.Param("id"), usecase.UpdateListingInput{
		Title:               req.Title,
		Description:         req.Description,
		Category:            req.Category,
		Subcategory:         req.Subcategory,
		Contact:             req.Contact,
		JobOffer:            req.JobOffer,
		JobSeeker:           req.JobSeeker,
		ProfessionalService: req.ProfessionalService,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, listing)
}

func (h *ListingHandler) Pause(c echo.Context) error {
	listing, err := h.listingUseCase.Pause(c.Request().Context(), uid(c), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, listing)
}

func (h *ListingHandler) Resume(c echo.Context) error {
	listing, err := h.listingUseCase.Resume(c.Request().Context(), uid(c), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, listing)
}

func (h *ListingHandler) Duplicate(c echo.Context) error {
	listing, err := h.listingUseCase.Duplicate(c.Request().Context(), uid(c), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, listing)
}

func (h *ListingHandler) Delete(c echo.Context) error {
	if err := h.listingUseCase.Delete(c.Request().Context(), uid(c), isAdmin(c), c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{
		"message": "Listing deleted",
	})
}
