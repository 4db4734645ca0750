package usecase

import (
	"context"
	"time"

	"familymarket/internal/domain/entity"
	"familymarket/internal/domain/repository"
	"familymarket/pkg/errors"
	"familymarket/pkg/logger"
)

type ListingUseCase struct {
	listingRepo repository.ListingRepository
	storeRepo   repository.StoreRepository
	userRepo    repository.UserRepository
}

func NewListingUseCase(
	listingRepo repository.ListingRepository,
	storeRepo repository.StoreRepository,
	userRepo repository.UserRepository,
) *ListingUseCase {
	return &ListingUseCase{
		listingRepo: listingRepo,
		storeRepo:   storeRepo,
		userRepo:    userRepo,
	}
}

type CreateListingInput struct {
	Type        string
	Title       string
	Description string
	Category    string
	Subcategory string
	Contact     entity.ContactInfo

	JobOffer            *entity.JobOfferDetails
	JobSeeker           *entity.JobSeekerDetails
	ProfessionalService *entity.ProfessionalServiceDetails
}

// validateVariant enforces the tagged-union shape: the payload matching the
// declared type must be present and the other two absent.
func validateVariant(l *entity.Listing) error {
	switch l.Type {
	case entity.ListingJobOffer:
		if l.JobOffer == nil {
			return errors.BadRequest("ofertaEmpleo payload is required for OFERTA_EMPLEO", nil)
		}
		if l.JobSeeker != nil || l.ProfessionalService != nil {
			return errors.BadRequest("Only the ofertaEmpleo payload may be set", nil)
		}
		if s := l.JobOffer.Salary; s.Min > 0 && s.Max > 0 && s.Min > s.Max {
			return errors.BadRequest("Salary minimum cannot exceed maximum", nil)
		}
	case entity.ListingJobSeeker:
		if l.JobSeeker == nil {
			return errors.BadRequest("busquedaEmpleo payload is required for BUSQUEDA_EMPLEO", nil)
		}
		if l.JobOffer != nil || l.ProfessionalService != nil {
			return errors.BadRequest("Only the busquedaEmpleo payload may be set", nil)
		}
	case entity.ListingProfessionalService:
		if l.ProfessionalService == nil {
			return errors.BadRequest("servicioProfesional payload is required for SERVICIO_PROFESIONAL", nil)
		}
		if l.JobOffer != nil || l.JobSeeker != nil {
			return errors.BadRequest("Only the servicioProfesional payload may be set", nil)
		}
	}

	if !l.Contact.HasChannel() {
		return errors.BadRequest("At least one contact channel is required", nil)
	}
	return nil
}

func (uc *ListingUseCase) Create(ctx context.Context, ownerID string, input CreateListingInput) (*entity.Listing, error) {
	listingType, ok := entity.ParseListingType(input.Type)
	if !ok {
		return nil, errors.BadRequest("Invalid tipoPublicacion", nil)
	}

	now := time.Now()
	listing := &entity.Listing{
		Type:                listingType,
		OwnerID:             ownerID,
		Title:               input.Title,
		Description:         input.Description,
		Category:            input.Category,
		Subcategory:         input.Subcategory,
		Contact:             input.Contact,
		JobOffer:            input.JobOffer,
		JobSeeker:           input.JobSeeker,
		ProfessionalService: input.ProfessionalService,
		Status:              entity.ListingActive,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := validateVariant(listing); err != nil {
		return nil, err
	}

	// The owner's store snapshot, when one exists, is denormalized onto the
	// posting so public cards render without a second read.
	if store, err := uc.storeRepo.GetByOwnerID(ctx, ownerID); err == nil {
		listing.StoreInfo = store.Snapshot()
	}

	if err := uc.listingRepo.Create(ctx, listing); err != nil {
		return nil, errors.Internal("Failed to create listing", err)
	}

	return listing, nil
}

type UpdateListingInput struct {
	Title       *string
	Description *string
	Category    *string
	Subcategory *string
	Contact     *entity.ContactInfo

	JobOffer            *entity.JobOfferDetails
	JobSeeker           *entity.JobSeekerDetails
	ProfessionalService *entity.ProfessionalServiceDetails
}

// Update edits content fields. The type is immutable and featured fields
// are only ever written by the payment flow and the expiry sweep.
func (uc *ListingUseCase) Update(ctx context.Context, ownerID, id string, input UpdateListingInput) (*entity.Listing, error) {
	listing, err := uc.listingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NotFound("Listing", err)
	}
	if listing.OwnerID != ownerID {
		return nil, errors.Forbidden("You don't own this listing", nil)
	}

	if input.Title != nil {
		listing.Title = *input.Title
	}
	if input.Description != nil {
		listing.Description = *input.Description
	}
	if input.Category != nil {
		listing.Category = *input.Category
	}
	if input.Subcategory != nil {
		listing.Subcategory = *input.Subcategory
	}
	if input.Contact != nil {
		listing.Contact = *input.Contact
	}
	switch listing.Type {
	case entity.ListingJobOffer:
		if input.JobOffer != nil {
			listing.JobOffer = input.JobOffer
		}
	case entity.ListingJobSeeker:
		if input.JobSeeker != nil {
			listing.JobSeeker = input.JobSeeker
		}
	case entity.ListingProfessionalService:
		if input.ProfessionalService != nil {
			listing.ProfessionalService = input.ProfessionalService
		}
	}

	if err := validateVariant(listing); err != nil {
		return nil, err
	}

	listing.UpdatedAt = time.Now()
	if err := uc.listingRepo.Update(ctx, listing); err != nil {
		return nil, errors.Internal("Failed to update listing", err)
	}

	return listing, nil
}

type ListListingsInput struct {
	Type      string
	StoreSlug string
	Term      string
	Sort      string
	Limit     int
	Offset    int
}

// List serves the public feed: only active postings, with featured ones
// already floated to the front by the repository sort.
func (uc *ListingUseCase) List(ctx context.Context, input ListListingsInput) ([]*entity.Listing, int64, error) {
	filter := repository.ListingFilter{
		Status:    entity.ListingActive,
		StoreSlug: input.StoreSlug,
		Term:      input.Term,
	}
	if input.Type != "" {
		t, ok := entity.ParseListingType(input.Type)
		if !ok {
			return nil, 0, errors.BadRequest("Invalid tipoPublicacion filter", nil)
		}
		filter.Type = t
	}

	listings, total, err := uc.listingRepo.List(ctx, filter, input.Sort, input.Limit, input.Offset)
	if err != nil {
		return nil, 0, errors.Internal("Failed to list listings", err)
	}
	return listings, total, nil
}

// ListMine returns the owner's postings, in every status by default or
// narrowed to one estado when the filter is set.
func (uc *ListingUseCase) ListMine(ctx context.Context, ownerID, status string, limit, offset int) ([]*entity.Listing, int64, error) {
	filter := repository.ListingFilter{OwnerID: ownerID}
	if status != "" {
		switch entity.ListingStatus(status) {
		case entity.ListingActive, entity.ListingPaused:
			filter.Status = entity.ListingStatus(status)
		default:
			return nil, 0, errors.BadRequest("Invalid estado filter", nil)
		}
	}

	listings, total, err := uc.listingRepo.List(ctx, filter, "", limit, offset)
	if err != nil {
		return nil, 0, errors.Internal("Failed to list listings", err)
	}
	return listings, total, nil
}

// Get returns one posting. Reads by anyone but the owner bump the view
// counter off the request path; the stale count on this response is
// acceptable.
func (uc *ListingUseCase) Get(ctx context.Context, id, viewerID string) (*entity.Listing, error) {
	listing, err := uc.listingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NotFound("Listing", err)
	}

	if viewerID != listing.OwnerID {
		go func() {
			viewCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := uc.listingRepo.IncrementViews(viewCtx, id); err != nil {
				logger.Error("Failed to increment views for listing %s: %v", id, err)
			}
		}()
	}

	return listing, nil
}

func (uc *ListingUseCase) setStatus(ctx context.Context, ownerID, id string, status entity.ListingStatus) (*entity.Listing, error) {
	listing, err := uc.listingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NotFound("Listing", err)
	}
	if listing.OwnerID != ownerID {
		return nil, errors.Forbidden("You don't own this listing", nil)
	}
	if listing.Status == status {
		return listing, nil
	}

	listing.Status = status
	listing.UpdatedAt = time.Now()
	if err := uc.listingRepo.Update(ctx, listing); err != nil {
		return nil, errors.Internal("Failed to update listing status", err)
	}
	return listing, nil
}

func (uc *ListingUseCase) Pause(ctx context.Context, ownerID, id string) (*entity.Listing, error) {
	return uc.setStatus(ctx, ownerID, id, entity.ListingPaused)
}

func (uc *ListingUseCase) Resume(ctx context.Context, ownerID, id string) (*entity.Listing, error) {
	return uc.setStatus(ctx, ownerID, id, entity.ListingActive)
}

// Duplicate creates a fresh copy of an owned posting with views and
// featured placement reset.
func (uc *ListingUseCase) Duplicate(ctx context.Context, ownerID, id string) (*entity.Listing, error) {
	listing, err := uc.listingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NotFound("Listing", err)
	}
	if listing.OwnerID != ownerID {
		return nil, errors.Forbidden("You don't own this listing", nil)
	}

	clone := listing.Duplicate()
	now := time.Now()
	clone.CreatedAt = now
	clone.UpdatedAt = now

	if err := uc.listingRepo.Create(ctx, clone); err != nil {
		return nil, errors.Internal("Failed to duplicate listing", err)
	}
	return clone, nil
}

// Delete removes a posting. Admins may delete any posting.
func (uc *ListingUseCase) Delete(ctx context.Context, actorID string, isAdmin bool, id string) error {
	listing, err := uc.listingRepo.GetByID(ctx, id)
	if err != nil {
		return errors.NotFound("Listing", err)
	}
	if listing.OwnerID != actorID && !isAdmin {
		return errors.Forbidden("You don't own this listing", nil)
	}

	if err := uc.listingRepo.Delete(ctx, id); err != nil {
		return errors.Internal("Failed to delete listing", err)
	}
	return nil
}

// SweepExpiredFeatured clears stale featured flags in storage so paid
// placement ends exactly when it expires, not when someone next reads.
func (uc *ListingUseCase) SweepExpiredFeatured(ctx context.Context) error {
	cleared, err := uc.listingRepo.ClearExpiredFeatured(ctx, time.Now())
	if err != nil {
		return err
	}
	if cleared > 0 {
		logger.Info("Cleared featured placement on %d expired listings", cleared)
	}
	return nil
}
