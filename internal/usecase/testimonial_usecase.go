package usecase

import (
	"context"
	"time"

	"familymarket/internal/domain/entity"
	"familymarket/internal/domain/repository"
	"familymarket/pkg/errors"
)

type TestimonialUseCase struct {
	testimonialRepo repository.TestimonialRepository
	userRepo        repository.UserRepository
}

func NewTestimonialUseCase(testimonialRepo repository.TestimonialRepository, userRepo repository.UserRepository) *TestimonialUseCase {
	return &TestimonialUseCase{
		testimonialRepo: testimonialRepo,
		userRepo:        userRepo,
	}
}

// Create stores a new testimonial in pending state; it stays off the public
// site until an admin approves it.
func (uc *TestimonialUseCase) Create(ctx context.Context, authorID, content string, rating int) (*entity.Testimonial, error) {
	if rating < 1 || rating > 5 {
		return nil, errors.BadRequest("Rating must be between 1 and 5", nil)
	}

	author, err := uc.userRepo.GetByID(ctx, authorID)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	now := time.Now()
	testimonial := &entity.Testimonial{
		AuthorID:       authorID,
		AuthorName:     author.DisplayName,
		AuthorPhotoURL: author.PhotoURL,
		Content:        content,
		Rating:         rating,
		Status:         entity.TestimonialPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := uc.testimonialRepo.Create(ctx, testimonial); err != nil {
		return nil, errors.Internal("Failed to create testimonial", err)
	}
	return testimonial, nil
}

// ListPublic returns only approved testimonials.
func (uc *TestimonialUseCase) ListPublic(ctx context.Context, limit, offset int) ([]*entity.Testimonial, int64, error) {
	testimonials, total, err := uc.testimonialRepo.List(ctx, entity.TestimonialApproved, limit, offset)
	if err != nil {
		return nil, 0, errors.Internal("Failed to list testimonials", err)
	}
	return testimonials, total, nil
}

// ListAll is the admin view, optionally filtered by status.
func (uc *TestimonialUseCase) ListAll(ctx context.Context, rawStatus string, limit, offset int) ([]*entity.Testimonial, int64, error) {
	var status entity.TestimonialStatus
	if rawStatus != "" {
		switch entity.TestimonialStatus(rawStatus) {
		case entity.TestimonialPending, entity.TestimonialApproved, entity.TestimonialHidden:
			status = entity.TestimonialStatus(rawStatus)
		default:
			return nil, 0, errors.BadRequest("Invalid testimonial status filter", nil)
		}
	}

	testimonials, total, err := uc.testimonialRepo.List(ctx, status, limit, offset)
	if err != nil {
		return nil, 0, errors.Internal("Failed to list testimonials", err)
	}
	return testimonials, total, nil
}

// SetStatus moderates a testimonial (approve or hide).
func (uc *TestimonialUseCase) SetStatus(ctx context.Context, id, rawStatus string) (*entity.Testimonial, error) {
	var status entity.TestimonialStatus
	switch entity.TestimonialStatus(rawStatus) {
	case entity.TestimonialApproved, entity.TestimonialHidden, entity.TestimonialPending:
		status = entity.TestimonialStatus(rawStatus)
	default:
		return nil, errors.BadRequest("Invalid testimonial status", nil)
	}

	testimonial, err := uc.testimonialRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NotFound("Testimonial", err)
	}

	testimonial.Status = status
	testimonial.UpdatedAt = time.Now()
	if err := uc.testimonialRepo.Update(ctx, testimonial); err != nil {
		return nil, errors.Internal("Failed to update testimonial", err)
	}
	return testimonial, nil
}

// Delete removes a testimonial. Authors may delete their own; admins any.
func (uc *TestimonialUseCase) Delete(ctx context.Context, actorID string, isAdmin bool, id string) error {
	testimonial, err := uc.testimonialRepo.GetByID(ctx, id)
	if err != nil {
		return errors.NotFound("Testimonial", err)
	}
	if testimonial.AuthorID != actorID && !isAdmin {
		return errors.Forbidden("You cannot delete this testimonial", nil)
	}

	if err := uc.testimonialRepo.Delete(ctx, id); err != nil {
		return errors.Internal("Failed to delete testimonial", err)
	}
	return nil
}
