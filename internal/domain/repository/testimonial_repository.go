package repository

import (
	"context"

	"familymarket/internal/domain/entity"
)

type TestimonialRepository interface {
	Create(ctx context.Context, testimonial *entity.Testimonial) error
	GetByID(ctx context.Context, id string) (*entity.Testimonial, error)
	Update(ctx context.Context, testimonial *entity.Testimonial) error
	Delete(ctx context.Context, id string) error

	// List filters by status when status is non-empty.
	List(ctx context.Context, status entity.TestimonialStatus, limit, offset int) ([]*entity.Testimonial, int64, error)
}
