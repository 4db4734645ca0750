package repository

import (
	"context"
	"time"

	"familymarket/internal/domain/entity"
)

// ListingFilter narrows List results. Zero values mean "no constraint".
type ListingFilter struct {
	Type      entity.ListingType
	Status    entity.ListingStatus
	StoreSlug string
	OwnerID   string
	// Term is a case-insensitive substring over title, description and
	// company name, applied after the Firestore equality filters.
	Term string
}

type ListingRepository interface {
	Create(ctx context.Context, listing *entity.Listing) error
	GetByID(ctx context.Context, id string) (*entity.Listing, error)
	Update(ctx context.Context, listing *entity.Listing) error
	Delete(ctx context.Context, id string) error

	// List filters, sorts (fechaCreacion|titulo|vistas, "_asc"/"_desc"
	// suffix) and paginates.
	List(ctx context.Context, filter ListingFilter, sort string, limit, offset int) ([]*entity.Listing, int64, error)

	Exists(ctx context.Context, id string) (bool, error)
	IncrementViews(ctx context.Context, id string) error
	SetFeatured(ctx context.Context, id string, until time.Time) error

	// ClearExpiredFeatured revokes the featured flag of every listing whose
	// featuredUntil has passed and returns how many were cleared.
	ClearExpiredFeatured(ctx context.Context, now time.Time) (int, error)
}
