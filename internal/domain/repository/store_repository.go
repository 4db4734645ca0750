package repository

import (
	"context"

	"familymarket/internal/domain/entity"
)

type StoreRepository interface {
	Create(ctx context.Context, store *entity.Store) error
	GetBySlug(ctx context.Context, slug string) (*entity.Store, error)
	GetByOwnerID(ctx context.Context, ownerID string) (*entity.Store, error)
	Update(ctx context.Context, store *entity.Store) error

	// SlugExists reports whether a store already claims the slug.
	SlugExists(ctx context.Context, slug string) (bool, error)
}
