package repository

import (
	"context"

	"familymarket/internal/domain/entity"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
	IncrementViews(ctx context.Context, id string) error

	ListByStore(ctx context.Context, storeSlug string, limit, offset int) ([]*entity.Product, int64, error)
	Search(ctx context.Context, term, storeSlug string, limit int) ([]*entity.Product, error)
}
