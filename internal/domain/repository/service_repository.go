package repository

import (
	"context"

	"familymarket/internal/domain/entity"
)

type ServiceRepository interface {
	Create(ctx context.Context, service *entity.Service) error
	GetByID(ctx context.Context, id string) (*entity.Service, error)
	Update(ctx context.Context, service *entity.Service) error
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
	IncrementViews(ctx context.Context, id string) error

	ListByStore(ctx context.Context, storeSlug string, limit, offset int) ([]*entity.Service, int64, error)
	Search(ctx context.Context, term, storeSlug string, limit int) ([]*entity.Service, error)
}
