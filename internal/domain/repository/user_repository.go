package repository

import (
	"context"

	"familymarket/internal/domain/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id string) error

	// List applies equality filters (accountStatus, role) with pagination.
	List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.User, int64, error)

	AddFCMToken(ctx context.Context, userID, token string) error
	RemoveFCMToken(ctx context.Context, userID, token string) error
}
