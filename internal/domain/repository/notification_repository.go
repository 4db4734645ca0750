package repository

import (
	"context"

	"familymarket/internal/domain/entity"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error

	// CreateBatch persists a broadcast fan-out in a single bulk write.
	CreateBatch(ctx context.Context, notifications []*entity.Notification) error

	GetByID(ctx context.Context, id string) (*entity.Notification, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Notification, int64, error)

	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context, userID string) error

	// DeleteAllForUser removes every notification of one user in a single
	// bulk write, so a partial failure cannot leave half the set behind.
	DeleteAllForUser(ctx context.Context, userID string) error
}
