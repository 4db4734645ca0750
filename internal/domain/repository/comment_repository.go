package repository

import (
	"context"

	"familymarket/internal/domain/entity"
)

// CommentRepository spans the three comment collections (comentarios,
// comentarios_servicios, comentarios_empleos); the itemType selects which
// one each call touches.
type CommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	GetByID(ctx context.Context, itemType entity.CommentItemType, id string) (*entity.Comment, error)
	Delete(ctx context.Context, itemType entity.CommentItemType, id string) error

	ListByItem(ctx context.Context, itemType entity.CommentItemType, itemID string) ([]*entity.Comment, error)
	ListByAuthor(ctx context.Context, itemType entity.CommentItemType, authorID string) ([]*entity.Comment, error)
	ListByTarget(ctx context.Context, itemType entity.CommentItemType, targetUserID string) ([]*entity.Comment, error)

	// ListAll feeds the orphan-cleanup sweep.
	ListAll(ctx context.Context, itemType entity.CommentItemType) ([]*entity.Comment, error)

	// DeleteBatch removes a set of comments from one collection in a single
	// bulk write.
	DeleteBatch(ctx context.Context, itemType entity.CommentItemType, ids []string) error
}
