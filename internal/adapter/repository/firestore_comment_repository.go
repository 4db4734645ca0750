package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/google/uuid"

	"familymarket/internal/domain/entity"
	"familymarket/internal/domain/repository"
	"familymarket/pkg/errors"
)

// Collection names predate this service and must stay as the frontend wrote
// them.
var commentCollections = map[entity.CommentItemType]string{
	entity.CommentOnProduct: "comentarios",
	entity.CommentOnService: "comentarios_servicios",
	entity.CommentOnListing: "comentarios_empleos",
}

type firestoreCommentRepository struct {
	client *firestore.Client
}

func NewFirestoreCommentRepository(client *firestore.Client) repository.CommentRepository {
	return &firestoreCommentRepository{
		client: client,
	}
}

func (r *firestoreCommentRepository) collection(itemType entity.CommentItemType) *firestore.CollectionRef {
	name, ok := commentCollections[itemType]
	if !ok {
		name = "comentarios"
	}
	return r.client.Collection(name)
}

func (r *firestoreCommentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	if comment.ID == "" {
		comment.ID = uuid.New().String()
	}
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now()
	}

	_, err := r.collection(comment.ItemType).Doc(comment.ID).Set(ctx, comment)
	if err != nil {
		return errors.Internal("Failed to create comment", err)
	}
	return nil
}

func (r *firestoreCommentRepository) GetByID(ctx context.Context, itemType entity.CommentItemType, id string) (*entity.Comment, error) {
	doc, err := r.collection(itemType).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Comment", err)
		}
		return nil, errors.Internal("Failed to get comment", err)
	}

	var comment entity.Comment
	if err := doc.DataTo(&comment); err != nil {
		return nil, errors.Internal("Failed to parse comment data", err)
	}

	return &comment, nil
}

func (r *firestoreCommentRepository) Delete(ctx context.Context, itemType entity.CommentItemType, id string) error {
	_, err := r.collection(itemType).Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete comment", err)
	}
	return nil
}

func (r *firestoreCommentRepository) queryComments(ctx context.Context, query firestore.Query) ([]*entity.Comment, error) {
	iter := query.Documents(ctx)
	var comments []*entity.Comment

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate comments", err)
		}

		var comment entity.Comment
		if err := doc.DataTo(&comment); err != nil {
			return nil, errors.Internal("Failed to parse comment data", err)
		}
		comments = append(comments, &comment)
	}

	return comments, nil
}

func (r *firestoreCommentRepository) ListByItem(ctx context.Context, itemType entity.CommentItemType, itemID string) ([]*entity.Comment, error) {
	query := r.collection(itemType).Where("itemId", "==", itemID)
	return r.queryComments(ctx, query)
}

func (r *firestoreCommentRepository) ListByAuthor(ctx context.Context, itemType entity.CommentItemType, authorID string) ([]*entity.Comment, error) {
	query := r.collection(itemType).Where("userId", "==", authorID)
	return r.queryComments(ctx, query)
}

func (r *firestoreCommentRepository) ListByTarget(ctx context.Context, itemType entity.CommentItemType, targetUserID string) ([]*entity.Comment, error) {
	query := r.collection(itemType).Where("propietarioId", "==", targetUserID)
	return r.queryComments(ctx, query)
}

func (r *firestoreCommentRepository) ListAll(ctx context.Context, itemType entity.CommentItemType) ([]*entity.Comment, error) {
	return r.queryComments(ctx, r.collection(itemType).Query)
}

func (r *firestoreCommentRepository) DeleteBatch(ctx context.Context, itemType entity.CommentItemType, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	col := r.collection(itemType)
	bw := r.client.BulkWriter(ctx)
	for _, id := range ids {
		if _, err := bw.Delete(col.Doc(id)); err != nil {
			bw.End()
			return errors.Internal("Failed to enqueue comment delete", err)
		}
	}
	bw.End()

	return nil
}
