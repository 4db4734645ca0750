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

type firestoreNotificationRepository struct {
	client *firestore.Client
}

func NewFirestoreNotificationRepository(client *firestore.Client) repository.NotificationRepository {
	return &firestoreNotificationRepository{
		client: client,
	}
}

func (r *firestoreNotificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	if notification.ID == "" {
		notification.ID = uuid.New().String()
	}
	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = time.Now()
	}

	_, err := r.client.Collection("notifications").Doc(notification.ID).Set(ctx, notification)
	if err != nil {
		return errors.Internal("Failed to create notification", err)
	}
	return nil
}

func (r *firestoreNotificationRepository) CreateBatch(ctx context.Context, notifications []*entity.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	now := time.Now()
	col := r.client.Collection("notifications")
	bw := r.client.BulkWriter(ctx)

	for _, n := range notifications {
		if n.ID == "" {
			n.ID = uuid.New().String()
		}
		if n.CreatedAt.IsZero() {
			n.CreatedAt = now
		}
		if _, err := bw.Set(col.Doc(n.ID), n); err != nil {
			bw.End()
			return errors.Internal("Failed to enqueue notification write", err)
		}
	}
	bw.End()

	return nil
}

func (r *firestoreNotificationRepository) GetByID(ctx context.Context, id string) (*entity.Notification, error) {
	doc, err := r.client.Collection("notifications").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Notification", err)
		}
		return nil, errors.Internal("Failed to get notification", err)
	}

	var notification entity.Notification
	if err := doc.DataTo(&notification); err != nil {
		return nil, errors.Internal("Failed to parse notification data", err)
	}

	return &notification, nil
}

func (r *firestoreNotificationRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Notification, int64, error) {
	query := r.client.Collection("notifications").Where("userId", "==", userID)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count notifications", err)
	}
	total := int64(len(allDocs))

	query = query.OrderBy("fechaCreacion", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var notifications []*entity.Notification

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate notifications", err)
		}

		var notification entity.Notification
		if err := doc.DataTo(&notification); err != nil {
			return nil, 0, errors.Internal("Failed to parse notification data", err)
		}
		notifications = append(notifications, &notification)
	}

	return notifications, total, nil
}

func (r *firestoreNotificationRepository) MarkRead(ctx context.Context, id string) error {
	now := time.Now()
	_, err := r.client.Collection("notifications").Doc(id).Update(ctx, []firestore.Update{
		{Path: "leida", Value: true},
		{Path: "fechaLectura", Value: now},
	})
	if err != nil {
		return errors.Internal("Failed to mark notification read", err)
	}
	return nil
}

func (r *firestoreNotificationRepository) MarkAllRead(ctx context.Context, userID string) error {
	query := r.client.Collection("notifications").
		Where("userId", "==", userID).
		Where("leida", "==", false)

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return errors.Internal("Failed to query unread notifications", err)
	}
	if len(docs) == 0 {
		return nil
	}

	now := time.Now()
	bw := r.client.BulkWriter(ctx)
	for _, doc := range docs {
		_, err := bw.Update(doc.Ref, []firestore.Update{
			{Path: "leida", Value: true},
			{Path: "fechaLectura", Value: now},
		})
		if err != nil {
			bw.End()
			return errors.Internal("Failed to enqueue notification update", err)
		}
	}
	bw.End()

	return nil
}

func (r *firestoreNotificationRepository) DeleteAllForUser(ctx context.Context, userID string) error {
	query := r.client.Collection("notifications").Where("userId", "==", userID)

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return errors.Internal("Failed to query notifications for delete", err)
	}
	if len(docs) == 0 {
		return nil
	}

	bw := r.client.BulkWriter(ctx)
	for _, doc := range docs {
		if _, err := bw.Delete(doc.Ref); err != nil {
			bw.End()
			return errors.Internal("Failed to enqueue notification delete", err)
		}
	}
	bw.End()

	return nil
}
