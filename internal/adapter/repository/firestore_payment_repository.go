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

type firestorePaymentRepository struct {
	client *firestore.Client
}

func NewFirestorePaymentRepository(client *firestore.Client) repository.PaymentRepository {
	return &firestorePaymentRepository{
		client: client,
	}
}

func (r *firestorePaymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	if payment.ID == "" {
		payment.ID = uuid.New().String()
	}

	now := time.Now()
	if payment.CreatedAt.IsZero() {
		payment.CreatedAt = now
	}
	payment.UpdatedAt = now

	_, err := r.client.Collection("payments").Doc(payment.ID).Set(ctx, payment)
	if err != nil {
		return errors.Internal("Failed to create payment", err)
	}
	return nil
}

func (r *firestorePaymentRepository) GetByID(ctx context.Context, id string) (*entity.Payment, error) {
	doc, err := r.client.Collection("payments").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Payment", err)
		}
		return nil, errors.Internal("Failed to get payment", err)
	}

	var payment entity.Payment
	if err := doc.DataTo(&payment); err != nil {
		return nil, errors.Internal("Failed to parse payment data", err)
	}

	return &payment, nil
}

func (r *firestorePaymentRepository) GetByGatewayPaymentID(ctx context.Context, gatewayPaymentID string) (*entity.Payment, error) {
	query := r.client.Collection("payments").Where("gatewayPaymentId", "==", gatewayPaymentID).Limit(1)
	iter := query.Documents(ctx)
	doc, err := iter.Next()
	if err != nil {
		if err == iterator.Done {
			return nil, errors.NotFound("Payment", nil)
		}
		return nil, errors.Internal("Failed to query payment", err)
	}

	var payment entity.Payment
	if err := doc.DataTo(&payment); err != nil {
		return nil, errors.Internal("Failed to parse payment data", err)
	}

	return &payment, nil
}

func (r *firestorePaymentRepository) Update(ctx context.Context, payment *entity.Payment) error {
	payment.UpdatedAt = time.Now()

	_, err := r.client.Collection("payments").Doc(payment.ID).Set(ctx, payment)
	if err != nil {
		return errors.Internal("Failed to update payment", err)
	}
	return nil
}
