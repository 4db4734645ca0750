package repository

import (
	"context"

	"familymarket/internal/domain/entity"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	GetByID(ctx context.Context, id string) (*entity.Payment, error)
	GetByGatewayPaymentID(ctx context.Context, gatewayPaymentID string) (*entity.Payment, error)
	Update(ctx context.Context, payment *entity.Payment) error
}
