package usecase

import (
	"context"
	"fmt"
	"time"

	"familymarket/internal/domain/entity"
	"familymarket/internal/domain/repository"
	"familymarket/internal/domain/service"
	"familymarket/pkg/errors"
	"familymarket/pkg/logger"
)

const (
	// Contributions below this amount are rejected outright.
	minFeatureAmount = 100.0
	// Approved contributions buy 30 days of featured placement.
	featureDuration = 30 * 24 * time.Hour
)

// PaymentURLs holds the redirect and webhook endpoints handed to the
// checkout provider.
type PaymentURLs struct {
	Success string
	Failure string
	Pending string
	Webhook string
}

type PaymentUseCase struct {
	paymentRepo repository.PaymentRepository
	listingRepo repository.ListingRepository
	userRepo    repository.UserRepository
	gateway     service.PaymentGateway
	notifier    *NotificationUseCase
	urls        PaymentURLs
}

func NewPaymentUseCase(
	paymentRepo repository.PaymentRepository,
	listingRepo repository.ListingRepository,
	userRepo repository.UserRepository,
	gateway service.PaymentGateway,
	notifier *NotificationUseCase,
	urls PaymentURLs,
) *PaymentUseCase {
	return &PaymentUseCase{
		paymentRepo: paymentRepo,
		listingRepo: listingRepo,
		userRepo:    userRepo,
		gateway:     gateway,
		notifier:    notifier,
		urls:        urls,
	}
}

// CreateFeaturePreference starts the checkout flow for featuring one owned
// listing and returns the redirect URL.
func (uc *PaymentUseCase) CreateFeaturePreference(ctx context.Context, payerID, listingID string, amount float64) (*entity.Payment, string, error) {
	if amount < minFeatureAmount {
		return nil, "", errors.BadRequest(fmt.Sprintf("Minimum contribution amount is %.0f", minFeatureAmount), nil)
	}

	listing, err := uc.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return nil, "", errors.NotFound("Listing", err)
	}
	if listing.OwnerID != payerID {
		return nil, "", errors.Forbidden("You can only feature your own listings", nil)
	}

	payer, err := uc.userRepo.GetByID(ctx, payerID)
	if err != nil {
		return nil, "", errors.NotFound("User", err)
	}

	now := time.Now()
	payment := &entity.Payment{
		ListingID: listingID,
		PayerID:   payerID,
		Amount:    amount,
		Type:      "featured",
		Status:    entity.PaymentCreated,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.paymentRepo.Create(ctx, payment); err != nil {
		return nil, "", errors.Internal("Failed to record payment", err)
	}

	pref, err := uc.gateway.CreatePreference(ctx, service.PreferenceRequest{
		OrderID:    payment.ID,
		Title:      fmt.Sprintf("Destacar publicacion: %s", listing.Title),
		Amount:     amount,
		PayerEmail: payer.Email,
		SuccessURL: uc.urls.Success,
		FailureURL: uc.urls.Failure,
		PendingURL: uc.urls.Pending,
		WebhookURL: uc.urls.Webhook,
	})
	if err != nil {
		return nil, "", errors.Internal("Failed to create checkout preference", err)
	}

	payment.PreferenceID = pref.PreferenceID
	payment.UpdatedAt = time.Now()
	if err := uc.paymentRepo.Update(ctx, payment); err != nil {
		logger.Error("Failed to store preference id on payment %s: %v", payment.ID, err)
	}

	return payment, pref.InitPoint, nil
}

// HandleWebhook resolves one gateway payment notification. Duplicate
// notifications for an already-settled payment are acknowledged without
// re-granting the placement.
func (uc *PaymentUseCase) HandleWebhook(ctx context.Context, gatewayPaymentID string) error {
	if gatewayPaymentID == "" {
		return errors.BadRequest("Payment id is required", nil)
	}

	if existing, err := uc.paymentRepo.GetByGatewayPaymentID(ctx, gatewayPaymentID); err == nil && existing.Status != entity.PaymentCreated {
		return nil
	}

	info, err := uc.gateway.GetPayment(ctx, gatewayPaymentID)
	if err != nil {
		return errors.Internal("Failed to fetch payment from gateway", err)
	}

	payment, err := uc.paymentRepo.GetByID(ctx, info.ExternalReference)
	if err != nil {
		return errors.NotFound("Payment", err)
	}
	if payment.Status != entity.PaymentCreated {
		return nil
	}

	payment.GatewayPaymentID = gatewayPaymentID
	payment.UpdatedAt = time.Now()

	switch info.Status {
	case "approved":
		payment.Status = entity.PaymentApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		payment.Status = entity.PaymentRejected
	default:
		// Still pending on the gateway side; wait for the next webhook.
		return uc.updatePayment(ctx, payment)
	}

	if err := uc.updatePayment(ctx, payment); err != nil {
		return err
	}

	if payment.Status == entity.PaymentApproved {
		until := time.Now().Add(featureDuration)
		if err := uc.listingRepo.SetFeatured(ctx, payment.ListingID, until); err != nil {
			return errors.Internal("Failed to activate featured placement", err)
		}
		logger.Info("Listing %s featured until %s (payment %s)", payment.ListingID, until.Format(time.RFC3339), payment.ID)

		if uc.notifier != nil {
			if err := uc.notifier.SendToUser(ctx, payment.PayerID,
				"Publicacion destacada",
				"Tu pago fue aprobado. Tu publicacion queda destacada por 30 dias.",
				map[string]string{"type": "featured", "listingId": payment.ListingID},
			); err != nil {
				logger.Warn("Failed to notify payer %s: %v", payment.PayerID, err)
			}
		}
	}

	return nil
}

func (uc *PaymentUseCase) updatePayment(ctx context.Context, payment *entity.Payment) error {
	if err := uc.paymentRepo.Update(ctx, payment); err != nil {
		return errors.Internal("Failed to update payment", err)
	}
	return nil
}

// GetMine returns one of the caller's payments, for the post-redirect
// status page.
func (uc *PaymentUseCase) GetMine(ctx context.Context, payerID, id string) (*entity.Payment, error) {
	payment, err := uc.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NotFound("Payment", err)
	}
	if payment.PayerID != payerID {
		return nil, errors.Forbidden("Not your payment", nil)
	}
	return payment, nil
}
