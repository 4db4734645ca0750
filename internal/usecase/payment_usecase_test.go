package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"familymarket/internal/domain/entity"
	"familymarket/pkg/errors"
)

func newPaymentUseCaseForTest(gateway *fakeGateway) (*PaymentUseCase, *fakePaymentRepo, *fakeListingRepo, *fakeUserRepo) {
	paymentRepo := newFakePaymentRepo()
	listingRepo := newFakeListingRepo()
	userRepo := newFakeUserRepo()

	uc := NewPaymentUseCase(paymentRepo, listingRepo, userRepo, gateway, nil, PaymentURLs{
		Success: "https://familymarket.example/pagos/exito",
		Failure: "https://familymarket.example/pagos/error",
		Pending: "https://familymarket.example/pagos/pendiente",
		Webhook: "https://api.familymarket.example/v1/pagos/webhook",
	})
	return uc, paymentRepo, listingRepo, userRepo
}

func seedPayer(t *testing.T, userRepo *fakeUserRepo, listingRepo *fakeListingRepo) *entity.Listing {
	t.Helper()
	require.NoError(t, userRepo.Create(context.Background(), &entity.User{
		ID:    "owner-1",
		Email: "dueno@example.com",
	}))
	listing := &entity.Listing{
		Type:    entity.ListingJobOffer,
		OwnerID: "owner-1",
		Title:   "Cajero para panaderia",
		Status:  entity.ListingActive,
	}
	require.NoError(t, listingRepo.Create(context.Background(), listing))
	return listing
}

func TestCreateFeaturePreference(t *testing.T) {
	gateway := newFakeGateway("approved")
	uc, paymentRepo, listingRepo, userRepo := newPaymentUseCaseForTest(gateway)
	ctx := context.Background()
	listing := seedPayer(t, userRepo, listingRepo)

	payment, initPoint, err := uc.CreateFeaturePreference(ctx, "owner-1", listing.ID, 500)
	require.NoError(t, err)

	assert.NotEmpty(t, initPoint)
	assert.Equal(t, entity.PaymentCreated, payment.Status)
	assert.Equal(t, "featured", payment.Type)
	assert.NotEmpty(t, payment.PreferenceID)

	// The preference carries our payment id as external reference, so the
	// webhook can find its way back.
	assert.Equal(t, payment.ID, gateway.lastRequest.OrderID)
	assert.Equal(t, "dueno@example.com", gateway.lastRequest.PayerEmail)
	assert.Equal(t, 500.0, gateway.lastRequest.Amount)

	stored, err := paymentRepo.GetByID(ctx, payment.ID)
	require.NoError(t, err)
	assert.Equal(t, payment.PreferenceID, stored.PreferenceID)
}

func TestCreateFeaturePreferenceRejectsLowAmount(t *testing.T) {
	gateway := newFakeGateway("approved")
	uc, _, listingRepo, userRepo := newPaymentUseCaseForTest(gateway)
	ctx := context.Background()
	listing := seedPayer(t, userRepo, listingRepo)

	_, _, err := uc.CreateFeaturePreference(ctx, "owner-1", listing.ID, 50)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
	assert.Zero(t, gateway.preferences)
}

func TestCreateFeaturePreferenceRejectsForeignListing(t *testing.T) {
	gateway := newFakeGateway("approved")
	uc, _, listingRepo, userRepo := newPaymentUseCaseForTest(gateway)
	ctx := context.Background()
	listing := seedPayer(t, userRepo, listingRepo)

	require.NoError(t, userRepo.Create(ctx, &entity.User{ID: "other", Email: "otro@example.com"}))

	_, _, err := uc.CreateFeaturePreference(ctx, "other", listing.ID, 500)
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestWebhookApprovalActivatesFeatured(t *testing.T) {
	gateway := newFakeGateway("approved")
	uc, paymentRepo, listingRepo, userRepo := newPaymentUseCaseForTest(gateway)
	ctx := context.Background()
	listing := seedPayer(t, userRepo, listingRepo)

	payment, _, err := uc.CreateFeaturePreference(ctx, "owner-1", listing.ID, 500)
	require.NoError(t, err)

	gateway.externalRefs["mp-123"] = payment.ID
	require.NoError(t, uc.HandleWebhook(ctx, "mp-123"))

	settled, err := paymentRepo.GetByID(ctx, payment.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentApproved, settled.Status)
	assert.Equal(t, "mp-123", settled.GatewayPaymentID)

	featured, err := listingRepo.GetByID(ctx, listing.ID)
	require.NoError(t, err)
	assert.True(t, featured.Featured)
	require.NotNil(t, featured.FeaturedUntil)
	assert.WithinDuration(t, time.Now().Add(featureDuration), *featured.FeaturedUntil, time.Minute)
}

func TestWebhookIsIdempotent(t *testing.T) {
	gateway := newFakeGateway("approved")
	uc, _, listingRepo, userRepo := newPaymentUseCaseForTest(gateway)
	ctx := context.Background()
	listing := seedPayer(t, userRepo, listingRepo)

	payment, _, err := uc.CreateFeaturePreference(ctx, "owner-1", listing.ID, 500)
	require.NoError(t, err)
	gateway.externalRefs["mp-123"] = payment.ID

	require.NoError(t, uc.HandleWebhook(ctx, "mp-123"))
	require.Equal(t, 1, gateway.getCalls)

	// The retry is acknowledged without another gateway lookup.
	require.NoError(t, uc.HandleWebhook(ctx, "mp-123"))
	assert.Equal(t, 1, gateway.getCalls)
}

func TestWebhookRejectionLeavesListingUnfeatured(t *testing.T) {
	gateway := newFakeGateway("rejected")
	uc, paymentRepo, listingRepo, userRepo := newPaymentUseCaseForTest(gateway)
	ctx := context.Background()
	listing := seedPayer(t, userRepo, listingRepo)

	payment, _, err := uc.CreateFeaturePreference(ctx, "owner-1", listing.ID, 500)
	require.NoError(t, err)
	gateway.externalRefs["mp-456"] = payment.ID

	require.NoError(t, uc.HandleWebhook(ctx, "mp-456"))

	settled, err := paymentRepo.GetByID(ctx, payment.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentRejected, settled.Status)

	unchanged, err := listingRepo.GetByID(ctx, listing.ID)
	require.NoError(t, err)
	assert.False(t, unchanged.Featured)
}

func TestWebhookPendingKeepsPaymentOpen(t *testing.T) {
	gateway := newFakeGateway("in_process")
	uc, paymentRepo, listingRepo, userRepo := newPaymentUseCaseForTest(gateway)
	ctx := context.Background()
	listing := seedPayer(t, userRepo, listingRepo)

	payment, _, err := uc.CreateFeaturePreference(ctx, "owner-1", listing.ID, 500)
	require.NoError(t, err)
	gateway.externalRefs["mp-789"] = payment.ID

	require.NoError(t, uc.HandleWebhook(ctx, "mp-789"))

	open, err := paymentRepo.GetByID(ctx, payment.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentCreated, open.Status)

	// A later webhook for the same payment still settles it.
	gateway.status = "approved"
	require.NoError(t, uc.HandleWebhook(ctx, "mp-789"))

	settled, err := paymentRepo.GetByID(ctx, payment.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentApproved, settled.Status)
}

func TestGetMinePayment(t *testing.T) {
	gateway := newFakeGateway("approved")
	uc, _, listingRepo, userRepo := newPaymentUseCaseForTest(gateway)
	ctx := context.Background()
	listing := seedPayer(t, userRepo, listingRepo)

	payment, _, err := uc.CreateFeaturePreference(ctx, "owner-1", listing.ID, 500)
	require.NoError(t, err)

	got, err := uc.GetMine(ctx, "owner-1", payment.ID)
	require.NoError(t, err)
	assert.Equal(t, payment.ID, got.ID)

	_, err = uc.GetMine(ctx, "other", payment.ID)
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}
