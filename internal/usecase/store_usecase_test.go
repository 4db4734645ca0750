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

type storeFixture struct {
	uc          *StoreUseCase
	storeRepo   *fakeStoreRepo
	userRepo    *fakeUserRepo
	productRepo *fakeProductRepo
	serviceRepo *fakeServiceRepo
	listingRepo *fakeListingRepo
}

func newStoreFixture(t *testing.T) *storeFixture {
	t.Helper()
	f := &storeFixture{
		storeRepo:   newFakeStoreRepo(),
		userRepo:    newFakeUserRepo(),
		productRepo: newFakeProductRepo(),
		serviceRepo: newFakeServiceRepo(),
		listingRepo: newFakeListingRepo(),
	}
	f.uc = NewStoreUseCase(f.storeRepo, f.userRepo, f.productRepo, f.serviceRepo, f.listingRepo, nil)
	return f
}

func (f *storeFixture) seedApprovedSeller(t *testing.T, id string) {
	t.Helper()
	now := time.Now()
	require.NoError(t, f.userRepo.Create(context.Background(), &entity.User{
		ID:            id,
		Email:         id + "@example.com",
		AccountStatus: entity.AccountApproved,
		Subscription: &entity.Subscription{
			Plan:        "basic",
			ActivatedAt: now,
			ExpiresAt:   now.Add(30 * 24 * time.Hour),
			Active:      true,
		},
	}))
}

func TestCreateStoreRequiresApprovalAndSubscription(t *testing.T) {
	f := newStoreFixture(t)
	ctx := context.Background()

	require.NoError(t, f.userRepo.Create(ctx, &entity.User{
		ID:            "pending",
		AccountStatus: entity.AccountPending,
	}))
	_, err := f.uc.Create(ctx, "pending", CreateStoreInput{Name: "Kiosco Luna"})
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	require.NoError(t, f.userRepo.Create(ctx, &entity.User{
		ID:            "lapsed",
		AccountStatus: entity.AccountApproved,
		Subscription:  &entity.Subscription{Plan: "basic", ExpiresAt: time.Now().Add(-time.Hour), Active: true},
	}))
	_, err = f.uc.Create(ctx, "lapsed", CreateStoreInput{Name: "Kiosco Luna"})
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestCreateStoreLinksSlugToOwner(t *testing.T) {
	f := newStoreFixture(t)
	ctx := context.Background()
	f.seedApprovedSeller(t, "seller")

	store, err := f.uc.Create(ctx, "seller", CreateStoreInput{
		Name:        "Panadería San José",
		Description: "Pan artesanal",
	})
	require.NoError(t, err)
	assert.Equal(t, "panaderia-san-jose", store.Slug)
	assert.True(t, store.Active)

	owner, err := f.userRepo.GetByID(ctx, "seller")
	require.NoError(t, err)
	assert.Equal(t, "panaderia-san-jose", owner.StoreSlug)

	// One store per seller.
	_, err = f.uc.Create(ctx, "seller", CreateStoreInput{Name: "Otra Tienda"})
	assert.True(t, errors.Is(err, "CONFLICT"))
}

func TestCreateStoreSuffixesTakenSlugs(t *testing.T) {
	f := newStoreFixture(t)
	ctx := context.Background()

	for i, id := range []string{"seller-a", "seller-b", "seller-c"} {
		f.seedApprovedSeller(t, id)
		store, err := f.uc.Create(ctx, id, CreateStoreInput{Name: "Kiosco Luna"})
		require.NoError(t, err)
		switch i {
		case 0:
			assert.Equal(t, "kiosco-luna", store.Slug)
		case 1:
			assert.Equal(t, "kiosco-luna-2", store.Slug)
		case 2:
			assert.Equal(t, "kiosco-luna-3", store.Slug)
		}
	}
}

func TestCreateStoreRejectsEmptySlug(t *testing.T) {
	f := newStoreFixture(t)
	f.seedApprovedSeller(t, "seller")

	_, err := f.uc.Create(context.Background(), "seller", CreateStoreInput{Name: "!!!"})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestUpdateStoreKeepsSlugOnRename(t *testing.T) {
	f := newStoreFixture(t)
	ctx := context.Background()
	f.seedApprovedSeller(t, "seller")

	store, err := f.uc.Create(ctx, "seller", CreateStoreInput{Name: "Kiosco Luna"})
	require.NoError(t, err)

	newName := "Kiosco Sol"
	_, err = f.uc.Update(ctx, "intruder", store.Slug, UpdateStoreInput{Name: &newName})
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	updated, err := f.uc.Update(ctx, "seller", store.Slug, UpdateStoreInput{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Kiosco Sol", updated.Name)
	assert.Equal(t, "kiosco-luna", updated.Slug)
}

func TestSearchSpansItemTypes(t *testing.T) {
	f := newStoreFixture(t)
	ctx := context.Background()

	require.NoError(t, f.productRepo.Create(ctx, &entity.Product{
		StoreSlug: "kiosco-luna",
		OwnerID:   "seller",
		Title:     "Pan integral",
	}))
	require.NoError(t, f.serviceRepo.Create(ctx, &entity.Service{
		StoreSlug: "kiosco-luna",
		OwnerID:   "seller",
		Title:     "Reparto de pan",
	}))
	require.NoError(t, f.listingRepo.Create(ctx, &entity.Listing{
		Type:    entity.ListingJobOffer,
		OwnerID: "seller",
		Title:   "Panadero con experiencia",
		Status:  entity.ListingActive,
		JobOffer: &entity.JobOfferDetails{
			Company: "Kiosco Luna",
		},
	}))

	_, err := f.uc.Search(ctx, "", "")
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	result, err := f.uc.Search(ctx, "pan", "")
	require.NoError(t, err)
	assert.Len(t, result.Products, 1)
	assert.Len(t, result.Services, 1)
	assert.Len(t, result.Listings, 1)
}
