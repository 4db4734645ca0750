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

func jobOfferInput() CreateListingInput {
	return CreateListingInput{
		Type:     string(entity.ListingJobOffer),
		Title:    "Cajero para panaderia",
		Category: "comercio",
		Contact:  entity.ContactInfo{WhatsApp: "+5491155551234"},
		JobOffer: &entity.JobOfferDetails{
			Company:        "Panaderia San Jose",
			EmploymentType: "part-time",
		},
	}
}

func newListingUseCaseForTest() (*ListingUseCase, *fakeListingRepo, *fakeStoreRepo) {
	listingRepo := newFakeListingRepo()
	storeRepo := newFakeStoreRepo()
	return NewListingUseCase(listingRepo, storeRepo, newFakeUserRepo()), listingRepo, storeRepo
}

func TestCreateListingValidatesVariant(t *testing.T) {
	uc, _, _ := newListingUseCaseForTest()
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*CreateListingInput)
	}{
		{
			name:   "unknown type",
			mutate: func(in *CreateListingInput) { in.Type = "VENTA_GARAGE" },
		},
		{
			name:   "missing payload for declared type",
			mutate: func(in *CreateListingInput) { in.JobOffer = nil },
		},
		{
			name: "payload from another variant",
			mutate: func(in *CreateListingInput) {
				in.JobSeeker = &entity.JobSeekerDetails{FullName: "Maria Gomez"}
			},
		},
		{
			name:   "no contact channel",
			mutate: func(in *CreateListingInput) { in.Contact = entity.ContactInfo{} },
		},
		{
			name: "inverted salary range",
			mutate: func(in *CreateListingInput) {
				in.JobOffer.Salary = entity.SalaryRange{Min: 900000, Max: 500000}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := jobOfferInput()
			tt.mutate(&input)

			_, err := uc.Create(ctx, "owner-1", input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, "BAD_REQUEST"))
		})
	}
}

func TestCreateListingStampsStoreSnapshot(t *testing.T) {
	uc, _, storeRepo := newListingUseCaseForTest()
	ctx := context.Background()

	require.NoError(t, storeRepo.Create(ctx, &entity.Store{
		Slug:    "panaderia-san-jose",
		Name:    "Panaderia San Jose",
		OwnerID: "owner-1",
		Phone:   "+5491144440000",
	}))

	listing, err := uc.Create(ctx, "owner-1", jobOfferInput())
	require.NoError(t, err)

	require.NotNil(t, listing.StoreInfo)
	assert.Equal(t, "panaderia-san-jose", listing.StoreInfo.Slug)
	assert.Equal(t, "Panaderia San Jose", listing.StoreInfo.Name)
	assert.Equal(t, entity.ListingActive, listing.Status)
	assert.NotEmpty(t, listing.ID)

	// An owner without a store publishes without a snapshot.
	other, err := uc.Create(ctx, "owner-2", jobOfferInput())
	require.NoError(t, err)
	assert.Nil(t, other.StoreInfo)
}

func TestUpdateListingKeepsTypeAndFeatured(t *testing.T) {
	uc, listingRepo, _ := newListingUseCaseForTest()
	ctx := context.Background()

	listing, err := uc.Create(ctx, "owner-1", jobOfferInput())
	require.NoError(t, err)

	until := time.Now().Add(24 * time.Hour)
	require.NoError(t, listingRepo.SetFeatured(ctx, listing.ID, until))

	newTitle := "Cajero con experiencia"
	updated, err := uc.Update(ctx, "owner-1", listing.ID, UpdateListingInput{Title: &newTitle})
	require.NoError(t, err)

	assert.Equal(t, "Cajero con experiencia", updated.Title)
	assert.Equal(t, entity.ListingJobOffer, updated.Type)
	assert.True(t, updated.Featured)
	require.NotNil(t, updated.FeaturedUntil)
	assert.WithinDuration(t, until, *updated.FeaturedUntil, time.Second)

	_, err = uc.Update(ctx, "intruder", listing.ID, UpdateListingInput{Title: &newTitle})
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestPauseAndResumeListing(t *testing.T) {
	uc, _, _ := newListingUseCaseForTest()
	ctx := context.Background()

	listing, err := uc.Create(ctx, "owner-1", jobOfferInput())
	require.NoError(t, err)

	_, err = uc.Pause(ctx, "intruder", listing.ID)
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	paused, err := uc.Pause(ctx, "owner-1", listing.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ListingPaused, paused.Status)

	resumed, err := uc.Resume(ctx, "owner-1", listing.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ListingActive, resumed.Status)
}

func TestPausedListingLeavesPublicFeed(t *testing.T) {
	uc, _, _ := newListingUseCaseForTest()
	ctx := context.Background()

	listing, err := uc.Create(ctx, "owner-1", jobOfferInput())
	require.NoError(t, err)
	_, err = uc.Pause(ctx, "owner-1", listing.ID)
	require.NoError(t, err)

	public, total, err := uc.List(ctx, ListListingsInput{})
	require.NoError(t, err)
	assert.Empty(t, public)
	assert.Zero(t, total)

	// The owner still sees it.
	mine, _, err := uc.ListMine(ctx, "owner-1", "", 0, 0)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, entity.ListingPaused, mine[0].Status)
}

func TestListMineFiltersByEstado(t *testing.T) {
	uc, _, _ := newListingUseCaseForTest()
	ctx := context.Background()

	active, err := uc.Create(ctx, "owner-1", jobOfferInput())
	require.NoError(t, err)
	paused, err := uc.Create(ctx, "owner-1", jobOfferInput())
	require.NoError(t, err)
	_, err = uc.Pause(ctx, "owner-1", paused.ID)
	require.NoError(t, err)

	all, total, err := uc.ListMine(ctx, "owner-1", "", 0, 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.EqualValues(t, 2, total)

	onlyPaused, _, err := uc.ListMine(ctx, "owner-1", "pausado", 0, 0)
	require.NoError(t, err)
	require.Len(t, onlyPaused, 1)
	assert.Equal(t, paused.ID, onlyPaused[0].ID)

	onlyActive, _, err := uc.ListMine(ctx, "owner-1", "activo", 0, 0)
	require.NoError(t, err)
	require.Len(t, onlyActive, 1)
	assert.Equal(t, active.ID, onlyActive[0].ID)

	_, _, err = uc.ListMine(ctx, "owner-1", "archivado", 0, 0)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestListListingsRejectsUnknownTypeFilter(t *testing.T) {
	uc, _, _ := newListingUseCaseForTest()

	_, _, err := uc.List(context.Background(), ListListingsInput{Type: "ALQUILERES"})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestDuplicateListingResetsLifecycle(t *testing.T) {
	uc, listingRepo, _ := newListingUseCaseForTest()
	ctx := context.Background()

	listing, err := uc.Create(ctx, "owner-1", jobOfferInput())
	require.NoError(t, err)

	require.NoError(t, listingRepo.SetFeatured(ctx, listing.ID, time.Now().Add(24*time.Hour)))
	require.NoError(t, listingRepo.IncrementViews(ctx, listing.ID))

	_, err = uc.Duplicate(ctx, "intruder", listing.ID)
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	clone, err := uc.Duplicate(ctx, "owner-1", listing.ID)
	require.NoError(t, err)

	assert.NotEqual(t, listing.ID, clone.ID)
	assert.Equal(t, listing.Title, clone.Title)
	assert.Equal(t, listing.Type, clone.Type)
	assert.Zero(t, clone.Views)
	assert.False(t, clone.Featured)
	assert.Nil(t, clone.FeaturedUntil)
}

func TestDeleteListingPermissions(t *testing.T) {
	uc, listingRepo, _ := newListingUseCaseForTest()
	ctx := context.Background()

	listing, err := uc.Create(ctx, "owner-1", jobOfferInput())
	require.NoError(t, err)

	err = uc.Delete(ctx, "intruder", false, listing.ID)
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	// A moderator removes someone else's posting.
	require.NoError(t, uc.Delete(ctx, "admin-1", true, listing.ID))
	_, err = listingRepo.GetByID(ctx, listing.ID)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestSweepExpiredFeatured(t *testing.T) {
	uc, listingRepo, _ := newListingUseCaseForTest()
	ctx := context.Background()

	expired, err := uc.Create(ctx, "owner-1", jobOfferInput())
	require.NoError(t, err)
	current, err := uc.Create(ctx, "owner-1", jobOfferInput())
	require.NoError(t, err)

	require.NoError(t, listingRepo.SetFeatured(ctx, expired.ID, time.Now().Add(-time.Hour)))
	require.NoError(t, listingRepo.SetFeatured(ctx, current.ID, time.Now().Add(time.Hour)))

	require.NoError(t, uc.SweepExpiredFeatured(ctx))

	swept, err := listingRepo.GetByID(ctx, expired.ID)
	require.NoError(t, err)
	assert.False(t, swept.Featured)

	kept, err := listingRepo.GetByID(ctx, current.ID)
	require.NoError(t, err)
	assert.True(t, kept.Featured)
}
