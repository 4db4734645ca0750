package usecase

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"familymarket/internal/domain/entity"
	"familymarket/internal/domain/repository"
	"familymarket/internal/infrastructure/cache"
	"familymarket/pkg/errors"
	"familymarket/pkg/logger"
	"familymarket/pkg/utils"
)

const searchResultLimit = 20

type StoreUseCase struct {
	storeRepo   repository.StoreRepository
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	serviceRepo repository.ServiceRepository
	listingRepo repository.ListingRepository
	searchCache *cache.SearchCache
}

func NewStoreUseCase(
	storeRepo repository.StoreRepository,
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
	serviceRepo repository.ServiceRepository,
	listingRepo repository.ListingRepository,
	searchCache *cache.SearchCache,
) *StoreUseCase {
	return &StoreUseCase{
		storeRepo:   storeRepo,
		userRepo:    userRepo,
		productRepo: productRepo,
		serviceRepo: serviceRepo,
		listingRepo: listingRepo,
		searchCache: searchCache,
	}
}

type CreateStoreInput struct {
	Name        string
	Description string
	Phone       string
	WhatsApp    string
	Address     string
	Theme       entity.StoreTheme
}

func (uc *StoreUseCase) Create(ctx context.Context, ownerID string, input CreateStoreInput) (*entity.Store, error) {
	owner, err := uc.userRepo.GetByID(ctx, ownerID)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}
	if owner.AccountStatus != entity.AccountApproved {
		return nil, errors.Forbidden("Account must be approved to open a store", nil)
	}
	if !owner.HasActiveSubscription(time.Now()) {
		return nil, errors.Forbidden("An active subscription is required to open a store", nil)
	}

	if existing, err := uc.storeRepo.GetByOwnerID(ctx, ownerID); err == nil && existing != nil {
		return nil, errors.Conflict("User already owns a store")
	}

	slug, err := uc.uniqueSlug(ctx, input.Name)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	store := &entity.Store{
		Slug:        slug,
		Name:        input.Name,
		Description: input.Description,
		OwnerID:     ownerID,
		Phone:       input.Phone,
		WhatsApp:    input.WhatsApp,
		Address:     input.Address,
		Theme:       input.Theme,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.storeRepo.Create(ctx, store); err != nil {
		return nil, errors.Internal("Failed to create store", err)
	}

	owner.StoreSlug = slug
	owner.UpdatedAt = now
	if err := uc.userRepo.Update(ctx, owner); err != nil {
		logger.Error("Failed to link store slug to user %s: %v", ownerID, err)
	}

	return store, nil
}

// uniqueSlug derives a slug from the name and appends a numeric suffix on
// collision ("panaderia-san-jose", "panaderia-san-jose-2", ...).
func (uc *StoreUseCase) uniqueSlug(ctx context.Context, name string) (string, error) {
	base := utils.GenerateStoreSlug(name)
	if base == "" {
		return "", errors.BadRequest("Store name yields an empty slug", nil)
	}

	slug := base
	for i := 2; ; i++ {
		taken, err := uc.storeRepo.SlugExists(ctx, slug)
		if err != nil {
			return "", errors.Internal("Failed to check slug availability", err)
		}
		if !taken {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}

func (uc *StoreUseCase) GetBySlug(ctx context.Context, slug string) (*entity.Store, error) {
	store, err := uc.storeRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, errors.NotFound("Store", err)
	}
	return store, nil
}

func (uc *StoreUseCase) GetMine(ctx context.Context, ownerID string) (*entity.Store, error) {
	store, err := uc.storeRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, errors.NotFound("Store", err)
	}
	return store, nil
}

type UpdateStoreInput struct {
	Name        *string
	Description *string
	Phone       *string
	WhatsApp    *string
	Address     *string
	LogoURL     *string
	BannerURL   *string
	Theme       *entity.StoreTheme
	Active      *bool
}

// Update edits store fields in place. The slug is permanent; renaming the
// store never rewrites it, so external links keep working.
func (uc *StoreUseCase) Update(ctx context.Context, ownerID, slug string, input UpdateStoreInput) (*entity.Store, error) {
	store, err := uc.storeRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, errors.NotFound("Store", err)
	}
	if store.OwnerID != ownerID {
		return nil, errors.Forbidden("You don't own this store", nil)
	}

	if input.Name != nil {
		store.Name = *input.Name
	}
	if input.Description != nil {
		store.Description = *input.Description
	}
	if input.Phone != nil {
		store.Phone = *input.Phone
	}
	if input.WhatsApp != nil {
		store.WhatsApp = *input.WhatsApp
	}
	if input.Address != nil {
		store.Address = *input.Address
	}
	if input.LogoURL != nil {
		store.LogoURL = *input.LogoURL
	}
	if input.BannerURL != nil {
		store.BannerURL = *input.BannerURL
	}
	if input.Theme != nil {
		store.Theme = *input.Theme
	}
	if input.Active != nil {
		store.Active = *input.Active
	}
	store.UpdatedAt = time.Now()

	if err := uc.storeRepo.Update(ctx, store); err != nil {
		return nil, errors.Internal("Failed to update store", err)
	}

	return store, nil
}

// SearchResult groups cross-type matches for one search term.
type SearchResult struct {
	Products []*entity.Product `json:"productos"`
	Services []*entity.Service `json:"servicios"`
	Listings []*entity.Listing `json:"empleos"`
}

// Search runs a substring search over the three item types in parallel,
// optionally scoped to one store. Results are cached for a short TTL.
func (uc *StoreUseCase) Search(ctx context.Context, term, storeSlug string) (*SearchResult, error) {
	if term == "" {
		return nil, errors.BadRequest("Search term is required", nil)
	}

	var cached SearchResult
	if uc.searchCache != nil && uc.searchCache.Get(ctx, term, storeSlug, &cached) {
		return &cached, nil
	}

	result := &SearchResult{
		Products: []*entity.Product{},
		Services: []*entity.Service{},
		Listings: []*entity.Listing{},
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		products, err := uc.productRepo.Search(gctx, term, storeSlug, searchResultLimit)
		if err != nil {
			return err
		}
		result.Products = products
		return nil
	})
	g.Go(func() error {
		services, err := uc.serviceRepo.Search(gctx, term, storeSlug, searchResultLimit)
		if err != nil {
			return err
		}
		result.Services = services
		return nil
	})
	g.Go(func() error {
		listings, _, err := uc.listingRepo.List(gctx, repository.ListingFilter{
			Status:    entity.ListingActive,
			StoreSlug: storeSlug,
			Term:      term,
		}, "", searchResultLimit, 0)
		if err != nil {
			return err
		}
		result.Listings = listings
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, errors.Internal("Search failed", err)
	}

	if uc.searchCache != nil {
		uc.searchCache.Set(ctx, term, storeSlug, result)
	}
	return result, nil
}
