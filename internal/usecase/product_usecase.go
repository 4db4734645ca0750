package usecase

import (
	"context"
	"time"

	"familymarket/internal/domain/entity"
	"familymarket/internal/domain/repository"
	"familymarket/pkg/errors"
	"familymarket/pkg/logger"
)

type ProductUseCase struct {
	productRepo repository.ProductRepository
	storeRepo   repository.StoreRepository
}

func NewProductUseCase(productRepo repository.ProductRepository, storeRepo repository.StoreRepository) *ProductUseCase {
	return &ProductUseCase{
		productRepo: productRepo,
		storeRepo:   storeRepo,
	}
}

type CreateProductInput struct {
	Title       string
	Description string
	Price       float64
	Category    string
	Images      []string
}

func (uc *ProductUseCase) Create(ctx context.Context, ownerID string, input CreateProductInput) (*entity.Product, error) {
	store, err := uc.storeRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, errors.Forbidden("A store is required to list products", err)
	}

	if input.Price < 0 {
		return nil, errors.BadRequest("Price cannot be negative", nil)
	}

	now := time.Now()
	product := &entity.Product{
		StoreSlug:   store.Slug,
		OwnerID:     ownerID,
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		Images:      input.Images,
		Status:      entity.ListingActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Internal("Failed to create product", err)
	}
	return product, nil
}

type UpdateProductInput struct {
	Title       *string
	Description *string
	Price       *float64
	Category    *string
	Images      []string
	Status      *string
}

func (uc *ProductUseCase) Update(ctx context.Context, ownerID, id string, input UpdateProductInput) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NotFound("Product", err)
	}
	if product.OwnerID != ownerID {
		return nil, errors.Forbidden("You don't own this product", nil)
	}

	if input.Title != nil {
		product.Title = *input.Title
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, errors.BadRequest("Price cannot be negative", nil)
		}
		product.Price = *input.Price
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.Images != nil {
		product.Images = input.Images
	}
	if input.Status != nil {
		switch entity.ListingStatus(*input.Status) {
		case entity.ListingActive, entity.ListingPaused:
			product.Status = entity.ListingStatus(*input.Status)
		default:
			return nil, errors.BadRequest("Invalid estado", nil)
		}
	}
	product.UpdatedAt = time.Now()

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, errors.Internal("Failed to update product", err)
	}
	return product, nil
}

func (uc *ProductUseCase) Get(ctx context.Context, id string, countView bool) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NotFound("Product", err)
	}

	if countView {
		go func() {
			viewCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := uc.productRepo.IncrementViews(viewCtx, id); err != nil {
				logger.Error("Failed to increment views for product %s: %v", id, err)
			}
		}()
	}

	return product, nil
}

func (uc *ProductUseCase) ListByStore(ctx context.Context, storeSlug string, limit, offset int) ([]*entity.Product, int64, error) {
	products, total, err := uc.productRepo.ListByStore(ctx, storeSlug, limit, offset)
	if err != nil {
		return nil, 0, errors.Internal("Failed to list products", err)
	}
	return products, total, nil
}

func (uc *ProductUseCase) Delete(ctx context.Context, ownerID string, isAdmin bool, id string) error {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return errors.NotFound("Product", err)
	}
	if product.OwnerID != ownerID && !isAdmin {
		return errors.Forbidden("You don't own this product", nil)
	}

	if err := uc.productRepo.Delete(ctx, id); err != nil {
		return errors.Internal("Failed to delete product", err)
	}
	return nil
}
