package usecase

import (
	"context"
	"time"

	"familymarket/internal/domain/entity"
	"familymarket/internal/domain/repository"
	"familymarket/pkg/errors"
	"familymarket/pkg/logger"
)

type ServiceUseCase struct {
	serviceRepo repository.ServiceRepository
	storeRepo   repository.StoreRepository
}

func NewServiceUseCase(serviceRepo repository.ServiceRepository, storeRepo repository.StoreRepository) *ServiceUseCase {
	return &ServiceUseCase{
		serviceRepo: serviceRepo,
		storeRepo:   storeRepo,
	}
}

type CreateServiceInput struct {
	Title       string
	Description string
	Rate        entity.RateStructure
	Category    string
	Images      []string
}

func (uc *ServiceUseCase) Create(ctx context.Context, ownerID string, input CreateServiceInput) (*entity.Service, error) {
	store, err := uc.storeRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, errors.Forbidden("A store is required to list services", err)
	}

	now := time.Now()
	service := &entity.Service{
		StoreSlug:   store.Slug,
		OwnerID:     ownerID,
		Title:       input.Title,
		Description: input.Description,
		Rate:        input.Rate,
		Category:    input.Category,
		Images:      input.Images,
		Status:      entity.ListingActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.serviceRepo.Create(ctx, service); err != nil {
		return nil, errors.Internal("Failed to create service", err)
	}
	return service, nil
}

type UpdateServiceInput struct {
	Title       *string
	Description *string
	Rate        *entity.RateStructure
	Category    *string
	Images      []string
	Status      *string
}

func (uc *ServiceUseCase) Update(ctx context.Context, ownerID, id string, input UpdateServiceInput) (*entity.Service, error) {
	service, err := uc.serviceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NotFound("Service", err)
	}
	if service.OwnerID != ownerID {
		return nil, errors.Forbidden("You don't own this service", nil)
	}

	if input.Title != nil {
		service.Title = *input.Title
	}
	if input.Description != nil {
		service.Description = *input.Description
	}
	if input.Rate != nil {
		service.Rate = *input.Rate
	}
	if input.Category != nil {
		service.Category = *input.Category
	}
	if input.Images != nil {
		service.Images = input.Images
	}
	if input.Status != nil {
		switch entity.ListingStatus(*input.Status) {
		case entity.ListingActive, entity.ListingPaused:
			service.Status = entity.ListingStatus(*input.Status)
		default:
			return nil, errors.BadRequest("Invalid estado", nil)
		}
	}
	service.UpdatedAt = time.Now()

	if err := uc.serviceRepo.Update(ctx, service); err != nil {
		return nil, errors.Internal("Failed to update service", err)
	}
	return service, nil
}

func (uc *ServiceUseCase) Get(ctx context.Context, id string, countView bool) (*entity.Service, error) {
	service, err := uc.serviceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NotFound("Service", err)
	}

	if countView {
		go func() {
			viewCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := uc.serviceRepo.IncrementViews(viewCtx, id); err != nil {
				logger.Error("Failed to increment views for service %s: %v", id, err)
			}
		}()
	}

	return service, nil
}

func (uc *ServiceUseCase) ListByStore(ctx context.Context, storeSlug string, limit, offset int) ([]*entity.Service, int64, error) {
	services, total, err := uc.serviceRepo.ListByStore(ctx, storeSlug, limit, offset)
	if err != nil {
		return nil, 0, errors.Internal("Failed to list services", err)
	}
	return services, total, nil
}

func (uc *ServiceUseCase) Delete(ctx context.Context, ownerID string, isAdmin bool, id string) error {
	service, err := uc.serviceRepo.GetByID(ctx, id)
	if err != nil {
		return errors.NotFound("Service", err)
	}
	if service.OwnerID != ownerID && !isAdmin {
		return errors.Forbidden("You don't own this service", nil)
	}

	if err := uc.serviceRepo.Delete(ctx, id); err != nil {
		return errors.Internal("Failed to delete service", err)
	}
	return nil
}
