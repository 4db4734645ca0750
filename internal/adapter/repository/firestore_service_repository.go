package repository

import (
	"context"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"familymarket/internal/domain/entity"
	"familymarket/internal/domain/repository"
	"familymarket/pkg/errors"
)

type firestoreServiceRepository struct {
	client *firestore.Client
}

func NewFirestoreServiceRepository(client *firestore.Client) repository.ServiceRepository {
	return &firestoreServiceRepository{
		client: client,
	}
}

func (r *firestoreServiceRepository) Create(ctx context.Context, service *entity.Service) error {
	if service.ID == "" {
		doc := r.client.Collection("servicios").NewDoc()
		service.ID = doc.ID
	}

	now := time.Now()
	if service.CreatedAt.IsZero() {
		service.CreatedAt = now
	}
	service.UpdatedAt = now

	_, err := r.client.Collection("servicios").Doc(service.ID).Set(ctx, service)
	if err != nil {
		return errors.Internal("Failed to create service", err)
	}
	return nil
}

func (r *firestoreServiceRepository) GetByID(ctx context.Context, id string) (*entity.Service, error) {
	doc, err := r.client.Collection("servicios").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Service", err)
		}
		return nil, errors.Internal("Failed to get service", err)
	}

	var service entity.Service
	if err := doc.DataTo(&service); err != nil {
		return nil, errors.Internal("Failed to parse service data", err)
	}

	return &service, nil
}

func (r *firestoreServiceRepository) Update(ctx context.Context, service *entity.Service) error {
	service.UpdatedAt = time.Now()

	_, err := r.client.Collection("servicios").Doc(service.ID).Set(ctx, service)
	if err != nil {
		return errors.Internal("Failed to update service", err)
	}
	return nil
}

func (r *firestoreServiceRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("servicios").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete service", err)
	}
	return nil
}

func (r *firestoreServiceRepository) IncrementViews(ctx context.Context, id string) error {
	_, err := r.client.Collection("servicios").Doc(id).Update(ctx, []firestore.Update{
		{Path: "vistas", Value: firestore.Increment(1)},
	})
	if err != nil {
		return errors.Internal("Failed to increment service views", err)
	}
	return nil
}

func (r *firestoreServiceRepository) Exists(ctx context.Context, id string) (bool, error) {
	_, err := r.client.Collection("servicios").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return false, nil
		}
		return false, errors.Internal("Failed to check service existence", err)
	}
	return true, nil
}

func (r *firestoreServiceRepository) ListByStore(ctx context.Context, storeSlug string, limit, offset int) ([]*entity.Service, int64, error) {
	query := r.client.Collection("servicios").Where("tiendaSlug", "==", storeSlug)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count services", err)
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
	var services []*entity.Service

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate services", err)
		}

		var service entity.Service
		if err := doc.DataTo(&service); err != nil {
			return nil, 0, errors.Internal("Failed to parse service data", err)
		}
		services = append(services, &service)
	}

	return services, total, nil
}

func (r *firestoreServiceRepository) Search(ctx context.Context, term, storeSlug string, limit int) ([]*entity.Service, error) {
	term = strings.ToLower(term)

	query := r.client.Collection("servicios").Query.Where("estado", "==", string(entity.ListingActive))
	if storeSlug != "" {
		query = query.Where("tiendaSlug", "==", storeSlug)
	}

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Internal("Failed to search services", err)
	}

	var matched []*entity.Service
	for _, doc := range docs {
		var service entity.Service
		if err := doc.DataTo(&service); err != nil {
			continue
		}

		if strings.Contains(strings.ToLower(service.Title), term) ||
			strings.Contains(strings.ToLower(service.Description), term) {
			matched = append(matched, &service)
			if limit > 0 && len(matched) >= limit {
				break
			}
		}
	}

	return matched, nil
}
