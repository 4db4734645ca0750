package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"familymarket/internal/domain/entity"
	"familymarket/internal/domain/repository"
	"familymarket/pkg/errors"
)

type firestoreStoreRepository struct {
	client *firestore.Client
}

func NewFirestoreStoreRepository(client *firestore.Client) repository.StoreRepository {
	return &firestoreStoreRepository{
		client: client,
	}
}

func (r *firestoreStoreRepository) Create(ctx context.Context, store *entity.Store) error {
	if store.ID == "" {
		doc := r.client.Collection("tiendas").NewDoc()
		store.ID = doc.ID
	}

	now := time.Now()
	if store.CreatedAt.IsZero() {
		store.CreatedAt = now
	}
	store.UpdatedAt = now

	_, err := r.client.Collection("tiendas").Doc(store.ID).Set(ctx, store)
	if err != nil {
		return errors.Internal("Failed to create store", err)
	}
	return nil
}

func (r *firestoreStoreRepository) GetBySlug(ctx context.Context, slug string) (*entity.Store, error) {
	query := r.client.Collection("tiendas").Where("slug", "==", slug).Limit(1)
	iter := query.Documents(ctx)
	doc, err := iter.Next()
	if err != nil {
		if err == iterator.Done {
			return nil, errors.NotFound("Store", nil)
		}
		return nil, errors.Internal("Failed to query store by slug", err)
	}

	var store entity.Store
	if err := doc.DataTo(&store); err != nil {
		return nil, errors.Internal("Failed to parse store data", err)
	}

	return &store, nil
}

func (r *firestoreStoreRepository) GetByOwnerID(ctx context.Context, ownerID string) (*entity.Store, error) {
	query := r.client.Collection("tiendas").Where("userId", "==", ownerID).Limit(1)
	iter := query.Documents(ctx)
	doc, err := iter.Next()
	if err != nil {
		if err == iterator.Done {
			return nil, errors.NotFound("Store", nil)
		}
		return nil, errors.Internal("Failed to query store by owner", err)
	}

	var store entity.Store
	if err := doc.DataTo(&store); err != nil {
		return nil, errors.Internal("Failed to parse store data", err)
	}

	return &store, nil
}

func (r *firestoreStoreRepository) Update(ctx context.Context, store *entity.Store) error {
	store.UpdatedAt = time.Now()

	_, err := r.client.Collection("tiendas").Doc(store.ID).Set(ctx, store)
	if err != nil {
		return errors.Internal("Failed to update store", err)
	}
	return nil
}

func (r *firestoreStoreRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	query := r.client.Collection("tiendas").Where("slug", "==", slug).Limit(1)
	iter := query.Documents(ctx)
	_, err := iter.Next()
	if err != nil {
		if err == iterator.Done {
			return false, nil
		}
		if status.Code(err) == codes.NotFound {
			return false, nil
		}
		return false, errors.Internal("Failed to check store slug", err)
	}
	return true, nil
}
