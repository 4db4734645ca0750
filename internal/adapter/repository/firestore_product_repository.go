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

type firestoreProductRepository struct {
	client *firestore.Client
}

func NewFirestoreProductRepository(client *firestore.Client) repository.ProductRepository {
	return &firestoreProductRepository{
		client: client,
	}
}

func (r *firestoreProductRepository) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == "" {
		doc := r.client.Collection("productos").NewDoc()
		product.ID = doc.ID
	}

	now := time.Now()
	if product.CreatedAt.IsZero() {
		product.CreatedAt = now
	}
	product.UpdatedAt = now

	_, err := r.client.Collection("productos").Doc(product.ID).Set(ctx, product)
	if err != nil {
		return errors.Internal("Failed to create product", err)
	}
	return nil
}

func (r *firestoreProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	doc, err := r.client.Collection("productos").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Product", err)
		}
		return nil, errors.Internal("Failed to get product", err)
	}

	var product entity.Product
	if err := doc.DataTo(&product); err != nil {
		return nil, errors.Internal("Failed to parse product data", err)
	}

	return &product, nil
}

func (r *firestoreProductRepository) Update(ctx context.Context, product *entity.Product) error {
	product.UpdatedAt = time.Now()

	_, err := r.client.Collection("productos").Doc(product.ID).Set(ctx, product)
	if err != nil {
		return errors.Internal("Failed to update product", err)
	}
	return nil
}

func (r *firestoreProductRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("productos").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete product", err)
	}
	return nil
}

func (r *firestoreProductRepository) IncrementViews(ctx context.Context, id string) error {
	_, err := r.client.Collection("productos").Doc(id).Update(ctx, []firestore.Update{
		{Path: "vistas", Value: firestore.Increment(1)},
	})
	if err != nil {
		return errors.Internal("Failed to increment product views", err)
	}
	return nil
}

func (r *firestoreProductRepository) Exists(ctx context.Context, id string) (bool, error) {
	_, err := r.client.Collection("productos").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return false, nil
		}
		return false, errors.Internal("Failed to check product existence", err)
	}
	return true, nil
}

func (r *firestoreProductRepository) ListByStore(ctx context.Context, storeSlug string, limit, offset int) ([]*entity.Product, int64, error) {
	query := r.client.Collection("productos").Where("tiendaSlug", "==", storeSlug)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count products", err)
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
	var products []*entity.Product

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate products", err)
		}

		var product entity.Product
		if err := doc.DataTo(&product); err != nil {
			return nil, 0, errors.Internal("Failed to parse product data", err)
		}
		products = append(products, &product)
	}

	return products, total, nil
}

func (r *firestoreProductRepository) Search(ctx context.Context, term, storeSlug string, limit int) ([]*entity.Product, error) {
	term = strings.ToLower(term)

	query := r.client.Collection("productos").Query.Where("estado", "==", string(entity.ListingActive))
	if storeSlug != "" {
		query = query.Where("tiendaSlug", "==", storeSlug)
	}

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Internal("Failed to search products", err)
	}

	var matched []*entity.Product
	for _, doc := range docs {
		var product entity.Product
		if err := doc.DataTo(&product); err != nil {
			continue
		}

		if strings.Contains(strings.ToLower(product.Title), term) ||
			strings.Contains(strings.ToLower(product.Description), term) {
			matched = append(matched, &product)
			if limit > 0 && len(matched) >= limit {
				break
			}
		}
	}

	return matched, nil
}
