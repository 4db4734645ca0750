package repository

import (
	"context"
	"sort"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"familymarket/internal/domain/entity"
	"familymarket/internal/domain/repository"
	"familymarket/pkg/errors"
)

type firestoreListingRepository struct {
	client *firestore.Client
}

func NewFirestoreListingRepository(client *firestore.Client) repository.ListingRepository {
	return &firestoreListingRepository{
		client: client,
	}
}

func (r *firestoreListingRepository) Create(ctx context.Context, listing *entity.Listing) error {
	if listing.ID == "" {
		doc := r.client.Collection("empleos").NewDoc()
		listing.ID = doc.ID
	}

	now := time.Now()
	if listing.CreatedAt.IsZero() {
		listing.CreatedAt = now
	}
	listing.UpdatedAt = now

	_, err := r.client.Collection("empleos").Doc(listing.ID).Set(ctx, listing)
	if err != nil {
		return errors.Internal("Failed to create listing", err)
	}
	return nil
}

func (r *firestoreListingRepository) GetByID(ctx context.Context, id string) (*entity.Listing, error) {
	doc, err := r.client.Collection("empleos").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Listing", err)
		}
		return nil, errors.Internal("Failed to get listing", err)
	}

	var listing entity.Listing
	if err := doc.DataTo(&listing); err != nil {
		return nil, errors.Internal("Failed to parse listing data", err)
	}

	return &listing, nil
}

func (r *firestoreListingRepository) Update(ctx context.Context, listing *entity.Listing) error {
	listing.UpdatedAt = time.Now()

	_, err := r.client.Collection("empleos").Doc(listing.ID).Set(ctx, listing)
	if err != nil {
		return errors.Internal("Failed to update listing", err)
	}
	return nil
}

func (r *firestoreListingRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("empleos").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete listing", err)
	}
	return nil
}

func (r *firestoreListingRepository) baseQuery(filter repository.ListingFilter) firestore.Query {
	query := r.client.Collection("empleos").Query

	if filter.Type != "" {
		query = query.Where("tipoPublicacion", "==", string(filter.Type))
	}
	if filter.Status != "" {
		query = query.Where("estado", "==", string(filter.Status))
	}
	if filter.StoreSlug != "" {
		query = query.Where("tiendaInfo.slug", "==", filter.StoreSlug)
	}
	if filter.OwnerID != "" {
		query = query.Where("userId", "==", filter.OwnerID)
	}

	return query
}

// List runs the equality filters on Firestore and finishes in memory:
// substring matching, featured-first ordering and offset pagination have no
// Firestore operators.
func (r *firestoreListingRepository) List(ctx context.Context, filter repository.ListingFilter, sortKey string, limit, offset int) ([]*entity.Listing, int64, error) {
	docs, err := r.baseQuery(filter).Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to list listings", err)
	}

	var matched []*entity.Listing
	for _, doc := range docs {
		var listing entity.Listing
		if err := doc.DataTo(&listing); err != nil {
			continue
		}
		if listing.MatchesTerm(filter.Term) {
			matched = append(matched, &listing)
		}
	}

	sortListings(matched, sortKey)
	total := int64(len(matched))

	start := offset
	if start >= len(matched) {
		return []*entity.Listing{}, total, nil
	}
	end := len(matched)
	if limit > 0 && start+limit < end {
		end = start + limit
	}

	return matched[start:end], total, nil
}

func parseListingSort(sortKey string) (string, firestore.Direction) {
	field := "fechaCreacion"
	order := firestore.Desc

	if sortKey == "" {
		return field, order
	}

	key := sortKey
	if strings.HasSuffix(sortKey, "_asc") {
		key = strings.TrimSuffix(sortKey, "_asc")
		order = firestore.Asc
	} else if strings.HasSuffix(sortKey, "_desc") {
		key = strings.TrimSuffix(sortKey, "_desc")
		order = firestore.Desc
	}

	switch key {
	case "titulo", "vistas", "fechaCreacion":
		field = key
	}

	return field, order
}

// sortListings orders by the requested field, with listings holding an
// active featured placement always ahead of the rest.
func sortListings(listings []*entity.Listing, sortKey string) {
	field, order := parseListingSort(sortKey)
	asc := order == firestore.Asc
	now := time.Now()

	sort.SliceStable(listings, func(i, j int) bool {
		fi, fj := listings[i].IsFeatureActive(now), listings[j].IsFeatureActive(now)
		if fi != fj {
			return fi
		}

		// Descending order swaps the operands instead of negating the
		// comparison, so ties report false either way and stability holds.
		a, b := listings[i], listings[j]
		if !asc {
			a, b = b, a
		}
		switch field {
		case "titulo":
			return strings.ToLower(a.Title) < strings.ToLower(b.Title)
		case "vistas":
			return a.Views < b.Views
		default:
			return a.CreatedAt.Before(b.CreatedAt)
		}
	})
}

func (r *firestoreListingRepository) Exists(ctx context.Context, id string) (bool, error) {
	_, err := r.client.Collection("empleos").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return false, nil
		}
		return false, errors.Internal("Failed to check listing existence", err)
	}
	return true, nil
}

func (r *firestoreListingRepository) IncrementViews(ctx context.Context, id string) error {
	_, err := r.client.Collection("empleos").Doc(id).Update(ctx, []firestore.Update{
		{Path: "vistas", Value: firestore.Increment(1)},
	})
	if err != nil {
		return errors.Internal("Failed to increment listing views", err)
	}
	return nil
}

func (r *firestoreListingRepository) SetFeatured(ctx context.Context, id string, until time.Time) error {
	_, err := r.client.Collection("empleos").Doc(id).Update(ctx, []firestore.Update{
		{Path: "featured", Value: true},
		{Path: "featuredUntil", Value: until},
		{Path: "fechaActualizacion", Value: time.Now()},
	})
	if err != nil {
		return errors.Internal("Failed to set listing featured", err)
	}
	return nil
}

func (r *firestoreListingRepository) ClearExpiredFeatured(ctx context.Context, now time.Time) (int, error) {
	query := r.client.Collection("empleos").
		Where("featured", "==", true).
		Where("featuredUntil", "<", now)

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return 0, errors.Internal("Failed to query expired featured listings", err)
	}
	if len(docs) == 0 {
		return 0, nil
	}

	bw := r.client.BulkWriter(ctx)
	for _, doc := range docs {
		_, err := bw.Update(doc.Ref, []firestore.Update{
			{Path: "featured", Value: false},
			{Path: "featuredUntil", Value: firestore.Delete},
			{Path: "fechaActualizacion", Value: now},
		})
		if err != nil {
			bw.End()
			return 0, errors.Internal("Failed to enqueue featured expiry update", err)
		}
	}
	bw.End()

	return len(docs), nil
}
