package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/google/uuid"

	"familymarket/internal/domain/entity"
	"familymarket/internal/domain/repository"
	"familymarket/pkg/errors"
)

type firestoreTestimonialRepository struct {
	client *firestore.Client
}

func NewFirestoreTestimonialRepository(client *firestore.Client) repository.TestimonialRepository {
	return &firestoreTestimonialRepository{
		client: client,
	}
}

func (r *firestoreTestimonialRepository) Create(ctx context.Context, testimonial *entity.Testimonial) error {
	if testimonial.ID == "" {
		testimonial.ID = uuid.New().String()
	}

	now := time.Now()
	testimonial.CreatedAt = now
	testimonial.UpdatedAt = now

	_, err := r.client.Collection("testimonials").Doc(testimonial.ID).Set(ctx, testimonial)
	if err != nil {
		return errors.Internal("Failed to create testimonial", err)
	}
	return nil
}

func (r *firestoreTestimonialRepository) GetByID(ctx context.Context, id string) (*entity.Testimonial, error) {
	doc, err := r.client.Collection("testimonials").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Testimonial", err)
		}
		return nil, errors.Internal("Failed to get testimonial", err)
	}

	var testimonial entity.Testimonial
	if err := doc.DataTo(&testimonial); err != nil {
		return nil, errors.Internal("Failed to parse testimonial data", err)
	}

	return &testimonial, nil
}

func (r *firestoreTestimonialRepository) Update(ctx context.Context, testimonial *entity.Testimonial) error {
	testimonial.UpdatedAt = time.Now()

	_, err := r.client.Collection("testimonials").Doc(testimonial.ID).Set(ctx, testimonial)
	if err != nil {
		return errors.Internal("Failed to update testimonial", err)
	}
	return nil
}

func (r *firestoreTestimonialRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("testimonials").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete testimonial", err)
	}
	return nil
}

func (r *firestoreTestimonialRepository) List(ctx context.Context, filterStatus entity.TestimonialStatus, limit, offset int) ([]*entity.Testimonial, int64, error) {
	query := r.client.Collection("testimonials").Query
	if filterStatus != "" {
		query = query.Where("estado", "==", string(filterStatus))
	}

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count testimonials", err)
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
	var testimonials []*entity.Testimonial

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate testimonials", err)
		}

		var testimonial entity.Testimonial
		if err := doc.DataTo(&testimonial); err != nil {
			return nil, 0, errors.Internal("Failed to parse testimonial data", err)
		}
		testimonials = append(testimonials, &testimonial)
	}

	return testimonials, total, nil
}
