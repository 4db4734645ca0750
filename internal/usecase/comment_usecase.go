package usecase

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"familymarket/internal/domain/entity"
	"familymarket/internal/domain/repository"
	"familymarket/pkg/errors"
	"familymarket/pkg/logger"
)

type CommentUseCase struct {
	commentRepo repository.CommentRepository
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	serviceRepo repository.ServiceRepository
	listingRepo repository.ListingRepository
}

func NewCommentUseCase(
	commentRepo repository.CommentRepository,
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
	serviceRepo repository.ServiceRepository,
	listingRepo repository.ListingRepository,
) *CommentUseCase {
	return &CommentUseCase{
		commentRepo: commentRepo,
		userRepo:    userRepo,
		productRepo: productRepo,
		serviceRepo: serviceRepo,
		listingRepo: listingRepo,
	}
}

// itemOwner resolves the parent item and returns its owner, or NOT_FOUND
// when the parent does not exist.
func (uc *CommentUseCase) itemOwner(ctx context.Context, itemType entity.CommentItemType, itemID string) (string, error) {
	switch itemType {
	case entity.CommentOnProduct:
		product, err := uc.productRepo.GetByID(ctx, itemID)
		if err != nil {
			return "", errors.NotFound("Product", err)
		}
		return product.OwnerID, nil
	case entity.CommentOnService:
		service, err := uc.serviceRepo.GetByID(ctx, itemID)
		if err != nil {
			return "", errors.NotFound("Service", err)
		}
		return service.OwnerID, nil
	case entity.CommentOnListing:
		listing, err := uc.listingRepo.GetByID(ctx, itemID)
		if err != nil {
			return "", errors.NotFound("Listing", err)
		}
		return listing.OwnerID, nil
	}
	return "", errors.BadRequest("Invalid item type", nil)
}

type CreateCommentInput struct {
	ItemType string
	ItemID   string
	Content  string
	Rating   int
}

func (uc *CommentUseCase) Create(ctx context.Context, authorID string, input CreateCommentInput) (*entity.Comment, error) {
	itemType, ok := entity.ParseCommentItemType(input.ItemType)
	if !ok {
		return nil, errors.BadRequest("Invalid item type", nil)
	}
	if input.Rating < 0 || input.Rating > 5 {
		return nil, errors.BadRequest("Rating must be between 0 and 5", nil)
	}

	targetUserID, err := uc.itemOwner(ctx, itemType, input.ItemID)
	if err != nil {
		return nil, err
	}
	if targetUserID == authorID {
		return nil, errors.BadRequest("You cannot comment on your own item", nil)
	}

	author, err := uc.userRepo.GetByID(ctx, authorID)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	comment := &entity.Comment{
		ItemID:         input.ItemID,
		ItemType:       itemType,
		AuthorID:       authorID,
		AuthorName:     author.DisplayName,
		AuthorPhotoURL: author.PhotoURL,
		TargetUserID:   targetUserID,
		Content:        input.Content,
		Rating:         input.Rating,
		CreatedAt:      time.Now(),
	}

	if err := uc.commentRepo.Create(ctx, comment); err != nil {
		return nil, errors.Internal("Failed to create comment", err)
	}
	return comment, nil
}

func (uc *CommentUseCase) ListForItem(ctx context.Context, rawItemType, itemID string) ([]*entity.Comment, error) {
	itemType, ok := entity.ParseCommentItemType(rawItemType)
	if !ok {
		return nil, errors.BadRequest("Invalid item type", nil)
	}

	comments, err := uc.commentRepo.ListByItem(ctx, itemType, itemID)
	if err != nil {
		return nil, errors.Internal("Failed to list comments", err)
	}
	return comments, nil
}

// collectAcrossTypes fans one per-collection query out over the three
// comment collections and merges the results newest first.
func collectAcrossTypes(ctx context.Context, query func(ctx context.Context, itemType entity.CommentItemType) ([]*entity.Comment, error)) ([]*entity.Comment, error) {
	itemTypes := []entity.CommentItemType{
		entity.CommentOnProduct,
		entity.CommentOnService,
		entity.CommentOnListing,
	}

	results := make([][]*entity.Comment, len(itemTypes))
	g, gctx := errgroup.WithContext(ctx)
	for i, itemType := range itemTypes {
		i, itemType := i, itemType
		g.Go(func() error {
			comments, err := query(gctx, itemType)
			if err != nil {
				return err
			}
			results[i] = comments
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := []*entity.Comment{}
	for _, comments := range results {
		merged = append(merged, comments...)
	}
	sort.Slice(merged, func(i, j int) bool {
		return merged[i].CreatedAt.After(merged[j].CreatedAt)
	})
	return merged, nil
}

// ListMade returns every comment the user wrote, across all three
// collections.
func (uc *CommentUseCase) ListMade(ctx context.Context, userID string) ([]*entity.Comment, error) {
	comments, err := collectAcrossTypes(ctx, func(ctx context.Context, itemType entity.CommentItemType) ([]*entity.Comment, error) {
		return uc.commentRepo.ListByAuthor(ctx, itemType, userID)
	})
	if err != nil {
		return nil, errors.Internal("Failed to list comments", err)
	}
	return comments, nil
}

// ListReceived returns every comment left on the user's items, across all
// three collections.
func (uc *CommentUseCase) ListReceived(ctx context.Context, userID string) ([]*entity.Comment, error) {
	comments, err := collectAcrossTypes(ctx, func(ctx context.Context, itemType entity.CommentItemType) ([]*entity.Comment, error) {
		return uc.commentRepo.ListByTarget(ctx, itemType, userID)
	})
	if err != nil {
		return nil, errors.Internal("Failed to list comments", err)
	}
	return comments, nil
}

// Delete removes a comment. The author, the owner of the commented item and
// admins may delete.
func (uc *CommentUseCase) Delete(ctx context.Context, actorID string, isAdmin bool, rawItemType, id string) error {
	itemType, ok := entity.ParseCommentItemType(rawItemType)
	if !ok {
		return errors.BadRequest("Invalid item type", nil)
	}

	comment, err := uc.commentRepo.GetByID(ctx, itemType, id)
	if err != nil {
		return errors.NotFound("Comment", err)
	}
	if comment.AuthorID != actorID && comment.TargetUserID != actorID && !isAdmin {
		return errors.Forbidden("You cannot delete this comment", nil)
	}

	if err := uc.commentRepo.Delete(ctx, itemType, id); err != nil {
		return errors.Internal("Failed to delete comment", err)
	}
	return nil
}

func (uc *CommentUseCase) parentExists(ctx context.Context, itemType entity.CommentItemType, itemID string) (bool, error) {
	switch itemType {
	case entity.CommentOnProduct:
		return uc.productRepo.Exists(ctx, itemID)
	case entity.CommentOnService:
		return uc.serviceRepo.Exists(ctx, itemID)
	case entity.CommentOnListing:
		return uc.listingRepo.Exists(ctx, itemID)
	}
	return false, nil
}

// SweepOrphans removes comments whose parent item was deleted. Cleanup runs
// on a schedule so the read path stays cheap.
func (uc *CommentUseCase) SweepOrphans(ctx context.Context) error {
	for _, itemType := range []entity.CommentItemType{
		entity.CommentOnProduct,
		entity.CommentOnService,
		entity.CommentOnListing,
	} {
		comments, err := uc.commentRepo.ListAll(ctx, itemType)
		if err != nil {
			return err
		}

		// One existence probe per distinct parent, not per comment.
		known := map[string]bool{}
		orphaned := []string{}
		for _, comment := range comments {
			exists, seen := known[comment.ItemID]
			if !seen {
				exists, err = uc.parentExists(ctx, itemType, comment.ItemID)
				if err != nil {
					logger.Error("Orphan probe failed for %s %s: %v", itemType, comment.ItemID, err)
					continue
				}
				known[comment.ItemID] = exists
			}
			if !exists {
				orphaned = append(orphaned, comment.ID)
			}
		}

		if len(orphaned) == 0 {
			continue
		}
		if err := uc.commentRepo.DeleteBatch(ctx, itemType, orphaned); err != nil {
			return err
		}
		logger.Info("Removed %d orphaned comments from %s", len(orphaned), itemType)
	}
	return nil
}
