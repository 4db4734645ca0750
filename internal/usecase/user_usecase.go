package usecase

import (
	"context"
	"time"

	"familymarket/internal/domain/entity"
	"familymarket/internal/domain/repository"
	"familymarket/pkg/errors"
)

type UserUseCase struct {
	userRepo repository.UserRepository
}

func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
	}
}

func (uc *UserUseCase) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}
	return user, nil
}

type UpdateProfileInput struct {
	DisplayName *string
	Phone       *string
	PhotoURL    *string
}

func (uc *UserUseCase) UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	if input.DisplayName != nil {
		user.DisplayName = *input.DisplayName
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.PhotoURL != nil {
		user.PhotoURL = *input.PhotoURL
	}

	// A profile counts as complete once name and phone are both present,
	// which Google sign-in accounts lack at first login.
	user.ProfileCompleted = user.DisplayName != "" && user.Phone != ""
	user.UpdatedAt = time.Now()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Internal("Failed to update profile", err)
	}

	return user, nil
}

func (uc *UserUseCase) RegisterDeviceToken(ctx context.Context, userID, token string) error {
	if token == "" {
		return errors.BadRequest("Device token is required", nil)
	}
	if err := uc.userRepo.AddFCMToken(ctx, userID, token); err != nil {
		return errors.Internal("Failed to register device token", err)
	}
	return nil
}

func (uc *UserUseCase) UnregisterDeviceToken(ctx context.Context, userID, token string) error {
	if token == "" {
		return errors.BadRequest("Device token is required", nil)
	}
	if err := uc.userRepo.RemoveFCMToken(ctx, userID, token); err != nil {
		return errors.Internal("Failed to unregister device token", err)
	}
	return nil
}
