package usecase

import (
	"context"
	"time"

	"familymarket/internal/domain/entity"
	"familymarket/internal/domain/repository"
	"familymarket/pkg/errors"
	"familymarket/pkg/logger"
)

// Firebase ID tokens live one hour; revocations only need to outlast that.
const idTokenLifetime = time.Hour

type AuthUseCase struct {
	userRepo     repository.UserRepository
	firebaseAuth FirebaseAuthClient
	revoker      TokenRevoker
}

func NewAuthUseCase(userRepo repository.UserRepository, firebaseAuth FirebaseAuthClient, revoker TokenRevoker) *AuthUseCase {
	return &AuthUseCase{
		userRepo:     userRepo,
		firebaseAuth: firebaseAuth,
		revoker:      revoker,
	}
}

type RegisterInput struct {
	Email       string
	Password    string
	DisplayName string
	Phone       string
}

type AuthResult struct {
	User         *entity.User
	Token        string
	RefreshToken string
}

func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	existingUser, err := uc.userRepo.GetByEmail(ctx, input.Email)
	if err == nil && existingUser != nil {
		return nil, errors.BadRequest("Email already in use", nil)
	}

	uid, err := uc.firebaseAuth.CreateUser(ctx, input.Email, input.Password, input.DisplayName)
	if err != nil {
		return nil, errors.Internal("Failed to create user in authentication provider", err)
	}

	// New accounts wait for admin approval before they can open a store.
	now := time.Now()
	user := &entity.User{
		ID:            uid,
		Email:         input.Email,
		DisplayName:   input.DisplayName,
		Phone:         input.Phone,
		Provider:      "password",
		Role:          "user",
		AccountStatus: entity.AccountPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Internal("Failed to create user record", err)
	}

	token, refreshToken, err := uc.firebaseAuth.SignInWithEmailPassword(input.Email, input.Password)
	if err != nil {
		return nil, errors.Internal("Failed to generate authentication token", err)
	}

	return &AuthResult{
		User:         user,
		Token:        token,
		RefreshToken: refreshToken,
	}, nil
}

func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	token, refreshToken, err := uc.firebaseAuth.SignInWithEmailPassword(email, password)
	if err != nil {
		logger.Warn("Login failed for %s: %v", email, err)
		return nil, errors.Unauthorized("Invalid credentials", err)
	}

	uid, err := uc.firebaseAuth.VerifyToken(ctx, token)
	if err != nil {
		return nil, errors.Internal("Failed to verify token", err)
	}

	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	return &AuthResult{
		User:         user,
		Token:        token,
		RefreshToken: refreshToken,
	}, nil
}

// GoogleSignIn accepts the Firebase ID token minted after the Google OAuth
// flow, verifies it and upserts the user document. The verified email, name
// and picture claims are written on first sign-in and refreshed on later
// ones, so the provider stays the source of truth for those fields.
func (uc *AuthUseCase) GoogleSignIn(ctx context.Context, idToken string) (*entity.User, error) {
	claims, err := uc.firebaseAuth.VerifyTokenWithProvider(ctx, idToken)
	if err != nil {
		return nil, errors.Unauthorized("Invalid token", err)
	}

	user, err := uc.userRepo.GetByID(ctx, claims.UID)
	if err == nil {
		changed := false
		if claims.Email != "" && user.Email != claims.Email {
			user.Email = claims.Email
			changed = true
		}
		if claims.Name != "" && user.DisplayName != claims.Name {
			user.DisplayName = claims.Name
			changed = true
		}
		if claims.Picture != "" && user.PhotoURL != claims.Picture {
			user.PhotoURL = claims.Picture
			changed = true
		}
		if changed {
			user.UpdatedAt = time.Now()
			if err := uc.userRepo.Update(ctx, user); err != nil {
				return nil, errors.Internal("Failed to update user record", err)
			}
		}
		return user, nil
	}
	if !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	now := time.Now()
	user = &entity.User{
		ID:            claims.UID,
		Email:         claims.Email,
		DisplayName:   claims.Name,
		PhotoURL:      claims.Picture,
		Provider:      claims.Provider,
		Role:          "user",
		AccountStatus: entity.AccountPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Internal("Failed to create user record", err)
	}

	return user, nil
}

func (uc *AuthUseCase) RefreshToken(ctx context.Context, refreshToken string) (*AuthResult, error) {
	token, newRefreshToken, err := uc.firebaseAuth.RefreshIdToken(refreshToken)
	if err != nil {
		return nil, errors.Unauthorized("Invalid refresh token", err)
	}

	uid, err := uc.firebaseAuth.VerifyToken(ctx, token)
	if err != nil {
		return nil, errors.Internal("Failed to verify refreshed token", err)
	}

	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	return &AuthResult{
		User:         user,
		Token:        token,
		RefreshToken: newRefreshToken,
	}, nil
}

// Logout records the token in the revocation set until it would have
// expired on its own.
func (uc *AuthUseCase) Logout(ctx context.Context, token string) error {
	if err := uc.revoker.Revoke(ctx, token, idTokenLifetime); err != nil {
		return errors.Internal("Failed to revoke token", err)
	}
	return nil
}

// ChangePassword re-authenticates with the current password before letting
// the Admin SDK overwrite it.
func (uc *AuthUseCase) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return errors.NotFound("User", err)
	}

	if _, _, err := uc.firebaseAuth.SignInWithEmailPassword(user.Email, currentPassword); err != nil {
		return errors.Unauthorized("Current password is incorrect", err)
	}

	if err := uc.firebaseAuth.UpdateUserPassword(ctx, userID, newPassword); err != nil {
		return errors.Internal("Failed to update password", err)
	}

	return nil
}

// ChangeEmail re-authenticates before updating the address in both the
// identity provider and the user document.
func (uc *AuthUseCase) ChangeEmail(ctx context.Context, userID, currentPassword, newEmail string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	if _, _, err := uc.firebaseAuth.SignInWithEmailPassword(user.Email, currentPassword); err != nil {
		return nil, errors.Unauthorized("Current password is incorrect", err)
	}

	if err := uc.firebaseAuth.UpdateUserEmail(ctx, userID, newEmail); err != nil {
		return nil, errors.Internal("Failed to update email", err)
	}

	user.Email = newEmail
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Internal("Failed to update user record", err)
	}

	return user, nil
}
