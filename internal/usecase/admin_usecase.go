package usecase

import (
	"context"
	"time"

	"familymarket/internal/domain/entity"
	"familymarket/internal/domain/repository"
	"familymarket/pkg/errors"
	"familymarket/pkg/logger"
)

// Approval grants a 30-day basic subscription.
const subscriptionDuration = 30 * 24 * time.Hour

type AdminUseCase struct {
	userRepo repository.UserRepository
	notifier *NotificationUseCase
}

func NewAdminUseCase(userRepo repository.UserRepository, notifier *NotificationUseCase) *AdminUseCase {
	return &AdminUseCase{
		userRepo: userRepo,
		notifier: notifier,
	}
}

type ListUsersInput struct {
	AccountStatus string
	Role          string
	Email         string
	Limit         int
	Offset        int
}

func (uc *AdminUseCase) ListUsers(ctx context.Context, input ListUsersInput) ([]*entity.User, int64, error) {
	// An exact email lookup short-circuits the filtered listing.
	if input.Email != "" {
		user, err := uc.userRepo.GetByEmail(ctx, input.Email)
		if err != nil {
			if errors.Is(err, "NOT_FOUND") {
				return []*entity.User{}, 0, nil
			}
			return nil, 0, errors.Internal("Failed to look up user by email", err)
		}
		return []*entity.User{user}, 1, nil
	}

	filter := map[string]interface{}{}
	if input.AccountStatus != "" {
		status, err := entity.ParseAccountStatus(input.AccountStatus)
		if err != nil {
			return nil, 0, errors.BadRequest("Invalid account status filter", err)
		}
		filter["accountStatus"] = string(status)
	}
	if input.Role != "" {
		filter["role"] = input.Role
	}

	users, total, err := uc.userRepo.List(ctx, filter, input.Limit, input.Offset)
	if err != nil {
		return nil, 0, errors.Internal("Failed to list users", err)
	}
	return users, total, nil
}

// ChangeAccountStatus moves a user through the pending/approved/suspended
// state machine. Approving activates a subscription; leaving approved
// deactivates it.
func (uc *AdminUseCase) ChangeAccountStatus(ctx context.Context, userID, rawStatus string) (*entity.User, error) {
	newStatus, err := entity.ParseAccountStatus(rawStatus)
	if err != nil {
		return nil, errors.BadRequest("Invalid account status", err)
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	if user.AccountStatus == newStatus {
		return user, nil
	}
	if !entity.IsStatusTransitionAllowed(user.AccountStatus, newStatus) {
		return nil, errors.Conflict("Account status transition not allowed")
	}

	now := time.Now()
	switch newStatus {
	case entity.AccountApproved:
		user.Subscription = &entity.Subscription{
			Plan:        "basic",
			ActivatedAt: now,
			ExpiresAt:   now.Add(subscriptionDuration),
			Active:      true,
		}
	default:
		if user.Subscription != nil {
			user.Subscription.Active = false
		}
	}

	user.AccountStatus = newStatus
	user.UpdatedAt = now

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Internal("Failed to update account status", err)
	}

	if uc.notifier != nil {
		title, body := statusChangeMessage(newStatus)
		if err := uc.notifier.SendToUser(ctx, userID, title, body, map[string]string{
			"type":          "account_status",
			"accountStatus": string(newStatus),
		}); err != nil {
			logger.Warn("Failed to notify user %s of status change: %v", userID, err)
		}
	}

	return user, nil
}

func statusChangeMessage(status entity.AccountStatus) (string, string) {
	switch status {
	case entity.AccountApproved:
		return "Cuenta aprobada", "Tu cuenta fue aprobada. Ya podes crear tu tienda."
	case entity.AccountSuspended:
		return "Cuenta suspendida", "Tu cuenta fue suspendida. Contacta a soporte para mas detalles."
	default:
		return "Cuenta en revision", "Tu cuenta volvio a estado pendiente de revision."
	}
}

// SweepExpiredSubscriptions demotes approved users whose subscription has
// lapsed back to pending. Runs on a schedule rather than on the read path.
func (uc *AdminUseCase) SweepExpiredSubscriptions(ctx context.Context) error {
	users, _, err := uc.userRepo.List(ctx, map[string]interface{}{
		"accountStatus": string(entity.AccountApproved),
	}, 0, 0)
	if err != nil {
		return err
	}

	now := time.Now()
	expired := 0
	for _, user := range users {
		if user.Subscription == nil || !user.Subscription.IsExpired(now) {
			continue
		}
		user.Subscription.Active = false
		user.AccountStatus = entity.AccountPending
		user.UpdatedAt = now
		if err := uc.userRepo.Update(ctx, user); err != nil {
			logger.Error("Failed to expire subscription for %s: %v", user.ID, err)
			continue
		}
		expired++
	}

	if expired > 0 {
		logger.Info("Demoted %d users with expired subscriptions", expired)
	}
	return nil
}
