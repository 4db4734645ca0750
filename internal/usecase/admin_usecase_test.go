package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"familymarket/internal/domain/entity"
	"familymarket/pkg/errors"
)

func newAdminFixture(t *testing.T) (*AdminUseCase, *fakeUserRepo, *fakeNotificationRepo) {
	t.Helper()
	userRepo := newFakeUserRepo()
	notificationRepo := newFakeNotificationRepo()
	notifier := NewNotificationUseCase(notificationRepo, userRepo, nil, nil)
	return NewAdminUseCase(userRepo, notifier), userRepo, notificationRepo
}

func TestApproveUserGrantsSubscription(t *testing.T) {
	uc, userRepo, notificationRepo := newAdminFixture(t)
	ctx := context.Background()

	require.NoError(t, userRepo.Create(ctx, &entity.User{
		ID:            "user-1",
		Email:         "vendedor@example.com",
		AccountStatus: entity.AccountPending,
	}))

	user, err := uc.ChangeAccountStatus(ctx, "user-1", "approved")
	require.NoError(t, err)

	assert.Equal(t, entity.AccountApproved, user.AccountStatus)
	require.NotNil(t, user.Subscription)
	assert.True(t, user.Subscription.Active)
	assert.Equal(t, "basic", user.Subscription.Plan)
	assert.WithinDuration(t, time.Now().Add(subscriptionDuration), user.Subscription.ExpiresAt, time.Minute)

	// The user is told their account went live.
	stored, _, err := notificationRepo.ListByUser(ctx, "user-1", 0, 0)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "Cuenta aprobada", stored[0].Title)
}

func TestSuspendUserDeactivatesSubscription(t *testing.T) {
	uc, userRepo, _ := newAdminFixture(t)
	ctx := context.Background()

	now := time.Now()
	require.NoError(t, userRepo.Create(ctx, &entity.User{
		ID:            "user-1",
		AccountStatus: entity.AccountApproved,
		Subscription: &entity.Subscription{
			Plan:        "basic",
			ActivatedAt: now,
			ExpiresAt:   now.Add(subscriptionDuration),
			Active:      true,
		},
	}))

	user, err := uc.ChangeAccountStatus(ctx, "user-1", "suspended")
	require.NoError(t, err)

	assert.Equal(t, entity.AccountSuspended, user.AccountStatus)
	require.NotNil(t, user.Subscription)
	assert.False(t, user.Subscription.Active)
}

func TestChangeAccountStatusValidation(t *testing.T) {
	uc, userRepo, notificationRepo := newAdminFixture(t)
	ctx := context.Background()

	require.NoError(t, userRepo.Create(ctx, &entity.User{
		ID:            "user-1",
		AccountStatus: entity.AccountPending,
	}))

	_, err := uc.ChangeAccountStatus(ctx, "user-1", "banned")
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	_, err = uc.ChangeAccountStatus(ctx, "ghost", "approved")
	assert.True(t, errors.Is(err, "NOT_FOUND"))

	// Re-sending the current status is a no-op, with no notification.
	user, err := uc.ChangeAccountStatus(ctx, "user-1", "pending")
	require.NoError(t, err)
	assert.Equal(t, entity.AccountPending, user.AccountStatus)
	stored, _, err := notificationRepo.ListByUser(ctx, "user-1", 0, 0)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestListUsersFiltersByStatus(t *testing.T) {
	uc, userRepo, _ := newAdminFixture(t)
	ctx := context.Background()

	require.NoError(t, userRepo.Create(ctx, &entity.User{ID: "a", Email: "a@example.com", AccountStatus: entity.AccountPending}))
	require.NoError(t, userRepo.Create(ctx, &entity.User{ID: "b", Email: "b@example.com", AccountStatus: entity.AccountApproved}))
	require.NoError(t, userRepo.Create(ctx, &entity.User{ID: "c", Email: "c@example.com", AccountStatus: entity.AccountApproved}))

	users, total, err := uc.ListUsers(ctx, ListUsersInput{AccountStatus: "approved"})
	require.NoError(t, err)
	assert.Len(t, users, 2)
	assert.EqualValues(t, 2, total)

	_, _, err = uc.ListUsers(ctx, ListUsersInput{AccountStatus: "banned"})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	byEmail, total, err := uc.ListUsers(ctx, ListUsersInput{Email: "b@example.com"})
	require.NoError(t, err)
	require.Len(t, byEmail, 1)
	assert.Equal(t, "b", byEmail[0].ID)
	assert.EqualValues(t, 1, total)

	missing, total, err := uc.ListUsers(ctx, ListUsersInput{Email: "ghost@example.com"})
	require.NoError(t, err)
	assert.Empty(t, missing)
	assert.Zero(t, total)
}

func TestSweepExpiredSubscriptions(t *testing.T) {
	uc, userRepo, _ := newAdminFixture(t)
	ctx := context.Background()

	now := time.Now()
	require.NoError(t, userRepo.Create(ctx, &entity.User{
		ID:            "lapsed",
		AccountStatus: entity.AccountApproved,
		Subscription:  &entity.Subscription{Plan: "basic", ExpiresAt: now.Add(-time.Hour), Active: true},
	}))
	require.NoError(t, userRepo.Create(ctx, &entity.User{
		ID:            "current",
		AccountStatus: entity.AccountApproved,
		Subscription:  &entity.Subscription{Plan: "basic", ExpiresAt: now.Add(time.Hour), Active: true},
	}))

	require.NoError(t, uc.SweepExpiredSubscriptions(ctx))

	lapsed, err := userRepo.GetByID(ctx, "lapsed")
	require.NoError(t, err)
	assert.False(t, lapsed.Subscription.Active)
	assert.Equal(t, entity.AccountPending, lapsed.AccountStatus)

	current, err := userRepo.GetByID(ctx, "current")
	require.NoError(t, err)
	assert.True(t, current.Subscription.Active)
	assert.Equal(t, entity.AccountApproved, current.AccountStatus)
}
