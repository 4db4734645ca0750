package usecase

import (
	"context"
	"encoding/json"
	"time"

	"familymarket/internal/domain/entity"
	"familymarket/internal/domain/repository"
	"familymarket/pkg/errors"
	"familymarket/pkg/logger"
)

type NotificationUseCase struct {
	notificationRepo repository.NotificationRepository
	userRepo         repository.UserRepository
	push             PushSender
	realtime         RealtimePusher
}

func NewNotificationUseCase(
	notificationRepo repository.NotificationRepository,
	userRepo repository.UserRepository,
	push PushSender,
	realtime RealtimePusher,
) *NotificationUseCase {
	return &NotificationUseCase{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		push:             push,
		realtime:         realtime,
	}
}

// SendToUser persists the notification, then delivers it over FCM and to
// any live websocket connection. Delivery failures never fail the send; the
// stored copy is the source of truth.
func (uc *NotificationUseCase) SendToUser(ctx context.Context, userID, title, body string, data map[string]string) error {
	notification := &entity.Notification{
		UserID:    userID,
		Title:     title,
		Body:      body,
		Data:      data,
		CreatedAt: time.Now(),
	}

	if err := uc.notificationRepo.Create(ctx, notification); err != nil {
		return errors.Internal("Failed to store notification", err)
	}

	uc.deliver(ctx, userID, notification)
	return nil
}

func (uc *NotificationUseCase) deliver(ctx context.Context, userID string, notification *entity.Notification) {
	if uc.realtime != nil {
		if payload, err := json.Marshal(notification); err == nil {
			uc.realtime.SendToUser(userID, payload)
		}
	}

	if uc.push == nil {
		return
	}
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil || len(user.FCMTokens) == 0 {
		return
	}

	stale, err := uc.push.SendToTokens(ctx, user.FCMTokens, notification.Title, notification.Body, notification.Data)
	if err != nil {
		logger.Warn("Push delivery to %s failed: %v", userID, err)
		return
	}
	// Tokens the provider no longer recognizes are pruned so the next send
	// does not retry them.
	for _, token := range stale {
		if err := uc.userRepo.RemoveFCMToken(ctx, userID, token); err != nil {
			logger.Warn("Failed to prune stale FCM token for %s: %v", userID, err)
		}
	}
}

// Broadcast fans an admin announcement out to every user: one stored
// notification per user written in bulk, push delivery per user after.
func (uc *NotificationUseCase) Broadcast(ctx context.Context, title, body string, data map[string]string) (int, error) {
	users, _, err := uc.userRepo.List(ctx, nil, 0, 0)
	if err != nil {
		return 0, errors.Internal("Failed to list users for broadcast", err)
	}

	now := time.Now()
	notifications := make([]*entity.Notification, 0, len(users))
	for _, user := range users {
		notifications = append(notifications, &entity.Notification{
			UserID:    user.ID,
			Title:     title,
			Body:      body,
			Data:      data,
			Broadcast: true,
			CreatedAt: now,
		})
	}

	if err := uc.notificationRepo.CreateBatch(ctx, notifications); err != nil {
		return 0, errors.Internal("Failed to store broadcast", err)
	}

	for i, user := range users {
		uc.deliver(ctx, user.ID, notifications[i])
	}
	return len(notifications), nil
}

func (uc *NotificationUseCase) ListMine(ctx context.Context, userID string, limit, offset int) ([]*entity.Notification, int64, error) {
	notifications, total, err := uc.notificationRepo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, 0, errors.Internal("Failed to list notifications", err)
	}
	return notifications, total, nil
}

func (uc *NotificationUseCase) MarkRead(ctx context.Context, userID, id string) error {
	notification, err := uc.notificationRepo.GetByID(ctx, id)
	if err != nil {
		return errors.NotFound("Notification", err)
	}
	if notification.UserID != userID {
		return errors.Forbidden("Not your notification", nil)
	}

	if err := uc.notificationRepo.MarkRead(ctx, id); err != nil {
		return errors.Internal("Failed to mark notification read", err)
	}
	return nil
}

func (uc *NotificationUseCase) MarkAllRead(ctx context.Context, userID string) error {
	if err := uc.notificationRepo.MarkAllRead(ctx, userID); err != nil {
		return errors.Internal("Failed to mark notifications read", err)
	}
	return nil
}

func (uc *NotificationUseCase) DeleteAll(ctx context.Context, userID string) error {
	if err := uc.notificationRepo.DeleteAllForUser(ctx, userID); err != nil {
		return errors.Internal("Failed to delete notifications", err)
	}
	return nil
}
