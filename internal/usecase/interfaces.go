package usecase

import (
	"context"
	"time"

	"familymarket/internal/domain/entity"
)

// FirebaseAuthClient abstracts the identity provider so auth flows can be
// tested without Firebase.
type FirebaseAuthClient interface {
	CreateUser(ctx context.Context, email, password, displayName string) (string, error)
	VerifyToken(ctx context.Context, token string) (string, error)
	VerifyTokenWithProvider(ctx context.Context, token string) (*entity.TokenClaims, error)
	SignInWithEmailPassword(email, password string) (string, string, error)
	RefreshIdToken(refreshToken string) (string, string, error)
	UpdateUserPassword(ctx context.Context, uid, newPassword string) error
	UpdateUserEmail(ctx context.Context, uid, newEmail string) error
}

// PushSender fans a notification out to device tokens and reports which
// tokens the provider no longer recognizes.
type PushSender interface {
	SendToTokens(ctx context.Context, tokens []string, title, body string, data map[string]string) ([]string, error)
}

// RealtimePusher delivers payloads to currently connected clients.
type RealtimePusher interface {
	SendToUser(userID string, message []byte)
	Broadcast(message []byte)
}

// TokenRevoker records tokens invalidated by logout.
type TokenRevoker interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
}
