package firebase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"firebase.google.com/go/v4/auth"

	"familymarket/internal/domain/entity"
)

// FirebaseAuthClient wraps the Admin SDK plus the Identity Toolkit REST
// endpoints the Admin SDK does not expose (password sign-in, token refresh).
type FirebaseAuthClient struct {
	client *auth.Client
	apiKey string
	http   *http.Client
}

func NewFirebaseAuthClient(client *auth.Client, apiKey string) *FirebaseAuthClient {
	return &FirebaseAuthClient{
		client: client,
		apiKey: apiKey,
		http:   &http.Client{Timeout: 15 * time.Second},
	}
}

func (f *FirebaseAuthClient) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password).
		DisplayName(displayName)

	user, err := f.client.CreateUser(ctx, params)
	if err != nil {
		return "", err
	}

	return user.UID, nil
}

func (f *FirebaseAuthClient) VerifyToken(ctx context.Context, token string) (string, error) {
	result, err := f.client.VerifyIDToken(ctx, token)
	if err != nil {
		return "", err
	}

	return result.UID, nil
}

// VerifyTokenWithProvider also returns the sign-in provider and the profile
// claims, so Google OAuth sign-ins can be distinguished from password
// accounts and their verified email, name and picture persisted.
func (f *FirebaseAuthClient) VerifyTokenWithProvider(ctx context.Context, token string) (*entity.TokenClaims, error) {
	result, err := f.client.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, err
	}

	claims := &entity.TokenClaims{
		UID:      result.UID,
		Provider: result.Firebase.SignInProvider,
	}
	if email, ok := result.Claims["email"].(string); ok {
		claims.Email = email
	}
	if name, ok := result.Claims["name"].(string); ok {
		claims.Name = name
	}
	if picture, ok := result.Claims["picture"].(string); ok {
		claims.Picture = picture
	}
	return claims, nil
}

func (f *FirebaseAuthClient) UpdateUserPassword(ctx context.Context, uid, newPassword string) error {
	params := (&auth.UserToUpdate{}).
		Password(newPassword)

	_, err := f.client.UpdateUser(ctx, uid, params)
	return err
}

func (f *FirebaseAuthClient) UpdateUserEmail(ctx context.Context, uid, newEmail string) error {
	params := (&auth.UserToUpdate{}).
		Email(newEmail)

	_, err := f.client.UpdateUser(ctx, uid, params)
	return err
}

func (f *FirebaseAuthClient) DeleteUser(ctx context.Context, uid string) error {
	return f.client.DeleteUser(ctx, uid)
}

type signInResponse struct {
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	Error        *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// SignInWithEmailPassword exchanges credentials for an ID token and a
// refresh token through the Identity Toolkit REST API.
func (f *FirebaseAuthClient) SignInWithEmailPassword(email, password string) (string, string, error) {
	if f.apiKey == "" {
		return "", "", fmt.Errorf("firebase web API key is not configured")
	}

	payload, err := json.Marshal(map[string]interface{}{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	})
	if err != nil {
		return "", "", err
	}

	endpoint := fmt.Sprintf("https://identitytoolkit.googleapis.com/v1/accounts:signInWithPassword?key=%s", f.apiKey)
	resp, err := f.http.Post(endpoint, "application/json", bytes.NewBuffer(payload))
	if err != nil {
		return "", "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", "", err
	}

	var result signInResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", "", err
	}

	if resp.StatusCode != http.StatusOK {
		msg := "sign-in failed"
		if result.Error != nil {
			msg = result.Error.Message
		}
		return "", "", fmt.Errorf("firebase sign-in: %s", msg)
	}

	return result.IDToken, result.RefreshToken, nil
}

type refreshResponse struct {
	IDToken      string `json:"id_token"`
	RefreshToken string `json:"refresh_token"`
}

// RefreshIdToken exchanges a refresh token for a fresh ID token.
func (f *FirebaseAuthClient) RefreshIdToken(refreshToken string) (string, string, error) {
	if f.apiKey == "" {
		return "", "", fmt.Errorf("firebase web API key is not configured")
	}

	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", refreshToken)

	endpoint := fmt.Sprintf("https://securetoken.googleapis.com/v1/token?key=%s", f.apiKey)
	resp, err := f.http.Post(endpoint, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	if err != nil {
		return "", "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("firebase token refresh failed with status %d", resp.StatusCode)
	}

	var result refreshResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", "", err
	}

	return result.IDToken, result.RefreshToken, nil
}
