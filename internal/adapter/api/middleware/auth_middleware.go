package middleware

import (
	"net/http"
	"strings"

	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"

	"familymarket/internal/infrastructure/cache"
)

type AuthMiddleware struct {
	authClient *auth.Client
	blacklist  *cache.TokenBlacklist
}

func NewAuthMiddleware(authClient *auth.Client, blacklist *cache.TokenBlacklist) *AuthMiddleware {
	return &AuthMiddleware{
		authClient: authClient,
		blacklist:  blacklist,
	}
}

func bearerToken(c echo.Context) (string, bool) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}

// Authenticate verifies the bearer token and rejects tokens revoked by
// logout. The verified uid lands in the echo context under "uid".
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		idToken, ok := bearerToken(c)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
		}

		if m.blacklist != nil && m.blacklist.IsRevoked(c.Request().Context(), idToken) {
			return echo.NewHTTPError(http.StatusUnauthorized, "Token has been revoked")
		}

		token, err := m.authClient.VerifyIDToken(c.Request().Context(), idToken)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
		}

		c.Set("uid", token.UID)
		return next(c)
	}
}

// OptionalAuthenticate sets "uid" when a valid token is present but lets
// anonymous requests through. Public detail pages use it to skip counting
// the owner's own views.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if idToken, ok := bearerToken(c); ok {
			if m.blacklist == nil || !m.blacklist.IsRevoked(c.Request().Context(), idToken) {
				if token, err := m.authClient.VerifyIDToken(c.Request().Context(), idToken); err == nil {
					c.Set("uid", token.UID)
				}
			}
		}
		return next(c)
	}
}
