package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"familymarket/internal/domain/repository"
)

type AdminMiddleware struct {
	userRepo repository.UserRepository
}

func NewAdminMiddleware(userRepo repository.UserRepository) *AdminMiddleware {
	return &AdminMiddleware{
		userRepo: userRepo,
	}
}

// AdminOnly requires an authenticated user with the admin role. It also
// sets "isAdmin" so handlers can widen ownership checks.
func (m *AdminMiddleware) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		uid, ok := c.Get("uid").(string)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
		}

		user, err := m.userRepo.GetByID(c.Request().Context(), uid)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to verify admin privileges")
		}

		if !user.IsAdmin() {
			return echo.NewHTTPError(http.StatusForbidden, "Admin privileges required")
		}

		c.Set("isAdmin", true)
		return next(c)
	}
}
