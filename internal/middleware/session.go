package middleware

import (
	"net/http"

	"campus-events/internal/models"
	"campus-events/internal/service"
	"campus-events/pkg/session"

	"github.com/labstack/echo/v4"
)

// SessionKey is the echo context key under which SessionAuth stores the
// verified claims.
const SessionKey = "session"

// SessionAuth verifies the session cookie and stashes the resolved claims in
// the request context for handlers downstream.
func SessionAuth(sessions *session.Manager) echo.MiddlewareFunc {
	return SessionAuthWithMessage(sessions, service.ErrNotLoggedIn.Error())
}

// SessionAuthWithMessage is SessionAuth with a route-specific rejection
// message; the profile endpoint answers differently than the action routes.
func SessionAuthWithMessage(sessions *session.Manager, message string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(session.CookieName)
			if err != nil || cookie.Value == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, message)
			}

			claims, err := sessions.Verify(c.Request().Context(), cookie.Value)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, message)
			}

			c.Set(SessionKey, claims)
			return next(c)
		}
	}
}

// RequireAdmin gates mutation and reporting endpoints; it must run after
// SessionAuth.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := CurrentUser(c)
		if claims == nil || claims.Role != models.RoleAdmin {
			return echo.NewHTTPError(http.StatusForbidden, service.ErrUnauthorized.Error())
		}
		return next(c)
	}
}

// CurrentUser returns the session claims set by SessionAuth, or nil.
func CurrentUser(c echo.Context) *session.Claims {
	claims, _ := c.Get(SessionKey).(*session.Claims)
	return claims
}
