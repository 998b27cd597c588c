package auth

import (
	"github.com/labstack/echo/v4"

	"github.com/realcore/spendenapp/internal/apperror"
)

// contextKeySession stores the validated session in the Echo context.
const contextKeySession = "auth_session"

// RequireAdmin returns middleware that validates the session cookie and
// rejects unauthenticated requests with a 401. The API is JSON-only, so
// there is no redirect branch; the dashboard frontend handles the 401.
func RequireAdmin(service AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session, err := service.ValidateSession(c.Request().Context(), getSessionToken(c))
			if err != nil {
				clearSessionCookie(c)
				return apperror.NewUnauthorized("Nicht autorisiert")
			}

			c.Set(contextKeySession, session)
			return next(c)
		}
	}
}

// GetSession retrieves the validated session from the Echo context.
// Returns nil when the middleware was not applied.
func GetSession(c echo.Context) *Session {
	session, ok := c.Get(contextKeySession).(*Session)
	if !ok {
		return nil
	}
	return session
}
