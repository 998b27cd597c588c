package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/realcore/spendenapp/internal/apperror"
)

// sessionCookieName is the HTTP cookie carrying the session token.
const sessionCookieName = "admin_session"

// Handler handles HTTP requests for the admin gate.
type Handler struct {
	service AuthService
}

// NewHandler creates a new auth handler.
func NewHandler(service AuthService) *Handler {
	return &Handler{service: service}
}

// Login checks the admin password and opens a session
// (POST /admin/auth).
func (h *Handler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("Ungültige Anfrage")
	}

	token, err := h.service.Login(c.Request().Context(), req.Password, c.RealIP())
	if err != nil {
		return err
	}

	setSessionCookie(c, token, int(h.service.SessionTTL().Seconds()))
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// Status reports whether the request carries a live session
// (GET /admin/auth).
func (h *Handler) Status(c echo.Context) error {
	_, err := h.service.ValidateSession(c.Request().Context(), getSessionToken(c))
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"authenticated": false})
	}
	return c.JSON(http.StatusOK, echo.Map{"authenticated": true})
}

// Logout destroys the session and clears the cookie (DELETE /admin/auth).
func (h *Handler) Logout(c echo.Context) error {
	if token := getSessionToken(c); token != "" {
		// Ignore errors -- the cookie gets cleared regardless, and an
		// orphaned Redis entry expires on its own.
		_ = h.service.DestroySession(c.Request().Context(), token)
	}

	clearSessionCookie(c)
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// --- Cookie helpers ---

// getSessionToken reads the session token from the cookie.
func getSessionToken(c echo.Context) string {
	cookie, err := c.Cookie(sessionCookieName)
	if err != nil || cookie.Value == "" {
		return ""
	}
	return cookie.Value
}

// setSessionCookie sets the session cookie on the response. Secure is
// derived from the request so local HTTP development keeps working.
func setSessionCookie(c echo.Context, token string, maxAge int) {
	c.SetCookie(&http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   isSecureRequest(c),
		SameSite: http.SameSiteStrictMode,
	})
}

// clearSessionCookie removes the session cookie by setting MaxAge to -1.
func clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   isSecureRequest(c),
		SameSite: http.SameSiteStrictMode,
	})
}

// isSecureRequest reports whether the request arrived over TLS, directly
// or via a forwarding proxy.
func isSecureRequest(c echo.Context) bool {
	return c.Request().TLS != nil || c.Request().Header.Get("X-Forwarded-Proto") == "https"
}
