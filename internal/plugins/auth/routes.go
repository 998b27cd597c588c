package auth

import "github.com/labstack/echo/v4"

// RegisterRoutes sets up the auth routes. These stay outside the gated
// admin group: login and the status probe must work without a session.
func RegisterRoutes(e *echo.Echo, h *Handler) {
	e.POST("/admin/auth", h.Login)
	e.GET("/admin/auth", h.Status)
	e.DELETE("/admin/auth", h.Logout)
}
