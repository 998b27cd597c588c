package pages

import "github.com/labstack/echo/v4"

// RegisterRoutes sets up the page routes. Reads feed the public site; the
// write endpoint goes on the gated admin group.
func RegisterRoutes(e *echo.Echo, adminGroup *echo.Group, h *Handler) {
	e.GET("/pages", h.Get)

	adminGroup.GET("/pages", h.Get)
	adminGroup.POST("/pages", h.Save)
}
