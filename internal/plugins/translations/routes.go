package translations

import "github.com/labstack/echo/v4"

// RegisterRoutes sets up the translation routes. The public reads feed the
// site UI; the write endpoints go on the gated admin group.
func RegisterRoutes(e *echo.Echo, adminGroup *echo.Group, h *Handler) {
	e.GET("/translations", h.GetAll)
	e.GET("/translations/resolve", h.Resolve)

	adminGroup.GET("/translations", h.GetAll)
	adminGroup.POST("/translations", h.Upsert)
	adminGroup.DELETE("/translations", h.Delete)
}
