package smtp

import "github.com/labstack/echo/v4"

// RegisterRoutes sets up the SMTP admin routes on the gated admin group.
func RegisterRoutes(adminGroup *echo.Group, h *Handler) {
	adminGroup.GET("/config", h.GetConfig)
	adminGroup.POST("/config", h.SaveConfig)
	adminGroup.POST("/test-email", h.SendTest)
}
