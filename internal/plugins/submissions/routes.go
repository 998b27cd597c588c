package submissions

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/realcore/spendenapp/internal/middleware"
)

// RegisterRoutes sets up the submission routes. The public submit endpoint
// is rate-limited against form spam; the admin endpoints go on the gated
// admin group supplied by the caller.
func RegisterRoutes(e *echo.Echo, adminGroup *echo.Group, h *Handler) {
	e.POST("/submit", h.Submit, middleware.RateLimit(10, time.Minute))

	adminGroup.GET("/submissions", h.List)
	adminGroup.DELETE("/submissions", h.Delete)
}
