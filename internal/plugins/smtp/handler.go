package smtp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/realcore/spendenapp/internal/apperror"
)

// Handler handles HTTP requests for SMTP configuration and test mail.
// All routes sit behind the admin auth gate.
type Handler struct {
	resolver *Resolver
	mailer   *Mailer
}

// NewHandler creates a new SMTP handler.
func NewHandler(resolver *Resolver, mailer *Mailer) *Handler {
	return &Handler{resolver: resolver, mailer: mailer}
}

// GetConfig returns the active configuration with the password masked
// (GET /admin/config).
func (h *Handler) GetConfig(c echo.Context) error {
	return c.JSON(http.StatusOK, h.resolver.Masked())
}

// SaveConfig overwrites the fallback file (POST /admin/config). When the
// environment source is active the save succeeds but stays dormant.
func (h *Handler) SaveConfig(c echo.Context) error {
	var req SaveRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("Ungültige Anfrage")
	}

	if err := h.resolver.Save(req); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Konfiguration gespeichert",
	})
}

// SendTest delivers a test mail to the given recipient
// (POST /admin/test-email).
func (h *Handler) SendTest(c echo.Context) error {
	var req TestRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("Ungültige Anfrage")
	}

	result, err := h.mailer.SendTest(c.Request().Context(), req.Recipient)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success":   true,
		"message":   result.Message,
		"messageId": result.MessageID,
		"accepted":  result.Accepted,
		"rejected":  result.Rejected,
	})
}
