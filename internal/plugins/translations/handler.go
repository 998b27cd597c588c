package translations

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/realcore/spendenapp/internal/apperror"
)

// Handler handles HTTP requests for translation overrides. Reads are public
// because the site UI loads the overrides on page load; writes are gated.
type Handler struct {
	service Service
}

// NewHandler creates a new translations handler.
func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// GetAll returns stored overrides, optionally filtered by ?language=
// (GET /translations, GET /admin/translations).
func (h *Handler) GetAll(c echo.Context) error {
	translations, err := h.service.GetAll(c.Request().Context(), c.QueryParam("language"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success":      true,
		"translations": translations,
	})
}

// Resolve returns the display text for one key (GET /translations/resolve).
func (h *Handler) Resolve(c echo.Context) error {
	language := c.QueryParam("language")
	key := c.QueryParam("key")
	if language == "" || key == "" {
		return apperror.NewBadRequest("Sprache und Schlüssel sind erforderlich")
	}

	value, err := h.service.Resolve(c.Request().Context(), language, key)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"value":   value,
	})
}

// Upsert stores one override (POST /admin/translations).
func (h *Handler) Upsert(c echo.Context) error {
	var req UpsertRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("Ungültige Anfrage")
	}

	if err := h.service.Upsert(c.Request().Context(), req); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// Delete removes one override (DELETE /admin/translations?language=&key=),
// reverting the key to its built-in default.
func (h *Handler) Delete(c echo.Context) error {
	err := h.service.Delete(c.Request().Context(), c.QueryParam("language"), c.QueryParam("key"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
