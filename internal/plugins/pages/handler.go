package pages

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/realcore/spendenapp/internal/apperror"
)

// Handler handles HTTP requests for content pages. Reads are public, the
// write endpoint sits on the gated admin group.
type Handler struct {
	service Service
}

// NewHandler creates a new pages handler.
func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Get serves a single page by ?slug= or, without a slug, the full listing
// (GET /pages). A missing page is not an error to the frontend; it gets
// an explicit null so it can fall back to hiding the link.
func (h *Handler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	slug := c.QueryParam("slug")
	if slug == "" {
		list, err := h.service.List(ctx)
		if err != nil {
			return err
		}
		if list == nil {
			list = []Page{}
		}
		return c.JSON(http.StatusOK, echo.Map{"success": true, "pages": list})
	}

	page, err := h.service.Get(ctx, slug)
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Code == 404 {
			return c.JSON(http.StatusOK, echo.Map{"success": true, "page": nil})
		}
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "page": page})
}

// Save upserts a page (POST /admin/pages).
func (h *Handler) Save(c echo.Context) error {
	var req SaveRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("Ungültige Anfrage")
	}

	if err := h.service.Save(c.Request().Context(), req); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
