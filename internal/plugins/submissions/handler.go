package submissions

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/realcore/spendenapp/internal/apperror"
)

// Handler handles HTTP requests for sweepstakes entries. The public submit
// endpoint is rate limited; the admin endpoints sit behind the auth gate.
type Handler struct {
	service Service
}

// NewHandler creates a new submissions handler.
func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Submit accepts a form entry from the public site (POST /submit).
func (h *Handler) Submit(c echo.Context) error {
	var req SubmitRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("Ungültige Anfrage")
	}

	if err := h.service.Submit(c.Request().Context(), req); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Vielen Dank für Ihre Teilnahme!",
	})
}

// List serves the admin submissions view (GET /admin/submissions). The
// action query parameter selects the representation: the plain listing,
// the aggregate stats, or the CSV export.
func (h *Handler) List(c echo.Context) error {
	ctx := c.Request().Context()

	switch c.QueryParam("action") {
	case "export":
		csv, err := h.service.ExportCSV(ctx)
		if err != nil {
			return err
		}
		filename := fmt.Sprintf("teilnahmen_%s.csv", time.Now().Format("2006-01-02"))
		c.Response().Header().Set(echo.HeaderContentDisposition,
			fmt.Sprintf(`attachment; filename="%s"`, filename))
		return c.Blob(http.StatusOK, "text/csv; charset=utf-8", []byte(csv))

	case "stats":
		stats, err := h.service.Stats(ctx)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, stats)

	default:
		subs, err := h.service.List(ctx)
		if err != nil {
			return err
		}
		if subs == nil {
			subs = []Submission{}
		}
		return c.JSON(http.StatusOK, echo.Map{"submissions": subs})
	}
}

// Delete removes one entry (DELETE /admin/submissions).
func (h *Handler) Delete(c echo.Context) error {
	var req DeleteRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("Ungültige Anfrage")
	}

	deleted, err := h.service.Delete(c.Request().Context(), req.ID)
	if err != nil {
		return err
	}
	if !deleted {
		return apperror.NewNotFound("Teilnahme nicht gefunden")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Teilnahme gelöscht",
	})
}
