package app

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/realcore/spendenapp/internal/plugins/auth"
	"github.com/realcore/spendenapp/internal/plugins/pages"
	"github.com/realcore/spendenapp/internal/plugins/smtp"
	"github.com/realcore/spendenapp/internal/plugins/submissions"
	"github.com/realcore/spendenapp/internal/plugins/translations"
)

// RegisterRoutes sets up all application routes. Each plugin registers its
// own routes; this is the single place they are aggregated and where the
// gated /admin group is created.
func (a *App) RegisterRoutes() {
	e := a.Echo

	// Health check for Docker / reverse proxy monitoring. Pings both
	// backing stores so a dead dependency flips the probe.
	e.GET("/healthz", a.healthz)

	// --- Auth (public: login, status, logout) ---
	checker := auth.NewChecker(a.Config.Admin.Password, a.Config.Admin.PasswordHash)
	authService := auth.NewAuthService(checker, a.Redis, a.Config.Admin.SessionTTL)
	auth.RegisterRoutes(e, auth.NewHandler(authService))

	// Everything on this group requires a live admin session.
	adminGroup := e.Group("/admin", auth.RequireAdmin(authService))

	// --- SMTP config + mail dispatch ---
	resolver := smtp.NewResolver(a.Config.SMTPEnv, a.Config.SMTPFallbackPath)
	mailer := smtp.NewMailer(resolver, a.Config.NotifyAddress)
	smtp.RegisterRoutes(adminGroup, smtp.NewHandler(resolver, mailer))

	// --- Submissions ---
	submissionService := submissions.NewService(submissions.NewRepository(a.DB), mailer)
	submissions.RegisterRoutes(e, adminGroup, submissions.NewHandler(submissionService))

	// --- Translations ---
	translationService := translations.NewService(translations.NewRepository(a.DB))
	translations.RegisterRoutes(e, adminGroup, translations.NewHandler(translationService))

	// --- Pages ---
	pageService := pages.NewService(pages.NewRepository(a.DB))
	pages.RegisterRoutes(e, adminGroup, pages.NewHandler(pageService))
}

// healthz reports readiness. Both stores get a short deadline so a hung
// dependency cannot stall the probe.
func (a *App) healthz(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	if err := a.DB.PingContext(ctx); err != nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"status": "error", "component": "database"})
	}
	if err := a.Redis.Ping(ctx).Err(); err != nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"status": "error", "component": "redis"})
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
