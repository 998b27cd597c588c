package submissions

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/realcore/spendenapp/internal/apperror"
)

// emailPattern is the deliberately loose local@domain.tld check the form
// has always used. Full RFC 5322 validation buys nothing here -- the mail
// server is the final arbiter.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Notifier sends the new-submission mail. The smtp plugin satisfies this
// interface; tests use a mock. Errors from the notifier are logged and
// swallowed -- notification failure must never fail the submit flow.
type Notifier interface {
	SendSubmissionNotification(ctx context.Context, name, firma, position, email, choice string) error
}

// Service handles business logic for sweepstakes entries.
type Service interface {
	// Submit validates the form data and then runs the best-effort flow:
	// persist the entry, attempt the notification mail, and report success
	// to the participant as long as the input was valid.
	Submit(ctx context.Context, req SubmitRequest) error

	// List returns all entries, newest first.
	List(ctx context.Context) ([]Submission, error)

	// Stats returns the dashboard aggregates.
	Stats(ctx context.Context) (*Stats, error)

	// Delete removes one entry. Returns whether a row was actually removed.
	Delete(ctx context.Context, id int) (bool, error)

	// ExportCSV renders all entries as semicolon-separated CSV text.
	ExportCSV(ctx context.Context) (string, error)
}

// service implements Service.
type service struct {
	repo     Repository
	notifier Notifier
	loc      *time.Location
}

// NewService creates a new submission service. notifier may be nil when
// outbound mail is disabled entirely (tests, local tooling).
func NewService(repo Repository, notifier Notifier) Service {
	// Dates in the CSV export are rendered in the campaign's timezone.
	loc, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		slog.Warn("Europe/Berlin tzdata unavailable, export dates fall back to UTC",
			slog.Any("error", err))
		loc = time.UTC
	}
	return &service{repo: repo, notifier: notifier, loc: loc}
}

// Submit runs field validation and then the best-effort persist+notify flow.
// Persistence and notification failures are logged but do not surface to
// the participant; only validation errors do.
func (s *service) Submit(ctx context.Context, req SubmitRequest) error {
	if err := validateSubmitRequest(req); err != nil {
		return err
	}

	sub := &Submission{
		Name:           strings.TrimSpace(req.Name),
		Firma:          strings.TrimSpace(req.Firma),
		Position:       strings.TrimSpace(req.Position),
		Email:          strings.TrimSpace(req.Email),
		Spendenauswahl: req.Spendenauswahl,
	}

	// Best-effort persistence: the notification mail is still attempted
	// when the database is unreachable, so no entry is silently lost on
	// both channels at once.
	if err := s.repo.Insert(ctx, sub); err != nil {
		slog.Error("failed to persist submission, continuing with notification",
			slog.String("name", sub.Name),
			slog.String("firma", sub.Firma),
			slog.Any("error", err),
		)
	} else {
		slog.Info("submission saved",
			slog.Int("id", sub.ID),
			slog.String("spendenauswahl", sub.Spendenauswahl),
		)
	}

	// Best-effort notification.
	if s.notifier != nil {
		if err := s.notifier.SendSubmissionNotification(ctx, sub.Name, sub.Firma, sub.Position, sub.Email, sub.Spendenauswahl); err != nil {
			slog.Error("failed to send submission notification",
				slog.String("name", sub.Name),
				slog.Any("error", err),
			)
		}
	}

	return nil
}

// validateSubmitRequest enforces presence of every field, the terms
// checkbox, the email pattern, and the donation-choice enum. The original
// campaign site persisted any choice string as-is; the enum is now enforced
// at this boundary so the aggregate counts always add up.
func validateSubmitRequest(req SubmitRequest) error {
	if strings.TrimSpace(req.Name) == "" ||
		strings.TrimSpace(req.Firma) == "" ||
		strings.TrimSpace(req.Position) == "" ||
		strings.TrimSpace(req.Email) == "" ||
		req.Spendenauswahl == "" ||
		!req.Teilnahmebedingungen {
		return apperror.NewValidation("Alle Pflichtfelder müssen ausgefüllt sein")
	}

	if !emailPattern.MatchString(strings.TrimSpace(req.Email)) {
		return apperror.NewValidation("Ungültige E-Mail-Adresse")
	}

	if req.Spendenauswahl != ChoiceLichtblicke && req.Spendenauswahl != ChoiceDiospiSuyana {
		return apperror.NewValidation("Ungültige Spendenauswahl")
	}

	return nil
}

// List returns all entries.
func (s *service) List(ctx context.Context) ([]Submission, error) {
	return s.repo.List(ctx)
}

// Stats returns the dashboard aggregates.
func (s *service) Stats(ctx context.Context) (*Stats, error) {
	return s.repo.Stats(ctx)
}

// Delete removes one entry by id.
func (s *service) Delete(ctx context.Context, id int) (bool, error) {
	if id <= 0 {
		return false, apperror.NewValidation("ID erforderlich")
	}
	return s.repo.Delete(ctx, id)
}
