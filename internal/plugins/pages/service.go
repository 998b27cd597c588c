package pages

import (
	"context"
	"errors"
	"strings"

	"github.com/realcore/spendenapp/internal/apperror"
	"github.com/realcore/spendenapp/internal/sanitize"
)

// Service handles business logic for content pages.
type Service interface {
	// Get returns the stored page for a slug, falling back to the
	// built-in document for the legal slugs. Unknown slugs yield NotFound.
	Get(ctx context.Context, slug string) (*Page, error)

	// List returns all stored pages.
	List(ctx context.Context) ([]Page, error)

	// Save validates and sanitizes a page write.
	Save(ctx context.Context, req SaveRequest) error
}

// service implements Service.
type service struct {
	repo Repository
}

// NewService creates a new page service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Get(ctx context.Context, slug string) (*Page, error) {
	page, err := s.repo.Get(ctx, slug)
	if err == nil {
		return page, nil
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) && appErr.Code == 404 {
		if def, ok := defaultPage(slug); ok {
			return def, nil
		}
	}
	return nil, err
}

func (s *service) List(ctx context.Context) ([]Page, error) {
	return s.repo.List(ctx)
}

// Save stores a page. The HTML body is sanitized here, on write, so the
// database only ever contains clean markup.
func (s *service) Save(ctx context.Context, req SaveRequest) error {
	slug := strings.TrimSpace(req.Slug)
	title := strings.TrimSpace(req.Title)
	if slug == "" || title == "" {
		return apperror.NewBadRequest("Slug und Titel sind erforderlich")
	}

	return s.repo.Upsert(ctx, &Page{
		Slug:    slug,
		Title:   title,
		Content: sanitize.HTML(req.Content),
	})
}
