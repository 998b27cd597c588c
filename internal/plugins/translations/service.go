package translations

import (
	"context"
	"strings"

	"github.com/realcore/spendenapp/internal/apperror"
)

// Service handles business logic for translation overrides.
type Service interface {
	// GetAll returns the stored overrides as a nested lang -> key -> value
	// map, optionally filtered to one language.
	GetAll(ctx context.Context, language string) (map[string]map[string]string, error)

	// Upsert stores one override. Language and key are required; an empty
	// value is allowed and blanks the text.
	Upsert(ctx context.Context, req UpsertRequest) error

	// Delete removes one override, reverting the key to its built-in
	// default. Removing a nonexistent override succeeds.
	Delete(ctx context.Context, language, key string) error

	// Resolve returns the display text for a key in a language.
	Resolve(ctx context.Context, language, key string) (string, error)
}

// service implements Service.
type service struct {
	repo Repository
}

// NewService creates a new translation service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetAll(ctx context.Context, language string) (map[string]map[string]string, error) {
	rows, err := s.repo.GetAll(ctx, language)
	if err != nil {
		return nil, err
	}

	out := make(map[string]map[string]string)
	for _, row := range rows {
		if out[row.Language] == nil {
			out[row.Language] = make(map[string]string)
		}
		out[row.Language][row.Key] = row.Value
	}
	return out, nil
}

func (s *service) Upsert(ctx context.Context, req UpsertRequest) error {
	language := strings.TrimSpace(req.Language)
	key := strings.TrimSpace(req.Key)
	if language == "" || key == "" {
		return apperror.NewBadRequest("Sprache und Schlüssel sind erforderlich")
	}
	return s.repo.Upsert(ctx, language, key, req.Value)
}

func (s *service) Delete(ctx context.Context, language, key string) error {
	if language == "" || key == "" {
		return apperror.NewBadRequest("Sprache und Schlüssel sind erforderlich")
	}
	return s.repo.Delete(ctx, language, key)
}

// Resolve walks the fallback chain: override in the requested language,
// built-in default in the requested language, then the same two tiers in
// German. A key unknown everywhere resolves to itself so broken lookups
// stay visible on the page instead of rendering blank.
func (s *service) Resolve(ctx context.Context, language, key string) (string, error) {
	chain := []string{language}
	if language != DefaultLanguage {
		chain = append(chain, DefaultLanguage)
	}

	for _, lang := range chain {
		if value, ok, err := s.repo.Get(ctx, lang, key); err != nil {
			return "", err
		} else if ok {
			return value, nil
		}
		if value, ok := lookupDefault(lang, key); ok {
			return value, nil
		}
	}
	return key, nil
}
