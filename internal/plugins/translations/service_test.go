package translations

import (
	"context"
	"errors"
	"testing"

	"github.com/realcore/spendenapp/internal/apperror"
)

// --- Mock Repository ---

// mockTranslationRepo implements Repository for testing.
type mockTranslationRepo struct {
	getAllFn func(ctx context.Context, language string) ([]Translation, error)
	getFn    func(ctx context.Context, language, key string) (string, bool, error)
	upsertFn func(ctx context.Context, language, key, value string) error
	deleteFn func(ctx context.Context, language, key string) error
}

func (m *mockTranslationRepo) GetAll(ctx context.Context, language string) ([]Translation, error) {
	if m.getAllFn != nil {
		return m.getAllFn(ctx, language)
	}
	return nil, nil
}

func (m *mockTranslationRepo) Get(ctx context.Context, language, key string) (string, bool, error) {
	if m.getFn != nil {
		return m.getFn(ctx, language, key)
	}
	return "", false, nil
}

func (m *mockTranslationRepo) Upsert(ctx context.Context, language, key, value string) error {
	if m.upsertFn != nil {
		return m.upsertFn(ctx, language, key, value)
	}
	return nil
}

func (m *mockTranslationRepo) Delete(ctx context.Context, language, key string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, language, key)
	}
	return nil
}

// overrides builds a Get function backed by a static lang/key map.
func overrides(data map[string]map[string]string) func(ctx context.Context, language, key string) (string, bool, error) {
	return func(ctx context.Context, language, key string) (string, bool, error) {
		if v, ok := data[language][key]; ok {
			return v, true, nil
		}
		return "", false, nil
	}
}

func assertAppError(t *testing.T, err error, expectedCode int) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error with code %d, got nil", expectedCode)
	}
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *apperror.AppError, got %T: %v", err, err)
	}
	if appErr.Code != expectedCode {
		t.Errorf("expected status %d, got %d (message: %s)", expectedCode, appErr.Code, appErr.Message)
	}
}

// --- Resolve Tests ---

func TestResolve_OverrideInRequestedLanguage(t *testing.T) {
	repo := &mockTranslationRepo{getFn: overrides(map[string]map[string]string{
		"en": {"header.title": "Holiday Raffle"},
	})}
	svc := NewService(repo)

	got, err := svc.Resolve(context.Background(), "en", "header.title")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if got != "Holiday Raffle" {
		t.Errorf("expected override to win, got %q", got)
	}
}

func TestResolve_DefaultInRequestedLanguage(t *testing.T) {
	svc := NewService(&mockTranslationRepo{})

	got, err := svc.Resolve(context.Background(), "en", "header.title")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if got != "Christmas Sweepstakes" {
		t.Errorf("expected built-in en default, got %q", got)
	}
}

func TestResolve_FallsBackToGermanOverride(t *testing.T) {
	// Key exists neither as en override nor as en default, but has a
	// German override.
	repo := &mockTranslationRepo{getFn: overrides(map[string]map[string]string{
		"de": {"custom.banner": "Sonderaktion"},
	})}
	svc := NewService(repo)

	got, err := svc.Resolve(context.Background(), "en", "custom.banner")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if got != "Sonderaktion" {
		t.Errorf("expected German override fallback, got %q", got)
	}
}

func TestResolve_FallsBackToGermanDefault(t *testing.T) {
	svc := NewService(&mockTranslationRepo{})

	// fr has no dictionary at all, so only the German tiers can answer.
	got, err := svc.Resolve(context.Background(), "fr", "thanks.title")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if got != "Vielen Dank!" {
		t.Errorf("expected German default fallback, got %q", got)
	}
}

func TestResolve_UnknownKeyReturnsKey(t *testing.T) {
	svc := NewService(&mockTranslationRepo{})

	got, err := svc.Resolve(context.Background(), "en", "no.such.key")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if got != "no.such.key" {
		t.Errorf("expected key echo for unknown key, got %q", got)
	}
}

func TestResolve_EnOverrideBeatsGermanTiers(t *testing.T) {
	repo := &mockTranslationRepo{getFn: overrides(map[string]map[string]string{
		"en": {"footer.rights": "All rights reserved."},
		"de": {"footer.rights": "Alle Rechte vorbehalten."},
	})}
	svc := NewService(repo)

	got, err := svc.Resolve(context.Background(), "en", "footer.rights")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if got != "All rights reserved." {
		t.Errorf("expected en override, got %q", got)
	}
}

func TestResolve_RepositoryError(t *testing.T) {
	repo := &mockTranslationRepo{
		getFn: func(ctx context.Context, language, key string) (string, bool, error) {
			return "", false, apperror.NewPersistence(errors.New("gone"))
		},
	}
	svc := NewService(repo)

	_, err := svc.Resolve(context.Background(), "de", "header.title")
	assertAppError(t, err, 500)
}

// --- GetAll Tests ---

func TestGetAll_GroupsByLanguage(t *testing.T) {
	repo := &mockTranslationRepo{
		getAllFn: func(ctx context.Context, language string) ([]Translation, error) {
			return []Translation{
				{Language: "de", Key: "a", Value: "1"},
				{Language: "de", Key: "b", Value: "2"},
				{Language: "en", Key: "a", Value: "3"},
			}, nil
		},
	}
	svc := NewService(repo)

	got, err := svc.GetAll(context.Background(), "")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if len(got) != 2 || got["de"]["b"] != "2" || got["en"]["a"] != "3" {
		t.Errorf("unexpected grouping: %v", got)
	}
}

func TestGetAll_PassesLanguageFilter(t *testing.T) {
	var gotLang string
	repo := &mockTranslationRepo{
		getAllFn: func(ctx context.Context, language string) ([]Translation, error) {
			gotLang = language
			return nil, nil
		},
	}
	svc := NewService(repo)

	if _, err := svc.GetAll(context.Background(), "en"); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if gotLang != "en" {
		t.Errorf("expected language filter to pass through, got %q", gotLang)
	}
}

// --- Upsert / Delete Tests ---

func TestUpsert_RequiresLanguageAndKey(t *testing.T) {
	svc := NewService(&mockTranslationRepo{})

	assertAppError(t, svc.Upsert(context.Background(), UpsertRequest{Key: "k", Value: "v"}), 400)
	assertAppError(t, svc.Upsert(context.Background(), UpsertRequest{Language: "de", Value: "v"}), 400)
	assertAppError(t, svc.Upsert(context.Background(), UpsertRequest{Language: "  ", Key: "k"}), 400)
}

func TestUpsert_EmptyValueAllowed(t *testing.T) {
	var stored string
	called := false
	repo := &mockTranslationRepo{
		upsertFn: func(ctx context.Context, language, key, value string) error {
			called = true
			stored = value
			return nil
		},
	}
	svc := NewService(repo)

	if err := svc.Upsert(context.Background(), UpsertRequest{Language: "de", Key: "header.cta"}); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if !called || stored != "" {
		t.Errorf("expected empty-value upsert to reach repository, called=%v value=%q", called, stored)
	}
}

func TestDelete_RequiresLanguageAndKey(t *testing.T) {
	svc := NewService(&mockTranslationRepo{})
	assertAppError(t, svc.Delete(context.Background(), "", "k"), 400)
	assertAppError(t, svc.Delete(context.Background(), "de", ""), 400)
}

func TestDelete_MissingOverrideSucceeds(t *testing.T) {
	svc := NewService(&mockTranslationRepo{})
	if err := svc.Delete(context.Background(), "de", "never.overridden"); err != nil {
		t.Fatalf("expected delete of missing override to succeed, got %v", err)
	}
}
