package smtp

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/realcore/spendenapp/internal/config"
)

func tempConfigPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "smtp-config.json")
}

func writeFallback(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing fallback file: %v", err)
	}
}

func envConfig() config.SMTPEnvConfig {
	return config.SMTPEnvConfig{
		Host:   "mail.example.com",
		Port:   "465",
		User:   "env-user",
		Pass:   "env-pass",
		Secure: true,
		From:   "env@example.com",
	}
}

// --- Precedence Tests ---

func TestResolve_EnvWinsWholesale(t *testing.T) {
	path := tempConfigPath(t)
	writeFallback(t, path, `{"host":"file.example.com","port":"587","user":"file-user","pass":"file-pass","secure":false,"from":"file@example.com"}`)

	r := NewResolver(envConfig(), path)

	cfg := r.Resolve()
	if cfg.Host != "mail.example.com" || cfg.User != "env-user" || cfg.From != "env@example.com" {
		t.Errorf("expected every field from env, got %+v", cfg)
	}
	if !bool(cfg.Secure) {
		t.Error("expected secure=true from env")
	}
	if !r.IsEnvConfigured() {
		t.Error("expected IsEnvConfigured=true")
	}
}

func TestResolve_FileWhenEnvUnset(t *testing.T) {
	path := tempConfigPath(t)
	writeFallback(t, path, `{"host":"file.example.com","port":"25","user":"file-user","pass":"file-pass","secure":true,"from":"file@example.com"}`)

	r := NewResolver(config.SMTPEnvConfig{}, path)

	cfg := r.Resolve()
	if cfg.Host != "file.example.com" || cfg.Port != "25" {
		t.Errorf("expected fallback file config, got %+v", cfg)
	}
	if r.IsEnvConfigured() {
		t.Error("expected IsEnvConfigured=false")
	}
}

func TestResolve_DefaultsWithoutAnySource(t *testing.T) {
	r := NewResolver(config.SMTPEnvConfig{}, tempConfigPath(t))

	cfg := r.Resolve()
	if cfg.Host != "" || cfg.Port != "587" || cfg.From != "noreply@realcore.de" {
		t.Errorf("expected empty-host defaults, got %+v", cfg)
	}
}

func TestResolve_CorruptFileFallsBackToDefaults(t *testing.T) {
	path := tempConfigPath(t)
	writeFallback(t, path, `{not json`)

	r := NewResolver(config.SMTPEnvConfig{}, path)

	cfg := r.Resolve()
	if cfg.Host != "" || cfg.Port != "587" {
		t.Errorf("expected defaults for corrupt file, got %+v", cfg)
	}
}

func TestResolveForSend_RequiresHost(t *testing.T) {
	r := NewResolver(config.SMTPEnvConfig{}, tempConfigPath(t))
	if _, ok := r.ResolveForSend(); ok {
		t.Error("expected not sendable without host")
	}

	r = NewResolver(envConfig(), tempConfigPath(t))
	if _, ok := r.ResolveForSend(); !ok {
		t.Error("expected sendable with env host")
	}
}

// --- Save Tests ---

func TestSave_WritesWholesaleWithDefaults(t *testing.T) {
	path := tempConfigPath(t)
	r := NewResolver(config.SMTPEnvConfig{}, path)

	err := r.Save(SaveRequest{Host: "smtp.example.com", User: "u", Pass: "p"})
	if err != nil {
		t.Fatalf("expected save to succeed, got %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading saved file: %v", err)
	}
	var saved Config
	if err := json.Unmarshal(data, &saved); err != nil {
		t.Fatalf("decoding saved file: %v", err)
	}
	if saved.Port != "587" || saved.From != "noreply@realcore.de" {
		t.Errorf("expected port and sender defaults filled, got %+v", saved)
	}

	cfg := r.Resolve()
	if cfg.Host != "smtp.example.com" {
		t.Errorf("expected saved config to resolve, got %+v", cfg)
	}
}

func TestSave_DormantUnderEnvConfig(t *testing.T) {
	path := tempConfigPath(t)
	r := NewResolver(envConfig(), path)

	if err := r.Save(SaveRequest{Host: "other.example.com"}); err != nil {
		t.Fatalf("expected save to succeed, got %v", err)
	}
	if cfg := r.Resolve(); cfg.Host != "mail.example.com" {
		t.Errorf("expected env to stay active after save, got host %q", cfg.Host)
	}
}

// --- Masked Tests ---

func TestMasked_HidesPassword(t *testing.T) {
	path := tempConfigPath(t)
	writeFallback(t, path, `{"host":"h","port":"587","user":"u","pass":"secret","secure":false,"from":"f@e.de"}`)

	r := NewResolver(config.SMTPEnvConfig{}, path)

	masked := r.Masked()
	if masked.Pass != "••••••••" {
		t.Errorf("expected masked password, got %q", masked.Pass)
	}
}

func TestMasked_EmptyPasswordStaysEmpty(t *testing.T) {
	r := NewResolver(config.SMTPEnvConfig{}, tempConfigPath(t))
	if masked := r.Masked(); masked.Pass != "" {
		t.Errorf("expected empty pass, got %q", masked.Pass)
	}
}

func TestMasked_ReportsEnvConfigured(t *testing.T) {
	r := NewResolver(envConfig(), tempConfigPath(t))
	masked := r.Masked()
	if !masked.IsEnvConfigured {
		t.Error("expected isEnvConfigured=true")
	}
	if !masked.Secure {
		t.Error("expected secure=true from env")
	}
}

// --- FlexBool Tests ---

func TestFlexBool_AcceptsBoolAndString(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{`true`, true},
		{`false`, false},
		{`"true"`, true},
		{`"false"`, false},
		{`"yes"`, false},
		{`null`, false},
	}
	for _, tt := range tests {
		var b FlexBool
		if err := json.Unmarshal([]byte(tt.in), &b); err != nil {
			t.Errorf("unmarshal %s: %v", tt.in, err)
			continue
		}
		if bool(b) != tt.want {
			t.Errorf("FlexBool(%s) = %v, want %v", tt.in, bool(b), tt.want)
		}
	}
}
