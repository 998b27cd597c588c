package smtp

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/realcore/spendenapp/internal/apperror"
	"github.com/realcore/spendenapp/internal/config"
)

// Resolver produces the active SMTP configuration. Precedence is strict:
// when SMTP_HOST is set in the environment, every field comes from the
// environment and the fallback file is ignored entirely. Only without
// SMTP_HOST does the admin-saved file apply, and only then do admin saves
// change anything.
type Resolver struct {
	env  config.SMTPEnvConfig
	path string
}

// NewResolver creates a resolver over the given environment snapshot and
// fallback file path.
func NewResolver(env config.SMTPEnvConfig, path string) *Resolver {
	return &Resolver{env: env, path: path}
}

// IsEnvConfigured reports whether the environment source is active.
func (r *Resolver) IsEnvConfigured() bool {
	return r.env.Host != ""
}

// Resolve returns the active configuration. Never returns nil: with no
// environment config and no (readable) fallback file, the zero-ish
// defaults are returned and the host stays empty.
func (r *Resolver) Resolve() *Config {
	if r.IsEnvConfigured() {
		return &Config{
			Host:   r.env.Host,
			Port:   r.env.Port,
			User:   r.env.User,
			Pass:   r.env.Pass,
			Secure: FlexBool(r.env.Secure),
			From:   r.env.From,
		}
	}

	if cfg, err := r.readFile(); err == nil {
		return cfg
	} else if !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("unreadable smtp fallback file, using defaults",
			slog.String("path", r.path),
			slog.Any("error", err),
		)
	}

	return &Config{Port: "587", From: "noreply@realcore.de"}
}

// ResolveForSend returns the active configuration only when it is usable
// for delivery, i.e. has a host.
func (r *Resolver) ResolveForSend() (*Config, bool) {
	cfg := r.Resolve()
	if cfg.Host == "" {
		return nil, false
	}
	return cfg, true
}

// Masked returns the admin read model with the password replaced by a
// fixed mask when one is stored.
func (r *Resolver) Masked() *MaskedConfig {
	cfg := r.Resolve()
	masked := &MaskedConfig{
		Host:            cfg.Host,
		Port:            cfg.Port,
		User:            cfg.User,
		Secure:          bool(cfg.Secure),
		From:            cfg.From,
		IsEnvConfigured: r.IsEnvConfigured(),
	}
	if cfg.Pass != "" {
		masked.Pass = maskedPassword
	}
	return masked
}

// Save overwrites the fallback file wholesale with the submitted config,
// filling the port and sender defaults. It does not touch the environment
// source; when that one is active the saved file simply stays dormant.
func (r *Resolver) Save(req SaveRequest) error {
	cfg := Config{
		Host:   req.Host,
		Port:   req.Port,
		User:   req.User,
		Pass:   req.Pass,
		Secure: req.Secure,
		From:   req.From,
	}
	if cfg.Port == "" {
		cfg.Port = "587"
	}
	if cfg.From == "" {
		cfg.From = "noreply@realcore.de"
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return apperror.NewInternal(fmt.Errorf("encoding smtp config: %w", err))
	}
	if err := os.WriteFile(r.path, data, 0o600); err != nil {
		return apperror.NewInternal(fmt.Errorf("writing smtp config %s: %w", r.path, err))
	}

	slog.Info("smtp fallback config saved",
		slog.String("host", cfg.Host),
		slog.String("port", cfg.Port),
		slog.Bool("dormant", r.IsEnvConfigured()),
	)
	return nil
}

// readFile loads and decodes the fallback file.
func (r *Resolver) readFile() (*Config, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("decoding smtp config %s: %w", r.path, err)
	}
	return &cfg, nil
}
