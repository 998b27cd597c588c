// Package smtp implements the SMTP configuration resolver and the mail
// dispatcher. Configuration comes from two sources with strict precedence:
// the SMTP_* environment variables win wholesale when SMTP_HOST is set,
// otherwise an admin-saved JSON fallback file is used. Fields from the two
// sources are never mixed.
package smtp

import (
	"bytes"
	"encoding/json"
)

// maskedPassword is what admin reads show instead of the stored password.
const maskedPassword = "••••••••"

// FlexBool is a bool that also accepts the JSON string "true". Older
// fallback files and the admin form both sent the string form, so stored
// configs contain either representation.
type FlexBool bool

// UnmarshalJSON accepts true/false as well as their quoted string forms.
// Any other value is false.
func (b *FlexBool) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.HasPrefix(data, []byte(`"`)) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*b = s == "true"
		return nil
	}
	var v bool
	if err := json.Unmarshal(data, &v); err != nil {
		*b = false
		return nil
	}
	*b = FlexBool(v)
	return nil
}

// Config is a resolved SMTP configuration. Port stays a string because
// both the environment and the fallback file carry it that way.
type Config struct {
	Host   string   `json:"host"`
	Port   string   `json:"port"`
	User   string   `json:"user"`
	Pass   string   `json:"pass"`
	Secure FlexBool `json:"secure"`
	From   string   `json:"from"`
}

// MaskedConfig is the admin-facing read model. The password is replaced by
// a fixed mask when one is stored, and IsEnvConfigured tells the dashboard
// that saving the form will have no effect on the active config.
type MaskedConfig struct {
	Host            string `json:"host"`
	Port            string `json:"port"`
	User            string `json:"user"`
	Pass            string `json:"pass"`
	Secure          bool   `json:"secure"`
	From            string `json:"from"`
	IsEnvConfigured bool   `json:"isEnvConfigured"`
}

// SaveRequest carries the admin-submitted fallback configuration.
type SaveRequest struct {
	Host   string   `json:"host"`
	Port   string   `json:"port"`
	User   string   `json:"user"`
	Pass   string   `json:"pass"`
	Secure FlexBool `json:"secure"`
	From   string   `json:"from"`
}

// TestRequest names the recipient for a test mail.
type TestRequest struct {
	Recipient string `json:"recipient"`
}

// TestResult reports the outcome of a successful test delivery. The
// transport does not expose the server's final response line, so the
// metadata is the generated message id plus which recipients the server
// accepted during the RCPT exchange.
type TestResult struct {
	MessageID string   `json:"messageId"`
	Accepted  []string `json:"accepted"`
	Rejected  []string `json:"rejected"`
	Message   string   `json:"message"`
}
