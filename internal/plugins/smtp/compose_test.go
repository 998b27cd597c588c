package smtp

import (
	"context"
	"strings"
	"testing"

	"github.com/realcore/spendenapp/internal/config"
)

func testMailer(t *testing.T) *Mailer {
	t.Helper()
	resolver := NewResolver(config.SMTPEnvConfig{}, tempConfigPath(t))
	return NewMailer(resolver, "events@realcore.de")
}

func TestMailChoiceLabel(t *testing.T) {
	tests := []struct {
		choice string
		want   string
	}{
		{"lichtblicke", "Lichtblicke e.V."},
		{"diospi-suyana", "Diospi Suyana - Krankenhaus in Peru"},
		{"legacy", "legacy"},
	}
	for _, tt := range tests {
		if got := mailChoiceLabel(tt.choice); got != tt.want {
			t.Errorf("mailChoiceLabel(%q) = %q, want %q", tt.choice, got, tt.want)
		}
	}
}

func TestComposeNotificationText(t *testing.T) {
	m := testMailer(t)

	text := m.composeNotificationText("Max Mustermann", "Beispiel GmbH", "Einkauf", "max@example.com", "diospi-suyana")

	for _, want := range []string{
		"Neue Gewinnspiel-Teilnahme eingegangen",
		"Name: Max Mustermann",
		"Firma: Beispiel GmbH",
		"Position: Einkauf",
		"E-Mail: max@example.com",
		"Diospi Suyana - Krankenhaus in Peru",
		"Teilnahmebedingungen akzeptiert: Ja",
		"Zeitstempel:",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("expected text mail to contain %q:\n%s", want, text)
		}
	}
}

func TestComposeNotificationHTML_EscapesInput(t *testing.T) {
	m := testMailer(t)

	html := m.composeNotificationHTML(`<script>alert(1)</script>`, "F", "P", "max@example.com", "lichtblicke")

	if strings.Contains(html, "<script>") {
		t.Error("expected HTML-escaped name in mail body")
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Error("expected escaped entity in mail body")
	}
	if !strings.Contains(html, "Lichtblicke e.V.") {
		t.Error("expected organisation label in mail body")
	}
}

func TestNewMessageID_UsesSenderDomain(t *testing.T) {
	id := newMessageID("noreply@realcore.de")
	if !strings.HasPrefix(id, "<") || !strings.HasSuffix(id, "@realcore.de>") {
		t.Errorf("unexpected message id %q", id)
	}
	if id == newMessageID("noreply@realcore.de") {
		t.Error("expected unique message ids")
	}
}

func TestBuildMessage_MultipartStructure(t *testing.T) {
	msg := buildMessage("noreply@realcore.de", "events@realcore.de", "Betreff", "<id@realcore.de>", "plain body", "<p>html body</p>")

	for _, want := range []string{
		"From: noreply@realcore.de\r\n",
		"To: events@realcore.de\r\n",
		"Subject: Betreff\r\n",
		"Message-ID: <id@realcore.de>\r\n",
		"MIME-Version: 1.0\r\n",
		"Content-Type: multipart/alternative;",
		"Content-Type: text/plain; charset=UTF-8",
		"Content-Type: text/html; charset=UTF-8",
		"plain body",
		"<p>html body</p>",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected message to contain %q", want)
		}
	}
}

func TestSendSubmissionNotification_UnconfiguredIsNoop(t *testing.T) {
	m := testMailer(t)

	err := m.SendSubmissionNotification(context.Background(), "Max", "F", "P", "max@example.com", "lichtblicke")
	if err != nil {
		t.Fatalf("expected unconfigured notification to be a logged no-op, got %v", err)
	}
}

func TestSendTest_RequiresRecipient(t *testing.T) {
	m := testMailer(t)

	if _, err := m.SendTest(context.Background(), " "); err == nil {
		t.Fatal("expected error for missing recipient")
	}
}

func TestSendTest_RequiresConfiguration(t *testing.T) {
	m := testMailer(t)

	if _, err := m.SendTest(context.Background(), "admin@example.com"); err == nil {
		t.Fatal("expected error when smtp is unconfigured")
	}
}
