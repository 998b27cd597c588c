package smtp

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net"
	gosmtp "net/smtp"
	"strings"
	"time"

	"github.com/realcore/spendenapp/internal/apperror"
)

// Mailer delivers campaign mail through the resolver's active config.
// An unconfigured SMTP setup is not an error for notifications: the mail
// content is logged instead so no submission disappears silently during
// local development.
type Mailer struct {
	resolver      *Resolver
	notifyAddress string
	loc           *time.Location
}

// NewMailer creates a mailer that sends submission notifications to
// notifyAddress.
func NewMailer(resolver *Resolver, notifyAddress string) *Mailer {
	loc, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		slog.Warn("Europe/Berlin tzdata unavailable, mail timestamps fall back to UTC",
			slog.Any("error", err))
		loc = time.UTC
	}
	return &Mailer{resolver: resolver, notifyAddress: notifyAddress, loc: loc}
}

// SendSubmissionNotification mails the operations mailbox about a new
// sweepstakes entry. Satisfies the submissions plugin's Notifier contract.
func (m *Mailer) SendSubmissionNotification(ctx context.Context, name, firma, position, email, choice string) error {
	subject := fmt.Sprintf("🎄 Neue Gewinnspiel-Teilnahme: %s - %s", name, firma)
	text := m.composeNotificationText(name, firma, position, email, choice)

	cfg, ok := m.resolver.ResolveForSend()
	if !ok {
		slog.Info("smtp not configured, logging submission notification instead",
			slog.String("subject", subject),
			slog.String("body", text),
		)
		return nil
	}

	html := m.composeNotificationHTML(name, firma, position, email, choice)
	msg := buildMessage(cfg.From, m.notifyAddress, subject, newMessageID(cfg.From), text, html)

	if err := m.send(ctx, cfg, []string{m.notifyAddress}, msg); err != nil {
		return err
	}
	slog.Info("submission notification sent", slog.String("to", m.notifyAddress))
	return nil
}

// SendTest delivers a test mail so an admin can verify the active config.
// Unlike notifications, a missing configuration is an error here.
func (m *Mailer) SendTest(ctx context.Context, recipient string) (*TestResult, error) {
	if strings.TrimSpace(recipient) == "" {
		return nil, apperror.NewBadRequest("Bitte geben Sie eine Empfänger-E-Mail-Adresse an")
	}

	cfg, ok := m.resolver.ResolveForSend()
	if !ok {
		return nil, apperror.NewBadRequest("SMTP ist nicht konfiguriert. Bitte speichern Sie zuerst die Konfiguration.")
	}

	text, html := m.composeTestMail()
	messageID := newMessageID(cfg.From)
	msg := buildMessage(cfg.From, recipient, "🎄 RealCore Spendenapp - Test-E-Mail", messageID, text, html)

	if err := m.send(ctx, cfg, []string{recipient}, msg); err != nil {
		return nil, err
	}

	return &TestResult{
		MessageID: messageID,
		Accepted:  []string{recipient},
		Rejected:  []string{},
		Message:   fmt.Sprintf("Test-E-Mail erfolgreich an %s gesendet", recipient),
	}, nil
}

// send delivers one message. Failures are classified for the admin UI:
// unreachable server, rejected credentials, or a generic SMTP error with
// the server's response.
func (m *Mailer) send(ctx context.Context, cfg *Config, to []string, msg string) error {
	addr := net.JoinHostPort(cfg.Host, cfg.Port)
	dialer := &net.Dialer{Timeout: 10 * time.Second}

	var conn net.Conn
	var err error
	if cfg.Secure {
		// Implicit TLS, port 465 typical.
		tlsConfig := &tls.Config{ServerName: cfg.Host, MinVersion: tls.VersionTLS12}
		conn, err = tls.DialWithDialer(dialer, "tcp", addr, tlsConfig)
	} else {
		conn, err = dialer.DialContext(ctx, "tcp", addr)
	}
	if err != nil {
		return apperror.NewSMTPConnectionRefused(fmt.Errorf("connecting to %s: %w", addr, err))
	}
	defer conn.Close()

	client, err := gosmtp.NewClient(conn, cfg.Host)
	if err != nil {
		return apperror.NewSMTPConnectionRefused(fmt.Errorf("smtp handshake with %s: %w", addr, err))
	}
	defer client.Close()

	// Opportunistic STARTTLS on plain connections, port 587 typical.
	if !cfg.Secure {
		if ok, _ := client.Extension("STARTTLS"); ok {
			tlsConfig := &tls.Config{ServerName: cfg.Host, MinVersion: tls.VersionTLS12}
			if err := client.StartTLS(tlsConfig); err != nil {
				return apperror.NewSMTP(fmt.Errorf("starting TLS: %w", err))
			}
		}
	}

	if cfg.User != "" {
		auth := gosmtp.PlainAuth("", cfg.User, cfg.Pass, cfg.Host)
		if err := client.Auth(auth); err != nil {
			return apperror.NewSMTPAuthFailed(fmt.Errorf("authenticating as %s: %w", cfg.User, err))
		}
	}

	if err := client.Mail(cfg.From); err != nil {
		return apperror.NewSMTP(fmt.Errorf("MAIL FROM: %w", err))
	}
	for _, recipient := range to {
		if err := client.Rcpt(recipient); err != nil {
			return apperror.NewSMTP(fmt.Errorf("RCPT TO %s: %w", recipient, err))
		}
	}

	w, err := client.Data()
	if err != nil {
		return apperror.NewSMTP(fmt.Errorf("DATA: %w", err))
	}
	if _, err := w.Write([]byte(msg)); err != nil {
		return apperror.NewSMTP(fmt.Errorf("writing message: %w", err))
	}
	if err := w.Close(); err != nil {
		return apperror.NewSMTP(fmt.Errorf("closing data: %w", err))
	}

	if err := client.Quit(); err != nil {
		return apperror.NewSMTP(fmt.Errorf("QUIT: %w", err))
	}
	return nil
}

// timestamp renders the current time the way the German mails display it.
func (m *Mailer) timestamp() string {
	return time.Now().In(m.loc).Format("02.01.2006, 15:04:05")
}
