package smtp

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"html"
	"strings"
	"time"
)

// newMessageID builds an RFC 5322 Message-ID using the sender's domain.
func newMessageID(from string) string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)

	domain := "localhost"
	if at := strings.LastIndex(from, "@"); at >= 0 && at < len(from)-1 {
		domain = from[at+1:]
	}
	return fmt.Sprintf("<%s@%s>", hex.EncodeToString(b), domain)
}

// mailChoiceLabel is the long-form organisation name used in mail bodies.
// The CSV export uses the short labels; the mail spells the Peru hospital
// out because the operations team forwards these mails to the partners.
func mailChoiceLabel(choice string) string {
	switch choice {
	case "lichtblicke":
		return "Lichtblicke e.V."
	case "diospi-suyana":
		return "Diospi Suyana - Krankenhaus in Peru"
	default:
		return choice
	}
}

// buildMessage assembles an RFC 2822 message with a multipart/alternative
// body carrying plain text and HTML variants.
func buildMessage(from, to, subject, messageID, text, htmlBody string) string {
	boundary := "spendenapp-mail-boundary"

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", from)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	fmt.Fprintf(&msg, "Message-ID: %s\r\n", messageID)
	fmt.Fprintf(&msg, "Date: %s\r\n", time.Now().UTC().Format(time.RFC1123Z))
	msg.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&msg, "Content-Type: multipart/alternative; boundary=%q\r\n", boundary)
	msg.WriteString("\r\n")

	fmt.Fprintf(&msg, "--%s\r\n", boundary)
	msg.WriteString("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
	msg.WriteString(text)
	msg.WriteString("\r\n")

	fmt.Fprintf(&msg, "--%s\r\n", boundary)
	msg.WriteString("Content-Type: text/html; charset=UTF-8\r\n\r\n")
	msg.WriteString(htmlBody)
	msg.WriteString("\r\n")

	fmt.Fprintf(&msg, "--%s--\r\n", boundary)
	return msg.String()
}

func (m *Mailer) composeNotificationText(name, firma, position, email, choice string) string {
	return fmt.Sprintf(`Neue Gewinnspiel-Teilnahme eingegangen
======================================

Persönliche Daten:
------------------
Name: %s
Firma: %s
Position: %s
E-Mail: %s

Spendenauswahl:
---------------
%s

Teilnahmebedingungen akzeptiert: Ja

---
Zeitstempel: %s`,
		name, firma, position, email, mailChoiceLabel(choice), m.timestamp())
}

func (m *Mailer) composeNotificationHTML(name, firma, position, email, choice string) string {
	esc := html.EscapeString
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: linear-gradient(135deg, #1e3a5f 0%%, #1a472a 100%%); color: white; padding: 20px; border-radius: 10px 10px 0 0; }
    .content { background: #f9f9f9; padding: 20px; border: 1px solid #ddd; }
    .footer { background: #1e3a5f; color: white; padding: 15px; text-align: center; border-radius: 0 0 10px 10px; font-size: 12px; }
    .field { margin-bottom: 10px; }
    .label { font-weight: bold; color: #1e3a5f; }
    .value { margin-left: 10px; }
    .donation-box { background: #d4af37; color: #1e3a5f; padding: 15px; border-radius: 5px; margin: 15px 0; font-weight: bold; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1 style="margin: 0;">🎄 Neue Gewinnspiel-Teilnahme</h1>
      <p style="margin: 10px 0 0 0; opacity: 0.9;">RealCore Weihnachtsspende</p>
    </div>
    <div class="content">
      <h2 style="color: #1e3a5f; margin-top: 0;">Persönliche Daten</h2>
      <div class="field"><span class="label">Name:</span><span class="value">%s</span></div>
      <div class="field"><span class="label">Firma:</span><span class="value">%s</span></div>
      <div class="field"><span class="label">Position:</span><span class="value">%s</span></div>
      <div class="field"><span class="label">E-Mail:</span><span class="value"><a href="mailto:%s">%s</a></span></div>

      <div class="donation-box">
        🎁 Gewählte Spendenorganisation: %s
      </div>

      <p style="color: #666; font-size: 12px;">
        ✅ Teilnahmebedingungen akzeptiert<br>
        📅 %s
      </p>
    </div>
    <div class="footer">
      © RealCore Group GmbH - Weihnachtsspende Gewinnspiel
    </div>
  </div>
</body>
</html>`,
		esc(name), esc(firma), esc(position), esc(email), esc(email),
		esc(mailChoiceLabel(choice)), m.timestamp())
}

func (m *Mailer) composeTestMail() (text, htmlBody string) {
	ts := m.timestamp()

	text = fmt.Sprintf(`Dies ist eine Test-E-Mail von der RealCore Spendenapp.

Wenn Sie diese E-Mail erhalten haben, ist Ihre SMTP-Konfiguration korrekt eingerichtet.

---
Gesendet am: %s`, ts)

	htmlBody = fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: linear-gradient(135deg, #1e3a5f 0%%, #1a472a 100%%); color: white; padding: 20px; border-radius: 10px 10px 0 0; text-align: center; }
    .content { background: #f9f9f9; padding: 30px; border: 1px solid #ddd; }
    .footer { background: #1e3a5f; color: white; padding: 15px; text-align: center; border-radius: 0 0 10px 10px; font-size: 12px; }
    .success-box { background: #d4edda; border: 1px solid #c3e6cb; color: #155724; padding: 15px; border-radius: 5px; margin: 15px 0; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1 style="margin: 0;">🎄 RealCore Spendenapp</h1>
      <p style="margin: 10px 0 0 0; opacity: 0.9;">Test-E-Mail</p>
    </div>
    <div class="content">
      <div class="success-box">
        <strong>✅ Erfolg!</strong><br>
        Ihre SMTP-Konfiguration ist korrekt eingerichtet.
      </div>
      <p>Diese Test-E-Mail wurde erfolgreich über Ihren SMTP-Server versendet.</p>
      <p style="color: #666; font-size: 12px; margin-top: 20px;">
        📅 %s
      </p>
    </div>
    <div class="footer">
      © RealCore Group GmbH
    </div>
  </div>
</body>
</html>`, ts)

	return text, htmlBody
}
