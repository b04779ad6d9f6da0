// internal/app/system/mailer/mailer.go

// Package mailer sends transactional email over SMTP: the contact-form
// notification and the password-reset message for newly added admins.
package mailer

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Email is one outbound message. TextBody is the plain-text alternative;
// HTMLBody, when present, is sent as multipart/alternative.
type Email struct {
	To       string
	Subject  string
	TextBody string
	HTMLBody string
}

// Config holds the SMTP settings for the mailer.
type Config struct {
	Host     string
	Port     int
	User     string
	Pass     string
	From     string // sender address, e.g. noreply@studio.example
	FromName string // sender display name
}

// Mailer delivers email through a single SMTP endpoint. A single attempt
// per message; the caller decides whether a failure is fatal.
type Mailer struct {
	cfg Config
	log *zap.Logger

	// send is swapped out in tests.
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// New creates a Mailer with the given SMTP configuration.
func New(cfg Config, logger *zap.Logger) *Mailer {
	return &Mailer{
		cfg:  cfg,
		log:  logger,
		send: smtp.SendMail,
	}
}

// Configured reports whether the mailer has enough configuration to
// attempt delivery. Checked by handlers before rendering a message so a
// missing credential fails fast instead of mid-send.
func (m *Mailer) Configured() bool {
	return m != nil && m.cfg.Host != "" && m.cfg.From != ""
}

// Send delivers the message and returns the generated message id.
func (m *Mailer) Send(e Email) (string, error) {
	if !m.Configured() {
		return "", fmt.Errorf("mailer: no SMTP host configured")
	}
	if e.To == "" {
		return "", fmt.Errorf("mailer: message has no recipient")
	}

	id := messageID(m.cfg.Host)
	msg := m.buildMessage(e, id)

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	var auth smtp.Auth
	if m.cfg.User != "" {
		auth = smtp.PlainAuth("", m.cfg.User, m.cfg.Pass, m.cfg.Host)
	}

	if err := m.send(addr, auth, m.cfg.From, []string{e.To}, msg); err != nil {
		return "", fmt.Errorf("mailer: send to %s: %w", e.To, err)
	}

	m.log.Info("email sent",
		zap.String("to", e.To),
		zap.String("subject", e.Subject),
		zap.String("message_id", id))
	return id, nil
}

// buildMessage renders the RFC 5322 message bytes. When both bodies are
// present the message is multipart/alternative with text first so simple
// clients pick the plain version.
func (m *Mailer) buildMessage(e Email, id string) []byte {
	var b strings.Builder

	from := m.cfg.From
	if m.cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", m.cfg.FromName, m.cfg.From)
	}

	fmt.Fprintf(&b, "Message-ID: <%s>\r\n", id)
	fmt.Fprintf(&b, "From: %s\r\n", headerSafe(from))
	fmt.Fprintf(&b, "To: %s\r\n", headerSafe(e.To))
	fmt.Fprintf(&b, "Subject: %s\r\n", headerSafe(e.Subject))
	b.WriteString("MIME-Version: 1.0\r\n")

	if e.HTMLBody == "" {
		b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
		b.WriteString(e.TextBody)
		return []byte(b.String())
	}

	boundary := "b-" + uuid.NewString()
	fmt.Fprintf(&b, "Content-Type: multipart/alternative; boundary=%q\r\n\r\n", boundary)

	fmt.Fprintf(&b, "--%s\r\n", boundary)
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
	b.WriteString(e.TextBody)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s\r\n", boundary)
	b.WriteString("Content-Type: text/html; charset=UTF-8\r\n\r\n")
	b.WriteString(e.HTMLBody)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s--\r\n", boundary)
	return []byte(b.String())
}

// headerSafe folds a caller-supplied value onto a single line so it
// cannot terminate the header it is written into and smuggle extra
// headers (recipients, spoofed fields) into the message.
func headerSafe(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func messageID(host string) string {
	if host == "" {
		host = "localhost"
	}
	return fmt.Sprintf("%s@%s", uuid.NewString(), host)
}
