package mailer

import (
	"errors"
	"net/smtp"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func newTestMailer(t *testing.T) (*Mailer, *[][]byte) {
	t.Helper()
	m := New(Config{
		Host:     "smtp.test",
		Port:     587,
		From:     "noreply@studio.test",
		FromName: "Studio",
	}, zap.NewNop())

	var sent [][]byte
	m.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		sent = append(sent, msg)
		return nil
	}
	return m, &sent
}

func TestConfigured(t *testing.T) {
	m := New(Config{Host: "smtp.test", From: "a@b.c"}, zap.NewNop())
	if !m.Configured() {
		t.Error("expected configured mailer")
	}

	empty := New(Config{}, zap.NewNop())
	if empty.Configured() {
		t.Error("expected unconfigured mailer with empty config")
	}

	noFrom := New(Config{Host: "smtp.test"}, zap.NewNop())
	if noFrom.Configured() {
		t.Error("expected unconfigured mailer without a sender")
	}
}

func TestSend_ReturnsMessageID(t *testing.T) {
	m, sent := newTestMailer(t)

	id, err := m.Send(Email{To: "studio@studio.test", Subject: "hi", TextBody: "hello"})
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if id == "" {
		t.Error("expected a message id")
	}
	if !strings.HasSuffix(id, "@smtp.test") {
		t.Errorf("message id should carry the host, got %q", id)
	}
	if len(*sent) != 1 {
		t.Fatalf("expected one message sent, got %d", len(*sent))
	}
}

func TestSend_NoRecipient(t *testing.T) {
	m, sent := newTestMailer(t)

	if _, err := m.Send(Email{Subject: "hi", TextBody: "hello"}); err == nil {
		t.Error("expected error for missing recipient")
	}
	if len(*sent) != 0 {
		t.Error("no message should be sent without a recipient")
	}
}

func TestSend_Unconfigured(t *testing.T) {
	m := New(Config{}, zap.NewNop())
	if _, err := m.Send(Email{To: "a@b.c", TextBody: "x"}); err == nil {
		t.Error("expected error from unconfigured mailer")
	}
}

func TestSend_TransportError(t *testing.T) {
	m, _ := newTestMailer(t)
	m.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		return errors.New("connection refused")
	}

	if _, err := m.Send(Email{To: "a@b.c", TextBody: "x"}); err == nil {
		t.Error("expected transport error to surface")
	}
}

func TestSend_MultipartMessage(t *testing.T) {
	m, sent := newTestMailer(t)

	_, err := m.Send(Email{
		To:       "studio@studio.test",
		Subject:  "subject line",
		TextBody: "plain body",
		HTMLBody: "<p>html body</p>",
	})
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	msg := string((*sent)[0])
	for _, want := range []string{
		"From: Studio <noreply@studio.test>",
		"To: studio@studio.test",
		"Subject: subject line",
		"multipart/alternative",
		"plain body",
		"<p>html body</p>",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q", want)
		}
	}
}

func TestSend_HeaderValuesStayOnOneLine(t *testing.T) {
	m, sent := newTestMailer(t)

	_, err := m.Send(Email{
		To:       "studio@studio.test",
		Subject:  "hello\r\nBcc: attacker@evil.test",
		TextBody: "body",
	})
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	msg := string((*sent)[0])
	if strings.Contains(msg, "\r\nBcc:") {
		t.Error("a subject line break must not become a header of its own")
	}
	if !strings.Contains(msg, "Subject: hello Bcc: attacker@evil.test\r\n") {
		t.Errorf("expected folded subject on a single line, got:\n%s", msg)
	}
}

func TestBuildContactEmail_AllFields(t *testing.T) {
	e := BuildContactEmail(ContactEmailData{
		SiteName: "Studio",
		Name:     "Dana",
		Phone:    "0501234567",
		Email:    "dana@example.com",
		Message:  "When is the next class?",
	})

	if !strings.Contains(e.HTMLBody, "dana@example.com") {
		t.Error("expected email row in HTML body")
	}
	if !strings.Contains(e.HTMLBody, "When is the next class?") {
		t.Error("expected message in HTML body")
	}
	if !strings.Contains(e.TextBody, "Phone: 0501234567") {
		t.Error("expected phone in text body")
	}
	if !strings.Contains(e.Subject, "Dana") {
		t.Errorf("subject should carry the sender name, got %q", e.Subject)
	}
}

func TestBuildContactEmail_OptionalFields(t *testing.T) {
	e := BuildContactEmail(ContactEmailData{
		SiteName: "Studio",
		Name:     "Dana",
		Phone:    "0501234567",
	})

	// No email row at all when the address is absent.
	if strings.Contains(e.HTMLBody, ">Email<") {
		t.Error("email row should be omitted when address is empty")
	}
	if strings.Contains(e.TextBody, "Email:") {
		t.Error("email line should be omitted from text body")
	}

	// Missing message renders the placeholder.
	if !strings.Contains(e.HTMLBody, noMessagePlaceholder) {
		t.Error("expected message placeholder in HTML body")
	}
	if !strings.Contains(e.TextBody, noMessagePlaceholder) {
		t.Error("expected message placeholder in text body")
	}
}

func TestBuildContactEmail_NameCannotReachHeaders(t *testing.T) {
	e := BuildContactEmail(ContactEmailData{
		SiteName: "Studio",
		Name:     "Dana\nBcc: attacker@evil.test",
		Phone:    "0501234567",
	})

	if strings.ContainsAny(e.Subject, "\r\n") {
		t.Errorf("subject must be a single line, got %q", e.Subject)
	}
}

func TestBuildContactEmail_EscapesTextOnce(t *testing.T) {
	e := BuildContactEmail(ContactEmailData{
		SiteName: "Studio",
		Name:     "Dana",
		Phone:    "0501234567",
		Message:  "Tea & cookies, it's fun",
	})

	// The HTML body escapes exactly once; the text body not at all.
	if !strings.Contains(e.HTMLBody, "Tea &amp; cookies, it&#39;s fun") {
		t.Errorf("expected singly escaped message in HTML body, got %q", e.HTMLBody)
	}
	if strings.Contains(e.HTMLBody, "&amp;amp;") || strings.Contains(e.HTMLBody, "&amp;#39;") {
		t.Error("message was escaped twice in the HTML body")
	}
	if !strings.Contains(e.TextBody, "Tea & cookies, it's fun") {
		t.Errorf("expected raw message in text body, got %q", e.TextBody)
	}
}

func TestBuildPasswordResetEmail(t *testing.T) {
	e := BuildPasswordResetEmail(ResetEmailData{
		SiteName:  "Studio",
		ResetLink: "https://studio.test/admin/reset?token=abc",
		ExpiresIn: "24 hours",
	})

	if !strings.Contains(e.HTMLBody, "https://studio.test/admin/reset?token=abc") {
		t.Error("expected reset link in HTML body")
	}
	if !strings.Contains(e.TextBody, "24 hours") {
		t.Error("expected expiry in text body")
	}
	if !strings.Contains(e.Subject, "Studio") {
		t.Errorf("subject should carry the site name, got %q", e.Subject)
	}
}
