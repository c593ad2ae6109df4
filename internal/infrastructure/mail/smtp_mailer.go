package mail

import (
	"context"
	"fmt"
	"log"
	"net/smtp"
	"os"
	"strings"

	"auxilio_propg/internal/usecase/interfaces"
)

// SMTPMailer delivers messages through the configured SMTP relay, one
// recipient per call.
//
// Supported env vars:
//   - SMTP_HOST, SMTP_PORT (default: 587)
//   - SMTP_USERNAME, SMTP_PASSWORD (optional; plain auth when set)
//   - SMTP_FROM
//   - MAIL_TRANSPORT_MOCK (log-only delivery, default for local runs)

type SMTPMailer struct {
	addr     string
	host     string
	from     string
	username string
	password string
	mockMode bool
}

var _ interfaces.IMailTransport = (*SMTPMailer)(nil)

func NewSMTPMailerFromEnv() *SMTPMailer {
	host := os.Getenv("SMTP_HOST")
	port := getenvDefault("SMTP_PORT", "587")
	m := &SMTPMailer{
		addr:     host + ":" + port,
		host:     host,
		from:     os.Getenv("SMTP_FROM"),
		username: os.Getenv("SMTP_USERNAME"),
		password: os.Getenv("SMTP_PASSWORD"),
		mockMode: isMailTransportMockEnabled() || host == "",
	}
	if m.mockMode {
		log.Printf("[mail][smtp] mock mode enabled")
	}
	return m
}

func (m *SMTPMailer) Deliver(ctx context.Context, recipient, subject, body string) error {
	if m.mockMode {
		log.Printf("[mail][smtp] mock deliver to=%s subject=%q body_len=%d", recipient, subject, len(body))
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nContent-Type: text/plain; charset=UTF-8\r\n\r\n%s",
		m.from, recipient, subject, body)

	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}
	if err := smtp.SendMail(m.addr, auth, m.from, []string{recipient}, []byte(msg)); err != nil {
		log.Printf("[mail][smtp] deliver failed to=%s err=%v", recipient, err)
		return err
	}
	log.Printf("[mail][smtp] deliver success to=%s subject=%q", recipient, subject)
	return nil
}

func isMailTransportMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("MAIL_TRANSPORT_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
