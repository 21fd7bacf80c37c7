package mailer

import (
	"fmt"
	"net/smtp"

	"github.com/uprisingink/studio-api/internal/config"
)

// Sender delivers a single plain-text email.
type Sender interface {
	Send(to, subject, body string) error
}

type SMTPMailer struct {
	host     string
	port     string
	from     string
	password string
}

var _ Sender = (*SMTPMailer)(nil)

func New(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		from:     cfg.SMTPFrom,
		password: cfg.SMTPPassword,
	}
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	auth := smtp.PlainAuth("", m.from, m.password, m.host)

	message := []byte("Subject: " + subject + "\r\n" +
		"From: " + m.from + "\r\n" +
		"To: " + to + "\r\n" +
		"Content-Type: text/plain; charset=UTF-8\r\n" +
		"\r\n" +
		body + "\r\n")

	if err := smtp.SendMail(m.host+":"+m.port, auth, m.from, []string{to}, message); err != nil {
		return fmt.Errorf("smtp send to %s: %w", to, err)
	}
	return nil
}
