package contact

import (
	"fmt"
	"net/smtp"
	"strconv"

	"github.com/ticuv/showcase/internal/config"
)

// Mailer delivers a contact form submission.
type Mailer interface {
	Send(sub Submission) error
}

// SMTPMailer delivers submissions through a plain-auth SMTP relay.
type SMTPMailer struct {
	cfg config.SMTPConfig
}

// NewSMTPMailer creates a mailer for the given relay configuration.
func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) Send(sub Submission) error {
	if m.cfg.User == "" || m.cfg.Password == "" {
		return fmt.Errorf("smtp credentials not configured")
	}

	subject := "Portfolio Contact: " + sub.Name
	body := fmt.Sprintf("Name: %s\nEmail: %s\n\n%s\n\n--\nSent from the portfolio contact form (submission %s)\n",
		sub.Name, sub.Email, sub.Message, sub.ID)

	msg := []byte("To: " + m.cfg.To + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + m.cfg.User + "\r\n" +
		"Reply-To: " + sub.Email + "\r\n" +
		"\r\n" +
		body + "\r\n")

	addr := m.cfg.Host + ":" + strconv.Itoa(m.cfg.Port)
	auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Password, m.cfg.Host)
	return smtp.SendMail(addr, auth, m.cfg.User, []string{m.cfg.To}, msg)
}
