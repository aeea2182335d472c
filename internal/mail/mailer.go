package mail

import (
	"fmt"
	"net/smtp"
)

// Mailer sends plain-text email.
type Mailer interface {
	Send(to, subject, body string) error
}

// SMTPMailer sends mail over authenticated SMTP.
type SMTPMailer struct {
	host string
	port string
	user string
	pass string
	from string
}

// NewSMTPMailer creates a mailer from SMTP settings.
func NewSMTPMailer(host, port, user, pass, from string) *SMTPMailer {
	return &SMTPMailer{host: host, port: port, user: user, pass: pass, from: from}
}

// Send delivers a plain-text message to a single recipient.
func (m *SMTPMailer) Send(to, subject, body string) error {
	if m.host == "" || m.user == "" || m.pass == "" {
		return fmt.Errorf("smtp not configured")
	}

	addr := m.host + ":" + m.port

	msg := "From: " + m.from + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"Content-Type: text/plain; charset=\"utf-8\"\r\n\r\n" +
		body + "\r\n"

	auth := smtp.PlainAuth("", m.user, m.pass, m.host)
	return smtp.SendMail(addr, auth, m.user, []string{to}, []byte(msg))
}
